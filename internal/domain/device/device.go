package device

import (
	"fmt"
	"time"

	"fixdesk/internal/shared/biztime"
	"fixdesk/internal/shared/id"
	"fixdesk/internal/shared/mapper"
)

// Device is a supported hardware product registered by an administrator.
// Devices carry no owner: any authenticated caller may read them, only
// administrators may write.
type Device struct {
	internalID   uint
	sid          string
	name         string
	model        string
	manufacturer string
	createdAt    time.Time
	updatedAt    time.Time
}

// Update carries the fields of a partial device update. A nil field means
// "leave the stored value untouched".
type Update struct {
	Name         *string
	Model        *string
	Manufacturer *string
}

func (u Update) IsEmpty() bool {
	return u.Name == nil && u.Model == nil && u.Manufacturer == nil
}

func NewDevice(name, model, manufacturer string) (*Device, error) {
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}
	if len(name) > 100 {
		return nil, fmt.Errorf("name exceeds maximum length of 100 characters")
	}
	if len(model) == 0 {
		return nil, fmt.Errorf("model is required")
	}
	if len(manufacturer) == 0 {
		return nil, fmt.Errorf("manufacturer is required")
	}

	sid, err := id.NewDeviceID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate device ID: %w", err)
	}

	now := biztime.NowUTC()
	return &Device{
		sid:          sid,
		name:         name,
		model:        model,
		manufacturer: manufacturer,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructDevice(
	internalID uint,
	sid string,
	name, model, manufacturer string,
	createdAt, updatedAt time.Time,
) (*Device, error) {
	if internalID == 0 {
		return nil, fmt.Errorf("device internal ID cannot be zero")
	}
	if len(sid) == 0 {
		return nil, fmt.Errorf("device ID is required")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}

	return &Device{
		internalID:   internalID,
		sid:          sid,
		name:         name,
		model:        model,
		manufacturer: manufacturer,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (d *Device) InternalID() uint {
	return d.internalID
}

func (d *Device) SID() string {
	return d.sid
}

func (d *Device) Name() string {
	return d.name
}

func (d *Device) Model() string {
	return d.model
}

func (d *Device) Manufacturer() string {
	return d.manufacturer
}

func (d *Device) CreatedAt() time.Time {
	return d.createdAt
}

func (d *Device) UpdatedAt() time.Time {
	return d.updatedAt
}

func (d *Device) SetInternalID(id uint) error {
	if d.internalID != 0 {
		return fmt.Errorf("device internal ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("device internal ID cannot be zero")
	}
	d.internalID = id
	return nil
}

// ApplyUpdate merges the present fields of the update into the device and
// refreshes updatedAt.
func (d *Device) ApplyUpdate(u Update) error {
	if u.Name != nil && (len(*u.Name) == 0 || len(*u.Name) > 100) {
		return fmt.Errorf("name must be between 1 and 100 characters")
	}
	if u.Model != nil && len(*u.Model) == 0 {
		return fmt.Errorf("model cannot be empty")
	}
	if u.Manufacturer != nil && len(*u.Manufacturer) == 0 {
		return fmt.Errorf("manufacturer cannot be empty")
	}

	mapper.Assign(&d.name, u.Name)
	mapper.Assign(&d.model, u.Model)
	mapper.Assign(&d.manufacturer, u.Manufacturer)

	d.updatedAt = biztime.NowUTC()
	return nil
}
