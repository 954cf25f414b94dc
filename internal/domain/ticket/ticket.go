package ticket

import (
	"fmt"
	"time"

	vo "fixdesk/internal/domain/ticket/valueobjects"
	"fixdesk/internal/shared/authorization"
	"fixdesk/internal/shared/biztime"
	"fixdesk/internal/shared/id"
	"fixdesk/internal/shared/mapper"
)

// Ticket is a support request filed against a device. The owner is recorded
// at creation time and never changes; it is the sole non-administrator
// authorization anchor.
type Ticket struct {
	internalID         uint
	sid                string
	deviceSID          *string
	deviceManufacturer *string
	deviceModel        *string
	title              string
	description        string
	owner              string
	severity           vo.Severity
	resolved           bool
	createdAt          time.Time
	updatedAt          time.Time
}

// Update carries the fields of a partial ticket update. A nil field means
// "leave the stored value untouched".
type Update struct {
	Title              *string
	Description        *string
	Severity           *vo.Severity
	Resolved           *bool
	DeviceSID          *string
	DeviceManufacturer *string
	DeviceModel        *string
}

// IsEmpty reports whether the update carries no fields at all.
func (u Update) IsEmpty() bool {
	return u.Title == nil && u.Description == nil && u.Severity == nil &&
		u.Resolved == nil && u.DeviceSID == nil &&
		u.DeviceManufacturer == nil && u.DeviceModel == nil
}

func NewTicket(
	title string,
	description string,
	owner string,
	severity vo.Severity,
	deviceSID *string,
	deviceManufacturer *string,
	deviceModel *string,
) (*Ticket, error) {
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if len(title) > 200 {
		return nil, fmt.Errorf("title exceeds maximum length of 200 characters")
	}
	if len(description) == 0 {
		return nil, fmt.Errorf("description is required")
	}
	if len(description) > 5000 {
		return nil, fmt.Errorf("description exceeds maximum length of 5000 characters")
	}
	if len(owner) == 0 {
		return nil, fmt.Errorf("ticket owner is required")
	}
	if !severity.IsValid() {
		return nil, fmt.Errorf("invalid severity")
	}
	if deviceSID == nil && (deviceManufacturer == nil || deviceModel == nil) {
		return nil, fmt.Errorf("either a device ID or both manufacturer and model are required")
	}

	sid, err := id.NewTicketID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate ticket ID: %w", err)
	}

	now := biztime.NowUTC()
	return &Ticket{
		sid:                sid,
		deviceSID:          deviceSID,
		deviceManufacturer: deviceManufacturer,
		deviceModel:        deviceModel,
		title:              title,
		description:        description,
		owner:              owner,
		severity:           severity,
		resolved:           false,
		createdAt:          now,
		updatedAt:          now,
	}, nil
}

func ReconstructTicket(
	internalID uint,
	sid string,
	deviceSID *string,
	deviceManufacturer *string,
	deviceModel *string,
	title string,
	description string,
	owner string,
	severity vo.Severity,
	resolved bool,
	createdAt, updatedAt time.Time,
) (*Ticket, error) {
	if internalID == 0 {
		return nil, fmt.Errorf("ticket internal ID cannot be zero")
	}
	if len(sid) == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if len(owner) == 0 {
		return nil, fmt.Errorf("ticket owner is required")
	}
	if !severity.IsValid() {
		return nil, fmt.Errorf("invalid severity")
	}

	return &Ticket{
		internalID:         internalID,
		sid:                sid,
		deviceSID:          deviceSID,
		deviceManufacturer: deviceManufacturer,
		deviceModel:        deviceModel,
		title:              title,
		description:        description,
		owner:              owner,
		severity:           severity,
		resolved:           resolved,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
	}, nil
}

func (t *Ticket) InternalID() uint {
	return t.internalID
}

func (t *Ticket) SID() string {
	return t.sid
}

func (t *Ticket) DeviceSID() *string {
	return t.deviceSID
}

func (t *Ticket) DeviceManufacturer() *string {
	return t.deviceManufacturer
}

func (t *Ticket) DeviceModel() *string {
	return t.deviceModel
}

func (t *Ticket) Title() string {
	return t.title
}

func (t *Ticket) Description() string {
	return t.description
}

func (t *Ticket) Owner() string {
	return t.owner
}

func (t *Ticket) Severity() vo.Severity {
	return t.severity
}

func (t *Ticket) Resolved() bool {
	return t.resolved
}

func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Ticket) UpdatedAt() time.Time {
	return t.updatedAt
}

func (t *Ticket) SetInternalID(id uint) error {
	if t.internalID != 0 {
		return fmt.Errorf("ticket internal ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket internal ID cannot be zero")
	}
	t.internalID = id
	return nil
}

// ApplyUpdate merges the present fields of the update into the ticket and
// refreshes updatedAt. Absent fields keep their stored values.
func (t *Ticket) ApplyUpdate(u Update) error {
	if u.Title != nil && (len(*u.Title) == 0 || len(*u.Title) > 200) {
		return fmt.Errorf("title must be between 1 and 200 characters")
	}
	if u.Description != nil && (len(*u.Description) == 0 || len(*u.Description) > 5000) {
		return fmt.Errorf("description must be between 1 and 5000 characters")
	}
	if u.Severity != nil && !u.Severity.IsValid() {
		return fmt.Errorf("invalid severity")
	}

	mapper.Assign(&t.title, u.Title)
	mapper.Assign(&t.description, u.Description)
	mapper.Assign(&t.severity, u.Severity)
	mapper.Assign(&t.resolved, u.Resolved)
	mapper.AssignFunc(u.DeviceSID, func(s string) { t.deviceSID = &s })
	mapper.AssignFunc(u.DeviceManufacturer, func(s string) { t.deviceManufacturer = &s })
	mapper.AssignFunc(u.DeviceModel, func(s string) { t.deviceModel = &s })

	t.updatedAt = biztime.NowUTC()
	return nil
}

// CanBeAccessedBy applies the shared authorization rule: administrators may
// act on any ticket, everyone else only on tickets they own.
func (t *Ticket) CanBeAccessedBy(identity authorization.Identity) bool {
	return authorization.CanAccessOwned(identity, t.owner)
}
