package mappers

import (
	"fixdesk/internal/domain/device"
	"fixdesk/internal/infrastructure/persistence/models"
	"fixdesk/internal/shared/biztime"
)

// DeviceMapper handles the conversion between Device domain entities and persistence models.
type DeviceMapper interface {
	// ToModel converts a device domain entity to a persistence model.
	ToModel(d *device.Device) *models.DeviceModel

	// ToDomain converts a device persistence model to a domain entity.
	ToDomain(model *models.DeviceModel) (*device.Device, error)
}

// DeviceMapperImpl is the concrete implementation of DeviceMapper.
type DeviceMapperImpl struct{}

// NewDeviceMapper creates a new DeviceMapper.
func NewDeviceMapper() DeviceMapper {
	return &DeviceMapperImpl{}
}

func (m *DeviceMapperImpl) ToModel(d *device.Device) *models.DeviceModel {
	return &models.DeviceModel{
		ID:           d.InternalID(),
		SID:          d.SID(),
		Name:         d.Name(),
		Model:        d.Model(),
		Manufacturer: d.Manufacturer(),
		CreatedAt:    d.CreatedAt().UnixMilli(),
		UpdatedAt:    d.UpdatedAt().UnixMilli(),
	}
}

func (m *DeviceMapperImpl) ToDomain(model *models.DeviceModel) (*device.Device, error) {
	return device.ReconstructDevice(
		model.ID,
		model.SID,
		model.Name,
		model.Model,
		model.Manufacturer,
		biztime.FromMillisUTC(model.CreatedAt),
		biztime.FromMillisUTC(model.UpdatedAt),
	)
}
