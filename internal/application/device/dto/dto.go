package dto

import (
	"time"

	"fixdesk/internal/domain/device"
	"fixdesk/internal/shared/mapper"
)

// DeviceDTO is the API projection of a supported device.
type DeviceDTO struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Model        string    `json:"model"`
	Manufacturer string    `json:"manufacturer"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func ToDeviceDTO(d *device.Device) *DeviceDTO {
	return &DeviceDTO{
		ID:           d.SID(),
		Name:         d.Name(),
		Model:        d.Model(),
		Manufacturer: d.Manufacturer(),
		CreatedAt:    d.CreatedAt(),
		UpdatedAt:    d.UpdatedAt(),
	}
}

func ToDeviceDTOList(devices []*device.Device) []*DeviceDTO {
	return mapper.MapSlice(devices, ToDeviceDTO)
}
