package device

import (
	"fixdesk/internal/application/device/usecases"
)

type CreateDeviceRequest struct {
	Name         string `json:"name" binding:"required,max=100"`
	Model        string `json:"model" binding:"required,max=100"`
	Manufacturer string `json:"manufacturer" binding:"required,max=100"`
}

func (r *CreateDeviceRequest) ToCommand() usecases.CreateDeviceCommand {
	return usecases.CreateDeviceCommand{
		Name:         r.Name,
		Model:        r.Model,
		Manufacturer: r.Manufacturer,
	}
}

type UpdateDeviceRequest struct {
	Name         *string `json:"name,omitempty" binding:"omitempty,max=100"`
	Model        *string `json:"model,omitempty" binding:"omitempty,max=100"`
	Manufacturer *string `json:"manufacturer,omitempty" binding:"omitempty,max=100"`
}

func (r *UpdateDeviceRequest) ToCommand(deviceSID string) usecases.UpdateDeviceCommand {
	return usecases.UpdateDeviceCommand{
		DeviceSID:    deviceSID,
		Name:         r.Name,
		Model:        r.Model,
		Manufacturer: r.Manufacturer,
	}
}
