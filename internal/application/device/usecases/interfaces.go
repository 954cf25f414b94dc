package usecases

import (
	"context"

	"fixdesk/internal/application/device/dto"
)

type CreateDeviceExecutor interface {
	Execute(ctx context.Context, cmd CreateDeviceCommand) (*CreateDeviceResult, error)
}

type GetDeviceExecutor interface {
	Execute(ctx context.Context, query GetDeviceQuery) (*dto.DeviceDTO, error)
}

type ListDevicesExecutor interface {
	Execute(ctx context.Context) ([]*dto.DeviceDTO, error)
}

type UpdateDeviceExecutor interface {
	Execute(ctx context.Context, cmd UpdateDeviceCommand) (*dto.DeviceDTO, error)
}

type DeleteDeviceExecutor interface {
	Execute(ctx context.Context, cmd DeleteDeviceCommand) error
}
