package usecases

import (
	"context"
	"time"

	"fixdesk/internal/domain/device"
	"fixdesk/internal/shared/errors"
	"fixdesk/internal/shared/logger"
)

type CreateDeviceCommand struct {
	Name         string
	Model        string
	Manufacturer string
}

type CreateDeviceResult struct {
	DeviceID  string
	CreatedAt time.Time
}

type CreateDeviceUseCase struct {
	deviceRepo device.Repository
	logger     logger.Interface
}

func NewCreateDeviceUseCase(deviceRepo device.Repository, logger logger.Interface) *CreateDeviceUseCase {
	return &CreateDeviceUseCase{
		deviceRepo: deviceRepo,
		logger:     logger,
	}
}

func (uc *CreateDeviceUseCase) Execute(ctx context.Context, cmd CreateDeviceCommand) (*CreateDeviceResult, error) {
	uc.logger.Infow("executing create device use case", "name", cmd.Name, "manufacturer", cmd.Manufacturer)

	newDevice, err := device.NewDevice(cmd.Name, cmd.Model, cmd.Manufacturer)
	if err != nil {
		uc.logger.Warnw("failed to create device entity", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.deviceRepo.Save(ctx, newDevice); err != nil {
		uc.logger.Errorw("failed to save device", "error", err)
		return nil, errors.NewDatabaseError("failed to save device")
	}

	uc.logger.Infow("device created successfully", "device_id", newDevice.SID())

	return &CreateDeviceResult{
		DeviceID:  newDevice.SID(),
		CreatedAt: newDevice.CreatedAt(),
	}, nil
}
