package usecases

import (
	"context"

	"fixdesk/internal/domain/device"
	"fixdesk/internal/shared/errors"
	"fixdesk/internal/shared/logger"
)

type DeleteDeviceCommand struct {
	DeviceSID string
}

type DeleteDeviceUseCase struct {
	deviceRepo device.Repository
	logger     logger.Interface
}

func NewDeleteDeviceUseCase(deviceRepo device.Repository, logger logger.Interface) *DeleteDeviceUseCase {
	return &DeleteDeviceUseCase{
		deviceRepo: deviceRepo,
		logger:     logger,
	}
}

func (uc *DeleteDeviceUseCase) Execute(ctx context.Context, cmd DeleteDeviceCommand) error {
	uc.logger.Infow("executing delete device use case", "device_id", cmd.DeviceSID)

	if err := uc.deviceRepo.Delete(ctx, cmd.DeviceSID); err != nil {
		if errors.IsAppError(err) {
			return err
		}
		uc.logger.Errorw("failed to delete device", "device_id", cmd.DeviceSID, "error", err)
		return errors.NewDatabaseError("failed to delete device")
	}

	uc.logger.Infow("device deleted successfully", "device_id", cmd.DeviceSID)
	return nil
}
