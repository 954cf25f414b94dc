package usecases

import (
	"context"

	"fixdesk/internal/application/device/dto"
	"fixdesk/internal/domain/device"
	"fixdesk/internal/shared/errors"
	"fixdesk/internal/shared/logger"
)

type UpdateDeviceCommand struct {
	DeviceSID    string
	Name         *string
	Model        *string
	Manufacturer *string
}

type UpdateDeviceUseCase struct {
	deviceRepo device.Repository
	logger     logger.Interface
}

func NewUpdateDeviceUseCase(deviceRepo device.Repository, logger logger.Interface) *UpdateDeviceUseCase {
	return &UpdateDeviceUseCase{
		deviceRepo: deviceRepo,
		logger:     logger,
	}
}

// Execute applies a partial update: only the fields present on the command
// are written. Route-level authorization already restricted the caller to
// administrators.
func (uc *UpdateDeviceUseCase) Execute(ctx context.Context, cmd UpdateDeviceCommand) (*dto.DeviceDTO, error) {
	uc.logger.Infow("executing update device use case", "device_id", cmd.DeviceSID)

	update := device.Update{
		Name:         cmd.Name,
		Model:        cmd.Model,
		Manufacturer: cmd.Manufacturer,
	}
	if update.IsEmpty() {
		return nil, errors.NewValidationError("no fields to update")
	}

	existing, err := uc.deviceRepo.GetBySID(ctx, cmd.DeviceSID)
	if err != nil {
		if errors.IsAppError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to load device", "device_id", cmd.DeviceSID, "error", err)
		return nil, errors.NewDatabaseError("failed to load device")
	}

	if err := existing.ApplyUpdate(update); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.deviceRepo.ApplyUpdate(ctx, cmd.DeviceSID, update); err != nil {
		if errors.IsAppError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to update device", "device_id", cmd.DeviceSID, "error", err)
		return nil, errors.NewDatabaseError("failed to update device")
	}

	uc.logger.Infow("device updated successfully", "device_id", cmd.DeviceSID)

	return dto.ToDeviceDTO(existing), nil
}
