package usecases

import (
	"context"

	"fixdesk/internal/application/device/dto"
	"fixdesk/internal/domain/device"
	"fixdesk/internal/shared/errors"
	"fixdesk/internal/shared/logger"
)

type GetDeviceQuery struct {
	DeviceSID string
}

type GetDeviceUseCase struct {
	deviceRepo device.Repository
	logger     logger.Interface
}

func NewGetDeviceUseCase(deviceRepo device.Repository, logger logger.Interface) *GetDeviceUseCase {
	return &GetDeviceUseCase{
		deviceRepo: deviceRepo,
		logger:     logger,
	}
}

func (uc *GetDeviceUseCase) Execute(ctx context.Context, query GetDeviceQuery) (*dto.DeviceDTO, error) {
	uc.logger.Debugw("executing get device use case", "device_id", query.DeviceSID)

	d, err := uc.deviceRepo.GetBySID(ctx, query.DeviceSID)
	if err != nil {
		if errors.IsAppError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to get device", "device_id", query.DeviceSID, "error", err)
		return nil, errors.NewDatabaseError("failed to get device")
	}

	return dto.ToDeviceDTO(d), nil
}
