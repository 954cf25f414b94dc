package usecases

import (
	"context"

	"fixdesk/internal/application/device/dto"
	"fixdesk/internal/domain/device"
	"fixdesk/internal/shared/errors"
	"fixdesk/internal/shared/logger"
)

type ListDevicesUseCase struct {
	deviceRepo device.Repository
	logger     logger.Interface
}

func NewListDevicesUseCase(deviceRepo device.Repository, logger logger.Interface) *ListDevicesUseCase {
	return &ListDevicesUseCase{
		deviceRepo: deviceRepo,
		logger:     logger,
	}
}

func (uc *ListDevicesUseCase) Execute(ctx context.Context) ([]*dto.DeviceDTO, error) {
	uc.logger.Debugw("executing list devices use case")

	devices, err := uc.deviceRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list devices", "error", err)
		return nil, errors.NewDatabaseError("failed to list devices")
	}

	return dto.ToDeviceDTOList(devices), nil
}
