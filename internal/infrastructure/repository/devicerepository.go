package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"fixdesk/internal/domain/device"
	"fixdesk/internal/infrastructure/persistence/mappers"
	"fixdesk/internal/infrastructure/persistence/models"
	"fixdesk/internal/shared/biztime"
	"fixdesk/internal/shared/db"
	apperrors "fixdesk/internal/shared/errors"
)

type DeviceRepository struct {
	db     *gorm.DB
	mapper mappers.DeviceMapper
}

func NewDeviceRepository(gdb *gorm.DB) *DeviceRepository {
	return &DeviceRepository{
		db:     gdb,
		mapper: mappers.NewDeviceMapper(),
	}
}

func (r *DeviceRepository) Save(ctx context.Context, d *device.Device) error {
	model := r.mapper.ToModel(d)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save device: %w", err)
	}

	return d.SetInternalID(model.ID)
}

// ApplyUpdate writes only the fields present on the update as an explicit
// column map, so empty strings and other zero values persist correctly.
func (r *DeviceRepository) ApplyUpdate(ctx context.Context, sid string, u device.Update) error {
	columns := map[string]interface{}{
		"updated_at": biztime.NowUTC().UnixMilli(),
	}
	if u.Name != nil {
		columns["name"] = *u.Name
	}
	if u.Model != nil {
		columns["model"] = *u.Model
	}
	if u.Manufacturer != nil {
		columns["manufacturer"] = *u.Manufacturer
	}

	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.
		Model(&models.DeviceModel{}).
		Where("sid = ?", sid).
		Updates(columns)

	if result.Error != nil {
		return fmt.Errorf("failed to update device: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("device not found")
	}

	return nil
}

func (r *DeviceRepository) GetBySID(ctx context.Context, sid string) (*device.Device, error) {
	var model models.DeviceModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("sid = ?", sid).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("device not found")
		}
		return nil, fmt.Errorf("failed to find device: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *DeviceRepository) List(ctx context.Context) ([]*device.Device, error) {
	var modelList []models.DeviceModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Order("created_at DESC").
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list devices: %w", err)
	}

	devices := make([]*device.Device, 0, len(modelList))
	for i := range modelList {
		d, err := r.mapper.ToDomain(&modelList[i])
		if err != nil {
			return nil, fmt.Errorf("failed to map device (id=%d): %w", modelList[i].ID, err)
		}
		devices = append(devices, d)
	}
	return devices, nil
}

func (r *DeviceRepository) Delete(ctx context.Context, sid string) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Where("sid = ?", sid).
		Delete(&models.DeviceModel{})

	if result.Error != nil {
		return fmt.Errorf("failed to delete device: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("device not found")
	}

	return nil
}
