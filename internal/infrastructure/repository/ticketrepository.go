package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"fixdesk/internal/domain/ticket"
	"fixdesk/internal/infrastructure/persistence/mappers"
	"fixdesk/internal/infrastructure/persistence/models"
	"fixdesk/internal/shared/biztime"
	"fixdesk/internal/shared/db"
	apperrors "fixdesk/internal/shared/errors"
)

type TicketRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketRepository(gdb *gorm.DB) *TicketRepository {
	return &TicketRepository{
		db:     gdb,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *TicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save ticket: %w", err)
	}

	return t.SetInternalID(model.ID)
}

// ApplyUpdate writes only the fields present on the update. Column maps are
// built by hand because gorm's struct-based Updates skips zero values, which
// would make resolved=false impossible to persist.
func (r *TicketRepository) ApplyUpdate(ctx context.Context, sid string, u ticket.Update) error {
	columns := map[string]interface{}{
		"updated_at": biztime.NowUTC().UnixMilli(),
	}
	if u.Title != nil {
		columns["title"] = *u.Title
	}
	if u.Description != nil {
		columns["description"] = *u.Description
	}
	if u.Severity != nil {
		columns["severity"] = u.Severity.Int()
	}
	if u.Resolved != nil {
		columns["resolved"] = *u.Resolved
	}
	if u.DeviceSID != nil {
		columns["device_sid"] = *u.DeviceSID
	}
	if u.DeviceManufacturer != nil {
		columns["device_manufacturer"] = *u.DeviceManufacturer
	}
	if u.DeviceModel != nil {
		columns["device_model"] = *u.DeviceModel
	}

	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.
		Model(&models.TicketModel{}).
		Where("sid = ?", sid).
		Updates(columns)

	if result.Error != nil {
		return fmt.Errorf("failed to update ticket: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("ticket not found")
	}

	return nil
}

func (r *TicketRepository) GetBySID(ctx context.Context, sid string) (*ticket.Ticket, error) {
	var model models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("sid = ?", sid).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("ticket not found")
		}
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *TicketRepository) List(ctx context.Context) ([]*ticket.Ticket, error) {
	var modelList []models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Order("created_at DESC").
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}

	return r.toDomainList(modelList)
}

func (r *TicketRepository) ListByOwner(ctx context.Context, owner string) ([]*ticket.Ticket, error) {
	var modelList []models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("ticket_owner = ?", owner).
		Order("created_at DESC").
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list tickets by owner: %w", err)
	}

	return r.toDomainList(modelList)
}

func (r *TicketRepository) Delete(ctx context.Context, sid string) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Where("sid = ?", sid).
		Delete(&models.TicketModel{})

	if result.Error != nil {
		return fmt.Errorf("failed to delete ticket: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("ticket not found")
	}

	return nil
}

func (r *TicketRepository) toDomainList(modelList []models.TicketModel) ([]*ticket.Ticket, error) {
	tickets := make([]*ticket.Ticket, 0, len(modelList))
	for i := range modelList {
		t, err := r.mapper.ToDomain(&modelList[i])
		if err != nil {
			return nil, fmt.Errorf("failed to map ticket (id=%d): %w", modelList[i].ID, err)
		}
		tickets = append(tickets, t)
	}
	return tickets, nil
}
