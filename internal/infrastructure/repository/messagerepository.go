package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"fixdesk/internal/domain/message"
	"fixdesk/internal/infrastructure/persistence/mappers"
	"fixdesk/internal/infrastructure/persistence/models"
	"fixdesk/internal/shared/db"
	apperrors "fixdesk/internal/shared/errors"
)

type MessageRepository struct {
	db     *gorm.DB
	mapper mappers.MessageMapper
}

func NewMessageRepository(gdb *gorm.DB) *MessageRepository {
	return &MessageRepository{
		db:     gdb,
		mapper: mappers.NewMessageMapper(),
	}
}

func (r *MessageRepository) Save(ctx context.Context, msg *message.Message) error {
	model := r.mapper.ToModel(msg)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save message: %w", err)
	}

	return msg.SetInternalID(model.ID)
}

func (r *MessageRepository) GetBySID(ctx context.Context, sid string) (*message.Message, error) {
	var model models.MessageModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("sid = ?", sid).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("message not found")
		}
		return nil, fmt.Errorf("failed to find message: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

// ListByTicket returns the messages of a ticket oldest first, preserving
// thread order.
func (r *MessageRepository) ListByTicket(ctx context.Context, ticketSID string) ([]*message.Message, error) {
	var modelList []models.MessageModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("ticket_sid = ?", ticketSID).
		Order("created_at ASC, id ASC").
		Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}

	messages := make([]*message.Message, 0, len(modelList))
	for i := range modelList {
		msg, err := r.mapper.ToDomain(&modelList[i])
		if err != nil {
			return nil, fmt.Errorf("failed to map message (id=%d): %w", modelList[i].ID, err)
		}
		messages = append(messages, msg)
	}
	return messages, nil
}

func (r *MessageRepository) Delete(ctx context.Context, sid string) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Where("sid = ?", sid).
		Delete(&models.MessageModel{})

	if result.Error != nil {
		return fmt.Errorf("failed to delete message: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("message not found")
	}

	return nil
}

// DeleteByTicket removes every message of a ticket. Used when the parent
// ticket is deleted so the thread does not orphan.
func (r *MessageRepository) DeleteByTicket(ctx context.Context, ticketSID string) error {
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("ticket_sid = ?", ticketSID).
		Delete(&models.MessageModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete ticket messages: %w", err)
	}

	return nil
}
