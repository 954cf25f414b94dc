package mappers

import (
	"fixdesk/internal/domain/message"
	"fixdesk/internal/infrastructure/persistence/models"
	"fixdesk/internal/shared/biztime"
)

// MessageMapper handles the conversion between Message domain entities and persistence models.
type MessageMapper interface {
	ToModel(msg *message.Message) *models.MessageModel
	ToDomain(model *models.MessageModel) (*message.Message, error)
}

type MessageMapperImpl struct{}

func NewMessageMapper() MessageMapper {
	return &MessageMapperImpl{}
}

func (m *MessageMapperImpl) ToModel(msg *message.Message) *models.MessageModel {
	return &models.MessageModel{
		ID:            msg.InternalID(),
		SID:           msg.SID(),
		TicketSID:     msg.TicketSID(),
		Content:       msg.Content(),
		FileName:      msg.FileName(),
		AttachmentURL: msg.AttachmentURL(),
		SentBy:        msg.SentBy(),
		CreatedAt:     msg.CreatedAt().UnixMilli(),
	}
}

func (m *MessageMapperImpl) ToDomain(model *models.MessageModel) (*message.Message, error) {
	return message.ReconstructMessage(
		model.ID,
		model.SID,
		model.TicketSID,
		model.Content,
		model.FileName,
		model.AttachmentURL,
		model.SentBy,
		biztime.FromMillisUTC(model.CreatedAt),
	)
}
