package dto

import (
	"time"

	"fixdesk/internal/domain/message"
	"fixdesk/internal/shared/mapper"
)

// MessageDTO is the API projection of a ticket thread message.
type MessageDTO struct {
	ID            string    `json:"id"`
	TicketID      string    `json:"ticketId"`
	Content       string    `json:"content"`
	ContentHTML   string    `json:"contentHtml,omitempty"`
	FileName      *string   `json:"fileName,omitempty"`
	AttachmentURL *string   `json:"attachmentUrl,omitempty"`
	SentBy        string    `json:"sentBy"`
	CreatedAt     time.Time `json:"createdAt"`
}

func ToMessageDTO(m *message.Message) *MessageDTO {
	return &MessageDTO{
		ID:            m.SID(),
		TicketID:      m.TicketSID(),
		Content:       m.Content(),
		FileName:      m.FileName(),
		AttachmentURL: m.AttachmentURL(),
		SentBy:        m.SentBy(),
		CreatedAt:     m.CreatedAt(),
	}
}

func ToMessageDTOList(messages []*message.Message) []*MessageDTO {
	return mapper.MapSlice(messages, ToMessageDTO)
}
