package message

import (
	"fixdesk/internal/application/message/usecases"
	"fixdesk/internal/shared/authorization"
)

type CreateMessageRequest struct {
	Content       string  `json:"content" binding:"required,max=5000"`
	FileName      *string `json:"fileName,omitempty" binding:"omitempty,max=255"`
	AttachmentURL *string `json:"attachmentUrl,omitempty" binding:"omitempty,url,max=2048"`
}

func (r *CreateMessageRequest) ToCommand(ticketSID string, identity authorization.Identity) usecases.CreateMessageCommand {
	return usecases.CreateMessageCommand{
		TicketSID:     ticketSID,
		Content:       r.Content,
		FileName:      r.FileName,
		AttachmentURL: r.AttachmentURL,
		Identity:      identity,
	}
}
