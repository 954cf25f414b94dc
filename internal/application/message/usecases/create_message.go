package usecases

import (
	"context"
	"time"

	"fixdesk/internal/domain/message"
	"fixdesk/internal/domain/ticket"
	"fixdesk/internal/shared/authorization"
	"fixdesk/internal/shared/errors"
	"fixdesk/internal/shared/logger"
	"fixdesk/internal/shared/services/content"
)

type CreateMessageCommand struct {
	TicketSID     string
	Content       string
	FileName      *string
	AttachmentURL *string
	Identity      authorization.Identity
}

type CreateMessageResult struct {
	MessageID string
	CreatedAt time.Time
}

type CreateMessageUseCase struct {
	messageRepo message.Repository
	ticketRepo  ticket.Repository
	content     content.Service
	logger      logger.Interface
}

func NewCreateMessageUseCase(
	messageRepo message.Repository,
	ticketRepo ticket.Repository,
	contentSvc content.Service,
	logger logger.Interface,
) *CreateMessageUseCase {
	return &CreateMessageUseCase{
		messageRepo: messageRepo,
		ticketRepo:  ticketRepo,
		content:     contentSvc,
		logger:      logger,
	}
}

func (uc *CreateMessageUseCase) Execute(ctx context.Context, cmd CreateMessageCommand) (*CreateMessageResult, error) {
	uc.logger.Infow("executing create message use case", "ticket_id", cmd.TicketSID, "caller", cmd.Identity.Username)

	if _, err := authorizeTicketAccess(ctx, uc.ticketRepo, cmd.TicketSID, cmd.Identity); err != nil {
		uc.logger.Warnw("ticket access denied for message creation", "ticket_id", cmd.TicketSID, "caller", cmd.Identity.Username, "error", err)
		return nil, err
	}

	newMessage, err := message.NewMessage(
		cmd.TicketSID,
		uc.content.Sanitize(cmd.Content),
		cmd.Identity.Username,
		cmd.FileName,
		cmd.AttachmentURL,
	)
	if err != nil {
		uc.logger.Warnw("failed to create message entity", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.messageRepo.Save(ctx, newMessage); err != nil {
		uc.logger.Errorw("failed to save message", "error", err)
		return nil, errors.NewDatabaseError("failed to save message")
	}

	uc.logger.Infow("message created successfully", "message_id", newMessage.SID(), "ticket_id", cmd.TicketSID)

	return &CreateMessageResult{
		MessageID: newMessage.SID(),
		CreatedAt: newMessage.CreatedAt(),
	}, nil
}
