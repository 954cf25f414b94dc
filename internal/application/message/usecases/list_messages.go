package usecases

import (
	"context"

	"fixdesk/internal/application/message/dto"
	"fixdesk/internal/domain/message"
	"fixdesk/internal/domain/ticket"
	"fixdesk/internal/shared/authorization"
	"fixdesk/internal/shared/errors"
	"fixdesk/internal/shared/logger"
	"fixdesk/internal/shared/services/content"
)

type ListMessagesQuery struct {
	TicketSID string
	Identity  authorization.Identity
}

type ListMessagesUseCase struct {
	messageRepo message.Repository
	ticketRepo  ticket.Repository
	content     content.Service
	logger      logger.Interface
}

func NewListMessagesUseCase(
	messageRepo message.Repository,
	ticketRepo ticket.Repository,
	content content.Service,
	logger logger.Interface,
) *ListMessagesUseCase {
	return &ListMessagesUseCase{
		messageRepo: messageRepo,
		ticketRepo:  ticketRepo,
		content:     content,
		logger:      logger,
	}
}

func (uc *ListMessagesUseCase) Execute(ctx context.Context, query ListMessagesQuery) ([]*dto.MessageDTO, error) {
	uc.logger.Debugw("executing list messages use case", "ticket_id", query.TicketSID, "caller", query.Identity.Username)

	if _, err := authorizeTicketAccess(ctx, uc.ticketRepo, query.TicketSID, query.Identity); err != nil {
		return nil, err
	}

	messages, err := uc.messageRepo.ListByTicket(ctx, query.TicketSID)
	if err != nil {
		uc.logger.Errorw("failed to list messages", "ticket_id", query.TicketSID, "error", err)
		return nil, errors.NewDatabaseError("failed to list messages")
	}

	result := dto.ToMessageDTOList(messages)

	// Message content is stored as markdown; clients also get a sanitized
	// HTML rendering so threads display without client-side markdown support.
	for _, d := range result {
		rendered, err := uc.content.RenderSanitized(d.Content)
		if err != nil {
			uc.logger.Warnw("failed to render message content", "message_id", d.ID, "error", err)
			continue
		}
		d.ContentHTML = rendered
	}

	return result, nil
}
