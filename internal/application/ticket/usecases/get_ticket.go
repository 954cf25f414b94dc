package usecases

import (
	"context"

	"fixdesk/internal/application/ticket/dto"
	"fixdesk/internal/domain/ticket"
	"fixdesk/internal/shared/authorization"
	"fixdesk/internal/shared/errors"
	"fixdesk/internal/shared/logger"
)

type GetTicketQuery struct {
	TicketSID string
	Identity  authorization.Identity
}

type GetTicketUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewGetTicketUseCase(ticketRepo ticket.Repository, logger logger.Interface) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error) {
	uc.logger.Debugw("executing get ticket use case", "ticket_id", query.TicketSID, "caller", query.Identity.Username)

	// Existence is confirmed before authorization, so an absent ticket is
	// NOT_FOUND rather than FORBIDDEN.
	t, err := uc.ticketRepo.GetBySID(ctx, query.TicketSID)
	if err != nil {
		if errors.IsAppError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to load ticket", "ticket_id", query.TicketSID, "error", err)
		return nil, errors.NewDatabaseError("failed to load ticket")
	}

	if !t.CanBeAccessedBy(query.Identity) {
		uc.logger.Warnw("caller cannot access ticket", "ticket_id", query.TicketSID, "caller", query.Identity.Username)
		return nil, errors.NewForbiddenError("you do not have access to this ticket")
	}

	return dto.ToTicketDTO(t), nil
}
