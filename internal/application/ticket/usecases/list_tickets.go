package usecases

import (
	"context"

	"fixdesk/internal/application/ticket/dto"
	"fixdesk/internal/domain/ticket"
	"fixdesk/internal/shared/authorization"
	"fixdesk/internal/shared/errors"
	"fixdesk/internal/shared/logger"
)

type ListTicketsQuery struct {
	Identity authorization.Identity
}

type ListTicketsUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewListTicketsUseCase(ticketRepo ticket.Repository, logger logger.Interface) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

// Execute scopes the listing by role: administrators see every ticket,
// everyone else gets an owner-indexed query for their own tickets only.
func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) ([]*dto.TicketDTO, error) {
	var (
		tickets []*ticket.Ticket
		err     error
	)

	if query.Identity.IsAdmin() {
		tickets, err = uc.ticketRepo.List(ctx)
	} else {
		tickets, err = uc.ticketRepo.ListByOwner(ctx, query.Identity.Username)
	}

	if err != nil {
		uc.logger.Errorw("failed to list tickets", "caller", query.Identity.Username, "error", err)
		return nil, errors.NewDatabaseError("failed to list tickets")
	}

	return dto.ToTicketDTOList(tickets), nil
}
