package usecases

import (
	"context"

	"fixdesk/internal/domain/ticket"
	"fixdesk/internal/shared/authorization"
	"fixdesk/internal/shared/errors"
)

// authorizeTicketAccess is the gate every message operation passes through:
// messages have no ownership of their own until deletion, so creating or
// listing them is governed entirely by the parent ticket's read rule. The
// ticket-side error is returned untouched so callers see the exact same
// envelope the ticket operations would produce.
func authorizeTicketAccess(
	ctx context.Context,
	ticketRepo ticket.Repository,
	ticketSID string,
	identity authorization.Identity,
) (*ticket.Ticket, error) {
	t, err := ticketRepo.GetBySID(ctx, ticketSID)
	if err != nil {
		if errors.IsAppError(err) {
			return nil, err
		}
		return nil, errors.NewDatabaseError("failed to load ticket")
	}

	if !t.CanBeAccessedBy(identity) {
		return nil, errors.NewForbiddenError("you do not have access to this ticket")
	}

	return t, nil
}

// requireTicketExists confirms the path ticket exists without applying the
// ticket access rule. Message deletion is gated on the sender/admin rule
// alone, so a sender who lost ticket access can still withdraw their own
// message, and an absent message id reads as NOT_FOUND rather than FORBIDDEN.
func requireTicketExists(ctx context.Context, ticketRepo ticket.Repository, ticketSID string) error {
	if _, err := ticketRepo.GetBySID(ctx, ticketSID); err != nil {
		if errors.IsAppError(err) {
			return err
		}
		return errors.NewDatabaseError("failed to load ticket")
	}
	return nil
}
