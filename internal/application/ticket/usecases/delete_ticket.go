package usecases

import (
	"context"

	"fixdesk/internal/domain/message"
	"fixdesk/internal/domain/ticket"
	"fixdesk/internal/shared/authorization"
	"fixdesk/internal/shared/db"
	"fixdesk/internal/shared/errors"
	"fixdesk/internal/shared/logger"
)

type DeleteTicketCommand struct {
	TicketSID string
	Identity  authorization.Identity
}

type DeleteTicketUseCase struct {
	ticketRepo  ticket.Repository
	messageRepo message.Repository
	txManager   db.TransactionRunner
	logger      logger.Interface
}

func NewDeleteTicketUseCase(
	ticketRepo ticket.Repository,
	messageRepo message.Repository,
	txManager db.TransactionRunner,
	logger logger.Interface,
) *DeleteTicketUseCase {
	return &DeleteTicketUseCase{
		ticketRepo:  ticketRepo,
		messageRepo: messageRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute deletes a ticket together with its message thread. Both deletes
// run in one transaction so a failure cannot orphan messages.
func (uc *DeleteTicketUseCase) Execute(ctx context.Context, cmd DeleteTicketCommand) error {
	uc.logger.Infow("executing delete ticket use case", "ticket_id", cmd.TicketSID, "caller", cmd.Identity.Username)

	existing, err := uc.ticketRepo.GetBySID(ctx, cmd.TicketSID)
	if err != nil {
		if errors.IsAppError(err) {
			return err
		}
		uc.logger.Errorw("failed to load ticket", "ticket_id", cmd.TicketSID, "error", err)
		return errors.NewDatabaseError("failed to load ticket")
	}

	if !existing.CanBeAccessedBy(cmd.Identity) {
		uc.logger.Warnw("caller cannot delete ticket", "ticket_id", cmd.TicketSID, "caller", cmd.Identity.Username)
		return errors.NewForbiddenError("you do not have access to this ticket")
	}

	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.messageRepo.DeleteByTicket(txCtx, cmd.TicketSID); err != nil {
			return err
		}
		return uc.ticketRepo.Delete(txCtx, cmd.TicketSID)
	})
	if err != nil {
		if errors.IsAppError(err) {
			return err
		}
		uc.logger.Errorw("failed to delete ticket", "ticket_id", cmd.TicketSID, "error", err)
		return errors.NewDatabaseError("failed to delete ticket")
	}

	uc.logger.Infow("ticket deleted successfully", "ticket_id", cmd.TicketSID)
	return nil
}
