package usecases

import (
	"context"

	"fixdesk/internal/domain/message"
	"fixdesk/internal/domain/ticket"
	"fixdesk/internal/shared/authorization"
	"fixdesk/internal/shared/errors"
	"fixdesk/internal/shared/logger"
)

type DeleteMessageCommand struct {
	TicketSID  string
	MessageSID string
	Identity   authorization.Identity
}

type DeleteMessageUseCase struct {
	messageRepo message.Repository
	ticketRepo  ticket.Repository
	logger      logger.Interface
}

func NewDeleteMessageUseCase(
	messageRepo message.Repository,
	ticketRepo ticket.Repository,
	logger logger.Interface,
) *DeleteMessageUseCase {
	return &DeleteMessageUseCase{
		messageRepo: messageRepo,
		ticketRepo:  ticketRepo,
		logger:      logger,
	}
}

func (uc *DeleteMessageUseCase) Execute(ctx context.Context, cmd DeleteMessageCommand) error {
	uc.logger.Infow("executing delete message use case", "message_id", cmd.MessageSID, "caller", cmd.Identity.Username)

	if err := requireTicketExists(ctx, uc.ticketRepo, cmd.TicketSID); err != nil {
		return err
	}

	msg, err := uc.messageRepo.GetBySID(ctx, cmd.MessageSID)
	if err != nil {
		if errors.IsAppError(err) {
			return err
		}
		uc.logger.Errorw("failed to get message", "message_id", cmd.MessageSID, "error", err)
		return errors.NewDatabaseError("failed to get message")
	}

	// Messages fetched by id must still belong to the ticket in the path.
	if msg.TicketSID() != cmd.TicketSID {
		return errors.NewNotFoundError("message not found")
	}

	if !msg.CanBeDeletedBy(cmd.Identity) {
		return errors.NewForbiddenError("you can only delete your own messages")
	}

	if err := uc.messageRepo.Delete(ctx, cmd.MessageSID); err != nil {
		if errors.IsAppError(err) {
			return err
		}
		uc.logger.Errorw("failed to delete message", "message_id", cmd.MessageSID, "error", err)
		return errors.NewDatabaseError("failed to delete message")
	}

	uc.logger.Infow("message deleted successfully", "message_id", cmd.MessageSID)
	return nil
}
