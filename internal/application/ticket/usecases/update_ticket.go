package usecases

import (
	"context"

	"fixdesk/internal/application/ticket/dto"
	"fixdesk/internal/domain/ticket"
	vo "fixdesk/internal/domain/ticket/valueobjects"
	"fixdesk/internal/shared/authorization"
	"fixdesk/internal/shared/errors"
	"fixdesk/internal/shared/logger"
	"fixdesk/internal/shared/services/content"
)

type UpdateTicketCommand struct {
	TicketSID          string
	Title              *string
	Description        *string
	Severity           *int
	Resolved           *bool
	DeviceSID          *string
	DeviceManufacturer *string
	DeviceModel        *string
	Identity           authorization.Identity
}

type UpdateTicketUseCase struct {
	ticketRepo ticket.Repository
	content    content.Service
	logger     logger.Interface
}

func NewUpdateTicketUseCase(
	ticketRepo ticket.Repository,
	contentSvc content.Service,
	logger logger.Interface,
) *UpdateTicketUseCase {
	return &UpdateTicketUseCase{
		ticketRepo: ticketRepo,
		content:    contentSvc,
		logger:     logger,
	}
}

// Execute applies a partial update: only the fields present on the command
// are written, and updatedAt always advances. Concurrent updates are
// last-write-wins per field; there is no version check.
func (uc *UpdateTicketUseCase) Execute(ctx context.Context, cmd UpdateTicketCommand) (*dto.TicketDTO, error) {
	uc.logger.Infow("executing update ticket use case", "ticket_id", cmd.TicketSID, "caller", cmd.Identity.Username)

	update, err := uc.buildUpdate(cmd)
	if err != nil {
		uc.logger.Warnw("invalid update ticket command", "error", err)
		return nil, err
	}

	existing, err := uc.ticketRepo.GetBySID(ctx, cmd.TicketSID)
	if err != nil {
		if errors.IsAppError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to load ticket", "ticket_id", cmd.TicketSID, "error", err)
		return nil, errors.NewDatabaseError("failed to load ticket")
	}

	if !existing.CanBeAccessedBy(cmd.Identity) {
		uc.logger.Warnw("caller cannot update ticket", "ticket_id", cmd.TicketSID, "caller", cmd.Identity.Username)
		return nil, errors.NewForbiddenError("you do not have access to this ticket")
	}

	// The in-memory merge validates field constraints and produces the
	// response projection; the repository writes the same sparse set.
	if err := existing.ApplyUpdate(update); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.ApplyUpdate(ctx, cmd.TicketSID, update); err != nil {
		if errors.IsAppError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to update ticket", "ticket_id", cmd.TicketSID, "error", err)
		return nil, errors.NewDatabaseError("failed to update ticket")
	}

	uc.logger.Infow("ticket updated successfully", "ticket_id", cmd.TicketSID)

	return dto.ToTicketDTO(existing), nil
}

func (uc *UpdateTicketUseCase) buildUpdate(cmd UpdateTicketCommand) (ticket.Update, error) {
	update := ticket.Update{
		Title:              cmd.Title,
		Resolved:           cmd.Resolved,
		DeviceSID:          cmd.DeviceSID,
		DeviceManufacturer: cmd.DeviceManufacturer,
		DeviceModel:        cmd.DeviceModel,
	}

	if cmd.Description != nil {
		sanitized := uc.content.Sanitize(*cmd.Description)
		update.Description = &sanitized
	}

	if cmd.Severity != nil {
		severity, err := vo.NewSeverity(*cmd.Severity)
		if err != nil {
			return ticket.Update{}, errors.NewValidationError(err.Error())
		}
		update.Severity = &severity
	}

	if update.IsEmpty() {
		return ticket.Update{}, errors.NewValidationError("no fields to update")
	}

	return update, nil
}
