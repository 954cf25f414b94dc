package usecases

import (
	"context"
	"time"

	"fixdesk/internal/domain/ticket"
	vo "fixdesk/internal/domain/ticket/valueobjects"
	"fixdesk/internal/shared/errors"
	"fixdesk/internal/shared/logger"
	"fixdesk/internal/shared/services/content"
)

type CreateTicketCommand struct {
	Title              string
	Description        string
	Owner              string
	Severity           int
	DeviceSID          *string
	DeviceManufacturer *string
	DeviceModel        *string
}

type CreateTicketResult struct {
	TicketID  string
	CreatedAt time.Time
}

type CreateTicketUseCase struct {
	ticketRepo ticket.Repository
	content    content.Service
	logger     logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.Repository,
	contentSvc content.Service,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo: ticketRepo,
		content:    contentSvc,
		logger:     logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error) {
	uc.logger.Infow("executing create ticket use case", "title", cmd.Title, "owner", cmd.Owner)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Warnw("invalid create ticket command", "error", err)
		return nil, err
	}

	severity, err := vo.NewSeverity(cmd.Severity)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	newTicket, err := ticket.NewTicket(
		cmd.Title,
		uc.content.Sanitize(cmd.Description),
		cmd.Owner,
		severity,
		cmd.DeviceSID,
		cmd.DeviceManufacturer,
		cmd.DeviceModel,
	)
	if err != nil {
		uc.logger.Warnw("failed to create ticket entity", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Save(ctx, newTicket); err != nil {
		uc.logger.Errorw("failed to save ticket", "error", err)
		return nil, errors.NewDatabaseError("failed to save ticket")
	}

	uc.logger.Infow("ticket created successfully", "ticket_id", newTicket.SID())

	return &CreateTicketResult{
		TicketID:  newTicket.SID(),
		CreatedAt: newTicket.CreatedAt(),
	}, nil
}

func (uc *CreateTicketUseCase) validateCommand(cmd CreateTicketCommand) error {
	if len(cmd.Title) == 0 {
		return errors.NewValidationError("title is required")
	}
	if len(cmd.Title) > 200 {
		return errors.NewValidationError("title exceeds maximum length of 200 characters")
	}
	if len(cmd.Description) == 0 {
		return errors.NewValidationError("description is required")
	}
	if len(cmd.Description) > 5000 {
		return errors.NewValidationError("description exceeds maximum length of 5000 characters")
	}
	if len(cmd.Owner) == 0 {
		return errors.NewValidationError("ticket owner is required")
	}
	if cmd.DeviceSID == nil && (cmd.DeviceManufacturer == nil || cmd.DeviceModel == nil) {
		return errors.NewValidationError("either deviceId or both deviceManufacturer and deviceModel are required")
	}
	return nil
}
