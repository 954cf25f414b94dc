package ticket

import (
	"fixdesk/internal/application/ticket/usecases"
	"fixdesk/internal/shared/authorization"
)

type CreateTicketRequest struct {
	Title              string  `json:"title" binding:"required,max=200"`
	Description        string  `json:"description" binding:"required,max=5000"`
	TicketOwner        *string `json:"ticketOwner,omitempty" binding:"omitempty,max=100"`
	Severity           int     `json:"severity" binding:"required,min=1,max=5"`
	DeviceID           *string `json:"deviceId,omitempty"`
	DeviceManufacturer *string `json:"deviceManufacturer,omitempty"`
	DeviceModel        *string `json:"deviceModel,omitempty"`
}

func (r *CreateTicketRequest) ToCommand(identity authorization.Identity) usecases.CreateTicketCommand {
	// An explicit owner is preserved; otherwise the caller owns the ticket.
	owner := identity.Username
	if r.TicketOwner != nil && *r.TicketOwner != "" {
		owner = *r.TicketOwner
	}

	return usecases.CreateTicketCommand{
		Title:              r.Title,
		Description:        r.Description,
		Owner:              owner,
		Severity:           r.Severity,
		DeviceSID:          r.DeviceID,
		DeviceManufacturer: r.DeviceManufacturer,
		DeviceModel:        r.DeviceModel,
	}
}

type UpdateTicketRequest struct {
	Title              *string `json:"title,omitempty" binding:"omitempty,max=200"`
	Description        *string `json:"description,omitempty" binding:"omitempty,max=5000"`
	Severity           *int    `json:"severity,omitempty" binding:"omitempty,min=1,max=5"`
	Resolved           *bool   `json:"resolved,omitempty"`
	DeviceID           *string `json:"deviceId,omitempty"`
	DeviceManufacturer *string `json:"deviceManufacturer,omitempty"`
	DeviceModel        *string `json:"deviceModel,omitempty"`
}

func (r *UpdateTicketRequest) ToCommand(ticketSID string, identity authorization.Identity) usecases.UpdateTicketCommand {
	return usecases.UpdateTicketCommand{
		TicketSID:          ticketSID,
		Title:              r.Title,
		Description:        r.Description,
		Severity:           r.Severity,
		Resolved:           r.Resolved,
		DeviceSID:          r.DeviceID,
		DeviceManufacturer: r.DeviceManufacturer,
		DeviceModel:        r.DeviceModel,
		Identity:           identity,
	}
}
