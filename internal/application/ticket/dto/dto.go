package dto

import (
	"time"

	"fixdesk/internal/domain/ticket"
	"fixdesk/internal/shared/mapper"
)

// TicketDTO is the API projection of a ticket.
type TicketDTO struct {
	ID                 string    `json:"id"`
	DeviceID           *string   `json:"deviceId,omitempty"`
	DeviceManufacturer *string   `json:"deviceManufacturer,omitempty"`
	DeviceModel        *string   `json:"deviceModel,omitempty"`
	Title              string    `json:"title"`
	Description        string    `json:"description"`
	TicketOwner        string    `json:"ticketOwner"`
	Severity           int       `json:"severity"`
	Resolved           bool      `json:"resolved"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

func ToTicketDTO(t *ticket.Ticket) *TicketDTO {
	return &TicketDTO{
		ID:                 t.SID(),
		DeviceID:           t.DeviceSID(),
		DeviceManufacturer: t.DeviceManufacturer(),
		DeviceModel:        t.DeviceModel(),
		Title:              t.Title(),
		Description:        t.Description(),
		TicketOwner:        t.Owner(),
		Severity:           t.Severity().Int(),
		Resolved:           t.Resolved(),
		CreatedAt:          t.CreatedAt(),
		UpdatedAt:          t.UpdatedAt(),
	}
}

func ToTicketDTOList(tickets []*ticket.Ticket) []*TicketDTO {
	return mapper.MapSlice(tickets, ToTicketDTO)
}
