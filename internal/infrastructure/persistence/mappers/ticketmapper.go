package mappers

import (
	"fixdesk/internal/domain/ticket"
	vo "fixdesk/internal/domain/ticket/valueobjects"
	"fixdesk/internal/infrastructure/persistence/models"
	"fixdesk/internal/shared/biztime"
)

// TicketMapper handles the conversion between Ticket domain entities and persistence models.
type TicketMapper interface {
	// ToModel converts a ticket domain entity to a persistence model.
	ToModel(t *ticket.Ticket) *models.TicketModel

	// ToDomain converts a ticket persistence model to a domain entity.
	ToDomain(model *models.TicketModel) (*ticket.Ticket, error)
}

// TicketMapperImpl is the concrete implementation of TicketMapper.
type TicketMapperImpl struct{}

// NewTicketMapper creates a new TicketMapper.
func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

func (m *TicketMapperImpl) ToModel(t *ticket.Ticket) *models.TicketModel {
	return &models.TicketModel{
		ID:                 t.InternalID(),
		SID:                t.SID(),
		DeviceSID:          t.DeviceSID(),
		DeviceManufacturer: t.DeviceManufacturer(),
		DeviceModel:        t.DeviceModel(),
		Title:              t.Title(),
		Description:        t.Description(),
		TicketOwner:        t.Owner(),
		Severity:           t.Severity().Int(),
		Resolved:           t.Resolved(),
		CreatedAt:          t.CreatedAt().UnixMilli(),
		UpdatedAt:          t.UpdatedAt().UnixMilli(),
	}
}

func (m *TicketMapperImpl) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	severity, err := vo.NewSeverity(model.Severity)
	if err != nil {
		return nil, err
	}

	return ticket.ReconstructTicket(
		model.ID,
		model.SID,
		model.DeviceSID,
		model.DeviceManufacturer,
		model.DeviceModel,
		model.Title,
		model.Description,
		model.TicketOwner,
		severity,
		model.Resolved,
		biztime.FromMillisUTC(model.CreatedAt),
		biztime.FromMillisUTC(model.UpdatedAt),
	)
}
