package migration

import (
	"fixdesk/internal/infrastructure/persistence/models"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.DeviceModel{},
		&models.TicketModel{},
		&models.MessageModel{},
	}
}
