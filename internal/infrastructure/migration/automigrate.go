package migration

import (
	"github.com/back-informatica/chamados/internal/infrastructure/persistence/models"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.TicketModel{},
		&models.UserModel{},
	}
}
