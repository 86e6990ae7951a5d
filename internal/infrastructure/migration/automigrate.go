package migration

import (
	"centime/internal/infrastructure/persistence/models"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.UserModel{},
		&models.ProfileModel{},
		&models.SubscriptionModel{},
		&models.BillModel{},
		&models.TransactionModel{},
	}
}
