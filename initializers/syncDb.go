package initializers

import (
	"log"

	"github.com/velora-store/velora-api/models"
)

func SyncDatabase() {
	DB.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.ProductImage{},
		&models.Order{},
		&models.OrderItem{},
		&models.ContactMessage{},
	)
	log.Println("Database synced successfully.")
}
