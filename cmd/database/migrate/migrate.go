package migration

import (
	"fmt"

	"food-donation-backend/entities"

	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	if db.Dialector.Name() == "postgres" {
		db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	}

	if err := db.AutoMigrate(
		&entities.User{},
		&entities.Donation{},
		&entities.DonationPhoto{},
		&entities.Acceptance{},
		&entities.Rating{},
	); err != nil {
		return fmt.Errorf("error migrating database: %w", err)
	}

	log.Info("Database migration complete")
	return nil
}
