package config

import (
	"fmt"

	"food-donation-backend/internal/utils"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func ConnectDB() (*gorm.DB, error) {
	var dialector gorm.Dialector

	switch driver := utils.GetConfig("DB_DRIVER"); driver {
	case "postgres":
		dsn := fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
			utils.GetConfig("DB_HOST"),
			utils.GetConfig("DB_USER"),
			utils.GetConfig("DB_PASSWORD"),
			utils.GetConfig("DB_NAME"),
			utils.GetConfig("DB_PORT"),
		)
		dialector = postgres.Open(dsn)
	case "sqlite":
		dialector = sqlite.Open(utils.GetConfig("DB_PATH") + "?_foreign_keys=on")
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}
	return db, nil
}
