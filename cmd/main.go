package main

import (
	"os"
	"os/signal"
	"syscall"

	"food-donation-backend/cmd/config"
	migration "food-donation-backend/cmd/database/migrate"
	"food-donation-backend/internal/utils"

	"github.com/gofiber/fiber/v2/log"
)

func main() {
	utils.LoadConfig()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("error connecting database: %v", err)
	}

	if err := migration.Migrate(db); err != nil {
		log.Fatalf("error migrating database: %v", err)
	}

	app, err := config.NewApp(db)
	if err != nil {
		log.Fatalf("error creating app: %v", err)
	}

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		log.Info("shutting down server")
		if err := app.Shutdown(); err != nil {
			log.Errorf("error shutting down server: %v", err)
		}
	}()

	if err := app.Listen(":" + utils.GetConfig("APP_PORT")); err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
