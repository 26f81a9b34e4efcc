package main

import (
	"Pickup-Order-System/cmd/config"
	migration "Pickup-Order-System/cmd/database/migrate"
	"Pickup-Order-System/internal/utils"
	"log"
)

func main() {
	utils.LoadConfig()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	if err := migration.Migrate(db); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}
	if err := migration.SeedAdmin(db); err != nil {
		log.Fatalf("failed to seed admin: %v", err)
	}

	app, err := config.NewApp(db)
	if err != nil {
		log.Fatalf("failed to create app: %v", err)
	}

	if err := app.Listen(":" + utils.GetConfig("APP_PORT")); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
