package migration

import (
	"Pickup-Order-System/entities"
	"Pickup-Order-System/internal/utils"
	"Pickup-Order-System/pkg/jwt"
	"Pickup-Order-System/pkg/user"
	"context"
	"fmt"
	"log"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	models := []struct {
		name  string
		model any
	}{
		{"user", &entities.User{}},
		{"category", &entities.Category{}},
		{"product", &entities.Product{}},
		{"order", &entities.Order{}},
		{"order item", &entities.OrderItem{}},
		{"notification", &entities.Notification{}},
	}
	for _, m := range models {
		if err := db.AutoMigrate(m.model); err != nil {
			log.Fatalf("Error migrating %s database: %v", m.name, err)
			return err
		}
	}

	fmt.Println("Database migration complete")
	return nil
}

// SeedAdmin creates the first admin account from ADMIN_* settings when no admin exists yet.
func SeedAdmin(db *gorm.DB) error {
	userService := user.NewUserService(user.NewUserRepository(db), jwt.NewJWTService())
	created, err := userService.EnsureAdmin(
		context.Background(),
		utils.GetConfig("ADMIN_NAME"),
		utils.GetConfig("ADMIN_PHONE"),
		utils.GetConfig("ADMIN_PASSWORD"),
	)
	if err != nil {
		return err
	}
	if created {
		fmt.Println("Initial admin account created")
	}
	return nil
}
