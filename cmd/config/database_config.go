package config

import (
	"Pickup-Order-System/internal/utils"
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// DSN builds the postgres connection string. TimeZone is left out for the process-local
// zone, which postgres cannot resolve by name.
func DSN() string {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		utils.GetConfig("DB_HOST"),
		utils.GetConfig("DB_USER"),
		utils.GetConfig("DB_PASSWORD"),
		utils.GetConfig("DB_NAME"),
		utils.GetConfig("DB_PORT"),
		utils.GetConfig("DB_SSLMODE"),
	)
	if loc := utils.Location(); loc != time.Local {
		dsn += " TimeZone=" + loc.String()
	}
	return dsn
}

func ConnectDB() (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(DSN()), &gorm.Config{
		TranslateError:                           true,
		// order items keep snapshots of deleted products
		DisableForeignKeyConstraintWhenMigrating: true,
		NowFunc: func() time.Time {
			return time.Now().In(utils.Location())
		},
	})
	if err != nil {
		log.Fatalf("Database connection failed: %v", err)
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(utils.GetConfigInt("DB_MAX_OPEN_CONNS"))
	sqlDB.SetMaxIdleConns(utils.GetConfigInt("DB_MAX_IDLE_CONNS"))
	sqlDB.SetConnMaxLifetime(time.Hour)
	return db, nil
}
