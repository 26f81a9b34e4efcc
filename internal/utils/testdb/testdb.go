// Package testdb opens a throwaway postgres schema for repository tests.
package testdb

import (
	"os"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

const EnvDSN = "TEST_DATABASE_DSN"

// Open connects to the database named by TEST_DATABASE_DSN and migrates models into a
// schema private to t, dropped again on cleanup. The test is skipped when the variable is unset.
func Open(t *testing.T, models ...any) *gorm.DB {
	t.Helper()
	dsn := os.Getenv(EnvDSN)
	if dsn == "" {
		t.Skip(EnvDSN + " not set, skipping repository test")
	}

	name := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError:                           true,
		DisableForeignKeyConstraintWhenMigrating: true,
		NamingStrategy:                           schema.NamingStrategy{TablePrefix: name + "."},
		Logger:                                   logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error)
	require.NoError(t, db.Exec(`CREATE SCHEMA "`+name+`"`).Error)
	t.Cleanup(func() {
		db.Exec(`DROP SCHEMA IF EXISTS "` + name + `" CASCADE`)
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	require.NoError(t, db.AutoMigrate(models...))
	return db
}
