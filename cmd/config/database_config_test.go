package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func setDBEnv(t *testing.T, timezone string) {
	t.Helper()
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_USER", "orders")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "pickup")
	t.Setenv("DB_PORT", "5432")
	t.Setenv("DB_SSLMODE", "disable")
	t.Setenv("APP_TIMEZONE", timezone)
}

func TestDSN(t *testing.T) {
	cases := []struct {
		name     string
		timezone string
		want     string
	}{
		{"local zone", "Local", ""},
		{"unknown zone falls back to local", "Mars/Olympus", ""},
		{"named zone", "Asia/Kolkata", " TimeZone=Asia/Kolkata"},
		{"utc", "UTC", " TimeZone=UTC"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			setDBEnv(t, tc.timezone)
			dsn := DSN()
			assert.Equal(t, "host=db.internal user=orders password=secret dbname=pickup port=5432 sslmode=disable"+tc.want, dsn)
			assert.False(t, strings.Contains(dsn, "TimeZone=Local"))
		})
	}
}
