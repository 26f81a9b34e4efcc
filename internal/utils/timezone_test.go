package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocation(t *testing.T) {
	t.Setenv("APP_TIMEZONE", "Local")
	assert.Equal(t, time.Local, Location())

	t.Setenv("APP_TIMEZONE", "Nowhere/Special")
	assert.Equal(t, time.Local, Location())

	t.Setenv("APP_TIMEZONE", "Asia/Kolkata")
	assert.Equal(t, "Asia/Kolkata", Location().String())
}

func TestDayBounds(t *testing.T) {
	kolkata, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)

	start, end := DayBounds(time.Date(2026, 3, 14, 2, 15, 0, 0, kolkata))
	assert.Equal(t, time.Date(2026, 3, 14, 0, 0, 0, 0, kolkata), start)
	assert.Equal(t, time.Date(2026, 3, 14, 23, 59, 59, int(999*time.Millisecond), kolkata), end)
	assert.Equal(t, kolkata, start.Location())
	assert.Equal(t, kolkata, end.Location())

	// 02:15 in Kolkata is still the previous day in UTC.
	start, _ = DayBounds(time.Date(2026, 3, 14, 2, 15, 0, 0, kolkata).UTC())
	assert.Equal(t, time.Date(2026, 3, 13, 0, 0, 0, 0, time.UTC), start)

	start, end = DayBounds(time.Date(2026, 12, 31, 23, 59, 59, 0, time.UTC))
	assert.Equal(t, time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC).Add(-time.Millisecond), end)
}

func TestParseDate(t *testing.T) {
	t.Setenv("APP_TIMEZONE", "Asia/Kolkata")
	kolkata := Location()

	bare, err := ParseDate("2026-03-14")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 14, 0, 0, 0, 0, kolkata), bare)
	assert.Equal(t, kolkata, bare.Location())

	stamped, err := ParseDate("2026-03-13T20:00:00Z")
	require.NoError(t, err)
	assert.True(t, stamped.Equal(time.Date(2026, 3, 14, 1, 30, 0, 0, kolkata)))
	assert.Equal(t, kolkata, stamped.Location())

	start, _ := DayBounds(stamped)
	assert.True(t, start.Equal(bare))

	for _, bad := range []string{"", "14/03/2026", "2026-02-30", "tomorrow"} {
		_, err := ParseDate(bad)
		assert.Error(t, err, bad)
	}
}
