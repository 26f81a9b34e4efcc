package order

import (
	"Pickup-Order-System/domain"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseQuantity(t *testing.T) {
	valid := map[string]string{
		"3":        "3",
		"2.5":      "2.5",
		" 500 ":    "500",
		"500 gram": "500",
		"1.2345":   "1.235",
		".5":       "0.5",
		"1e2":      "100",
	}
	for raw, want := range valid {
		got, err := ParseQuantity(raw)
		require.NoError(t, err, raw)
		assert.True(t, decimal.RequireFromString(want).Equal(got), "%q parsed as %s", raw, got)
	}

	for _, raw := range []string{"", "abc", "0", "-1", "NaN", "Infinity", "0.0001", "1e12"} {
		_, err := ParseQuantity(raw)
		assert.ErrorIs(t, err, domain.ErrInvalidQuantity, raw)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, raw)
	}
}

func TestLineTotal(t *testing.T) {
	cases := []struct {
		price    string
		quantity string
		unit     domain.Unit
		want     string
	}{
		{"100", "500", domain.UnitGram, "50"},
		{"20", "3", domain.UnitPiece, "60"},
		{"120", "2.5", domain.UnitKg, "300"},
		{"99.99", "250", domain.UnitGram, "25"},
		{"33.33", "1.5", domain.UnitKg, "50"},
	}
	for _, tc := range cases {
		got, err := LineTotal(decimal.RequireFromString(tc.price), decimal.RequireFromString(tc.quantity), tc.unit)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got.String(), "%s x %s %s", tc.price, tc.quantity, tc.unit)
	}

	_, err := LineTotal(decimal.NewFromInt(10), decimal.NewFromInt(1), domain.Unit("litre"))
	assert.ErrorIs(t, err, domain.ErrInvalidUnit)
}
