package order

import (
	"Pickup-Order-System/domain"
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	leadingNumber = regexp.MustCompile(`^(\d+(\.\d+)?|\.\d+)([eE][-+]?\d+)?`)
	maxQuantity   = decimal.NewFromInt(1_000_000)
	gramsPerKg    = decimal.NewFromInt(1000)
)

// ParseQuantity reads the numeric prefix of raw ("2.5", "500 g", "3") as a positive quantity
// with at most three decimal places.
func ParseQuantity(raw string) (decimal.Decimal, error) {
	match := leadingNumber.FindString(strings.TrimSpace(raw))
	if match == "" {
		return decimal.Zero, domain.ErrInvalidQuantity
	}
	quantity, err := decimal.NewFromString(match)
	if err != nil {
		return decimal.Zero, domain.ErrInvalidQuantity
	}
	quantity = quantity.Round(3)
	if !quantity.IsPositive() || quantity.GreaterThan(maxQuantity) {
		return decimal.Zero, domain.ErrInvalidQuantity
	}
	return quantity, nil
}

// LineTotal prices quantity of a product whose pricePerUnit is per kg (weight) or per piece.
func LineTotal(pricePerUnit, quantity decimal.Decimal, unit domain.Unit) (decimal.Decimal, error) {
	var total decimal.Decimal
	switch unit {
	case domain.UnitKg, domain.UnitPiece:
		total = pricePerUnit.Mul(quantity)
	case domain.UnitGram:
		total = pricePerUnit.Mul(quantity).Div(gramsPerKg)
	default:
		return decimal.Zero, domain.ErrInvalidUnit
	}
	return total.Round(2), nil
}

func defaultQuantityText(quantity decimal.Decimal, unit domain.Unit) string {
	return fmt.Sprintf("%s %s", quantity.String(), unit)
}
