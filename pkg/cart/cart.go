// Package cart is the client-side basket. It lives entirely with the caller and only reaches the
// server as a CreateOrderRequest.
package cart

import (
	"Pickup-Order-System/domain"
	"Pickup-Order-System/pkg/order"
	"strings"

	"github.com/shopspring/decimal"
)

type Line struct {
	ProductID    string
	ProductName  string
	UnitType     domain.UnitType
	PricePerUnit decimal.Decimal
	Unit         domain.Unit
	Quantity     decimal.Decimal
}

// Cart is keyed by product id and keeps insertion order. Not safe for concurrent use.
type Cart struct {
	lines    map[string]*Line
	sequence []string
}

func New() *Cart {
	return &Cart{lines: map[string]*Line{}}
}

func validate(line Line) error {
	if strings.TrimSpace(line.ProductID) == "" {
		return domain.ErrProductNotFound
	}
	if !line.Unit.IsValid() || (line.UnitType != "" && !line.UnitType.Allows(line.Unit)) {
		return domain.ErrInvalidUnit
	}
	if !line.Quantity.IsPositive() {
		return domain.ErrInvalidQuantity
	}
	return nil
}

// Add puts line in the cart. A product already present in the same unit has its quantity
// increased; in a different unit the old line is replaced.
func (c *Cart) Add(line Line) error {
	if err := validate(line); err != nil {
		return err
	}

	existing, ok := c.lines[line.ProductID]
	if !ok {
		c.sequence = append(c.sequence, line.ProductID)
		c.lines[line.ProductID] = &line
		return nil
	}
	if existing.Unit == line.Unit {
		line.Quantity = existing.Quantity.Add(line.Quantity)
	}
	*existing = line
	return nil
}

// SetQuantity overwrites the quantity; zero or less removes the line.
func (c *Cart) SetQuantity(productID string, quantity decimal.Decimal) error {
	line, ok := c.lines[productID]
	if !ok {
		return domain.ErrProductNotFound
	}
	if !quantity.IsPositive() {
		c.Remove(productID)
		return nil
	}
	line.Quantity = quantity
	return nil
}

// Adjust adds delta (possibly negative) to the quantity, dropping the line when it reaches zero.
func (c *Cart) Adjust(productID string, delta decimal.Decimal) error {
	line, ok := c.lines[productID]
	if !ok {
		return domain.ErrProductNotFound
	}
	return c.SetQuantity(productID, line.Quantity.Add(delta))
}

func (c *Cart) Remove(productID string) {
	if _, ok := c.lines[productID]; !ok {
		return
	}
	delete(c.lines, productID)
	for i, id := range c.sequence {
		if id == productID {
			c.sequence = append(c.sequence[:i], c.sequence[i+1:]...)
			break
		}
	}
}

func (c *Cart) Clear() {
	c.lines = map[string]*Line{}
	c.sequence = nil
}

func (c *Cart) Len() int {
	return len(c.sequence)
}

func (c *Cart) Items() []Line {
	lines := make([]Line, 0, len(c.sequence))
	for _, id := range c.sequence {
		lines = append(lines, *c.lines[id])
	}
	return lines
}

// Subtotal estimates the order total with the prices captured when lines were added.
// The server reprices every line when the order is placed.
func (c *Cart) Subtotal() (decimal.Decimal, error) {
	total := decimal.Zero
	for _, line := range c.Items() {
		lineTotal, err := order.LineTotal(line.PricePerUnit, line.Quantity, line.Unit)
		if err != nil {
			return decimal.Zero, err
		}
		total = total.Add(lineTotal)
	}
	return total, nil
}

func (c *Cart) ToOrderRequest(scheduledDate, scheduledTime, instructions string, address *domain.Address) (domain.CreateOrderRequest, error) {
	if c.Len() == 0 {
		return domain.CreateOrderRequest{}, domain.ErrNoOrderItems
	}

	items := make([]domain.OrderItemRequest, 0, c.Len())
	for _, line := range c.Items() {
		items = append(items, domain.OrderItemRequest{
			ProductID:     line.ProductID,
			Unit:          line.Unit,
			QuantityValue: domain.QuantityValue(line.Quantity.String()),
			QuantityText:  line.Quantity.String() + " " + string(line.Unit),
		})
	}

	return domain.CreateOrderRequest{
		Items:               items,
		ScheduledDate:       scheduledDate,
		ScheduledTime:       scheduledTime,
		SpecialInstructions: instructions,
		DeliveryAddress:     address,
	}, nil
}
