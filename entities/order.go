package entities

import (
	"Pickup-Order-System/domain"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Order struct {
	ID                  uuid.UUID          `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID              uuid.UUID          `gorm:"type:uuid;not null;index:idx_orders_user_created,priority:1" json:"user_id"`
	ScheduledDate       time.Time          `gorm:"not null;index:idx_orders_status_scheduled,priority:2" json:"scheduled_date"`
	ScheduledTime       string             `gorm:"not null" json:"scheduled_time"`
	Status              domain.OrderStatus `gorm:"type:varchar(20);not null;index:idx_orders_status_scheduled,priority:1" json:"status"`
	Subtotal            decimal.Decimal    `gorm:"type:numeric(12,2);not null" json:"subtotal"`
	TotalAmount         decimal.Decimal    `gorm:"type:numeric(12,2);not null" json:"total_amount"`
	SpecialInstructions string             `gorm:"type:varchar(500)" json:"special_instructions,omitempty"`
	ContactPhone        string             `gorm:"not null" json:"contact_phone"`
	ContactName         string             `gorm:"not null" json:"contact_name"`
	DeliveryAddress     Address            `gorm:"embedded;embeddedPrefix:delivery_" json:"delivery_address"`
	AdminNotified       bool               `json:"admin_notified"`
	CustomerNotified    bool               `json:"customer_notified"`
	ConfirmedAt         *time.Time         `json:"confirmed_at,omitempty"`
	ReadyAt             *time.Time         `json:"ready_at,omitempty"`
	CompletedAt         *time.Time         `json:"completed_at,omitempty"`
	CreatedAt           time.Time          `gorm:"index:idx_orders_user_created,priority:2" json:"created_at"`
	UpdatedAt           time.Time          `json:"updated_at"`

	User  *User        `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Items []*OrderItem `gorm:"foreignKey:OrderID" json:"items"`
}

// OrderNumber is the customer-facing reference: ORD- plus the last eight hex digits of the id.
func (o *Order) OrderNumber() string {
	hex := strings.ReplaceAll(o.ID.String(), "-", "")
	return domain.OrderNumberPrefix + strings.ToUpper(hex[len(hex)-domain.OrderNumberLength:])
}

// OrderItem is a snapshot of the product at order time; later catalog edits do not touch it.
type OrderItem struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	OrderID       uuid.UUID       `gorm:"type:uuid;not null;index" json:"order_id"`
	Position      int             `gorm:"not null" json:"position"`
	ProductID     uuid.UUID       `gorm:"type:uuid;not null" json:"product_id"`
	ProductName   string          `gorm:"not null" json:"product_name"`
	QuantityText  string          `gorm:"not null" json:"quantity_text"`
	QuantityValue decimal.Decimal `gorm:"type:numeric(14,3);not null" json:"quantity_value"`
	Unit          domain.Unit     `gorm:"type:varchar(10);not null" json:"unit"`
	Price         decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"price"`
	TotalPrice    decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"total_price"`
	Image         string          `json:"image,omitempty"`

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Timestamp
}
