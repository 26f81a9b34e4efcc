package entities

import (
	"Pickup-Order-System/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Category struct {
	ID    uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name  string    `gorm:"not null" json:"name"`
	Image string    `json:"image"`

	Products []*Product `gorm:"foreignKey:CategoryID" json:"-"`
	Timestamp
}

type Product struct {
	ID           uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name         string          `gorm:"not null" json:"name"`
	Description  string          `gorm:"type:text" json:"description"`
	Image        string          `json:"image"`
	CategoryID   uuid.UUID       `gorm:"type:uuid;index" json:"category_id"`
	UnitType     domain.UnitType `gorm:"type:varchar(10);not null" json:"unit_type"`
	PricePerUnit decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"price_per_unit"`
	InStock      bool            `json:"in_stock"`

	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Timestamp
}
