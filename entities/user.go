package entities

import (
	"Pickup-Order-System/domain"

	"github.com/google/uuid"
)

type User struct {
	ID       uuid.UUID   `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name     string      `gorm:"not null" json:"name"`
	Phone    string      `gorm:"not null;uniqueIndex" json:"phone"`
	Password string      `gorm:"not null" json:"-"`
	Role     domain.Role `gorm:"type:varchar(10);not null;index" json:"role"`
	Address  Address     `gorm:"embedded;embeddedPrefix:address_" json:"address"`

	Timestamp
}
