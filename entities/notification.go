package entities

import (
	"Pickup-Order-System/domain"
	"time"

	"github.com/google/uuid"
)

type Notification struct {
	ID            uuid.UUID               `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	RecipientID   uuid.UUID               `gorm:"type:uuid;not null;index:idx_notifications_recipient,priority:1" json:"recipient_id"`
	RecipientType domain.RecipientType    `gorm:"type:varchar(10);not null" json:"recipient_type"`
	Type          domain.NotificationType `gorm:"type:varchar(30);not null" json:"type"`
	OrderID       uuid.UUID               `gorm:"type:uuid;not null;index" json:"order_id"`
	Title         string                  `gorm:"not null" json:"title"`
	Message       string                  `gorm:"not null" json:"message"`
	IsRead        bool                    `gorm:"not null;index:idx_notifications_recipient,priority:2" json:"is_read"`
	ReadAt        *time.Time              `json:"read_at,omitempty"`
	CreatedAt     time.Time               `gorm:"index:idx_notifications_recipient,priority:3" json:"created_at"`
	UpdatedAt     time.Time               `json:"updated_at"`

	Order *Order `gorm:"foreignKey:OrderID" json:"order,omitempty"`
}
