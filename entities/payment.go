package entities

import (
	"time"

	"github.com/google/uuid"
)

type Payment struct {
	ID              uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	OrderID         uuid.UUID  `gorm:"index" json:"order_id"`
	UserID          uuid.UUID  `gorm:"index" json:"user_id"`
	Amount          float64    `json:"amount"`
	MidtransOrderID string     `gorm:"uniqueIndex" json:"midtrans_order_id"`
	SnapToken       string     `json:"snap_token,omitempty"`
	RedirectURL     string     `json:"redirect_url,omitempty"`
	Status          string     `json:"status"` // pending, settled, failed, expired
	SettledAt       *time.Time `json:"settled_at,omitempty"`

	Order *Order `gorm:"foreignKey:OrderID"`
	User  *User  `gorm:"foreignKey:UserID"`
	Timestamp
}
