package entities

import (
	"github.com/google/uuid"
)

type Order struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID      uuid.UUID `gorm:"index" json:"user_id"`
	CanteenID   uuid.UUID `gorm:"index" json:"canteen_id"`
	TotalAmount float64   `json:"total_amount"`
	Status      string    `json:"status"` // Pending, Preparing, Ready, Delivered

	User    *User        `gorm:"foreignKey:UserID"`
	Canteen *Canteen     `gorm:"foreignKey:CanteenID"`
	Items   []*OrderItem `gorm:"foreignKey:OrderID"`
	Timestamp
}

// OrderItem is a snapshot taken at order creation. It deliberately carries
// no MenuItem reference: later menu edits must not change past orders.
type OrderItem struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	OrderID  uuid.UUID `gorm:"index" json:"order_id"`
	Name     string    `json:"name"`
	Price    float64   `json:"price"`
	Quantity int       `json:"quantity"`
	Category string    `json:"category,omitempty"`
	ImageURL string    `json:"image_url,omitempty"`

	Order *Order `gorm:"foreignKey:OrderID"`
	Timestamp
}
