package entities

import (
	"github.com/google/uuid"
)

type Menu struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	CanteenID uuid.UUID `gorm:"uniqueIndex" json:"canteen_id"`

	Canteen *Canteen    `gorm:"foreignKey:CanteenID"`
	Items   []*MenuItem `gorm:"foreignKey:MenuID"`
	Timestamp
}

// MenuItem rows carry their own uuid so items stay addressable after
// deletions; Position only orders the listing within a category.
type MenuItem struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	MenuID      uuid.UUID `gorm:"index" json:"menu_id"`
	Category    string    `gorm:"index" json:"category"` // breakfast, lunch, chinese, specialFood
	Name        string    `json:"name"`
	Price       float64   `json:"price"`
	Description string    `json:"description,omitempty"`
	ImageURL    string    `json:"image_url,omitempty"`
	Position    int       `json:"position"`

	Menu *Menu `gorm:"foreignKey:MenuID"`
	Timestamp
}
