package entities

import (
	"time"

	"github.com/google/uuid"
)

type Canteen struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	CanteenName     string    `json:"canteen_name"`
	CanteenAddress  string    `json:"canteen_address"`
	CollegeName     string    `json:"college_name"`
	LicenseImageURL string    `json:"license_image_url,omitempty"`
	CanteenPhotoURL string    `json:"canteen_photo_url,omitempty"`
	AadharCardNo    string    `json:"aadhar_card_number"`
	OwnerID         uuid.UUID `json:"owner_id"`
	OwnerName       string    `json:"owner_name,omitempty"`
	OwnerPhone      string    `json:"owner_phone,omitempty"`
	OwnerEmail      string    `json:"owner_email,omitempty"`

	Owner    *User             `gorm:"foreignKey:OwnerID"`
	Requests []*CanteenRequest `gorm:"foreignKey:CanteenID"`
	Timestamp
}

type CanteenRequest struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	CanteenID   uuid.UUID  `gorm:"index" json:"canteen_id"`
	UserID      uuid.UUID  `gorm:"index" json:"user_id"`
	Status      string     `json:"status"` // pending, approved, rejected
	RequestedAt time.Time  `json:"requested_at"`
	ApprovedAt  *time.Time `json:"approved_at,omitempty"`

	Canteen *Canteen `gorm:"foreignKey:CanteenID"`
	User    *User    `gorm:"foreignKey:UserID"`
	Timestamp
}
