package entities

import (
	"time"

	"github.com/google/uuid"
)

type Tiffin struct {
	ID                  uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name                string    `json:"name"`
	Description         string    `json:"description,omitempty"`
	Status              string    `json:"status"` // Active, Inactive
	Address             string    `json:"address,omitempty"`
	Area                string    `json:"area,omitempty"`
	OwnerID             uuid.UUID `json:"owner_id"`
	Price               float64   `json:"price"`
	ProvidesMonthlyMess bool      `json:"provides_monthly_mess"`

	// Weekly plan, one named slot per day.
	Monday    string `json:"monday,omitempty"`
	Tuesday   string `json:"tuesday,omitempty"`
	Wednesday string `json:"wednesday,omitempty"`
	Thursday  string `json:"thursday,omitempty"`
	Friday    string `json:"friday,omitempty"`
	Saturday  string `json:"saturday,omitempty"`
	Sunday    string `json:"sunday,omitempty"`

	// Monthly mess scheduling. RequestStartDate is when subscriptions open,
	// MessStartDate when meals begin; MessApproved gates both.
	MessStartDate    *time.Time `json:"mess_start_date,omitempty"`
	RequestStartDate *time.Time `json:"request_start_date,omitempty"`
	MessApproved     bool       `json:"mess_approved"`

	Owner       *User               `gorm:"foreignKey:OwnerID"`
	Requests    []*TiffinRequest    `gorm:"foreignKey:TiffinID"`
	Subscribers []*TiffinSubscriber `gorm:"foreignKey:TiffinID"`
	Timestamp
}

type TiffinRequest struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	TiffinID    uuid.UUID  `gorm:"index" json:"tiffin_id"`
	UserID      uuid.UUID  `gorm:"index" json:"user_id"`
	Status      string     `json:"status"` // pending, approved, rejected
	RequestedAt time.Time  `json:"requested_at"`
	ApprovedAt  *time.Time `json:"approved_at,omitempty"`

	Tiffin *Tiffin `gorm:"foreignKey:TiffinID"`
	User   *User   `gorm:"foreignKey:UserID"`
	Timestamp
}

// TiffinSubscriber is created when a TiffinRequest is approved, inside the
// same transaction. The subscriber list and the request list are therefore
// never out of sync.
type TiffinSubscriber struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	TiffinID uuid.UUID `gorm:"index" json:"tiffin_id"`
	UserID   uuid.UUID `gorm:"index" json:"user_id"`
	JoinedAt time.Time `json:"joined_at"`

	Tiffin      *Tiffin              `gorm:"foreignKey:TiffinID"`
	User        *User                `gorm:"foreignKey:UserID"`
	DailyStatus []*TiffinDailyStatus `gorm:"foreignKey:SubscriberID"`
	Timestamp
}

type TiffinDailyStatus struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	SubscriberID uuid.UUID `gorm:"index" json:"subscriber_id"`
	Date         time.Time `json:"date"`
	Eaten        bool      `json:"eaten"`
	Status       string    `json:"status"` // pending, accepted, rejected

	Subscriber *TiffinSubscriber `gorm:"foreignKey:SubscriberID"`
	Timestamp
}
