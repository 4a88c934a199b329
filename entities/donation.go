package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Donation struct {
	ID                  uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	DonorID             uuid.UUID  `gorm:"type:uuid;not null;index" json:"donor_id"`
	Area                string     `gorm:"not null" json:"area"`
	ApproxQuantity      float64    `gorm:"not null;check:approx_quantity > 0" json:"approx_quantity"`
	PreferredPickupTime time.Time  `gorm:"not null;index" json:"preferred_pickup_time"`
	Description         string     `json:"description"`
	Status              string     `gorm:"not null;index" json:"status"` // available, accepted, completed, cancelled
	CompletedAt         *time.Time `json:"completed_at,omitempty"`

	// SuggestedVolunteerID is a plain identifier; the volunteer's lifecycle is independent of the donation.
	SuggestedVolunteerID *uuid.UUID `gorm:"type:uuid;index" json:"suggested_volunteer_id,omitempty"`

	Donor  *User            `gorm:"foreignKey:DonorID"`
	Photos []*DonationPhoto `gorm:"foreignKey:DonationID"`
	Timestamp
}

func (d *Donation) BeforeCreate(tx *gorm.DB) error {
	newIDIfNil(&d.ID)
	return nil
}

type DonationPhoto struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	DonationID uuid.UUID `gorm:"type:uuid;not null;index" json:"donation_id"`
	ObjectKey  string    `gorm:"not null" json:"object_key"`
	URL        string    `gorm:"not null" json:"url"`
	Timestamp
}

func (p *DonationPhoto) BeforeCreate(tx *gorm.DB) error {
	newIDIfNil(&p.ID)
	return nil
}
