package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Acceptance is a volunteer's claim on a donation. The partial unique index
// keeps at most one pending acceptance per donation.
type Acceptance struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	DonationID  uuid.UUID  `gorm:"type:uuid;not null;index;uniqueIndex:idx_acceptances_active_donation,where:status = 'pending'" json:"donation_id"`
	VolunteerID uuid.UUID  `gorm:"type:uuid;not null;index" json:"volunteer_id"`
	Status      string     `gorm:"not null;index" json:"status"` // pending, completed, cancelled
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	Timestamp
}

func (a *Acceptance) BeforeCreate(tx *gorm.DB) error {
	newIDIfNil(&a.ID)
	return nil
}
