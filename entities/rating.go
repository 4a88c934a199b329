package entities

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Rating struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	DonationID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_ratings_donation_volunteer" json:"donation_id"`
	DonorID     uuid.UUID `gorm:"type:uuid;not null;index" json:"donor_id"`
	VolunteerID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_ratings_donation_volunteer;index" json:"volunteer_id"`
	Rating      int       `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"`
	Comment     string    `json:"comment,omitempty"`
	Timestamp
}

func (r *Rating) BeforeCreate(tx *gorm.DB) error {
	newIDIfNil(&r.ID)
	return nil
}
