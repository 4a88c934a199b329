package entities

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name     string    `gorm:"not null" json:"name"`
	Email    string    `gorm:"not null;uniqueIndex" json:"email"`
	Phone    string    `json:"phone"`
	Password string    `gorm:"not null" json:"-"`
	Role     string    `gorm:"not null;index" json:"role"` // donor, volunteer
	Area     string    `json:"area"`

	Acceptances     []*Acceptance `gorm:"foreignKey:VolunteerID"`
	RatingsReceived []*Rating     `gorm:"foreignKey:VolunteerID"`
	Timestamp
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	newIDIfNil(&u.ID)
	return nil
}
