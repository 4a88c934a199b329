// Package testutil provides an in-memory database and fixtures for package tests.
package testutil

import (
	"testing"
	"time"

	migration "food-donation-backend/cmd/database/migrate"
	"food-donation-backend/domain"
	"food-donation-backend/entities"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewTestDB opens a migrated in-memory SQLite database. The pool holds a
// single connection, so concurrent transactions run one after another.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, migration.Migrate(db))
	return db
}

func CreateUser(t *testing.T, db *gorm.DB, role, name, area string) *entities.User {
	t.Helper()

	user := &entities.User{
		ID:       uuid.New(),
		Name:     name,
		Email:    uuid.NewString() + "@example.com",
		Phone:    "+62-800-000",
		Password: "x",
		Role:     role,
		Area:     area,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

type DonationFixture struct {
	Area                 string
	PickupTime           time.Time
	CreatedAt            time.Time
	Quantity             float64
	Status               domain.DonationStatus
	SuggestedVolunteerID *uuid.UUID
}

func CreateDonation(t *testing.T, db *gorm.DB, donorID uuid.UUID, f DonationFixture) *entities.Donation {
	t.Helper()

	if f.Status == "" {
		f.Status = domain.DonationAvailable
	}
	if f.Quantity == 0 {
		f.Quantity = 10
	}
	if f.PickupTime.IsZero() {
		f.PickupTime = time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	}
	if f.CreatedAt.IsZero() {
		f.CreatedAt = time.Date(2025, 12, 31, 8, 0, 0, 0, time.UTC)
	}

	donation := &entities.Donation{
		ID:                   uuid.New(),
		DonorID:              donorID,
		Area:                 f.Area,
		ApproxQuantity:       f.Quantity,
		PreferredPickupTime:  f.PickupTime,
		Status:               string(f.Status),
		SuggestedVolunteerID: f.SuggestedVolunteerID,
		Timestamp:            entities.Timestamp{CreatedAt: f.CreatedAt, UpdatedAt: f.CreatedAt},
	}
	require.NoError(t, db.Create(donation).Error)
	return donation
}

func CreateAcceptance(t *testing.T, db *gorm.DB, donationID, volunteerID uuid.UUID, status domain.AcceptanceStatus) *entities.Acceptance {
	t.Helper()

	acceptance := &entities.Acceptance{
		ID:          uuid.New(),
		DonationID:  donationID,
		VolunteerID: volunteerID,
		Status:      string(status),
	}
	require.NoError(t, db.Create(acceptance).Error)
	return acceptance
}

func CreateRating(t *testing.T, db *gorm.DB, donationID, donorID, volunteerID uuid.UUID, score int) *entities.Rating {
	t.Helper()

	rating := &entities.Rating{
		ID:          uuid.New(),
		DonationID:  donationID,
		DonorID:     donorID,
		VolunteerID: volunteerID,
		Rating:      score,
	}
	require.NoError(t, db.Create(rating).Error)
	return rating
}

// CompletedHistory gives volunteer completed acceptances and the given ratings,
// each on its own completed donation owned by donor.
func CompletedHistory(t *testing.T, db *gorm.DB, donorID, volunteerID uuid.UUID, completed int, ratings ...int) {
	t.Helper()

	n := completed
	if len(ratings) > n {
		n = len(ratings)
	}
	for i := 0; i < n; i++ {
		donation := CreateDonation(t, db, donorID, DonationFixture{Area: "History", Status: domain.DonationCompleted})
		status := domain.AcceptanceCompleted
		if i >= completed {
			status = domain.AcceptanceCancelled
		}
		CreateAcceptance(t, db, donation.ID, volunteerID, status)
		if i < len(ratings) {
			CreateRating(t, db, donation.ID, donorID, volunteerID, ratings[i])
		}
	}
}
