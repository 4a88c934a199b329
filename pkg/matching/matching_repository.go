package matching

import (
	"context"
	"strings"
	"time"

	"food-donation-backend/domain"
	"food-donation-backend/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	MatchingRepository interface {
		GetVolunteerCandidates(ctx context.Context) ([]*entities.User, error)
		GetDonationByID(ctx context.Context, id string) (*entities.Donation, error)
		UpdateSuggestedVolunteer(ctx context.Context, donationID string, volunteerID uuid.UUID) (bool, error)
		GetAvailableDonations(ctx context.Context, area string, volunteerID *uuid.UUID) ([]*entities.Donation, error)
	}

	matchingRepository struct {
		db *gorm.DB
	}
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func NewMatchingRepository(db *gorm.DB) MatchingRepository {
	return &matchingRepository{db: db}
}

// GetVolunteerCandidates loads every volunteer with its completed acceptances
// and the ratings it has received.
func (r *matchingRepository) GetVolunteerCandidates(ctx context.Context) ([]*entities.User, error) {
	var volunteers []*entities.User
	if err := r.db.WithContext(ctx).
		Preload("Acceptances", "status = ?", string(domain.AcceptanceCompleted)).
		Preload("RatingsReceived").
		Where("role = ?", domain.RoleVolunteer).
		Find(&volunteers).Error; err != nil {
		return nil, err
	}
	return volunteers, nil
}

func (r *matchingRepository) GetDonationByID(ctx context.Context, id string) (*entities.Donation, error) {
	var donation entities.Donation
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&donation).Error; err != nil {
		return nil, err
	}
	return &donation, nil
}

// UpdateSuggestedVolunteer stores the suggestion while the donation is still
// available. It reports false when the donation left that status meanwhile.
func (r *matchingRepository) UpdateSuggestedVolunteer(ctx context.Context, donationID string, volunteerID uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&entities.Donation{}).
		Where("id = ? AND status = ?", donationID, string(domain.DonationAvailable)).
		Updates(map[string]interface{}{
			"suggested_volunteer_id": volunteerID,
			"updated_at":             time.Now(),
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

// GetAvailableDonations lists available donations whose area contains area,
// ignoring case. Donations suggested for volunteerID come first, then the
// soonest pickup, then the newest listing.
func (r *matchingRepository) GetAvailableDonations(ctx context.Context, area string, volunteerID *uuid.UUID) ([]*entities.Donation, error) {
	var donations []*entities.Donation

	query := r.db.WithContext(ctx).
		Preload("Photos").
		Preload("Donor", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "name", "phone")
		}).
		Where("status = ?", string(domain.DonationAvailable))

	if area = strings.TrimSpace(area); area != "" {
		query = query.Where(`LOWER(area) LIKE ? ESCAPE '\'`, "%"+likeEscaper.Replace(strings.ToLower(area))+"%")
	}

	if volunteerID != nil {
		query = query.Clauses(clause.OrderBy{Expression: clause.Expr{
			SQL:                "CASE WHEN suggested_volunteer_id = ? THEN 0 ELSE 1 END, preferred_pickup_time ASC, created_at DESC",
			Vars:               []interface{}{*volunteerID},
			WithoutParentheses: true,
		}})
	} else {
		query = query.Order("preferred_pickup_time ASC").Order("created_at DESC")
	}

	if err := query.Find(&donations).Error; err != nil {
		return nil, err
	}
	return donations, nil
}
