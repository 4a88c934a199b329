package rating

import (
	"context"

	"food-donation-backend/domain"
	"food-donation-backend/entities"

	"gorm.io/gorm"
)

type (
	RatingRepository interface {
		GetDonationByID(ctx context.Context, id string) (*entities.Donation, error)
		HasCompletedAcceptance(ctx context.Context, donationID, volunteerID string) (bool, error)
		CreateRating(ctx context.Context, rating *entities.Rating) error
		GetVolunteerByID(ctx context.Context, id string) (*entities.User, error)
		GetVolunteerRatings(ctx context.Context, volunteerID string) ([]int, error)
	}

	ratingRepository struct {
		db *gorm.DB
	}
)

func NewRatingRepository(db *gorm.DB) RatingRepository {
	return &ratingRepository{db: db}
}

func (r *ratingRepository) GetDonationByID(ctx context.Context, id string) (*entities.Donation, error) {
	var donation entities.Donation
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&donation).Error; err != nil {
		return nil, err
	}
	return &donation, nil
}

func (r *ratingRepository) HasCompletedAcceptance(ctx context.Context, donationID, volunteerID string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Acceptance{}).
		Where("donation_id = ? AND volunteer_id = ? AND status = ?", donationID, volunteerID, string(domain.AcceptanceCompleted)).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// CreateRating inserts the rating. A second rating for the same donation and
// volunteer fails on idx_ratings_donation_volunteer.
func (r *ratingRepository) CreateRating(ctx context.Context, rating *entities.Rating) error {
	return r.db.WithContext(ctx).Create(rating).Error
}

func (r *ratingRepository) GetVolunteerByID(ctx context.Context, id string) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).
		Where("id = ? AND role = ?", id, domain.RoleVolunteer).
		First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *ratingRepository) GetVolunteerRatings(ctx context.Context, volunteerID string) ([]int, error) {
	var scores []int
	if err := r.db.WithContext(ctx).
		Model(&entities.Rating{}).
		Where("volunteer_id = ?", volunteerID).
		Pluck("rating", &scores).Error; err != nil {
		return nil, err
	}
	return scores, nil
}
