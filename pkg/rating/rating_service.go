package rating

import (
	"context"
	"errors"
	"strings"

	"food-donation-backend/domain"
	"food-donation-backend/entities"
	"food-donation-backend/internal/utils"
	"food-donation-backend/pkg/matching"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	RatingService interface {
		CreateRating(ctx context.Context, req domain.CreateRatingRequest, donorID string) (*domain.Rating, error)
		GetVolunteerRatingSummary(ctx context.Context, volunteerID string) (*domain.VolunteerRatingSummary, error)
	}

	ratingService struct {
		ratingRepository RatingRepository
	}
)

func NewRatingService(ratingRepository RatingRepository) RatingService {
	return &ratingService{ratingRepository: ratingRepository}
}

// CreateRating records a donor's rating of the volunteer who completed the
// donation. Only one rating per donation and volunteer is ever kept.
func (s *ratingService) CreateRating(ctx context.Context, req domain.CreateRatingRequest, donorID string) (*domain.Rating, error) {
	if req.Rating < domain.RatingMin || req.Rating > domain.RatingMax {
		return nil, domain.ErrRatingOutOfRange
	}

	donorUUID, err := uuid.Parse(donorID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}
	donationUUID, err := uuid.Parse(req.DonationID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}
	volunteerUUID, err := uuid.Parse(req.VolunteerID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	donation, err := s.ratingRepository.GetDonationByID(ctx, req.DonationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrDonationNotFound
		}
		return nil, utils.WrapStorageError("get donation", err)
	}

	if donation.DonorID != donorUUID {
		return nil, domain.ErrUnauthorizedDonationAccess
	}
	if domain.DonationStatus(donation.Status) != domain.DonationCompleted {
		return nil, domain.ErrDonationNotCompleted
	}

	served, err := s.ratingRepository.HasCompletedAcceptance(ctx, req.DonationID, req.VolunteerID)
	if err != nil {
		return nil, utils.WrapStorageError("check acceptance", err)
	}
	if !served {
		return nil, domain.ErrVolunteerNotOnDonation
	}

	rating := &entities.Rating{
		ID:          uuid.New(),
		DonationID:  donationUUID,
		DonorID:     donorUUID,
		VolunteerID: volunteerUUID,
		Rating:      req.Rating,
		Comment:     strings.TrimSpace(req.Comment),
	}

	if err := s.ratingRepository.CreateRating(ctx, rating); err != nil {
		if utils.IsUniqueViolation(err) {
			log.Infow("duplicate rating rejected", "donation_id", req.DonationID, "volunteer_id", req.VolunteerID)
			return nil, domain.ErrRatingExists
		}
		return nil, utils.WrapStorageError("create rating", err)
	}

	return &domain.Rating{
		ID:          rating.ID.String(),
		DonationID:  rating.DonationID.String(),
		DonorID:     rating.DonorID.String(),
		VolunteerID: rating.VolunteerID.String(),
		Rating:      rating.Rating,
		Comment:     rating.Comment,
		CreatedAt:   rating.CreatedAt,
	}, nil
}

func (s *ratingService) GetVolunteerRatingSummary(ctx context.Context, volunteerID string) (*domain.VolunteerRatingSummary, error) {
	if _, err := uuid.Parse(volunteerID); err != nil {
		return nil, domain.ErrParseUUID
	}

	if _, err := s.ratingRepository.GetVolunteerByID(ctx, volunteerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrVolunteerNotFound
		}
		return nil, utils.WrapStorageError("get volunteer", err)
	}

	scores, err := s.ratingRepository.GetVolunteerRatings(ctx, volunteerID)
	if err != nil {
		return nil, utils.WrapStorageError("get volunteer ratings", err)
	}

	return &domain.VolunteerRatingSummary{
		VolunteerID:   volunteerID,
		AverageRating: matching.MeanRating(scores),
		TotalRatings:  len(scores),
	}, nil
}
