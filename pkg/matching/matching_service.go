package matching

import (
	"context"
	"errors"

	"food-donation-backend/domain"
	"food-donation-backend/entities"
	"food-donation-backend/internal/utils"
	"food-donation-backend/pkg/donation"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	MatchingService interface {
		GetMatchedDonations(ctx context.Context, query domain.DonationQuery) ([]*domain.Donation, error)
		SuggestVolunteer(ctx context.Context, req domain.SuggestVolunteerRequest, donorID string) (*domain.SuggestVolunteerResponse, error)
	}

	matchingService struct {
		matchingRepository MatchingRepository
		policy             domain.MatchingPolicy
	}
)

func NewMatchingService(matchingRepository MatchingRepository, policy domain.MatchingPolicy) MatchingService {
	return &matchingService{
		matchingRepository: matchingRepository,
		policy:             policy,
	}
}

func (s *matchingService) GetMatchedDonations(ctx context.Context, query domain.DonationQuery) ([]*domain.Donation, error) {
	if query.MaxDistance != nil && *query.MaxDistance < 0 {
		return nil, domain.ErrInvalidMaxDistance
	}

	var volunteerID *uuid.UUID
	if query.VolunteerID != "" {
		id, err := uuid.Parse(query.VolunteerID)
		if err != nil {
			return nil, domain.ErrParseUUID
		}
		volunteerID = &id
	}

	donations, err := s.matchingRepository.GetAvailableDonations(ctx, query.Area, volunteerID)
	if err != nil {
		return nil, utils.WrapStorageError("list available donations", err)
	}

	result := make([]*domain.Donation, 0, len(donations))
	for _, d := range donations {
		result = append(result, donation.NewDonationView(d))
	}
	return result, nil
}

// SuggestVolunteer ranks every volunteer against the donation and records the
// winner on it. Having nobody eligible is a valid outcome and leaves the
// donation untouched.
func (s *matchingService) SuggestVolunteer(ctx context.Context, req domain.SuggestVolunteerRequest, donorID string) (*domain.SuggestVolunteerResponse, error) {
	if _, err := uuid.Parse(req.DonationID); err != nil {
		return nil, domain.ErrParseUUID
	}

	target, err := s.matchingRepository.GetDonationByID(ctx, req.DonationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrDonationNotFound
		}
		return nil, utils.WrapStorageError("get donation", err)
	}

	if target.DonorID.String() != donorID {
		return nil, domain.ErrUnauthorizedDonationAccess
	}
	if domain.DonationStatus(target.Status) != domain.DonationAvailable {
		return nil, domain.ErrDonationNotAvailable
	}

	volunteers, err := s.matchingRepository.GetVolunteerCandidates(ctx)
	if err != nil {
		return nil, utils.WrapStorageError("load volunteer candidates", err)
	}

	candidates := toVolunteerRecords(volunteers)
	if s.policy.RestrictToArea {
		area := req.Area
		if area == "" {
			area = target.Area
		}
		candidates = FilterByArea(candidates, area)
	}

	best, ok := BestVolunteer(candidates, s.policy)
	if !ok {
		log.Infow("no eligible volunteer", "donation_id", req.DonationID, "candidates", len(candidates))
		return &domain.SuggestVolunteerResponse{}, nil
	}

	updated, err := s.matchingRepository.UpdateSuggestedVolunteer(ctx, req.DonationID, uuid.MustParse(best))
	if err != nil {
		return nil, utils.WrapStorageError("store suggested volunteer", err)
	}
	if !updated {
		return nil, domain.ErrDonationNotAvailable
	}

	log.Infow("volunteer suggested", "donation_id", req.DonationID, "volunteer_id", best)
	return &domain.SuggestVolunteerResponse{SuggestedVolunteerID: &best}, nil
}

func toVolunteerRecords(volunteers []*entities.User) []VolunteerRecord {
	records := make([]VolunteerRecord, 0, len(volunteers))
	for _, v := range volunteers {
		ratings := make([]int, 0, len(v.RatingsReceived))
		for _, r := range v.RatingsReceived {
			ratings = append(ratings, r.Rating)
		}

		completed := 0
		for _, a := range v.Acceptances {
			if domain.AcceptanceStatus(a.Status) == domain.AcceptanceCompleted {
				completed++
			}
		}

		records = append(records, VolunteerRecord{
			ID:                   v.ID.String(),
			Area:                 v.Area,
			CompletedAcceptances: completed,
			Ratings:              ratings,
		})
	}
	return records
}
