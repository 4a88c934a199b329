package donation

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"food-donation-backend/domain"
	"food-donation-backend/entities"
	"food-donation-backend/internal/utils"
	"food-donation-backend/internal/utils/storage"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

type (
	DonationService interface {
		CreateDonation(ctx context.Context, req domain.CreateDonationRequest, donorID string) (*domain.Donation, error)
		GetDonorDonations(ctx context.Context, donorID, status string, page, limit int) ([]*domain.Donation, int64, error)
		GetDonationByID(ctx context.Context, id string) (*domain.Donation, error)
		AcceptDonation(ctx context.Context, donationID string, volunteer domain.Principal) (*domain.Acceptance, error)
		CompleteDonation(ctx context.Context, donationID string, actor domain.Principal) (*domain.Donation, error)
		CancelDonation(ctx context.Context, donationID string, actor domain.Principal) (*domain.Donation, error)
		GetDonorSummary(ctx context.Context, donorID string) (*domain.DonorSummary, error)
	}

	donationService struct {
		donationRepository DonationRepository
		s3                 storage.AwsS3
	}
)

func NewDonationService(donationRepository DonationRepository, s3 storage.AwsS3) DonationService {
	return &donationService{
		donationRepository: donationRepository,
		s3:                 s3,
	}
}

func (s *donationService) CreateDonation(ctx context.Context, req domain.CreateDonationRequest, donorID string) (*domain.Donation, error) {
	donorUUID, err := uuid.Parse(donorID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	if req.ApproxQuantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}

	pickupTime, err := time.Parse(time.RFC3339, req.PreferredPickupTime)
	if err != nil {
		return nil, domain.ErrInvalidPickupTime
	}

	donationID := uuid.New()

	photos := make([]*entities.DonationPhoto, 0, len(req.Photos))
	if len(req.Photos) > 0 && s.s3 == nil {
		return nil, domain.ErrInvalidPhoto
	}
	for i, file := range req.Photos {
		objectKey, err := s.s3.UploadFile(
			fmt.Sprintf("donation-%s-%d", donationID.String(), i),
			file,
			"donations",
			storage.AllowImage...,
		)
		if err != nil {
			if errors.Is(err, storage.ErrFileTypeNotAllowed) {
				return nil, fmt.Errorf("%w: %s", domain.ErrInvalidPhoto, file.Filename)
			}
			log.Errorw("photo upload failed", "donation_id", donationID, "error", err)
			return nil, domain.NewStorageError("upload donation photo", err)
		}
		photos = append(photos, &entities.DonationPhoto{
			DonationID: donationID,
			ObjectKey:  objectKey,
			URL:        s.s3.GetPublicLinkKey(objectKey),
		})
	}

	donation := &entities.Donation{
		ID:                  donationID,
		DonorID:             donorUUID,
		Area:                strings.TrimSpace(req.Area),
		ApproxQuantity:      req.ApproxQuantity,
		PreferredPickupTime: pickupTime.UTC(),
		Description:         req.Description,
		Status:              string(domain.DonationAvailable),
	}

	err = s.donationRepository.WithTransaction(ctx, func(repo DonationRepository) error {
		if err := repo.CreateDonation(ctx, donation); err != nil {
			return err
		}
		for _, photo := range photos {
			if err := repo.AddDonationPhoto(ctx, photo); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, utils.WrapStorageError("create donation", err)
	}

	return s.GetDonationByID(ctx, donationID.String())
}

func (s *donationService) GetDonorDonations(ctx context.Context, donorID, status string, page, limit int) ([]*domain.Donation, int64, error) {
	if _, err := uuid.Parse(donorID); err != nil {
		return nil, 0, domain.ErrParseUUID
	}

	var statusFilter domain.DonationStatus
	if status != "" {
		parsed, err := domain.ParseDonationStatus(status)
		if err != nil {
			return nil, 0, err
		}
		statusFilter = parsed
	}

	donations, count, err := s.donationRepository.GetDonorDonations(ctx, donorID, statusFilter, page, limit)
	if err != nil {
		return nil, 0, utils.WrapStorageError("list donor donations", err)
	}

	result := make([]*domain.Donation, 0, len(donations))
	for _, d := range donations {
		result = append(result, NewDonationView(d))
	}
	return result, count, nil
}

func (s *donationService) GetDonationByID(ctx context.Context, id string) (*domain.Donation, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrParseUUID
	}

	donation, err := s.donationRepository.GetDonationByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrDonationNotFound
		}
		return nil, utils.WrapStorageError("get donation", err)
	}

	return NewDonationView(donation), nil
}

// AcceptDonation claims an available donation for the volunteer. The status
// check-and-set and the partial unique index on pending acceptances both
// guarantee that only one of several concurrent claims wins.
func (s *donationService) AcceptDonation(ctx context.Context, donationID string, volunteer domain.Principal) (*domain.Acceptance, error) {
	if volunteer.Role != domain.RoleVolunteer {
		return nil, domain.ErrUserNotAllowed
	}

	volunteerUUID, err := uuid.Parse(volunteer.ID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}
	donationUUID, err := uuid.Parse(donationID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	acceptance := &entities.Acceptance{
		ID:          uuid.New(),
		DonationID:  donationUUID,
		VolunteerID: volunteerUUID,
		Status:      string(domain.AcceptancePending),
	}

	err = s.donationRepository.WithTransaction(ctx, func(repo DonationRepository) error {
		donation, err := repo.GetDonationByID(ctx, donationID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrDonationNotFound
			}
			return err
		}

		current := domain.DonationStatus(donation.Status)
		if current == domain.DonationAccepted {
			return domain.ErrDonationAlreadyClaimed
		}
		next, err := current.Transition(domain.DonationAccepted)
		if err != nil {
			return err
		}

		ok, err := repo.CompareAndSetStatus(ctx, donationID, current, next, nil)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrDonationAlreadyClaimed
		}

		if err := repo.CreateAcceptance(ctx, acceptance); err != nil {
			if utils.IsUniqueViolation(err) {
				return domain.ErrDonationAlreadyClaimed
			}
			return err
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrKindConflict) {
			log.Infow("accept rejected", "donation_id", donationID, "volunteer_id", volunteer.ID, "reason", err)
		}
		return nil, utils.WrapStorageError("accept donation", err)
	}

	return NewAcceptanceView(acceptance), nil
}

// CompleteDonation closes an accepted donation together with its pending
// acceptance. Either the owning donor or the claiming volunteer may do it.
func (s *donationService) CompleteDonation(ctx context.Context, donationID string, actor domain.Principal) (*domain.Donation, error) {
	return s.finish(ctx, donationID, actor, domain.DonationCompleted)
}

// CancelDonation withdraws a donation that has not been completed yet. Only
// the owning donor may cancel, and a cancelled donation is never relisted.
func (s *donationService) CancelDonation(ctx context.Context, donationID string, actor domain.Principal) (*domain.Donation, error) {
	return s.finish(ctx, donationID, actor, domain.DonationCancelled)
}

func (s *donationService) finish(ctx context.Context, donationID string, actor domain.Principal, target domain.DonationStatus) (*domain.Donation, error) {
	if _, err := uuid.Parse(donationID); err != nil {
		return nil, domain.ErrParseUUID
	}

	err := s.donationRepository.WithTransaction(ctx, func(repo DonationRepository) error {
		donation, err := repo.GetDonationByID(ctx, donationID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrDonationNotFound
			}
			return err
		}

		var pending *entities.Acceptance
		pending, err = repo.GetPendingAcceptance(ctx, donationID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if !canFinish(donation, pending, actor, target) {
			return domain.ErrUnauthorizedDonationAccess
		}

		current := domain.DonationStatus(donation.Status)
		next, err := current.Transition(target)
		if err != nil {
			return err
		}

		var completedAt *time.Time
		if next == domain.DonationCompleted {
			if pending == nil {
				return domain.ErrNoActiveAcceptance
			}
			now := time.Now().UTC()
			completedAt = &now
		}

		ok, err := repo.CompareAndSetStatus(ctx, donationID, current, next, completedAt)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrDonationStateChanged
		}

		acceptanceStatus, follows := domain.AcceptanceFor(next)
		if !follows || pending == nil {
			return nil
		}
		if _, err := domain.AcceptanceStatus(pending.Status).Transition(acceptanceStatus); err != nil {
			return err
		}
		ok, err = repo.UpdateAcceptanceStatus(ctx, pending.ID.String(), domain.AcceptancePending, acceptanceStatus, completedAt)
		if err != nil {
			return err
		}
		if !ok {
			return domain.ErrDonationStateChanged
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrKindConflict) || errors.Is(err, domain.ErrKindForbidden) {
			log.Warnw("donation transition rejected",
				"donation_id", donationID, "actor_id", actor.ID, "target", target, "reason", err)
		}
		return nil, utils.WrapStorageError("transition donation", err)
	}

	return s.GetDonationByID(ctx, donationID)
}

func canFinish(donation *entities.Donation, pending *entities.Acceptance, actor domain.Principal, target domain.DonationStatus) bool {
	isOwner := actor.Role == domain.RoleDonor && donation.DonorID.String() == actor.ID
	if target == domain.DonationCancelled {
		return isOwner
	}
	isClaimant := actor.Role == domain.RoleVolunteer && pending != nil && pending.VolunteerID.String() == actor.ID
	return isOwner || isClaimant
}

// GetDonorSummary aggregates the donor's listing history. The totals and the
// completed count are read concurrently.
func (s *donationService) GetDonorSummary(ctx context.Context, donorID string) (*domain.DonorSummary, error) {
	if _, err := uuid.Parse(donorID); err != nil {
		return nil, domain.ErrParseUUID
	}

	donor, err := s.donationRepository.GetDonorByID(ctx, donorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrDonorNotFound
		}
		return nil, utils.WrapStorageError("get donor", err)
	}

	var (
		total     int64
		meals     float64
		completed int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		total, meals, err = s.donationRepository.GetDonorTotals(gctx, donorID)
		return err
	})
	g.Go(func() error {
		var err error
		completed, err = s.donationRepository.CountDonationsByStatus(gctx, donorID, domain.DonationCompleted)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, utils.WrapStorageError("donor summary", err)
	}

	return &domain.DonorSummary{
		ID:                 donor.ID.String(),
		Name:               donor.Name,
		Email:              donor.Email,
		Phone:              donor.Phone,
		CreatedAt:          donor.CreatedAt,
		TotalDonations:     int(total),
		TotalMealsShared:   meals,
		CompletedDonations: int(completed),
	}, nil
}
