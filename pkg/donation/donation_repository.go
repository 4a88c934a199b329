package donation

import (
	"context"
	"time"

	"food-donation-backend/domain"
	"food-donation-backend/entities"

	"gorm.io/gorm"
)

type (
	DonationRepository interface {
		WithTransaction(ctx context.Context, fn func(repo DonationRepository) error) error

		CreateDonation(ctx context.Context, donation *entities.Donation) error
		AddDonationPhoto(ctx context.Context, photo *entities.DonationPhoto) error
		GetDonationByID(ctx context.Context, id string) (*entities.Donation, error)
		GetDonorDonations(ctx context.Context, donorID string, status domain.DonationStatus, page, limit int) ([]*entities.Donation, int64, error)
		CompareAndSetStatus(ctx context.Context, id string, from, to domain.DonationStatus, completedAt *time.Time) (bool, error)

		CreateAcceptance(ctx context.Context, acceptance *entities.Acceptance) error
		GetPendingAcceptance(ctx context.Context, donationID string) (*entities.Acceptance, error)
		UpdateAcceptanceStatus(ctx context.Context, id string, from, to domain.AcceptanceStatus, completedAt *time.Time) (bool, error)

		GetDonorByID(ctx context.Context, id string) (*entities.User, error)
		GetDonorTotals(ctx context.Context, donorID string) (int64, float64, error)
		CountDonationsByStatus(ctx context.Context, donorID string, status domain.DonationStatus) (int64, error)
	}

	donationRepository struct {
		db *gorm.DB
	}
)

func NewDonationRepository(db *gorm.DB) DonationRepository {
	return &donationRepository{db: db}
}

// WithTransaction runs fn against a repository bound to a single transaction.
// Any error returned by fn rolls every write back.
func (r *donationRepository) WithTransaction(ctx context.Context, fn func(repo DonationRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&donationRepository{db: tx})
	})
}

func (r *donationRepository) CreateDonation(ctx context.Context, donation *entities.Donation) error {
	return r.db.WithContext(ctx).Omit("Photos", "Donor").Create(donation).Error
}

func (r *donationRepository) AddDonationPhoto(ctx context.Context, photo *entities.DonationPhoto) error {
	return r.db.WithContext(ctx).Create(photo).Error
}

func (r *donationRepository) GetDonationByID(ctx context.Context, id string) (*entities.Donation, error) {
	var donation entities.Donation
	if err := r.db.WithContext(ctx).
		Preload("Photos").
		Preload("Donor", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "name", "phone")
		}).
		Where("id = ?", id).
		First(&donation).Error; err != nil {
		return nil, err
	}
	return &donation, nil
}

func (r *donationRepository) GetDonorDonations(ctx context.Context, donorID string, status domain.DonationStatus, page, limit int) ([]*entities.Donation, int64, error) {
	var donations []*entities.Donation
	var count int64
	offset := (page - 1) * limit

	byDonor := func(db *gorm.DB) *gorm.DB {
		db = db.Where("donor_id = ?", donorID)
		if status != "" {
			db = db.Where("status = ?", string(status))
		}
		return db
	}

	if err := r.db.WithContext(ctx).
		Model(&entities.Donation{}).
		Scopes(byDonor).
		Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.WithContext(ctx).
		Scopes(byDonor).
		Preload("Photos").
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&donations).Error; err != nil {
		return nil, 0, err
	}

	return donations, count, nil
}

// CompareAndSetStatus moves the donation to `to` only while it is still in
// `from`. It reports false when another writer got there first.
func (r *donationRepository) CompareAndSetStatus(ctx context.Context, id string, from, to domain.DonationStatus, completedAt *time.Time) (bool, error) {
	updates := map[string]interface{}{
		"status":     string(to),
		"updated_at": time.Now(),
	}
	if completedAt != nil {
		updates["completed_at"] = completedAt
	}

	result := r.db.WithContext(ctx).
		Model(&entities.Donation{}).
		Where("id = ? AND status = ?", id, string(from)).
		Updates(updates)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

func (r *donationRepository) CreateAcceptance(ctx context.Context, acceptance *entities.Acceptance) error {
	return r.db.WithContext(ctx).Create(acceptance).Error
}

func (r *donationRepository) GetPendingAcceptance(ctx context.Context, donationID string) (*entities.Acceptance, error) {
	var acceptance entities.Acceptance
	if err := r.db.WithContext(ctx).
		Where("donation_id = ? AND status = ?", donationID, string(domain.AcceptancePending)).
		First(&acceptance).Error; err != nil {
		return nil, err
	}
	return &acceptance, nil
}

func (r *donationRepository) UpdateAcceptanceStatus(ctx context.Context, id string, from, to domain.AcceptanceStatus, completedAt *time.Time) (bool, error) {
	updates := map[string]interface{}{
		"status":     string(to),
		"updated_at": time.Now(),
	}
	if completedAt != nil {
		updates["completed_at"] = completedAt
	}

	result := r.db.WithContext(ctx).
		Model(&entities.Acceptance{}).
		Where("id = ? AND status = ?", id, string(from)).
		Updates(updates)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

func (r *donationRepository) GetDonorByID(ctx context.Context, id string) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).
		Where("id = ? AND role = ?", id, domain.RoleDonor).
		First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// GetDonorTotals returns how many donations the donor listed and the sum of
// their approximate quantities, whatever their status.
func (r *donationRepository) GetDonorTotals(ctx context.Context, donorID string) (int64, float64, error) {
	var totals struct {
		Total int64
		Meals float64
	}

	if err := r.db.WithContext(ctx).
		Model(&entities.Donation{}).
		Select("COUNT(*) AS total, COALESCE(SUM(approx_quantity), 0) AS meals").
		Where("donor_id = ?", donorID).
		Scan(&totals).Error; err != nil {
		return 0, 0, err
	}
	return totals.Total, totals.Meals, nil
}

func (r *donationRepository) CountDonationsByStatus(ctx context.Context, donorID string, status domain.DonationStatus) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.Donation{}).
		Where("donor_id = ? AND status = ?", donorID, string(status)).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
