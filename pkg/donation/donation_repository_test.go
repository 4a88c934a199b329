package donation_test

import (
	"context"
	"testing"

	"food-donation-backend/domain"
	"food-donation-backend/entities"
	"food-donation-backend/internal/testutil"
	"food-donation-backend/internal/utils"
	"food-donation-backend/pkg/donation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompareAndSetStatus(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := donation.NewDonationRepository(db)
	donor := testutil.CreateUser(t, db, domain.RoleDonor, "Dina", "")
	d := testutil.CreateDonation(t, db, donor.ID, testutil.DonationFixture{Area: "Downtown"})
	ctx := context.Background()

	ok, err := repo.CompareAndSetStatus(ctx, d.ID.String(), domain.DonationAvailable, domain.DonationAccepted, nil)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.CompareAndSetStatus(ctx, d.ID.String(), domain.DonationAvailable, domain.DonationAccepted, nil)
	require.NoError(t, err)
	assert.False(t, ok, "a stale expected status must not win")

	var stored entities.Donation
	require.NoError(t, db.First(&stored, "id = ?", d.ID).Error)
	assert.Equal(t, string(domain.DonationAccepted), stored.Status)
}

func TestSinglePendingAcceptancePerDonation(t *testing.T) {
	db := testutil.NewTestDB(t)
	donor := testutil.CreateUser(t, db, domain.RoleDonor, "Dina", "")
	v1 := testutil.CreateUser(t, db, domain.RoleVolunteer, "V1", "")
	v2 := testutil.CreateUser(t, db, domain.RoleVolunteer, "V2", "")
	d := testutil.CreateDonation(t, db, donor.ID, testutil.DonationFixture{Area: "Downtown"})

	testutil.CreateAcceptance(t, db, d.ID, v1.ID, domain.AcceptancePending)

	err := db.Create(&entities.Acceptance{DonationID: d.ID, VolunteerID: v2.ID, Status: string(domain.AcceptancePending)}).Error
	require.Error(t, err)
	assert.True(t, utils.IsUniqueViolation(err))

	// historical acceptances do not count against the active slot
	testutil.CreateAcceptance(t, db, d.ID, v2.ID, domain.AcceptanceCancelled)
	testutil.CreateAcceptance(t, db, d.ID, v2.ID, domain.AcceptanceCancelled)
}

func TestWithTransactionRollsBack(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := donation.NewDonationRepository(db)
	donor := testutil.CreateUser(t, db, domain.RoleDonor, "Dina", "")
	d := testutil.CreateDonation(t, db, donor.ID, testutil.DonationFixture{Area: "Downtown"})
	ctx := context.Background()

	err := repo.WithTransaction(ctx, func(tx donation.DonationRepository) error {
		ok, err := tx.CompareAndSetStatus(ctx, d.ID.String(), domain.DonationAvailable, domain.DonationCancelled, nil)
		require.NoError(t, err)
		require.True(t, ok)
		return domain.ErrDonationStateChanged
	})
	require.ErrorIs(t, err, domain.ErrDonationStateChanged)

	var stored entities.Donation
	require.NoError(t, db.First(&stored, "id = ?", d.ID).Error)
	assert.Equal(t, string(domain.DonationAvailable), stored.Status)
}
