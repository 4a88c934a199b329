package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDonationStatusTransition(t *testing.T) {
	tests := []struct {
		from, to DonationStatus
		ok       bool
	}{
		{DonationAvailable, DonationAccepted, true},
		{DonationAvailable, DonationCancelled, true},
		{DonationAvailable, DonationCompleted, false},
		{DonationAccepted, DonationCompleted, true},
		{DonationAccepted, DonationCancelled, true},
		{DonationAccepted, DonationAvailable, false},
		{DonationCompleted, DonationCancelled, false},
		{DonationCompleted, DonationAvailable, false},
		{DonationCancelled, DonationAvailable, false},
		{DonationCancelled, DonationAccepted, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			got, err := tt.from.Transition(tt.to)
			if tt.ok {
				assert.NoError(t, err)
				assert.Equal(t, tt.to, got)
				return
			}
			assert.ErrorIs(t, err, ErrInvalidDonationTransition)
			assert.ErrorIs(t, err, ErrKindConflict)
			assert.Equal(t, tt.from, got)
		})
	}
}

func TestAcceptanceStatusTransition(t *testing.T) {
	_, err := AcceptancePending.Transition(AcceptanceCompleted)
	assert.NoError(t, err)
	_, err = AcceptancePending.Transition(AcceptanceCancelled)
	assert.NoError(t, err)
	_, err = AcceptanceCompleted.Transition(AcceptanceCancelled)
	assert.ErrorIs(t, err, ErrInvalidAcceptanceTransition)
	_, err = AcceptanceCancelled.Transition(AcceptancePending)
	assert.ErrorIs(t, err, ErrInvalidAcceptanceTransition)
}

func TestAcceptanceFor(t *testing.T) {
	s, ok := AcceptanceFor(DonationCompleted)
	assert.True(t, ok)
	assert.Equal(t, AcceptanceCompleted, s)

	s, ok = AcceptanceFor(DonationCancelled)
	assert.True(t, ok)
	assert.Equal(t, AcceptanceCancelled, s)

	_, ok = AcceptanceFor(DonationAccepted)
	assert.False(t, ok)
}

func TestParseDonationStatus(t *testing.T) {
	s, err := ParseDonationStatus("accepted")
	assert.NoError(t, err)
	assert.Equal(t, DonationAccepted, s)
	assert.False(t, s.IsTerminal())
	assert.True(t, DonationCancelled.IsTerminal())

	_, err = ParseDonationStatus("Accepted")
	assert.ErrorIs(t, err, ErrKindValidation)
}

func TestStorageErrorKind(t *testing.T) {
	err := NewStorageError("op", assert.AnError)
	assert.ErrorIs(t, err, ErrKindStorage)
	assert.ErrorIs(t, err, assert.AnError)
	assert.NotErrorIs(t, err, ErrKindConflict)
}
