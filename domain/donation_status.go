package domain

import "fmt"

type DonationStatus string

const (
	DonationAvailable DonationStatus = "available"
	DonationAccepted  DonationStatus = "accepted"
	DonationCompleted DonationStatus = "completed"
	DonationCancelled DonationStatus = "cancelled"
)

var donationTransitions = map[DonationStatus][]DonationStatus{
	DonationAvailable: {DonationAccepted, DonationCancelled},
	DonationAccepted:  {DonationCompleted, DonationCancelled},
}

func ParseDonationStatus(s string) (DonationStatus, error) {
	switch status := DonationStatus(s); status {
	case DonationAvailable, DonationAccepted, DonationCompleted, DonationCancelled:
		return status, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidDonationStatus, s)
}

func (s DonationStatus) IsTerminal() bool {
	return s == DonationCompleted || s == DonationCancelled
}

// Transition returns next when the lifecycle allows moving from s to next.
// Terminal statuses have no outgoing edges, so a cancelled donation is never relisted.
func (s DonationStatus) Transition(next DonationStatus) (DonationStatus, error) {
	for _, allowed := range donationTransitions[s] {
		if allowed == next {
			return next, nil
		}
	}
	return s, fmt.Errorf("%w: %s -> %s", ErrInvalidDonationTransition, s, next)
}

type AcceptanceStatus string

const (
	AcceptancePending   AcceptanceStatus = "pending"
	AcceptanceCompleted AcceptanceStatus = "completed"
	AcceptanceCancelled AcceptanceStatus = "cancelled"
)

var acceptanceTransitions = map[AcceptanceStatus][]AcceptanceStatus{
	AcceptancePending: {AcceptanceCompleted, AcceptanceCancelled},
}

func (s AcceptanceStatus) Transition(next AcceptanceStatus) (AcceptanceStatus, error) {
	for _, allowed := range acceptanceTransitions[s] {
		if allowed == next {
			return next, nil
		}
	}
	return s, fmt.Errorf("%w: %s -> %s", ErrInvalidAcceptanceTransition, s, next)
}

// AcceptanceFor is the acceptance status that must accompany a donation status.
// Only completed and cancelled donations drag their active acceptance along.
func AcceptanceFor(s DonationStatus) (AcceptanceStatus, bool) {
	switch s {
	case DonationCompleted:
		return AcceptanceCompleted, true
	case DonationCancelled:
		return AcceptanceCancelled, true
	}
	return "", false
}
