package domain

import (
	"mime/multipart"
	"time"
)

var (
	MessageSuccessCreateDonation   = "donation created successfully"
	MessageSuccessGetDonations     = "donations retrieved successfully"
	MessageSuccessAcceptDonation   = "donation accepted successfully"
	MessageSuccessCompleteDonation = "donation completed successfully"
	MessageSuccessCancelDonation   = "donation cancelled successfully"
	MessageSuccessGetDonorProfile  = "donor profile retrieved successfully"

	MessageFailedCreateDonation   = "failed to create donation"
	MessageFailedGetDonations     = "failed to retrieve donations"
	MessageFailedAcceptDonation   = "failed to accept donation"
	MessageFailedCompleteDonation = "failed to complete donation"
	MessageFailedCancelDonation   = "failed to cancel donation"
	MessageFailedGetDonorProfile  = "failed to retrieve donor profile"

	ErrDonationNotFound            = NewError(ErrKindNotFound, "donation not found")
	ErrDonorNotFound               = NewError(ErrKindNotFound, "donor not found")
	ErrUnauthorizedDonationAccess  = NewError(ErrKindForbidden, "unauthorized access to donation")
	ErrInvalidDonationStatus       = NewError(ErrKindValidation, "invalid donation status")
	ErrInvalidQuantity             = NewError(ErrKindValidation, "approximate quantity must be greater than zero")
	ErrInvalidPickupTime           = NewError(ErrKindValidation, "preferred pickup time must be RFC3339")
	ErrInvalidPhoto                = NewError(ErrKindValidation, "invalid donation photo")
	ErrInvalidDonationTransition   = NewError(ErrKindConflict, "invalid donation status transition")
	ErrInvalidAcceptanceTransition = NewError(ErrKindConflict, "invalid acceptance status transition")
	ErrDonationAlreadyClaimed      = NewError(ErrKindConflict, "donation already claimed")
	ErrDonationNotAvailable        = NewError(ErrKindConflict, "donation is not available")
	ErrNoActiveAcceptance          = NewError(ErrKindConflict, "donation has no active acceptance")
	ErrDonationStateChanged        = NewError(ErrKindConflict, "donation was modified concurrently")
)

type (
	CreateDonationRequest struct {
		Area                string                  `json:"area" form:"area" validate:"required,max=255"`
		ApproxQuantity      float64                 `json:"approxQuantity" form:"approxQuantity" validate:"required,gt=0"`
		PreferredPickupTime string                  `json:"preferredPickupTime" form:"preferredPickupTime" validate:"required"`
		Description         string                  `json:"description" form:"description" validate:"omitempty,max=1000"`
		Photos              []*multipart.FileHeader `json:"-" form:"-"`
	}

	DonationPhoto struct {
		ID  string `json:"id"`
		URL string `json:"url"`
	}

	// DonorContact is the reduced donor projection shown to volunteers.
	DonorContact struct {
		Name  string `json:"name"`
		Phone string `json:"phone"`
	}

	Donation struct {
		ID                   string           `json:"id"`
		DonorID              string           `json:"donorId"`
		Area                 string           `json:"area"`
		ApproxQuantity       float64          `json:"approxQuantity"`
		PreferredPickupTime  time.Time        `json:"preferredPickupTime"`
		Description          string           `json:"description,omitempty"`
		Status               DonationStatus   `json:"status"`
		SuggestedVolunteerID *string          `json:"suggestedVolunteerId"`
		Photos               []*DonationPhoto `json:"photos"`
		Donor                *DonorContact    `json:"donor,omitempty"`
		CompletedAt          *time.Time       `json:"completedAt,omitempty"`
		CreatedAt            time.Time        `json:"createdAt"`
	}

	Acceptance struct {
		ID          string           `json:"id"`
		DonationID  string           `json:"donationId"`
		VolunteerID string           `json:"volunteerId"`
		Status      AcceptanceStatus `json:"status"`
		CompletedAt *time.Time       `json:"completedAt,omitempty"`
		CreatedAt   time.Time        `json:"createdAt"`
	}

	DonorSummary struct {
		ID                 string    `json:"id"`
		Name               string    `json:"name"`
		Email              string    `json:"email"`
		Phone              string    `json:"phone"`
		CreatedAt          time.Time `json:"createdAt"`
		TotalDonations     int       `json:"totalDonations"`
		TotalMealsShared   float64   `json:"totalMealsShared"`
		CompletedDonations int       `json:"completedDonations"`
	}
)
