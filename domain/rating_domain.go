package domain

import "time"

const (
	RatingMin = 1
	RatingMax = 5
)

var (
	MessageSuccessCreateRating       = "rating created successfully"
	MessageSuccessGetVolunteerRating = "volunteer rating retrieved successfully"

	MessageFailedCreateRating       = "failed to create rating"
	MessageFailedGetVolunteerRating = "failed to retrieve volunteer rating"

	ErrRatingOutOfRange       = NewError(ErrKindValidation, "rating must be between 1 and 5")
	ErrDonationNotCompleted   = NewError(ErrKindValidation, "donation is not completed")
	ErrVolunteerNotOnDonation = NewError(ErrKindValidation, "volunteer did not complete this donation")
	ErrRatingExists           = NewError(ErrKindConflict, "rating already exists")
	ErrVolunteerNotFound      = NewError(ErrKindNotFound, "volunteer not found")
)

type (
	CreateRatingRequest struct {
		DonationID  string `json:"donationId" validate:"required,uuid"`
		VolunteerID string `json:"volunteerId" validate:"required,uuid"`
		Rating      int    `json:"rating" validate:"required,min=1,max=5"`
		Comment     string `json:"comment" validate:"omitempty,max=1000"`
	}

	Rating struct {
		ID          string    `json:"id"`
		DonationID  string    `json:"donationId"`
		DonorID     string    `json:"donorId"`
		VolunteerID string    `json:"volunteerId"`
		Rating      int       `json:"rating"`
		Comment     string    `json:"comment,omitempty"`
		CreatedAt   time.Time `json:"createdAt"`
	}

	VolunteerRatingSummary struct {
		VolunteerID   string  `json:"volunteerId"`
		AverageRating float64 `json:"averageRating"`
		TotalRatings  int     `json:"totalRatings"`
	}
)
