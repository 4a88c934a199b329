package domain

var (
	MessageSuccessGetMatchedDonations = "matched donations retrieved successfully"
	MessageSuccessSuggestVolunteer    = "volunteer suggestion computed successfully"

	MessageFailedGetMatchedDonations = "failed to retrieve matched donations"
	MessageFailedSuggestVolunteer    = "failed to suggest volunteer"

	ErrInvalidMaxDistance = NewError(ErrKindValidation, "maxDistance must be a non-negative number")
)

type (
	// DonationQuery is what a requester sends to see available donations.
	// MaxDistance is accepted and validated but does not affect the result yet.
	DonationQuery struct {
		Area        string   `json:"area" validate:"omitempty,max=255"`
		MaxDistance *float64 `json:"maxDistance" validate:"omitempty,gte=0"`
		VolunteerID string   `json:"volunteerId" validate:"omitempty,uuid"`
	}

	SuggestVolunteerRequest struct {
		DonationID string `json:"donationId" validate:"required,uuid"`
		Area       string `json:"area" validate:"omitempty,max=255"`
	}

	SuggestVolunteerResponse struct {
		SuggestedVolunteerID *string `json:"suggestedVolunteerId"`
	}

	MatchingPolicy struct {
		// AllowUnproven admits volunteers with no completed acceptance.
		AllowUnproven bool
		// RestrictToArea limits candidates to volunteers whose area contains the donation area.
		RestrictToArea bool
	}
)
