package donation

import (
	"food-donation-backend/domain"
	"food-donation-backend/entities"
)

// NewDonationView shapes a stored donation for clients. Donor contact details
// are limited to name and phone.
func NewDonationView(d *entities.Donation) *domain.Donation {
	view := &domain.Donation{
		ID:                  d.ID.String(),
		DonorID:             d.DonorID.String(),
		Area:                d.Area,
		ApproxQuantity:      d.ApproxQuantity,
		PreferredPickupTime: d.PreferredPickupTime,
		Description:         d.Description,
		Status:              domain.DonationStatus(d.Status),
		Photos:              make([]*domain.DonationPhoto, 0, len(d.Photos)),
		CompletedAt:         d.CompletedAt,
		CreatedAt:           d.CreatedAt,
	}

	if d.SuggestedVolunteerID != nil {
		id := d.SuggestedVolunteerID.String()
		view.SuggestedVolunteerID = &id
	}

	for _, p := range d.Photos {
		view.Photos = append(view.Photos, &domain.DonationPhoto{
			ID:  p.ID.String(),
			URL: p.URL,
		})
	}

	if d.Donor != nil {
		view.Donor = &domain.DonorContact{
			Name:  d.Donor.Name,
			Phone: d.Donor.Phone,
		}
	}

	return view
}

func NewAcceptanceView(a *entities.Acceptance) *domain.Acceptance {
	return &domain.Acceptance{
		ID:          a.ID.String(),
		DonationID:  a.DonationID.String(),
		VolunteerID: a.VolunteerID.String(),
		Status:      domain.AcceptanceStatus(a.Status),
		CompletedAt: a.CompletedAt,
		CreatedAt:   a.CreatedAt,
	}
}
