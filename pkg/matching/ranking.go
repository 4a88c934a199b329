package matching

import (
	"sort"
	"strings"

	"food-donation-backend/domain"
)

type (
	// VolunteerRecord is a volunteer's track record as the ranking sees it.
	VolunteerRecord struct {
		ID                   string
		Area                 string
		CompletedAcceptances int
		Ratings              []int
	}

	RankedVolunteer struct {
		ID           string
		Score        float64
		TotalRatings int
	}
)

// MeanRating is the arithmetic mean of ratings, 0 for an empty history.
func MeanRating(ratings []int) float64 {
	if len(ratings) == 0 {
		return 0
	}

	var sum int
	for _, r := range ratings {
		sum += r
	}
	return float64(sum) / float64(len(ratings))
}

// RankVolunteers scores every eligible candidate and orders them best first.
// Ties fall back to the larger rating count, then the smaller identifier.
func RankVolunteers(candidates []VolunteerRecord, policy domain.MatchingPolicy) []RankedVolunteer {
	ranked := make([]RankedVolunteer, 0, len(candidates))
	for _, c := range candidates {
		if c.CompletedAcceptances == 0 && !policy.AllowUnproven {
			continue
		}
		ranked = append(ranked, RankedVolunteer{
			ID:           c.ID,
			Score:        MeanRating(c.Ratings),
			TotalRatings: len(c.Ratings),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.Score != b.Score {
			return a.Score > b.Score
		}
		if a.TotalRatings != b.TotalRatings {
			return a.TotalRatings > b.TotalRatings
		}
		return a.ID < b.ID
	})
	return ranked
}

// BestVolunteer returns the top-ranked identifier, or false when nobody is eligible.
func BestVolunteer(candidates []VolunteerRecord, policy domain.MatchingPolicy) (string, bool) {
	ranked := RankVolunteers(candidates, policy)
	if len(ranked) == 0 {
		return "", false
	}
	return ranked[0].ID, true
}

// FilterByArea keeps candidates whose area contains area, ignoring case.
// A blank area keeps everyone.
func FilterByArea(candidates []VolunteerRecord, area string) []VolunteerRecord {
	needle := strings.ToLower(strings.TrimSpace(area))
	if needle == "" {
		return candidates
	}

	filtered := make([]VolunteerRecord, 0, len(candidates))
	for _, c := range candidates {
		if strings.Contains(strings.ToLower(c.Area), needle) {
			filtered = append(filtered, c)
		}
	}
	return filtered
}
