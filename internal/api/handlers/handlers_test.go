package handlers_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"food-donation-backend/domain"
	"food-donation-backend/internal/api/handlers"
	"food-donation-backend/internal/api/routes"
	"food-donation-backend/internal/middleware"
	"food-donation-backend/internal/utils"
	"food-donation-backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMatchingService struct {
	lastQuery  domain.DonationQuery
	lastDonor  string
	donations  []*domain.Donation
	suggestion *domain.SuggestVolunteerResponse
	err        error
}

func (f *fakeMatchingService) GetMatchedDonations(_ context.Context, query domain.DonationQuery) ([]*domain.Donation, error) {
	f.lastQuery = query
	return f.donations, f.err
}

func (f *fakeMatchingService) SuggestVolunteer(_ context.Context, _ domain.SuggestVolunteerRequest, donorID string) (*domain.SuggestVolunteerResponse, error) {
	f.lastDonor = donorID
	return f.suggestion, f.err
}

type fakeRatingService struct {
	err error
}

func (f *fakeRatingService) CreateRating(_ context.Context, req domain.CreateRatingRequest, donorID string) (*domain.Rating, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Rating{ID: uuid.NewString(), DonationID: req.DonationID, DonorID: donorID, VolunteerID: req.VolunteerID, Rating: req.Rating}, nil
}

func (f *fakeRatingService) GetVolunteerRatingSummary(_ context.Context, volunteerID string) (*domain.VolunteerRatingSummary, error) {
	return &domain.VolunteerRatingSummary{VolunteerID: volunteerID}, f.err
}

type fixture struct {
	app      *fiber.App
	jwt      jwt.JWTService
	matching *fakeMatchingService
	rating   *fakeRatingService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	utils.InitValidator()

	f := &fixture{
		app:      fiber.New(),
		jwt:      jwt.NewJWTService("secret"),
		matching: &fakeMatchingService{},
		rating:   &fakeRatingService{},
	}

	cfg := routes.Config{
		App:             f.app,
		DonationHandler: handlers.NewDonationHandler(nil, utils.Validate),
		MatchingHandler: handlers.NewMatchingHandler(f.matching, utils.Validate),
		RatingHandler:   handlers.NewRatingHandler(f.rating, utils.Validate),
		Middleware:      middleware.NewMiddleware(),
		JWTService:      f.jwt,
	}
	cfg.Matching()
	cfg.Ratings()
	cfg.Donors()
	return f
}

func (f *fixture) do(t *testing.T, method, path, role, body string) (int, map[string]any) {
	t.Helper()

	token := ""
	if role != "" {
		token = f.jwt.GenerateTokenUser(uuid.NewString(), role)
	}
	return f.doWithToken(t, method, path, token, body)
}

func (f *fixture) doWithToken(t *testing.T, method, path, token, body string) (int, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}

	resp, err := f.app.Test(req)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	out := map[string]any{}
	require.NoError(t, json.Unmarshal(raw, &out))
	return resp.StatusCode, out
}

func TestGetMatchedDonations_ParsesQuery(t *testing.T) {
	f := newFixture(t)
	volunteerID := uuid.NewString()
	f.matching.donations = []*domain.Donation{{ID: "d1", Area: "Downtown", Photos: []*domain.DonationPhoto{}}}

	code, body := f.do(t, http.MethodGet, "/api/v1/matching/donations?area=Down&maxDistance=2.5&volunteerId="+volunteerID, domain.RoleVolunteer, "")
	assert.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, true, body["status"])

	assert.Equal(t, "Down", f.matching.lastQuery.Area)
	require.NotNil(t, f.matching.lastQuery.MaxDistance)
	assert.Equal(t, 2.5, *f.matching.lastQuery.MaxDistance)
	assert.Equal(t, volunteerID, f.matching.lastQuery.VolunteerID)

	data := body["data"].([]any)
	require.Len(t, data, 1)
	first := data[0].(map[string]any)
	assert.Equal(t, "d1", first["id"])
	assert.Contains(t, first, "suggestedVolunteerId")
}

func TestGetMatchedDonations_BadMaxDistance(t *testing.T) {
	f := newFixture(t)

	code, _ := f.do(t, http.MethodGet, "/api/v1/matching/donations?maxDistance=far", domain.RoleVolunteer, "")
	assert.Equal(t, fiber.StatusBadRequest, code)

	code, _ = f.do(t, http.MethodGet, "/api/v1/matching/donations?maxDistance=-3", domain.RoleVolunteer, "")
	assert.Equal(t, fiber.StatusBadRequest, code)
}

func TestGetMatchedDonations_RequiresAuth(t *testing.T) {
	f := newFixture(t)

	code, _ := f.do(t, http.MethodGet, "/api/v1/matching/donations", "", "")
	assert.Equal(t, fiber.StatusUnauthorized, code)
}

func TestSuggestVolunteer_NullSuggestion(t *testing.T) {
	f := newFixture(t)
	f.matching.suggestion = &domain.SuggestVolunteerResponse{}

	code, body := f.do(t, http.MethodPost, "/api/v1/matching/suggest", domain.RoleDonor,
		`{"donationId":"`+uuid.NewString()+`","area":"Downtown"}`)
	assert.Equal(t, fiber.StatusOK, code)

	data := body["data"].(map[string]any)
	assert.Contains(t, data, "suggestedVolunteerId")
	assert.Nil(t, data["suggestedVolunteerId"])
	assert.NotEmpty(t, f.matching.lastDonor)
}

func TestSuggestVolunteer_Guards(t *testing.T) {
	f := newFixture(t)

	code, _ := f.do(t, http.MethodPost, "/api/v1/matching/suggest", domain.RoleVolunteer, `{"donationId":"`+uuid.NewString()+`"}`)
	assert.Equal(t, fiber.StatusForbidden, code)

	code, _ = f.do(t, http.MethodPost, "/api/v1/matching/suggest", domain.RoleDonor, `{"area":"Downtown"}`)
	assert.Equal(t, fiber.StatusBadRequest, code)

	f.matching.err = domain.ErrDonationNotFound
	code, _ = f.do(t, http.MethodPost, "/api/v1/matching/suggest", domain.RoleDonor, `{"donationId":"`+uuid.NewString()+`"}`)
	assert.Equal(t, fiber.StatusNotFound, code)
}

func TestCreateRating(t *testing.T) {
	f := newFixture(t)
	payload := `{"donationId":"` + uuid.NewString() + `","volunteerId":"` + uuid.NewString() + `","rating":5}`

	code, body := f.do(t, http.MethodPost, "/api/v1/donors/ratings", domain.RoleDonor, payload)
	assert.Equal(t, fiber.StatusCreated, code)
	assert.Equal(t, float64(5), body["data"].(map[string]any)["rating"])

	f.rating.err = domain.ErrRatingExists
	code, body = f.do(t, http.MethodPost, "/api/v1/donors/ratings", domain.RoleDonor, payload)
	assert.Equal(t, fiber.StatusConflict, code)
	assert.Equal(t, domain.ErrRatingExists.Error(), body["error"])

	outOfRange := `{"donationId":"` + uuid.NewString() + `","volunteerId":"` + uuid.NewString() + `","rating":9}`
	code, _ = f.do(t, http.MethodPost, "/api/v1/donors/ratings", domain.RoleDonor, outOfRange)
	assert.Equal(t, fiber.StatusBadRequest, code)
}

func TestStorageFailureIsGeneric(t *testing.T) {
	f := newFixture(t)
	f.matching.err = domain.NewStorageError("list", assert.AnError)

	code, body := f.do(t, http.MethodGet, "/api/v1/matching/donations", domain.RoleDonor, "")
	assert.Equal(t, fiber.StatusInternalServerError, code)
	assert.Equal(t, domain.MessageFailedProcessRequest, body["error"])
	assert.NotContains(t, body["error"], assert.AnError.Error())
}
