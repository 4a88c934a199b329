package handlers_test

import (
	"fmt"
	"net/http"
	"testing"

	"food-donation-backend/domain"
	"food-donation-backend/internal/api/handlers"
	"food-donation-backend/internal/api/routes"
	"food-donation-backend/internal/middleware"
	"food-donation-backend/internal/testutil"
	"food-donation-backend/internal/utils"
	"food-donation-backend/pkg/donation"
	"food-donation-backend/pkg/jwt"
	"food-donation-backend/pkg/matching"
	"food-donation-backend/pkg/rating"
	"food-donation-backend/pkg/user"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newIntegrationApp(t *testing.T) (*fiber.App, jwt.JWTService) {
	t.Helper()
	utils.InitValidator()

	db := testutil.NewTestDB(t)
	jwtService := jwt.NewJWTService("secret")
	app := fiber.New()

	cfg := routes.Config{
		App:             app,
		UserHandler:     handlers.NewUserHandler(user.NewUserService(user.NewUserRepository(db), jwtService), utils.Validate),
		DonationHandler: handlers.NewDonationHandler(donation.NewDonationService(donation.NewDonationRepository(db), nil), utils.Validate),
		MatchingHandler: handlers.NewMatchingHandler(matching.NewMatchingService(matching.NewMatchingRepository(db), domain.MatchingPolicy{}), utils.Validate),
		RatingHandler:   handlers.NewRatingHandler(rating.NewRatingService(rating.NewRatingRepository(db)), utils.Validate),
		Middleware:      middleware.NewMiddleware(),
		JWTService:      jwtService,
	}
	cfg.Setup()
	return app, jwtService
}

type client struct {
	t     *testing.T
	app   *fiber.App
	token string
}

func (c *client) do(method, path, body string) (int, map[string]any) {
	f := &fixture{app: c.app}
	return f.doWithToken(c.t, method, path, c.token, body)
}

func register(t *testing.T, app *fiber.App, name, role string) *client {
	t.Helper()
	anon := &client{t: t, app: app}

	email := fmt.Sprintf("%s@example.com", name)
	code, _ := anon.do(http.MethodPost, "/api/v1/users/register",
		fmt.Sprintf(`{"name":%q,"email":%q,"password":"secret1","role":%q,"area":"Downtown"}`, name, email, role))
	require.Equal(t, fiber.StatusCreated, code)

	code, body := anon.do(http.MethodPost, "/api/v1/users/login", fmt.Sprintf(`{"email":%q,"password":"secret1"}`, email))
	require.Equal(t, fiber.StatusOK, code)

	token := body["data"].(map[string]any)["token"].(string)
	return &client{t: t, app: app, token: token}
}

func TestDonationFlow(t *testing.T) {
	app, _ := newIntegrationApp(t)
	donor := register(t, app, "dina", domain.RoleDonor)
	volunteer := register(t, app, "vic", domain.RoleVolunteer)
	rival := register(t, app, "rex", domain.RoleVolunteer)

	code, body := donor.do(http.MethodPost, "/api/v1/donations",
		`{"area":"Downtown","approxQuantity":8,"preferredPickupTime":"2026-04-01T10:00:00Z","description":"bread"}`)
	require.Equal(t, fiber.StatusCreated, code)
	created := body["data"].(map[string]any)
	donationID := created["id"].(string)
	assert.Equal(t, "available", created["status"])

	code, body = volunteer.do(http.MethodGet, "/api/v1/matching/donations?area=down", "")
	require.Equal(t, fiber.StatusOK, code)
	listed := body["data"].([]any)
	require.Len(t, listed, 1)
	assert.Equal(t, "dina", listed[0].(map[string]any)["donor"].(map[string]any)["name"])

	code, _ = donor.do(http.MethodPost, "/api/v1/donations/"+donationID+"/accept", "")
	assert.Equal(t, fiber.StatusForbidden, code)

	code, _ = volunteer.do(http.MethodPost, "/api/v1/donations/"+donationID+"/accept", "")
	require.Equal(t, fiber.StatusCreated, code)

	code, _ = rival.do(http.MethodPost, "/api/v1/donations/"+donationID+"/accept", "")
	assert.Equal(t, fiber.StatusConflict, code)

	code, body = volunteer.do(http.MethodGet, "/api/v1/matching/donations", "")
	require.Equal(t, fiber.StatusOK, code)
	assert.Empty(t, body["data"])

	code, body = volunteer.do(http.MethodPost, "/api/v1/donations/"+donationID+"/complete", "")
	require.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, "completed", body["data"].(map[string]any)["status"])

	code, body = volunteer.do(http.MethodGet, "/api/v1/users/me", "")
	require.Equal(t, fiber.StatusOK, code)
	volunteerID := body["data"].(map[string]any)["id"].(string)

	rate := fmt.Sprintf(`{"donationId":%q,"volunteerId":%q,"rating":4,"comment":"friendly"}`, donationID, volunteerID)
	code, _ = donor.do(http.MethodPost, "/api/v1/donors/ratings", rate)
	require.Equal(t, fiber.StatusCreated, code)

	code, _ = donor.do(http.MethodPost, "/api/v1/donors/ratings", rate)
	assert.Equal(t, fiber.StatusConflict, code)

	code, body = rival.do(http.MethodGet, "/api/v1/ratings/volunteers/"+volunteerID, "")
	require.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, float64(4), body["data"].(map[string]any)["averageRating"])

	code, body = donor.do(http.MethodGet, "/api/v1/donors/profile", "")
	require.Equal(t, fiber.StatusOK, code)
	profile := body["data"].(map[string]any)
	assert.Equal(t, float64(1), profile["totalDonations"])
	assert.Equal(t, float64(8), profile["totalMealsShared"])
	assert.Equal(t, float64(1), profile["completedDonations"])

	code, body = donor.do(http.MethodGet, "/api/v1/donations/mine", "")
	require.Equal(t, fiber.StatusOK, code)
	assert.Len(t, body["data"].(map[string]any)["donations"], 1)
}

func TestCancelFlow(t *testing.T) {
	app, _ := newIntegrationApp(t)
	donor := register(t, app, "dina", domain.RoleDonor)
	volunteer := register(t, app, "vic", domain.RoleVolunteer)

	code, body := donor.do(http.MethodPost, "/api/v1/donations",
		`{"area":"Harbor","approxQuantity":3,"preferredPickupTime":"2026-04-01T10:00:00Z"}`)
	require.Equal(t, fiber.StatusCreated, code)
	donationID := body["data"].(map[string]any)["id"].(string)

	code, _ = volunteer.do(http.MethodPost, "/api/v1/donations/"+donationID+"/cancel", "")
	assert.Equal(t, fiber.StatusForbidden, code)

	code, body = donor.do(http.MethodPost, "/api/v1/donations/"+donationID+"/cancel", "")
	require.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, "cancelled", body["data"].(map[string]any)["status"])

	code, _ = volunteer.do(http.MethodPost, "/api/v1/donations/"+donationID+"/accept", "")
	assert.Equal(t, fiber.StatusConflict, code)

	code, _ = donor.do(http.MethodGet, "/api/v1/donations/not-a-uuid", "")
	assert.Equal(t, fiber.StatusBadRequest, code)
}

func TestCreateDonationValidation(t *testing.T) {
	app, _ := newIntegrationApp(t)
	donor := register(t, app, "dina", domain.RoleDonor)

	code, _ := donor.do(http.MethodPost, "/api/v1/donations", `{"area":"Harbor","approxQuantity":0,"preferredPickupTime":"2026-04-01T10:00:00Z"}`)
	assert.Equal(t, fiber.StatusBadRequest, code)

	code, _ = donor.do(http.MethodPost, "/api/v1/donations", `{"area":"Harbor","approxQuantity":2,"preferredPickupTime":"soon"}`)
	assert.Equal(t, fiber.StatusBadRequest, code)
}
