package handlers

import (
	"strconv"

	"food-donation-backend/domain"
	"food-donation-backend/internal/api/presenters"
	"food-donation-backend/pkg/matching"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	MatchingHandler interface {
		GetMatchedDonations(c *fiber.Ctx) error
		SuggestVolunteer(c *fiber.Ctx) error
	}

	matchingHandler struct {
		matchingService matching.MatchingService
		validator       *validator.Validate
	}
)

func NewMatchingHandler(matchingService matching.MatchingService, validator *validator.Validate) MatchingHandler {
	return &matchingHandler{
		matchingService: matchingService,
		validator:       validator,
	}
}

func (h *matchingHandler) GetMatchedDonations(c *fiber.Ctx) error {
	query := domain.DonationQuery{
		Area:        c.Query("area"),
		VolunteerID: c.Query("volunteerId"),
	}

	if raw := c.Query("maxDistance"); raw != "" {
		maxDistance, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetMatchedDonations, domain.ErrInvalidMaxDistance)
		}
		query.MaxDistance = &maxDistance
	}

	if err := h.validator.Struct(query); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetMatchedDonations, err)
	}

	donations, err := h.matchingService.GetMatchedDonations(c.Context(), query)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err), domain.MessageFailedGetMatchedDonations, err)
	}

	return presenters.SuccessResponse(c, donations, fiber.StatusOK, domain.MessageSuccessGetMatchedDonations)
}

func (h *matchingHandler) SuggestVolunteer(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	req := new(domain.SuggestVolunteerRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSuggestVolunteer, err)
	}

	res, err := h.matchingService.SuggestVolunteer(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err), domain.MessageFailedSuggestVolunteer, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessSuggestVolunteer)
}
