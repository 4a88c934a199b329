package handlers

import (
	"food-donation-backend/domain"
	"food-donation-backend/internal/api/presenters"
	"food-donation-backend/pkg/rating"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	RatingHandler interface {
		CreateRating(c *fiber.Ctx) error
		GetVolunteerRating(c *fiber.Ctx) error
	}

	ratingHandler struct {
		ratingService rating.RatingService
		validator     *validator.Validate
	}
)

func NewRatingHandler(ratingService rating.RatingService, validator *validator.Validate) RatingHandler {
	return &ratingHandler{
		ratingService: ratingService,
		validator:     validator,
	}
}

func (h *ratingHandler) CreateRating(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	req := new(domain.CreateRatingRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateRating, err)
	}

	res, err := h.ratingService.CreateRating(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err), domain.MessageFailedCreateRating, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateRating)
}

func (h *ratingHandler) GetVolunteerRating(c *fiber.Ctx) error {
	res, err := h.ratingService.GetVolunteerRatingSummary(c.Context(), c.Params("id"))
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err), domain.MessageFailedGetVolunteerRating, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetVolunteerRating)
}
