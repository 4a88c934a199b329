package handlers

import (
	"strconv"

	"food-donation-backend/domain"
	"food-donation-backend/internal/api/presenters"
	"food-donation-backend/pkg/donation"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	DonationHandler interface {
		CreateDonation(c *fiber.Ctx) error
		GetDonorDonations(c *fiber.Ctx) error
		GetDonationByID(c *fiber.Ctx) error
		AcceptDonation(c *fiber.Ctx) error
		CompleteDonation(c *fiber.Ctx) error
		CancelDonation(c *fiber.Ctx) error
		GetDonorProfile(c *fiber.Ctx) error
	}

	donationHandler struct {
		donationService donation.DonationService
		validator       *validator.Validate
	}
)

func NewDonationHandler(donationService donation.DonationService, validator *validator.Validate) DonationHandler {
	return &donationHandler{
		donationService: donationService,
		validator:       validator,
	}
}

func (h *donationHandler) CreateDonation(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	req := new(domain.CreateDonationRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if form, err := c.MultipartForm(); err == nil {
		req.Photos = form.File["photos"]
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateDonation, err)
	}

	res, err := h.donationService.CreateDonation(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err), domain.MessageFailedCreateDonation, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateDonation)
}

func (h *donationHandler) GetDonorDonations(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(c.Query("limit", "20"))
	if err != nil || limit < 1 || limit > 100 {
		limit = 20
	}

	donations, count, err := h.donationService.GetDonorDonations(c.Context(), userID, c.Query("status"), page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err), domain.MessageFailedGetDonations, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"donations": donations,
		"pagination": fiber.Map{
			"page":       page,
			"limit":      limit,
			"total":      count,
			"totalPages": (count + int64(limit) - 1) / int64(limit),
		},
	}, fiber.StatusOK, domain.MessageSuccessGetDonations)
}

func (h *donationHandler) GetDonationByID(c *fiber.Ctx) error {
	res, err := h.donationService.GetDonationByID(c.Context(), c.Params("id"))
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err), domain.MessageFailedGetDonations, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetDonations)
}

func (h *donationHandler) AcceptDonation(c *fiber.Ctx) error {
	res, err := h.donationService.AcceptDonation(c.Context(), c.Params("id"), principalFrom(c))
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err), domain.MessageFailedAcceptDonation, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAcceptDonation)
}

func (h *donationHandler) CompleteDonation(c *fiber.Ctx) error {
	res, err := h.donationService.CompleteDonation(c.Context(), c.Params("id"), principalFrom(c))
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err), domain.MessageFailedCompleteDonation, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessCompleteDonation)
}

func (h *donationHandler) CancelDonation(c *fiber.Ctx) error {
	res, err := h.donationService.CancelDonation(c.Context(), c.Params("id"), principalFrom(c))
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err), domain.MessageFailedCancelDonation, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessCancelDonation)
}

func (h *donationHandler) GetDonorProfile(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.donationService.GetDonorSummary(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err), domain.MessageFailedGetDonorProfile, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetDonorProfile)
}
