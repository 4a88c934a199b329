package presenters

import (
	"errors"
	"strings"

	"food-donation-backend/domain"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type Response struct {
	Status  bool        `json:"status"`
	Message string      `json:"message"`
	Error   string      `json:"error,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func SuccessResponse(c *fiber.Ctx, data interface{}, statusCode int, message string) error {
	return c.Status(statusCode).JSON(Response{
		Status:  true,
		Message: message,
		Data:    data,
	})
}

// ErrorResponse writes a failure envelope. Details of server-side errors are
// replaced with a generic message.
func ErrorResponse(c *fiber.Ctx, statusCode int, message string, err error) error {
	detail := ""
	switch {
	case err == nil:
	case statusCode >= fiber.StatusInternalServerError:
		detail = domain.MessageFailedProcessRequest
	default:
		detail = errorDetail(err)
	}

	return c.Status(statusCode).JSON(Response{
		Status:  false,
		Message: message,
		Error:   detail,
	})
}

// StatusFromError maps an error kind onto an HTTP status.
func StatusFromError(err error) int {
	var validationErrs validator.ValidationErrors
	switch {
	case errors.As(err, &validationErrs):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrTokenInvalid),
		errors.Is(err, domain.ErrTokenExpired),
		errors.Is(err, domain.ErrTokenNotFound):
		return fiber.StatusUnauthorized
	case errors.Is(err, domain.ErrKindValidation):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrKindNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrKindForbidden):
		return fiber.StatusForbidden
	case errors.Is(err, domain.ErrKindConflict):
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

func errorDetail(err error) string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err.Error()
	}

	fields := make([]string, 0, len(validationErrs))
	for _, fe := range validationErrs {
		fields = append(fields, fe.Field()+" failed on "+fe.Tag())
	}
	return strings.Join(fields, "; ")
}
