package handlers

import (
	"food-donation-backend/domain"

	"github.com/gofiber/fiber/v2"
)

func principalFrom(c *fiber.Ctx) domain.Principal {
	userID, _ := c.Locals("user_id").(string)
	role, _ := c.Locals("role").(string)
	return domain.Principal{ID: userID, Role: role}
}
