package routes

import (
	"food-donation-backend/domain"
	"food-donation-backend/internal/api/handlers"
	"food-donation-backend/internal/middleware"
	"food-donation-backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App             *fiber.App
	UserHandler     handlers.UserHandler
	DonationHandler handlers.DonationHandler
	MatchingHandler handlers.MatchingHandler
	RatingHandler   handlers.RatingHandler
	Middleware      middleware.Middleware
	JWTService      jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Donations()
	c.Matching()
	c.Donors()
	c.Ratings()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	// user routes
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
	}
}

func (c *Config) Donations() {
	donor := c.Middleware.RequireRole(domain.RoleDonor)
	volunteer := c.Middleware.RequireRole(domain.RoleVolunteer)
	either := c.Middleware.RequireRole(domain.RoleDonor, domain.RoleVolunteer)

	donations := c.App.Group("/api/v1/donations", c.Middleware.AuthMiddleware(c.JWTService))
	donations.Post("", donor, c.DonationHandler.CreateDonation)
	donations.Get("/mine", donor, c.DonationHandler.GetDonorDonations)
	donations.Get("/:id", c.DonationHandler.GetDonationByID)

	// lifecycle
	donations.Post("/:id/accept", volunteer, c.DonationHandler.AcceptDonation)
	donations.Post("/:id/complete", either, c.DonationHandler.CompleteDonation)
	donations.Post("/:id/cancel", donor, c.DonationHandler.CancelDonation)
}

func (c *Config) Matching() {
	matching := c.App.Group("/api/v1/matching", c.Middleware.AuthMiddleware(c.JWTService))
	matching.Get("/donations", c.MatchingHandler.GetMatchedDonations)
	matching.Post("/suggest", c.Middleware.RequireRole(domain.RoleDonor), c.MatchingHandler.SuggestVolunteer)
}

func (c *Config) Donors() {
	donors := c.App.Group("/api/v1/donors",
		c.Middleware.AuthMiddleware(c.JWTService),
		c.Middleware.RequireRole(domain.RoleDonor),
	)
	donors.Get("/profile", c.DonationHandler.GetDonorProfile)
	donors.Post("/ratings", c.RatingHandler.CreateRating)
}

func (c *Config) Ratings() {
	ratings := c.App.Group("/api/v1/ratings", c.Middleware.AuthMiddleware(c.JWTService))
	ratings.Get("/volunteers/:id", c.RatingHandler.GetVolunteerRating)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong, its works. test"})
	})
}
