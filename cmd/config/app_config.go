package config

import (
	"os"
	"path/filepath"
	"time"

	"food-donation-backend/domain"
	"food-donation-backend/internal/api/handlers"
	"food-donation-backend/internal/api/routes"
	"food-donation-backend/internal/middleware"
	"food-donation-backend/internal/utils"
	"food-donation-backend/internal/utils/storage"
	"food-donation-backend/pkg/donation"
	"food-donation-backend/pkg/jwt"
	"food-donation-backend/pkg/matching"
	"food-donation-backend/pkg/rating"
	"food-donation-backend/pkg/user"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	logPath := utils.GetConfig("LOG_FILE")
	if err := os.MkdirAll(filepath.Dir(logPath), os.ModePerm); err != nil {
		return nil, err
	}
	file, err := os.OpenFile(
		logPath,
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		return nil, err
	}
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Asia/Jakarta",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	var s3 storage.AwsS3
	if utils.GetConfig("AWS_S3_BUCKET") != "" {
		s3 = storage.NewAwsS3()
	} else {
		log.Warn("AWS_S3_BUCKET not set, donation photo uploads are disabled")
	}

	policy := domain.MatchingPolicy{
		AllowUnproven:  utils.GetConfigBool("MATCHING_ALLOW_UNPROVEN"),
		RestrictToArea: utils.GetConfigBool("MATCHING_RESTRICT_AREA"),
	}

	// Repository
	userRepository := user.NewUserRepository(db)
	donationRepository := donation.NewDonationRepository(db)
	matchingRepository := matching.NewMatchingRepository(db)
	ratingRepository := rating.NewRatingRepository(db)

	// Service
	jwtService := jwt.NewJWTService(utils.GetConfig("JWT_SECRET"))
	userService := user.NewUserService(userRepository, jwtService)
	donationService := donation.NewDonationService(donationRepository, s3)
	matchingService := matching.NewMatchingService(matchingRepository, policy)
	ratingService := rating.NewRatingService(ratingRepository)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	donationHandler := handlers.NewDonationHandler(donationService, validator)
	matchingHandler := handlers.NewMatchingHandler(matchingService, validator)
	ratingHandler := handlers.NewRatingHandler(ratingService, validator)

	// routes
	routesConfig := routes.Config{
		App:             app,
		UserHandler:     userHandler,
		DonationHandler: donationHandler,
		MatchingHandler: matchingHandler,
		RatingHandler:   ratingHandler,
		Middleware:      middlewares,
		JWTService:      jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
