package user

import (
	"context"
	"errors"
	"strings"

	"food-donation-backend/domain"
	"food-donation-backend/entities"
	"food-donation-backend/internal/utils"
	"food-donation-backend/pkg/jwt"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type (
	UserService interface {
		Register(ctx context.Context, req domain.RegisterRequest) (*domain.User, error)
		Login(ctx context.Context, req domain.LoginRequest) (*domain.LoginResponse, error)
		Me(ctx context.Context, userID string) (*domain.User, error)
	}

	userService struct {
		userRepository UserRepository
		jwtService     jwt.JWTService
	}
)

func NewUserService(userRepository UserRepository, jwtService jwt.JWTService) UserService {
	return &userService{
		userRepository: userRepository,
		jwtService:     jwtService,
	}
}

func (s *userService) Register(ctx context.Context, req domain.RegisterRequest) (*domain.User, error) {
	if !domain.IsValidRole(req.Role) {
		return nil, domain.ErrInvalidRole
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entities.User{
		ID:       uuid.New(),
		Name:     strings.TrimSpace(req.Name),
		Email:    strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:    req.Phone,
		Password: string(hashed),
		Role:     req.Role,
		Area:     strings.TrimSpace(req.Area),
	}

	if err := s.userRepository.CreateUser(ctx, user); err != nil {
		if utils.IsUniqueViolation(err) {
			return nil, domain.ErrEmailRegistered
		}
		return nil, utils.WrapStorageError("create user", err)
	}

	log.Infow("user registered", "user_id", user.ID, "role", user.Role)
	return toUserView(user), nil
}

func (s *userService) Login(ctx context.Context, req domain.LoginRequest) (*domain.LoginResponse, error) {
	user, err := s.userRepository.GetUserByEmail(ctx, strings.TrimSpace(req.Email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, utils.WrapStorageError("get user by email", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	return &domain.LoginResponse{
		Token: s.jwtService.GenerateTokenUser(user.ID.String(), user.Role),
		User:  toUserView(user),
	}, nil
}

func (s *userService) Me(ctx context.Context, userID string) (*domain.User, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return nil, domain.ErrParseUUID
	}

	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, utils.WrapStorageError("get user", err)
	}
	return toUserView(user), nil
}

func toUserView(u *entities.User) *domain.User {
	return &domain.User{
		ID:        u.ID.String(),
		Name:      u.Name,
		Email:     u.Email,
		Phone:     u.Phone,
		Role:      u.Role,
		Area:      u.Area,
		CreatedAt: u.CreatedAt,
	}
}
