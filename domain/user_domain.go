package domain

import "time"

var (
	MessageSuccessRegister = "user registered successfully"
	MessageSuccessLogin    = "login successful"
	MessageSuccessGetMe    = "user retrieved successfully"

	MessageFailedRegister = "failed to register user"
	MessageFailedLogin    = "failed to login"
	MessageFailedGetMe    = "failed to retrieve user"

	ErrUserNotFound       = NewError(ErrKindNotFound, "user not found")
	ErrEmailRegistered    = NewError(ErrKindConflict, "email already registered")
	ErrInvalidCredentials = NewError(ErrKindValidation, "invalid credentials")
)

type (
	RegisterRequest struct {
		Name     string `json:"name" validate:"required,max=255"`
		Email    string `json:"email" validate:"required,email"`
		Phone    string `json:"phone" validate:"omitempty,max=32"`
		Password string `json:"password" validate:"required,min=6"`
		Role     string `json:"role" validate:"required,oneof=donor volunteer"`
		Area     string `json:"area" validate:"omitempty,max=255"`
	}

	LoginRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	User struct {
		ID        string    `json:"id"`
		Name      string    `json:"name"`
		Email     string    `json:"email"`
		Phone     string    `json:"phone,omitempty"`
		Role      string    `json:"role"`
		Area      string    `json:"area,omitempty"`
		CreatedAt time.Time `json:"createdAt"`
	}

	LoginResponse struct {
		Token string `json:"token"`
		User  *User  `json:"user"`
	}
)
