package domain

const (
	RoleDonor     = "donor"
	RoleVolunteer = "volunteer"
)

var (
	MessageUserNotAllowed       = "user not allowed"
	MessageFailedProcessRequest = "failed to process request"
	MessageFailedBodyRequest    = "failed to parse request body"
	MessageFailedGetToken       = "failed to get token"
	MessageFailedTokenInvalid   = "failed to token invalid"

	ErrParseUUID      = NewError(ErrKindValidation, "failed to parse UUID")
	ErrInvalidRole    = NewError(ErrKindValidation, "invalid role")
	ErrUserNotAllowed = NewError(ErrKindForbidden, "user not allowed")
	ErrTokenNotFound  = NewError(ErrKindValidation, "failed to token not found")
	ErrTokenInvalid   = NewError(ErrKindValidation, "token invalid")
	ErrTokenExpired   = NewError(ErrKindValidation, "token expired")
)

type Principal struct {
	ID   string
	Role string
}

func IsValidRole(role string) bool {
	return role == RoleDonor || role == RoleVolunteer
}
