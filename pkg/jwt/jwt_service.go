package jwt

import (
	"errors"
	"fmt"
	"time"

	"food-donation-backend/domain"

	"github.com/gofiber/fiber/v2/log"
	"github.com/golang-jwt/jwt/v4"
)

const tokenTTL = 7 * 24 * time.Hour

type (
	JWTService interface {
		GenerateTokenUser(userID string, role string) string
		ValidateTokenUser(token string) (*jwt.Token, error)
		GetUserIDByToken(token string) (string, string, error)
	}

	jwtUserClaim struct {
		UserID string `json:"user_id"`
		Role   string `json:"role"`
		jwt.RegisteredClaims
	}

	jwtService struct {
		secretKey string
		issuer    string
		now       func() time.Time
	}
)

func NewJWTService(secretKey string) JWTService {
	return &jwtService{
		secretKey: secretKey,
		issuer:    "FOOD-DONATION",
		now:       time.Now,
	}
}

func (j *jwtService) GenerateTokenUser(userID string, role string) string {
	issuedAt := j.now()
	claims := jwtUserClaim{
		userID,
		role,
		jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(tokenTTL)),
			Issuer:    j.issuer,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		log.Errorw("sign token failed", "error", err)
	}
	return signed
}

func (j *jwtService) parseToken(t *jwt.Token) (any, error) {
	if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
	}
	return []byte(j.secretKey), nil
}

func (j *jwtService) ValidateTokenUser(token string) (*jwt.Token, error) {
	return jwt.ParseWithClaims(token, &jwtUserClaim{}, j.parseToken)
}

func (j *jwtService) GetUserIDByToken(token string) (string, string, error) {
	parsed, err := j.ValidateTokenUser(token)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", "", domain.ErrTokenExpired
		}
		return "", "", domain.ErrTokenInvalid
	}
	if !parsed.Valid {
		return "", "", domain.ErrTokenInvalid
	}

	claims := parsed.Claims.(*jwtUserClaim)
	return claims.UserID, claims.Role, nil
}
