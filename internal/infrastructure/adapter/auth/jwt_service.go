package auth

import (
	"errors"
	"fmt"
	"time"

	errs "github.com/gameplants/plants-api/internal/domain/error"
	"github.com/gameplants/plants-api/internal/domain/port/core"
	"github.com/golang-jwt/jwt/v4"
)

// JWTService implements core.TokenService with HS256-signed tokens
type JWTService struct {
	secretKey    string
	issuer       string
	timeProvider core.TimeProvider
}

type userClaims struct {
	UserID uint64 `json:"userId"`
	jwt.RegisteredClaims
}

// NewJWTService creates a JWT token service signing with the given secret
func NewJWTService(secretKey string, timeProvider core.TimeProvider) *JWTService {
	return &JWTService{
		secretKey:    secretKey,
		issuer:       "plants-api",
		timeProvider: timeProvider,
	}
}

// GenerateToken signs a token carrying the account id
func (j *JWTService) GenerateToken(userID uint64, expiry time.Duration) (string, error) {
	now := j.timeProvider.Now()
	claims := userClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    j.issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// VerifyToken checks the signature and expiry and returns the account id
func (j *JWTService) VerifyToken(token string) (uint64, error) {
	parsed, err := jwt.ParseWithClaims(token, &userClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(j.secretKey), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, errs.ErrTokenExpired
		}
		return 0, errs.ErrTokenInvalid
	}
	if !parsed.Valid {
		return 0, errs.ErrTokenInvalid
	}

	claims, ok := parsed.Claims.(*userClaims)
	if !ok || claims.UserID == 0 {
		return 0, errs.ErrTokenInvalid
	}
	return claims.UserID, nil
}
