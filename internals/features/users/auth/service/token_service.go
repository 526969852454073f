package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"santhome_backend/internals/configs"
)

const (
	AccessTokenTTL  = 24 * time.Hour
	RefreshTokenTTL = 7 * 24 * time.Hour
)

func buildAccessClaims(userID uuid.UUID, name, role, admissionNumber string, now time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"sub":              userID.String(),
		"name":             name,
		"role":             role,
		"admission_number": admissionNumber,
		"typ":              "access",
		"iat":              now.Unix(),
		"exp":              now.Add(AccessTokenTTL).Unix(),
	}
}

func buildRefreshClaims(userID uuid.UUID, now time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"sub": userID.String(),
		"typ": "refresh",
		"iat": now.Unix(),
		"exp": now.Add(RefreshTokenTTL).Unix(),
	}
}

// IssueTokens signs an access/refresh pair for a logged-in account.
func IssueTokens(userID uuid.UUID, name, role, admissionNumber string) (accessToken, refreshToken string, err error) {
	if configs.JWTSecret == "" {
		return "", "", fmt.Errorf("JWT secret not configured")
	}
	refreshSecret := configs.JWTRefreshSecret
	if refreshSecret == "" {
		refreshSecret = configs.JWTSecret
	}

	now := time.Now()
	accessToken, err = jwt.NewWithClaims(jwt.SigningMethodHS256, buildAccessClaims(userID, name, role, admissionNumber, now)).
		SignedString([]byte(configs.JWTSecret))
	if err != nil {
		return "", "", err
	}
	refreshToken, err = jwt.NewWithClaims(jwt.SigningMethodHS256, buildRefreshClaims(userID, now)).
		SignedString([]byte(refreshSecret))
	if err != nil {
		return "", "", err
	}
	return accessToken, refreshToken, nil
}

// ResolveBlacklistTTL reads the remaining lifetime out of an access token
// so a logged-out token stays blacklisted exactly as long as it is valid.
func ResolveBlacklistTTL(accessToken string) time.Duration {
	fallback := AccessTokenTTL
	if configs.JWTSecret == "" || accessToken == "" {
		return fallback
	}

	claims := jwt.MapClaims{}
	parser := jwt.Parser{SkipClaimsValidation: true}
	if _, err := parser.ParseWithClaims(accessToken, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(configs.JWTSecret), nil
	}); err != nil {
		return fallback
	}

	expFloat, ok := claims["exp"].(float64)
	if !ok {
		return fallback
	}
	remaining := time.Until(time.Unix(int64(expFloat), 0))
	if remaining <= 0 {
		return time.Minute
	}
	return remaining
}
