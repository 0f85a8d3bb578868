package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims carried by the bearer tokens.
type Claims struct {
	AccountID uuid.UUID
	Kind      string
	Admin     bool
	Type      string // "access" or "refresh"
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing, verifying and refreshing
// bearer tokens. Verification is pure; refresh issues a new access token for
// the same identity.
type TokenService interface {
	// GenerateTokens creates a new access/refresh token pair for an account.
	GenerateTokens(accountID uuid.UUID, kind string, admin bool) (accessToken string, refreshToken string, err error)

	// ValidateAccessToken checks an access token and returns its claims.
	ValidateAccessToken(tokenString string) (*Claims, error)

	// ValidateRefreshToken checks a refresh token and returns its claims.
	ValidateRefreshToken(tokenString string) (*Claims, error)

	// HashToken returns the hex SHA-256 of a raw token for storage lookups.
	HashToken(token string) string

	// RefreshTokenDuration returns the configured refresh token lifetime.
	RefreshTokenDuration() time.Duration
}
