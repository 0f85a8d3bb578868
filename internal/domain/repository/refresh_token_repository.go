package repository

import (
	"context"
	"errors"

	"couponhub/internal/domain/entity"
)

// ErrRefreshTokenNotFound is returned when no stored token matches the hash.
var ErrRefreshTokenNotFound = errors.New("refresh token not found")

// RefreshTokenRepository persists hashed refresh tokens.
type RefreshTokenRepository interface {
	// Create stores a new refresh token record.
	Create(ctx context.Context, token *entity.RefreshToken) error

	// FindByHash retrieves a non-expired token record by its SHA-256 hash.
	FindByHash(ctx context.Context, tokenHash string) (*entity.RefreshToken, error)

	// DeleteByHash removes a token record, e.g. on logout.
	DeleteByHash(ctx context.Context, tokenHash string) error
}
