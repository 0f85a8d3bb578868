package usecase

import (
	"context"

	"couponhub/internal/domain/entity"
	"couponhub/internal/domain/service"

	"github.com/google/uuid"
)

// LoginInput defines the credentials presented at login. Secret is a password
// for vendors and a one-time PIN for consumers.
type LoginInput struct {
	Email  string
	Secret string
}

// LoginOutput returns the generated tokens after a successful login.
type LoginOutput struct {
	AccessToken  string
	RefreshToken string
	Account      *entity.Account
}

// RefreshOutput returns the re-issued access token.
type RefreshOutput struct {
	AccessToken string
}

// AuthUsecase defines the interface for authentication operations.
type AuthUsecase interface {
	// Login authenticates by email and secret. A consumer's PIN is
	// invalidated before the tokens are returned, so it can never be
	// replayed.
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)

	// Refresh validates a refresh token against its stored hash and issues a
	// new access token.
	Refresh(ctx context.Context, refreshToken string) (*RefreshOutput, error)

	// Verify checks an access token and returns its claims without touching
	// storage.
	Verify(ctx context.Context, accessToken string) (*service.Claims, error)

	// ConfirmEmail consumes a mailed verification code and marks the vendor
	// verified. Failure modes surface as distinct domain errors so the
	// legacy plain-text endpoint can answer with its exact phrases.
	ConfirmEmail(ctx context.Context, email, code string) error

	// ResendVerificationEmail issues a fresh code to an unverified vendor.
	ResendVerificationEmail(ctx context.Context, accountID uuid.UUID) error
}
