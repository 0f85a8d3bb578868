// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"couponhub/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
// Handle and Password are required for vendors and ignored for consumers:
// a consumer's handle defaults to the email and its secret starts unusable
// until a PIN is issued.
type RegisterInput struct {
	Email    string
	Kind     entity.AccountKind
	Handle   string
	Password string
}

// UpdateAccountInput defines the self-service account changes. Nil fields are
// left untouched.
type UpdateAccountInput struct {
	Handle   *string
	Password *string
}

// UpdateConsumerProfileInput defines the consumer profile changes. Nil fields
// are left untouched; InterestIDs replaces the subscription set wholesale.
type UpdateConsumerProfileInput struct {
	FullName    *string
	BirthDate   *time.Time
	InterestIDs []uuid.UUID
}

// --- Output DTOs ---

// RegisterOutput returns the newly created account's basic information.
type RegisterOutput struct {
	Account *entity.Account
}

// AccountUsecase defines the interface for account lifecycle operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AccountUsecase interface {
	// Register creates an account with its specialized profile atomically.
	Register(ctx context.Context, input RegisterInput) (*RegisterOutput, error)

	// SendPIN issues a one-time login PIN to a consumer account.
	SendPIN(ctx context.Context, email string) error

	// GetAccount loads an account with its profile for display.
	GetAccount(ctx context.Context, accountID uuid.UUID) (*entity.Account, error)

	// UpdateAccount changes the handle and/or password of the requesting account.
	UpdateAccount(ctx context.Context, accountID uuid.UUID, input UpdateAccountInput) (*entity.Account, error)

	// UpdateConsumerProfile updates the consumer specialization of the
	// requesting account.
	UpdateConsumerProfile(ctx context.Context, accountID uuid.UUID, input UpdateConsumerProfileInput) (*entity.Account, error)
}
