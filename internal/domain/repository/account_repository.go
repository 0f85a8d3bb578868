// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"couponhub/internal/domain/entity"
)

// ErrAccountNotFound is a domain-specific error returned when an account is not found.
var ErrAccountNotFound = errors.New("account not found")

// AccountRepository defines the standard operations for account persistence.
// Find methods load the specialized profile (and the vendor's organization)
// alongside the account.
type AccountRepository interface {
	// FindByID retrieves a single account by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// FindByEmail retrieves a single account by its unique email address.
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)

	// Create persists a new account together with its specialized profile.
	Create(ctx context.Context, account *entity.Account) error

	// Update modifies an existing account and its profile.
	Update(ctx context.Context, account *entity.Account) error

	// UpdateSecret replaces only the stored secret hash. Split out so PIN
	// rotation and invalidation touch a single column.
	UpdateSecret(ctx context.Context, id uuid.UUID, secretHash string) error
}
