package repository

import (
	"context"
	"errors"

	"couponhub/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrConfirmationNotFound is returned when no confirmation matches the
// email/code pair.
var ErrConfirmationNotFound = errors.New("email confirmation not found")

// ConfirmationRepository persists single-use email confirmation codes.
type ConfirmationRepository interface {
	// Create stores a freshly issued confirmation code.
	Create(ctx context.Context, confirmation *entity.EmailConfirmation) error

	// Find retrieves the confirmation bound to the given email and code,
	// consumed or not.
	Find(ctx context.Context, email, code string) (*entity.EmailConfirmation, error)

	// MarkConfirmed consumes the code.
	MarkConfirmed(ctx context.Context, id uuid.UUID) error
}
