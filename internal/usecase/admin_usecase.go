package usecase

import (
	"context"

	"github.com/google/uuid"
)

// AdminUsecase defines the interface for admin-only moderation toggles.
// Every operation is idempotent; repeating a grant or revoke is a no-op.
type AdminUsecase interface {
	// SetAdmin toggles the staff and superuser flags together.
	SetAdmin(ctx context.Context, requesterID, accountID uuid.UUID, state bool) error

	// SetVendorRestricted toggles the vendor publishing ban.
	SetVendorRestricted(ctx context.Context, requesterID, accountID uuid.UUID, state bool) error

	// SetOrganizationVerified toggles organization approval. Verifying also
	// marks the organization reviewed; un-verifying leaves the reviewed flag
	// as is.
	SetOrganizationVerified(ctx context.Context, requesterID, organizationID uuid.UUID, state bool) error
}
