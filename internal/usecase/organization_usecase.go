package usecase

import (
	"context"

	"couponhub/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateOrganizationInput defines the data for a new organization.
type CreateOrganizationInput struct {
	Name    string
	Address string
}

// UpdateOrganizationInput defines organization changes. Nil fields are left
// untouched.
type UpdateOrganizationInput struct {
	Name    *string
	Address *string
}

// OrganizationUsecase defines the interface for organization operations.
// Reads are public; writes require a verified, unrestricted vendor owning the
// resource.
type OrganizationUsecase interface {
	List(ctx context.Context) ([]entity.Organization, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Organization, error)
	Create(ctx context.Context, requesterID uuid.UUID, input CreateOrganizationInput) (*entity.Organization, error)
	Update(ctx context.Context, requesterID, id uuid.UUID, input UpdateOrganizationInput) (*entity.Organization, error)
	Delete(ctx context.Context, requesterID, id uuid.UUID) error
}
