package usecase

import (
	"context"

	"couponhub/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateOutletInput defines the data for a new outlet.
type CreateOutletInput struct {
	OrganizationID uuid.UUID
	Name           string
	Description    string
	Address        string
	Latitude       float64
	Longitude      float64
}

// UpdateOutletInput defines outlet changes. Nil fields are left untouched.
type UpdateOutletInput struct {
	Name        *string
	Description *string
	Address     *string
	Latitude    *float64
	Longitude   *float64
}

// OutletUsecase defines the interface for outlet operations.
type OutletUsecase interface {
	List(ctx context.Context) ([]entity.Outlet, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Outlet, error)
	Create(ctx context.Context, requesterID uuid.UUID, input CreateOutletInput) (*entity.Outlet, error)
	Update(ctx context.Context, requesterID, id uuid.UUID, input UpdateOutletInput) (*entity.Outlet, error)
	Delete(ctx context.Context, requesterID, id uuid.UUID) error
}
