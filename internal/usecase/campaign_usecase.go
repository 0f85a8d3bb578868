package usecase

import (
	"context"
	"time"

	"couponhub/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateCampaignInput defines the data for a new campaign.
type CreateCampaignInput struct {
	OrganizationID uuid.UUID
	Name           string
	Start          time.Time
	End            time.Time
	Active         bool
}

// UpdateCampaignInput defines campaign changes. Nil fields are left untouched.
type UpdateCampaignInput struct {
	Name   *string
	Start  *time.Time
	End    *time.Time
	Active *bool
}

// CampaignUsecase defines the interface for campaign operations. Creation
// requires the owning organization to be verified.
type CampaignUsecase interface {
	List(ctx context.Context) ([]entity.Campaign, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Campaign, error)
	Create(ctx context.Context, requesterID uuid.UUID, input CreateCampaignInput) (*entity.Campaign, error)
	Update(ctx context.Context, requesterID, id uuid.UUID, input UpdateCampaignInput) (*entity.Campaign, error)
	Delete(ctx context.Context, requesterID, id uuid.UUID) error
}
