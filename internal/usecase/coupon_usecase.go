package usecase

import (
	"context"
	"time"

	"couponhub/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateCouponInput defines the data for a new coupon. Every referenced
// outlet must belong to the same owning chain as the campaign.
type CreateCouponInput struct {
	CampaignID  uuid.UUID
	TypeID      uuid.UUID
	CategoryID  uuid.UUID
	OutletIDs   []uuid.UUID
	InterestIDs []uuid.UUID

	Name        string
	Description string
	Deal        string
	Terms       string
	Amount      int
	Code        string

	Start time.Time
	End   time.Time

	Advertisement bool
	Active        bool
	Published     bool
}

// UpdateCouponInput defines coupon changes. Nil fields are left untouched;
// non-nil ID slices replace the association wholesale.
type UpdateCouponInput struct {
	TypeID      *uuid.UUID
	CategoryID  *uuid.UUID
	OutletIDs   []uuid.UUID
	InterestIDs []uuid.UUID

	Name        *string
	Description *string
	Deal        *string
	Terms       *string
	Amount      *int
	Code        *string

	Start *time.Time
	End   *time.Time

	Advertisement *bool
	Active        *bool
	Published     *bool
}

// CouponUsecase defines the interface for coupon operations. Reads are
// public; writes walk the ownership chain.
type CouponUsecase interface {
	ListPublished(ctx context.Context) ([]entity.Coupon, error)
	ListByCampaign(ctx context.Context, campaignID uuid.UUID) ([]entity.Coupon, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Coupon, error)
	Create(ctx context.Context, requesterID uuid.UUID, input CreateCouponInput) (*entity.Coupon, error)
	Update(ctx context.Context, requesterID, id uuid.UUID, input UpdateCouponInput) (*entity.Coupon, error)
	Delete(ctx context.Context, requesterID, id uuid.UUID) error

	// GenerateQR renders the coupon's redemption code as a PNG.
	GenerateQR(ctx context.Context, id uuid.UUID) ([]byte, error)
}
