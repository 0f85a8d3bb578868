package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"couponhub/internal/domain/entity"
)

// Domain-specific lookup failures for owned resources.
var (
	ErrOrganizationNotFound = errors.New("organization not found")
	ErrCampaignNotFound     = errors.New("campaign not found")
	ErrOutletNotFound       = errors.New("outlet not found")
	ErrCouponNotFound       = errors.New("coupon not found")
)

// OrganizationRepository defines persistence for organizations. The
// single-organization-per-vendor rule is enforced by a unique constraint on
// the vendor column; Create surfaces its violation as a domain error instead
// of a guarded count-then-insert.
type OrganizationRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Organization, error)
	FindByVendor(ctx context.Context, vendorAccountID uuid.UUID) (*entity.Organization, error)
	List(ctx context.Context) ([]entity.Organization, error)
	Create(ctx context.Context, org *entity.Organization) error
	Update(ctx context.Context, org *entity.Organization) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// CampaignRepository defines persistence for campaigns. Find methods preload
// the owning organization so the ownership chain resolves without extra
// queries.
type CampaignRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Campaign, error)
	ListByOrganization(ctx context.Context, organizationID uuid.UUID) ([]entity.Campaign, error)
	List(ctx context.Context) ([]entity.Campaign, error)
	Create(ctx context.Context, campaign *entity.Campaign) error
	Update(ctx context.Context, campaign *entity.Campaign) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// OutletRepository defines persistence for outlets.
type OutletRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Outlet, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Outlet, error)
	ListByOrganization(ctx context.Context, organizationID uuid.UUID) ([]entity.Outlet, error)
	List(ctx context.Context) ([]entity.Outlet, error)
	Create(ctx context.Context, outlet *entity.Outlet) error
	Update(ctx context.Context, outlet *entity.Outlet) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// CouponRepository defines persistence for coupons. Find methods preload the
// campaign and its organization.
type CouponRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Coupon, error)
	ListPublished(ctx context.Context) ([]entity.Coupon, error)
	ListByCampaign(ctx context.Context, campaignID uuid.UUID) ([]entity.Coupon, error)
	Create(ctx context.Context, coupon *entity.Coupon) error
	Update(ctx context.Context, coupon *entity.Coupon) error
	Delete(ctx context.Context, id uuid.UUID) error
}
