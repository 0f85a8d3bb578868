package repository

import (
	"context"

	"couponhub/internal/domain/entity"

	"github.com/google/uuid"
)

// EngagementRepository records consumer interactions with coupons.
type EngagementRepository interface {
	CreateRating(ctx context.Context, rating *entity.Rating) error
	CreateShortlist(ctx context.Context, shortlist *entity.Shortlist) error
	CreateRedemption(ctx context.Context, redemption *entity.Redemption) error

	// CountRedemptions returns how many times a coupon has been used, for
	// enforcing the coupon amount.
	CountRedemptions(ctx context.Context, couponID uuid.UUID) (int64, error)
}
