package usecase

import (
	"context"

	"couponhub/internal/domain/entity"

	"github.com/google/uuid"
)

// RateCouponInput defines a consumer's score of a coupon.
type RateCouponInput struct {
	CouponID uuid.UUID
	Rate     int
	Review   string
}

// EngagementUsecase defines consumer-only coupon interactions.
type EngagementUsecase interface {
	// RateCoupon records a 1..5 score with an optional review.
	RateCoupon(ctx context.Context, requesterID uuid.UUID, input RateCouponInput) (*entity.Rating, error)

	// ShortlistCoupon saves a coupon for later.
	ShortlistCoupon(ctx context.Context, requesterID, couponID uuid.UUID) (*entity.Shortlist, error)

	// RedeemCoupon records a use of the coupon if any redemptions remain.
	RedeemCoupon(ctx context.Context, requesterID, couponID uuid.UUID) (*entity.Redemption, error)
}
