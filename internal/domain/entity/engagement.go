package entity

import (
	"time"

	"github.com/google/uuid"
)

// Rating is a consumer's score and optional review of a coupon.
type Rating struct {
	ID                uuid.UUID
	ConsumerAccountID uuid.UUID
	CouponID          uuid.UUID
	Rate              int // 1..5
	Review            string
	CreatedAt         time.Time
}

// Shortlist marks a coupon a consumer saved for later.
type Shortlist struct {
	ID                uuid.UUID
	ConsumerAccountID uuid.UUID
	CouponID          uuid.UUID
	Active            bool
	CreatedAt         time.Time
}

// Redemption records a single use of a coupon by a consumer.
type Redemption struct {
	ID                uuid.UUID
	ConsumerAccountID uuid.UUID
	CouponID          uuid.UUID
	CreatedAt         time.Time
}
