package entity

import "github.com/google/uuid"

// CouponType classifies the mechanics of an offer (discount, freebie, ...).
// The catalog entities are admin-managed and read-only through the API.
type CouponType struct {
	ID          uuid.UUID
	Name        string
	Description string
}

// Category classifies coupons by market segment.
type Category struct {
	ID          uuid.UUID
	Name        string
	Description string
}

// Interest is a topic consumers subscribe to and coupons are tagged with.
type Interest struct {
	ID          uuid.UUID
	Name        string
	Description string
}
