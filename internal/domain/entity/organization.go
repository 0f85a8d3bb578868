package entity

import (
	"time"

	"github.com/google/uuid"
)

// Organization is the business entity a vendor operates under. Each vendor
// owns at most one organization; the one-to-one is enforced by a unique
// constraint on VendorAccountID at the storage layer.
type Organization struct {
	ID              uuid.UUID
	VendorAccountID uuid.UUID // The owning vendor's account ID (vendor profiles are keyed by account ID).
	Name            string    // Globally unique.
	Address         string
	Verified        bool // Admin approval; gates campaign and outlet creation.
	Reviewed        bool // True once an admin has acted on this organization at least once.
	Campaigns       []Campaign
	Outlets         []Outlet
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// OwnerAccountID resolves the account ultimately responsible for this
// organization.
func (o *Organization) OwnerAccountID() uuid.UUID {
	return o.VendorAccountID
}
