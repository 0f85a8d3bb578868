package entity

import (
	"time"

	"github.com/google/uuid"
)

// Coupon is the leaf of the ownership chain: it belongs to exactly one
// campaign and is redeemable at a set of outlets that must all belong to the
// same owning chain.
type Coupon struct {
	ID         uuid.UUID
	TypeID     uuid.UUID
	CategoryID uuid.UUID
	CampaignID uuid.UUID
	Campaign   *Campaign // Loaded for ownership resolution.

	Name        string
	Description string
	Deal        string // The human-readable offer, e.g. "2 for 1".
	Terms       string
	Amount      int    // Number of redemptions available.
	Code        string // Redemption code presented at an outlet.

	Start time.Time
	End   time.Time

	// Three independent visibility flags.
	Advertisement bool
	Active        bool
	Published     bool

	Outlets   []Outlet
	Interests []Interest
	CreatedAt time.Time
	UpdatedAt time.Time
}

// OwnerAccountID resolves the responsible account by walking up through the
// campaign. Returns uuid.Nil if the chain was not loaded.
func (c *Coupon) OwnerAccountID() uuid.UUID {
	if c.Campaign == nil {
		return uuid.Nil
	}

	return c.Campaign.OwnerAccountID()
}
