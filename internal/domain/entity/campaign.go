package entity

import (
	"time"

	"github.com/google/uuid"
)

// Campaign groups coupons under an organization for a bounded time window
// [Start, End).
type Campaign struct {
	ID             uuid.UUID
	OrganizationID uuid.UUID
	Organization   *Organization // Loaded for ownership resolution.
	Name           string
	Start          time.Time
	End            time.Time
	Active         bool
	Coupons        []Coupon
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// OwnerAccountID resolves the responsible account by walking up to the
// organization. Returns uuid.Nil if the chain was not loaded.
func (c *Campaign) OwnerAccountID() uuid.UUID {
	if c.Organization == nil {
		return uuid.Nil
	}

	return c.Organization.OwnerAccountID()
}
