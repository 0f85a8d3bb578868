package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// Outlet is a physical location belonging to an organization where coupons
// can be redeemed.
type Outlet struct {
	ID             uuid.UUID
	OrganizationID uuid.UUID
	Organization   *Organization // Loaded for ownership resolution.
	Name           string
	Description    string
	Address        string
	Latitude       float64
	Longitude      float64
	Geom           orb.Point // Derived from (Longitude, Latitude) at save time.
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// SyncGeom recomputes the geographic point from the raw coordinates.
// Called before every save so Geom never drifts from Latitude/Longitude.
func (o *Outlet) SyncGeom() {
	o.Geom = orb.Point{o.Longitude, o.Latitude}
}

// OwnerAccountID resolves the responsible account by walking up to the
// organization. Returns uuid.Nil if the chain was not loaded.
func (o *Outlet) OwnerAccountID() uuid.UUID {
	if o.Organization == nil {
		return uuid.Nil
	}

	return o.Organization.OwnerAccountID()
}
