package entity

import (
	"time"

	"github.com/google/uuid"
)

// EmailConfirmation is a single-use code mailed to a vendor to prove control
// of the registered email address.
type EmailConfirmation struct {
	ID          uuid.UUID
	AccountID   uuid.UUID
	Email       string // The address the code was bound to when issued.
	Code        string
	ConfirmedAt *time.Time // Nil until the code is consumed.
	ExpiresAt   time.Time
	CreatedAt   time.Time
}

// Consumed reports whether the code has already been used.
func (c *EmailConfirmation) Consumed() bool {
	return c.ConfirmedAt != nil
}

// Expired reports whether the code is past its validity window.
func (c *EmailConfirmation) Expired(now time.Time) bool {
	return !now.Before(c.ExpiresAt)
}
