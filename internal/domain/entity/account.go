// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// UnusableSecret is the stored marker for an account secret that can never
// verify. bcrypt hashes always start with "$2", so this value fails every
// comparison. Consumers carry it between PIN issuances, and a consumer's PIN
// is reset to it after a single successful login.
const UnusableSecret = "!"

// Account is the core identity in the system. It carries the credentials and
// the kind tag; exactly one specialized profile (Vendor or Consumer) exists
// per account, created atomically with it.
type Account struct {
	ID         uuid.UUID        // The unique identifier for the account.
	Email      string           // Globally unique; used as the login identifier.
	Handle     string           // Globally unique display handle. Defaults to the email for consumers.
	SecretHash string           // bcrypt hash of the password (vendor) or current PIN (consumer), or UnusableSecret.
	Kind       AccountKind      // Immutable after creation.
	Staff      bool             // Admin-panel access flag. Always toggled together with Superuser.
	Superuser  bool             // Grants unconditional authorization on every resource.
	Vendor     *VendorProfile   // Non-nil iff Kind == KindVendor.
	Consumer   *ConsumerProfile // Non-nil iff Kind == KindConsumer.
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// IsAdmin reports whether the account holds elevated privileges.
func (a *Account) IsAdmin() bool {
	return a.Superuser
}

// HasUsableSecret reports whether the stored secret can ever match a
// presented credential.
func (a *Account) HasUsableSecret() bool {
	return a.SecretHash != "" && a.SecretHash != UnusableSecret
}

// OwnerAccountID make Account the root of the ownership chain.
func (a *Account) OwnerAccountID() uuid.UUID {
	return a.ID
}

// VendorProfile holds data specific to the vendor specialization.
type VendorProfile struct {
	AccountID    uuid.UUID     // Foreign key linking this profile to its Account.
	Verified     bool          // Set by email-code confirmation, or toggled by an admin.
	Restricted   bool          // Admin-set publishing ban.
	Organization *Organization // The single organization owned by this vendor, nil until created.
	UpdatedAt    time.Time
}

// ConsumerProfile holds data specific to the consumer specialization.
// Consumers carry no moderation flags.
type ConsumerProfile struct {
	AccountID uuid.UUID  // Foreign key linking this profile to its Account.
	FullName  string     // Optional display name.
	BirthDate *time.Time // Optional date of birth.
	Interests []Interest // Interests the consumer subscribed to.
	UpdatedAt time.Time
}
