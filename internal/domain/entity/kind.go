// Package entity contains the core business objects of the project.
package entity

// AccountKind represents the closed set of account specializations.
type AccountKind string

const (
	// KindVendor indicates an account that owns an organization and publishes coupons.
	KindVendor AccountKind = "vendor"
	// KindConsumer indicates an account that browses, rates and redeems coupons.
	KindConsumer AccountKind = "consumer"
)

// String returns the string representation of the AccountKind.
func (k AccountKind) String() string {
	return string(k)
}

// IsValid checks if the AccountKind is a valid value.
func (k AccountKind) IsValid() bool {
	switch k {
	case KindVendor, KindConsumer:
		return true
	default:
		return false
	}
}

// RequiresPassword reports whether accounts of this kind authenticate with a
// long-lived password. Consumers never do; they log in with one-time PINs.
func (k AccountKind) RequiresPassword() bool {
	return k == KindVendor
}
