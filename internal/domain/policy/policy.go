// Package policy implements the authorization resolver: a request is allowed
// only if every predicate attached to the operation holds. Predicates are
// pure and side-effect-free, so evaluation order changes only which rejection
// reason surfaces first, never the final decision.
package policy

import (
	"github.com/google/uuid"

	"couponhub/internal/domain/entity"
	domainerrors "couponhub/internal/domain/errors"
)

// Action classifies the inbound operation for bypass rules.
type Action int

const (
	// ActionRead covers fetch and list operations.
	ActionRead Action = iota
	// ActionCreate covers resource creation.
	ActionCreate
	// ActionUpdate covers partial and full modification.
	ActionUpdate
	// ActionDelete covers resource deletion.
	ActionDelete
)

// Safe reports whether the action is read-only.
func (a Action) Safe() bool {
	return a == ActionRead
}

// Requester is the authorization view of the authenticated account.
type Requester struct {
	AccountID        uuid.UUID
	Kind             entity.AccountKind
	Admin            bool
	VendorVerified   bool
	VendorRestricted bool
}

// RequesterFrom projects a loaded account into its authorization view.
func RequesterFrom(account *entity.Account) Requester {
	req := Requester{
		AccountID: account.ID,
		Kind:      account.Kind,
		Admin:     account.IsAdmin(),
	}
	if account.Vendor != nil {
		req.VendorVerified = account.Vendor.Verified
		req.VendorRestricted = account.Vendor.Restricted
	}

	return req
}

// Owned is any resource that can resolve its ultimate responsible account.
type Owned interface {
	OwnerAccountID() uuid.UUID
}

// Predicate is a single independent authorization rule. A nil return allows;
// a non-nil return carries the distinct human-readable rejection reason.
type Predicate func(req Requester, action Action, target Owned) error

// Authorize intersects the given predicates, short-circuiting on the first
// failure.
func Authorize(req Requester, action Action, target Owned, preds ...Predicate) error {
	for _, pred := range preds {
		if err := pred(req, action, target); err != nil {
			return err
		}
	}

	return nil
}

// Owner requires the resolved ultimate owner of the target to equal the
// requester, unless the requester is an admin. Reads always pass, and
// creation passes because ownership is established by the act of creation.
func Owner() Predicate {
	return func(req Requester, action Action, target Owned) error {
		if action.Safe() || action == ActionCreate {
			return nil
		}
		if req.Admin {
			return nil
		}
		if target == nil || target.OwnerAccountID() == uuid.Nil {
			return domainerrors.ErrNotOwner.WithDetails("ownership chain could not be resolved")
		}
		if target.OwnerAccountID() != req.AccountID {
			return domainerrors.ErrNotOwner
		}

		return nil
	}
}

// Kind requires the requester to be exactly the given account kind. There is
// no safe-method bypass here: routes that are publicly readable simply do not
// attach this predicate.
func Kind(kind entity.AccountKind) Predicate {
	return func(req Requester, _ Action, _ Owned) error {
		if req.Kind == kind {
			return nil
		}
		if kind == entity.KindVendor {
			return domainerrors.ErrNotVendor
		}

		return domainerrors.ErrNotConsumer
	}
}

// VendorVerified requires the requesting vendor to have confirmed its email.
// Bypassed for safe methods.
func VendorVerified() Predicate {
	return func(req Requester, action Action, _ Owned) error {
		if action.Safe() {
			return nil
		}
		if !req.VendorVerified {
			return domainerrors.ErrVendorNotVerified
		}

		return nil
	}
}

// VendorUnrestricted requires the requesting vendor to not be under an
// admin-set publishing ban. Bypassed for safe methods.
func VendorUnrestricted() Predicate {
	return func(req Requester, action Action, _ Owned) error {
		if action.Safe() {
			return nil
		}
		if req.VendorRestricted {
			return domainerrors.ErrVendorRestricted
		}

		return nil
	}
}

// Admin requires superuser privilege unconditionally. Admin endpoints are
// never publicly readable, so there is deliberately no safe-method bypass.
func Admin() Predicate {
	return func(req Requester, _ Action, _ Owned) error {
		if !req.Admin {
			return domainerrors.ErrAdminRequired
		}

		return nil
	}
}
