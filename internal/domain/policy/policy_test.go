package policy

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"couponhub/internal/domain/entity"
	domainerrors "couponhub/internal/domain/errors"
)

// buildChain returns a coupon whose ownership chain resolves to ownerID,
// together with the intermediate resources.
func buildChain(ownerID uuid.UUID) (*entity.Organization, *entity.Campaign, *entity.Outlet, *entity.Coupon) {
	org := &entity.Organization{
		ID:              uuid.New(),
		VendorAccountID: ownerID,
		Name:            "Chain Org",
	}
	campaign := &entity.Campaign{
		ID:             uuid.New(),
		OrganizationID: org.ID,
		Organization:   org,
	}
	outlet := &entity.Outlet{
		ID:             uuid.New(),
		OrganizationID: org.ID,
		Organization:   org,
	}
	coupon := &entity.Coupon{
		ID:         uuid.New(),
		CampaignID: campaign.ID,
		Campaign:   campaign,
	}

	return org, campaign, outlet, coupon
}

func TestOwner_ResolvesChainAtEveryDepth(t *testing.T) {
	ownerID := uuid.New()
	strangerID := uuid.New()
	org, campaign, outlet, coupon := buildChain(ownerID)

	owner := Requester{AccountID: ownerID, Kind: entity.KindVendor}
	stranger := Requester{AccountID: strangerID, Kind: entity.KindVendor}

	targets := map[string]Owned{
		"organization": org,
		"campaign":     campaign,
		"outlet":       outlet,
		"coupon":       coupon,
	}

	for name, target := range targets {
		t.Run(name, func(t *testing.T) {
			assert.NoError(t, Authorize(owner, ActionUpdate, target, Owner()))
			assert.NoError(t, Authorize(owner, ActionDelete, target, Owner()))

			err := Authorize(stranger, ActionUpdate, target, Owner())
			require.Error(t, err)
			assert.ErrorIs(t, err, domainerrors.ErrNotOwner)
		})
	}
}

func TestOwner_AdminBypassesOwnership(t *testing.T) {
	_, _, _, coupon := buildChain(uuid.New())
	admin := Requester{AccountID: uuid.New(), Admin: true}

	assert.NoError(t, Authorize(admin, ActionDelete, coupon, Owner()))
}

func TestOwner_SafeMethodBypass(t *testing.T) {
	_, _, _, coupon := buildChain(uuid.New())
	stranger := Requester{AccountID: uuid.New()}

	assert.NoError(t, Authorize(stranger, ActionRead, coupon, Owner()))
}

func TestOwner_CreationBypass(t *testing.T) {
	// Ownership is established by the act of creation, not checked beforehand.
	stranger := Requester{AccountID: uuid.New()}

	assert.NoError(t, Authorize(stranger, ActionCreate, nil, Owner()))
}

func TestOwner_UnresolvedChainDenied(t *testing.T) {
	// A campaign without its organization loaded cannot resolve an owner.
	campaign := &entity.Campaign{ID: uuid.New()}
	req := Requester{AccountID: uuid.New()}

	err := Authorize(req, ActionUpdate, campaign, Owner())
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrNotOwner)
}

func TestKind_ExactMatchRequired(t *testing.T) {
	vendor := Requester{AccountID: uuid.New(), Kind: entity.KindVendor}
	consumer := Requester{AccountID: uuid.New(), Kind: entity.KindConsumer}

	assert.NoError(t, Authorize(vendor, ActionCreate, nil, Kind(entity.KindVendor)))
	assert.NoError(t, Authorize(consumer, ActionRead, nil, Kind(entity.KindConsumer)))

	err := Authorize(consumer, ActionCreate, nil, Kind(entity.KindVendor))
	assert.ErrorIs(t, err, domainerrors.ErrNotVendor)

	err = Authorize(vendor, ActionCreate, nil, Kind(entity.KindConsumer))
	assert.ErrorIs(t, err, domainerrors.ErrNotConsumer)
}

func TestVendorVerified_GatesMutationsOnly(t *testing.T) {
	unverified := Requester{AccountID: uuid.New(), Kind: entity.KindVendor}

	assert.NoError(t, Authorize(unverified, ActionRead, nil, VendorVerified()))

	err := Authorize(unverified, ActionCreate, nil, VendorVerified())
	assert.ErrorIs(t, err, domainerrors.ErrVendorNotVerified)

	verified := unverified
	verified.VendorVerified = true
	assert.NoError(t, Authorize(verified, ActionCreate, nil, VendorVerified()))
}

func TestVendorUnrestricted_GatesMutationsOnly(t *testing.T) {
	restricted := Requester{AccountID: uuid.New(), Kind: entity.KindVendor, VendorRestricted: true}

	assert.NoError(t, Authorize(restricted, ActionRead, nil, VendorUnrestricted()))

	for _, action := range []Action{ActionCreate, ActionUpdate, ActionDelete} {
		err := Authorize(restricted, action, nil, VendorUnrestricted())
		assert.ErrorIs(t, err, domainerrors.ErrVendorRestricted)
	}
}

func TestAdmin_NoSafeMethodBypass(t *testing.T) {
	plain := Requester{AccountID: uuid.New(), Kind: entity.KindVendor}

	err := Authorize(plain, ActionRead, nil, Admin())
	assert.ErrorIs(t, err, domainerrors.ErrAdminRequired)

	admin := Requester{AccountID: uuid.New(), Admin: true}
	assert.NoError(t, Authorize(admin, ActionRead, nil, Admin()))
}

func TestAuthorize_ShortCircuitsOnFirstFailure(t *testing.T) {
	// Both predicates fail; the first attached reason surfaces.
	req := Requester{AccountID: uuid.New(), Kind: entity.KindConsumer, VendorRestricted: true}

	err := Authorize(req, ActionCreate, nil, Kind(entity.KindVendor), VendorUnrestricted())
	assert.ErrorIs(t, err, domainerrors.ErrNotVendor)

	err = Authorize(req, ActionCreate, nil, VendorUnrestricted(), Kind(entity.KindVendor))
	assert.ErrorIs(t, err, domainerrors.ErrVendorRestricted)
}

func TestRequesterFrom_ProjectsVendorFlags(t *testing.T) {
	account := &entity.Account{
		ID:   uuid.New(),
		Kind: entity.KindVendor,
		Vendor: &entity.VendorProfile{
			Verified:   true,
			Restricted: true,
		},
	}

	req := RequesterFrom(account)
	assert.Equal(t, account.ID, req.AccountID)
	assert.True(t, req.VendorVerified)
	assert.True(t, req.VendorRestricted)
	assert.False(t, req.Admin)

	account.Superuser = true
	assert.True(t, RequesterFrom(account).Admin)
}
