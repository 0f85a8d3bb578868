package impl

import (
	"context"
	"testing"

	"couponhub/internal/domain/entity"
	domainerrors "couponhub/internal/domain/errors"
	"couponhub/internal/mocks"
	"couponhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type outletServiceFixtures struct {
	service     usecase.OutletUsecase
	accountRepo *mocks.MockAccountRepository
	orgRepo     *mocks.MockOrganizationRepository
	outletRepo  *mocks.MockOutletRepository
}

func createTestOutletService() outletServiceFixtures {
	accountRepo := new(mocks.MockAccountRepository)
	orgRepo := new(mocks.MockOrganizationRepository)
	outletRepo := new(mocks.MockOutletRepository)

	service := NewOutletService(OutletServiceParams{
		AccountRepo: accountRepo,
		OrgRepo:     orgRepo,
		OutletRepo:  outletRepo,
		Logger:      newDiscardLogger(),
	})

	return outletServiceFixtures{
		service:     service,
		accountRepo: accountRepo,
		orgRepo:     orgRepo,
		outletRepo:  outletRepo,
	}
}

func TestOutletService_Create_DerivesGeom(t *testing.T) {
	fx := createTestOutletService()
	ctx := context.Background()

	vendor := verifiedVendor()
	org := &entity.Organization{ID: uuid.New(), VendorAccountID: vendor.ID, Name: "Acme", Verified: true}

	fx.accountRepo.On("FindByID", ctx, vendor.ID).Return(vendor, nil)
	fx.orgRepo.On("FindByID", ctx, org.ID).Return(org, nil)
	fx.outletRepo.On("Create", ctx, mock.AnythingOfType("*entity.Outlet")).Return(nil)

	outlet, err := fx.service.Create(ctx, vendor.ID, usecase.CreateOutletInput{
		OrganizationID: org.ID,
		Name:           "Downtown",
		Address:        "Main St 1",
		Latitude:       25.0330,
		Longitude:      121.5654,
	})
	require.NoError(t, err)

	assert.Equal(t, orb.Point{121.5654, 25.0330}, outlet.Geom)
	assert.Equal(t, vendor.ID, outlet.OwnerAccountID())
}

func TestOutletService_Create_UnverifiedOrgRejected(t *testing.T) {
	fx := createTestOutletService()
	ctx := context.Background()

	vendor := verifiedVendor()
	org := &entity.Organization{ID: uuid.New(), VendorAccountID: vendor.ID, Name: "Acme"}

	fx.accountRepo.On("FindByID", ctx, vendor.ID).Return(vendor, nil)
	fx.orgRepo.On("FindByID", ctx, org.ID).Return(org, nil)

	_, err := fx.service.Create(ctx, vendor.ID, usecase.CreateOutletInput{OrganizationID: org.ID, Name: "Too soon"})
	assert.ErrorIs(t, err, domainerrors.ErrOrganizationNotVerified)
	fx.outletRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestOutletService_Update_RecomputesGeom(t *testing.T) {
	fx := createTestOutletService()
	ctx := context.Background()

	vendor := verifiedVendor()
	org := &entity.Organization{ID: uuid.New(), VendorAccountID: vendor.ID, Name: "Acme", Verified: true}
	outlet := &entity.Outlet{
		ID:             uuid.New(),
		OrganizationID: org.ID,
		Organization:   org,
		Name:           "Downtown",
		Latitude:       25.0330,
		Longitude:      121.5654,
		Geom:           orb.Point{121.5654, 25.0330},
	}

	fx.accountRepo.On("FindByID", ctx, vendor.ID).Return(vendor, nil)
	fx.outletRepo.On("FindByID", ctx, outlet.ID).Return(outlet, nil)
	fx.outletRepo.On("Update", ctx, outlet).Return(nil)

	newLat := 24.1477
	newLng := 120.6736
	updated, err := fx.service.Update(ctx, vendor.ID, outlet.ID, usecase.UpdateOutletInput{
		Latitude:  &newLat,
		Longitude: &newLng,
	})
	require.NoError(t, err)

	assert.Equal(t, orb.Point{120.6736, 24.1477}, updated.Geom)
}

func TestOutletService_Delete_NonOwnerRejected(t *testing.T) {
	fx := createTestOutletService()
	ctx := context.Background()

	vendor := verifiedVendor()
	otherOrg := &entity.Organization{ID: uuid.New(), VendorAccountID: uuid.New(), Name: "Rival", Verified: true}
	outlet := &entity.Outlet{ID: uuid.New(), OrganizationID: otherOrg.ID, Organization: otherOrg, Name: "Rival HQ"}

	fx.accountRepo.On("FindByID", ctx, vendor.ID).Return(vendor, nil)
	fx.outletRepo.On("FindByID", ctx, outlet.ID).Return(outlet, nil)

	err := fx.service.Delete(ctx, vendor.ID, outlet.ID)
	assert.ErrorIs(t, err, domainerrors.ErrNotOwner)
	fx.outletRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
