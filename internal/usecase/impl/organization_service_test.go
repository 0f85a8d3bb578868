package impl

import (
	"context"
	"testing"

	"couponhub/internal/domain/entity"
	domainerrors "couponhub/internal/domain/errors"
	"couponhub/internal/mocks"
	"couponhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type organizationServiceFixtures struct {
	service     usecase.OrganizationUsecase
	accountRepo *mocks.MockAccountRepository
	orgRepo     *mocks.MockOrganizationRepository
}

func createTestOrganizationService() organizationServiceFixtures {
	accountRepo := new(mocks.MockAccountRepository)
	orgRepo := new(mocks.MockOrganizationRepository)

	service := NewOrganizationService(OrganizationServiceParams{
		AccountRepo: accountRepo,
		OrgRepo:     orgRepo,
		Logger:      newDiscardLogger(),
	})

	return organizationServiceFixtures{service: service, accountRepo: accountRepo, orgRepo: orgRepo}
}

func verifiedVendor() *entity.Account {
	return &entity.Account{
		ID:     uuid.New(),
		Kind:   entity.KindVendor,
		Vendor: &entity.VendorProfile{Verified: true},
	}
}

func TestOrganizationService_Create(t *testing.T) {
	fx := createTestOrganizationService()
	ctx := context.Background()

	vendor := verifiedVendor()
	fx.accountRepo.On("FindByID", ctx, vendor.ID).Return(vendor, nil)
	fx.orgRepo.On("Create", ctx, mock.AnythingOfType("*entity.Organization")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*entity.Organization).ID = uuid.New()
		}).
		Return(nil)

	org, err := fx.service.Create(ctx, vendor.ID, usecase.CreateOrganizationInput{Name: "Acme", Address: "Main St 1"})
	require.NoError(t, err)

	assert.Equal(t, vendor.ID, org.VendorAccountID)
	assert.False(t, org.Verified)
	assert.False(t, org.Reviewed)
}

func TestOrganizationService_Create_GateOrder(t *testing.T) {
	tests := []struct {
		name    string
		account *entity.Account
		wantErr error
	}{
		{
			"consumer rejected",
			&entity.Account{ID: uuid.New(), Kind: entity.KindConsumer, Consumer: &entity.ConsumerProfile{}},
			domainerrors.ErrNotVendor,
		},
		{
			"unverified vendor rejected",
			&entity.Account{ID: uuid.New(), Kind: entity.KindVendor, Vendor: &entity.VendorProfile{}},
			domainerrors.ErrVendorNotVerified,
		},
		{
			"restricted vendor rejected",
			&entity.Account{ID: uuid.New(), Kind: entity.KindVendor, Vendor: &entity.VendorProfile{Verified: true, Restricted: true}},
			domainerrors.ErrVendorRestricted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestOrganizationService()
			ctx := context.Background()

			fx.accountRepo.On("FindByID", ctx, tt.account.ID).Return(tt.account, nil)

			_, err := fx.service.Create(ctx, tt.account.ID, usecase.CreateOrganizationInput{Name: "Acme"})
			assert.ErrorIs(t, err, tt.wantErr)
			fx.orgRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		})
	}
}

func TestOrganizationService_Create_LimitSurfacesFromConstraint(t *testing.T) {
	fx := createTestOrganizationService()
	ctx := context.Background()

	vendor := verifiedVendor()
	fx.accountRepo.On("FindByID", ctx, vendor.ID).Return(vendor, nil)
	fx.orgRepo.On("Create", ctx, mock.AnythingOfType("*entity.Organization")).
		Return(domainerrors.ErrOrganizationLimit)

	_, err := fx.service.Create(ctx, vendor.ID, usecase.CreateOrganizationInput{Name: "Second"})
	assert.ErrorIs(t, err, domainerrors.ErrOrganizationLimit)
}

func TestOrganizationService_Update_NonOwnerRejected(t *testing.T) {
	fx := createTestOrganizationService()
	ctx := context.Background()

	vendor := verifiedVendor()
	org := &entity.Organization{ID: uuid.New(), VendorAccountID: uuid.New(), Name: "Other's"}

	fx.accountRepo.On("FindByID", ctx, vendor.ID).Return(vendor, nil)
	fx.orgRepo.On("FindByID", ctx, org.ID).Return(org, nil)

	newName := "Hijacked"
	_, err := fx.service.Update(ctx, vendor.ID, org.ID, usecase.UpdateOrganizationInput{Name: &newName})
	assert.ErrorIs(t, err, domainerrors.ErrNotOwner)
}

func TestOrganizationService_Update_VerifiedOrgLocked(t *testing.T) {
	fx := createTestOrganizationService()
	ctx := context.Background()

	vendor := verifiedVendor()
	org := &entity.Organization{ID: uuid.New(), VendorAccountID: vendor.ID, Name: "Acme", Verified: true, Reviewed: true}

	fx.accountRepo.On("FindByID", ctx, vendor.ID).Return(vendor, nil)
	fx.orgRepo.On("FindByID", ctx, org.ID).Return(org, nil)

	newName := "Acme 2"
	_, err := fx.service.Update(ctx, vendor.ID, org.ID, usecase.UpdateOrganizationInput{Name: &newName})
	assert.ErrorIs(t, err, domainerrors.ErrOrganizationLocked)
	fx.orgRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestOrganizationService_Update_AdminBypassesLock(t *testing.T) {
	fx := createTestOrganizationService()
	ctx := context.Background()

	admin := &entity.Account{
		ID:        uuid.New(),
		Kind:      entity.KindVendor,
		Staff:     true,
		Superuser: true,
		Vendor:    &entity.VendorProfile{Verified: true},
	}
	org := &entity.Organization{ID: uuid.New(), VendorAccountID: uuid.New(), Name: "Acme", Verified: true}

	fx.accountRepo.On("FindByID", ctx, admin.ID).Return(admin, nil)
	fx.orgRepo.On("FindByID", ctx, org.ID).Return(org, nil)
	fx.orgRepo.On("Update", ctx, org).Return(nil)

	newName := "Acme Corrected"
	updated, err := fx.service.Update(ctx, admin.ID, org.ID, usecase.UpdateOrganizationInput{Name: &newName})
	require.NoError(t, err)
	assert.Equal(t, "Acme Corrected", updated.Name)
}

func TestOrganizationService_Update_OwnerEditsUnverified(t *testing.T) {
	fx := createTestOrganizationService()
	ctx := context.Background()

	vendor := verifiedVendor()
	org := &entity.Organization{ID: uuid.New(), VendorAccountID: vendor.ID, Name: "Acme"}

	fx.accountRepo.On("FindByID", ctx, vendor.ID).Return(vendor, nil)
	fx.orgRepo.On("FindByID", ctx, org.ID).Return(org, nil)
	fx.orgRepo.On("Update", ctx, org).Return(nil)

	newAddress := "Elm St 7"
	updated, err := fx.service.Update(ctx, vendor.ID, org.ID, usecase.UpdateOrganizationInput{Address: &newAddress})
	require.NoError(t, err)
	assert.Equal(t, "Elm St 7", updated.Address)
}
