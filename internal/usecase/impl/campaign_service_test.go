package impl

import (
	"context"
	"testing"
	"time"

	"couponhub/internal/domain/entity"
	domainerrors "couponhub/internal/domain/errors"
	"couponhub/internal/domain/repository"
	"couponhub/internal/mocks"
	"couponhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type campaignServiceFixtures struct {
	service      usecase.CampaignUsecase
	accountRepo  *mocks.MockAccountRepository
	orgRepo      *mocks.MockOrganizationRepository
	campaignRepo *mocks.MockCampaignRepository
}

func createTestCampaignService() campaignServiceFixtures {
	accountRepo := new(mocks.MockAccountRepository)
	orgRepo := new(mocks.MockOrganizationRepository)
	campaignRepo := new(mocks.MockCampaignRepository)

	service := NewCampaignService(CampaignServiceParams{
		AccountRepo:  accountRepo,
		OrgRepo:      orgRepo,
		CampaignRepo: campaignRepo,
		Logger:       newDiscardLogger(),
	})

	return campaignServiceFixtures{
		service:      service,
		accountRepo:  accountRepo,
		orgRepo:      orgRepo,
		campaignRepo: campaignRepo,
	}
}

func TestCampaignService_Create(t *testing.T) {
	fx := createTestCampaignService()
	ctx := context.Background()

	vendor := verifiedVendor()
	org := &entity.Organization{ID: uuid.New(), VendorAccountID: vendor.ID, Name: "Acme", Verified: true}

	fx.accountRepo.On("FindByID", ctx, vendor.ID).Return(vendor, nil)
	fx.orgRepo.On("FindByID", ctx, org.ID).Return(org, nil)
	fx.campaignRepo.On("Create", ctx, mock.AnythingOfType("*entity.Campaign")).Return(nil)

	start := time.Now()
	campaign, err := fx.service.Create(ctx, vendor.ID, usecase.CreateCampaignInput{
		OrganizationID: org.ID,
		Name:           "Summer sale",
		Start:          start,
		End:            start.AddDate(0, 1, 0),
		Active:         true,
	})
	require.NoError(t, err)

	assert.Equal(t, org.ID, campaign.OrganizationID)
	assert.Equal(t, vendor.ID, campaign.OwnerAccountID())
}

func TestCampaignService_Create_UnverifiedOrgRejected(t *testing.T) {
	fx := createTestCampaignService()
	ctx := context.Background()

	vendor := verifiedVendor()
	org := &entity.Organization{ID: uuid.New(), VendorAccountID: vendor.ID, Name: "Acme"}

	fx.accountRepo.On("FindByID", ctx, vendor.ID).Return(vendor, nil)
	fx.orgRepo.On("FindByID", ctx, org.ID).Return(org, nil)

	_, err := fx.service.Create(ctx, vendor.ID, usecase.CreateCampaignInput{OrganizationID: org.ID, Name: "Summer sale"})
	assert.ErrorIs(t, err, domainerrors.ErrOrganizationNotVerified)
	fx.campaignRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCampaignService_Create_ForeignOrgRejected(t *testing.T) {
	fx := createTestCampaignService()
	ctx := context.Background()

	vendor := verifiedVendor()
	org := &entity.Organization{ID: uuid.New(), VendorAccountID: uuid.New(), Name: "Other's", Verified: true}

	fx.accountRepo.On("FindByID", ctx, vendor.ID).Return(vendor, nil)
	fx.orgRepo.On("FindByID", ctx, org.ID).Return(org, nil)

	_, err := fx.service.Create(ctx, vendor.ID, usecase.CreateCampaignInput{OrganizationID: org.ID, Name: "Squatting"})
	assert.ErrorIs(t, err, domainerrors.ErrNotOwner)
}

func TestCampaignService_Create_UnknownOrgIsBadReference(t *testing.T) {
	fx := createTestCampaignService()
	ctx := context.Background()

	vendor := verifiedVendor()
	orgID := uuid.New()

	fx.accountRepo.On("FindByID", ctx, vendor.ID).Return(vendor, nil)
	fx.orgRepo.On("FindByID", ctx, orgID).Return(nil, repository.ErrOrganizationNotFound)

	_, err := fx.service.Create(ctx, vendor.ID, usecase.CreateCampaignInput{OrganizationID: orgID, Name: "Dangling"})
	assert.ErrorIs(t, err, domainerrors.ErrReferenceNotFound)
}

func TestCampaignService_Update_RestrictedVendorRejected(t *testing.T) {
	fx := createTestCampaignService()
	ctx := context.Background()

	vendor := &entity.Account{
		ID:     uuid.New(),
		Kind:   entity.KindVendor,
		Vendor: &entity.VendorProfile{Verified: true, Restricted: true},
	}
	org := &entity.Organization{ID: uuid.New(), VendorAccountID: vendor.ID, Name: "Acme", Verified: true}
	campaign := &entity.Campaign{ID: uuid.New(), OrganizationID: org.ID, Organization: org, Name: "Summer sale"}

	fx.accountRepo.On("FindByID", ctx, vendor.ID).Return(vendor, nil)
	fx.campaignRepo.On("FindByID", ctx, campaign.ID).Return(campaign, nil)

	active := false
	_, err := fx.service.Update(ctx, vendor.ID, campaign.ID, usecase.UpdateCampaignInput{Active: &active})
	assert.ErrorIs(t, err, domainerrors.ErrVendorRestricted)
	fx.campaignRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestCampaignService_Update_PatchesOnlyGivenFields(t *testing.T) {
	fx := createTestCampaignService()
	ctx := context.Background()

	vendor := verifiedVendor()
	org := &entity.Organization{ID: uuid.New(), VendorAccountID: vendor.ID, Name: "Acme", Verified: true}
	campaign := &entity.Campaign{ID: uuid.New(), OrganizationID: org.ID, Organization: org, Name: "Summer sale", Active: true}

	fx.accountRepo.On("FindByID", ctx, vendor.ID).Return(vendor, nil)
	fx.campaignRepo.On("FindByID", ctx, campaign.ID).Return(campaign, nil)
	fx.campaignRepo.On("Update", ctx, campaign).Return(nil)

	newName := "Autumn sale"
	updated, err := fx.service.Update(ctx, vendor.ID, campaign.ID, usecase.UpdateCampaignInput{Name: &newName})
	require.NoError(t, err)

	assert.Equal(t, "Autumn sale", updated.Name)
	assert.True(t, updated.Active)
}

func TestCampaignService_Delete_NonOwnerRejected(t *testing.T) {
	fx := createTestCampaignService()
	ctx := context.Background()

	vendor := verifiedVendor()
	org := &entity.Organization{ID: uuid.New(), VendorAccountID: uuid.New(), Name: "Other's", Verified: true}
	campaign := &entity.Campaign{ID: uuid.New(), OrganizationID: org.ID, Organization: org, Name: "Summer sale"}

	fx.accountRepo.On("FindByID", ctx, vendor.ID).Return(vendor, nil)
	fx.campaignRepo.On("FindByID", ctx, campaign.ID).Return(campaign, nil)

	err := fx.service.Delete(ctx, vendor.ID, campaign.ID)
	assert.ErrorIs(t, err, domainerrors.ErrNotOwner)
	fx.campaignRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
