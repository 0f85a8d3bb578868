package impl

import (
	"context"
	"testing"

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

type couponServiceFixtures struct {
	service      usecase.CouponUsecase
	accountRepo  *mocks.MockAccountRepository
	campaignRepo *mocks.MockCampaignRepository
	outletRepo   *mocks.MockOutletRepository
	couponRepo   *mocks.MockCouponRepository
	catalogRepo  *mocks.MockCatalogRepository
	qrService    *mocks.MockQRCodeService
}

func createTestCouponService() couponServiceFixtures {
	accountRepo := new(mocks.MockAccountRepository)
	campaignRepo := new(mocks.MockCampaignRepository)
	outletRepo := new(mocks.MockOutletRepository)
	couponRepo := new(mocks.MockCouponRepository)
	catalogRepo := new(mocks.MockCatalogRepository)
	qrService := new(mocks.MockQRCodeService)

	service := NewCouponService(CouponServiceParams{
		AccountRepo:  accountRepo,
		CampaignRepo: campaignRepo,
		OutletRepo:   outletRepo,
		CouponRepo:   couponRepo,
		CatalogRepo:  catalogRepo,
		QRService:    qrService,
		Logger:       newDiscardLogger(),
	})

	return couponServiceFixtures{
		service:      service,
		accountRepo:  accountRepo,
		campaignRepo: campaignRepo,
		outletRepo:   outletRepo,
		couponRepo:   couponRepo,
		catalogRepo:  catalogRepo,
		qrService:    qrService,
	}
}

// couponChain builds a vendor, its verified organization, and a campaign
// under it, with the ownership chain preloaded the way the repositories
// return it.
func couponChain() (*entity.Account, *entity.Organization, *entity.Campaign) {
	vendor := verifiedVendor()
	org := &entity.Organization{ID: uuid.New(), VendorAccountID: vendor.ID, Name: "Acme", Verified: true}
	campaign := &entity.Campaign{ID: uuid.New(), OrganizationID: org.ID, Organization: org, Name: "Summer sale", Active: true}

	return vendor, org, campaign
}

func TestCouponService_Create(t *testing.T) {
	fx := createTestCouponService()
	ctx := context.Background()

	vendor, org, campaign := couponChain()
	typeID := uuid.New()
	categoryID := uuid.New()
	outlet := entity.Outlet{ID: uuid.New(), OrganizationID: org.ID, Organization: org, Name: "Downtown"}
	interest := entity.Interest{ID: uuid.New(), Name: "Food"}

	fx.accountRepo.On("FindByID", ctx, vendor.ID).Return(vendor, nil)
	fx.campaignRepo.On("FindByID", ctx, campaign.ID).Return(campaign, nil)
	fx.catalogRepo.On("FindType", ctx, typeID).Return(&entity.CouponType{ID: typeID}, nil)
	fx.catalogRepo.On("FindCategory", ctx, categoryID).Return(&entity.Category{ID: categoryID}, nil)
	fx.outletRepo.On("FindByIDs", ctx, []uuid.UUID{outlet.ID}).Return([]entity.Outlet{outlet}, nil)
	fx.catalogRepo.On("FindInterestsByIDs", ctx, []uuid.UUID{interest.ID}).Return([]entity.Interest{interest}, nil)
	fx.couponRepo.On("Create", ctx, mock.AnythingOfType("*entity.Coupon")).Return(nil)

	coupon, err := fx.service.Create(ctx, vendor.ID, usecase.CreateCouponInput{
		CampaignID:  campaign.ID,
		TypeID:      typeID,
		CategoryID:  categoryID,
		Name:        "Free coffee",
		Deal:        "1+1",
		Amount:      100,
		Code:        "COFFEE-2026",
		OutletIDs:   []uuid.UUID{outlet.ID},
		InterestIDs: []uuid.UUID{interest.ID},
		Published:   true,
		Active:      true,
	})
	require.NoError(t, err)

	assert.Equal(t, campaign.ID, coupon.CampaignID)
	assert.Equal(t, vendor.ID, coupon.OwnerAccountID())
	assert.Len(t, coupon.Outlets, 1)
	assert.Len(t, coupon.Interests, 1)
}

func TestCouponService_Create_ForeignOutletRejected(t *testing.T) {
	fx := createTestCouponService()
	ctx := context.Background()

	vendor, _, campaign := couponChain()
	otherOrg := &entity.Organization{ID: uuid.New(), VendorAccountID: uuid.New(), Name: "Rival", Verified: true}
	foreignOutlet := entity.Outlet{ID: uuid.New(), OrganizationID: otherOrg.ID, Organization: otherOrg, Name: "Rival HQ"}
	typeID := uuid.New()
	categoryID := uuid.New()

	fx.accountRepo.On("FindByID", ctx, vendor.ID).Return(vendor, nil)
	fx.campaignRepo.On("FindByID", ctx, campaign.ID).Return(campaign, nil)
	fx.catalogRepo.On("FindType", ctx, typeID).Return(&entity.CouponType{ID: typeID}, nil)
	fx.catalogRepo.On("FindCategory", ctx, categoryID).Return(&entity.Category{ID: categoryID}, nil)
	fx.outletRepo.On("FindByIDs", ctx, []uuid.UUID{foreignOutlet.ID}).Return([]entity.Outlet{foreignOutlet}, nil)

	_, err := fx.service.Create(ctx, vendor.ID, usecase.CreateCouponInput{
		CampaignID: campaign.ID,
		TypeID:     typeID,
		CategoryID: categoryID,
		Name:       "Sneaky",
		OutletIDs:  []uuid.UUID{foreignOutlet.ID},
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	fx.couponRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCouponService_Create_UnknownTypeRejected(t *testing.T) {
	fx := createTestCouponService()
	ctx := context.Background()

	vendor, _, campaign := couponChain()
	typeID := uuid.New()

	fx.accountRepo.On("FindByID", ctx, vendor.ID).Return(vendor, nil)
	fx.campaignRepo.On("FindByID", ctx, campaign.ID).Return(campaign, nil)
	fx.catalogRepo.On("FindType", ctx, typeID).Return(nil, repository.ErrCatalogEntryNotFound)

	_, err := fx.service.Create(ctx, vendor.ID, usecase.CreateCouponInput{
		CampaignID: campaign.ID,
		TypeID:     typeID,
		CategoryID: uuid.New(),
		Name:       "Dangling type",
	})
	assert.ErrorIs(t, err, domainerrors.ErrReferenceNotFound)
}

func TestCouponService_Create_MissingOutletRejected(t *testing.T) {
	fx := createTestCouponService()
	ctx := context.Background()

	vendor, org, campaign := couponChain()
	typeID := uuid.New()
	categoryID := uuid.New()
	known := entity.Outlet{ID: uuid.New(), OrganizationID: org.ID, Organization: org}
	missing := uuid.New()

	fx.accountRepo.On("FindByID", ctx, vendor.ID).Return(vendor, nil)
	fx.campaignRepo.On("FindByID", ctx, campaign.ID).Return(campaign, nil)
	fx.catalogRepo.On("FindType", ctx, typeID).Return(&entity.CouponType{ID: typeID}, nil)
	fx.catalogRepo.On("FindCategory", ctx, categoryID).Return(&entity.Category{ID: categoryID}, nil)
	fx.outletRepo.On("FindByIDs", ctx, []uuid.UUID{known.ID, missing}).Return([]entity.Outlet{known}, nil)

	_, err := fx.service.Create(ctx, vendor.ID, usecase.CreateCouponInput{
		CampaignID: campaign.ID,
		TypeID:     typeID,
		CategoryID: categoryID,
		Name:       "Half resolved",
		OutletIDs:  []uuid.UUID{known.ID, missing},
	})
	assert.ErrorIs(t, err, domainerrors.ErrReferenceNotFound)
}

func TestCouponService_Create_UnverifiedOrgRejected(t *testing.T) {
	fx := createTestCouponService()
	ctx := context.Background()

	vendor := verifiedVendor()
	org := &entity.Organization{ID: uuid.New(), VendorAccountID: vendor.ID, Name: "Acme"}
	campaign := &entity.Campaign{ID: uuid.New(), OrganizationID: org.ID, Organization: org, Name: "Early bird"}

	fx.accountRepo.On("FindByID", ctx, vendor.ID).Return(vendor, nil)
	fx.campaignRepo.On("FindByID", ctx, campaign.ID).Return(campaign, nil)

	_, err := fx.service.Create(ctx, vendor.ID, usecase.CreateCouponInput{CampaignID: campaign.ID, Name: "Too soon"})
	assert.ErrorIs(t, err, domainerrors.ErrOrganizationNotVerified)
}

func TestCouponService_Update_KeepsAssociationsWhenOmitted(t *testing.T) {
	fx := createTestCouponService()
	ctx := context.Background()

	vendor, org, campaign := couponChain()
	outlet := entity.Outlet{ID: uuid.New(), OrganizationID: org.ID, Organization: org}
	interest := entity.Interest{ID: uuid.New(), Name: "Food"}
	coupon := &entity.Coupon{
		ID:         uuid.New(),
		TypeID:     uuid.New(),
		CategoryID: uuid.New(),
		CampaignID: campaign.ID,
		Campaign:   campaign,
		Name:       "Free coffee",
		Outlets:    []entity.Outlet{outlet},
		Interests:  []entity.Interest{interest},
	}

	fx.accountRepo.On("FindByID", ctx, vendor.ID).Return(vendor, nil)
	fx.couponRepo.On("FindByID", ctx, coupon.ID).Return(coupon, nil)
	fx.catalogRepo.On("FindType", ctx, coupon.TypeID).Return(&entity.CouponType{ID: coupon.TypeID}, nil)
	fx.catalogRepo.On("FindCategory", ctx, coupon.CategoryID).Return(&entity.Category{ID: coupon.CategoryID}, nil)
	fx.outletRepo.On("FindByIDs", ctx, []uuid.UUID{outlet.ID}).Return([]entity.Outlet{outlet}, nil)
	fx.catalogRepo.On("FindInterestsByIDs", ctx, []uuid.UUID{interest.ID}).Return([]entity.Interest{interest}, nil)
	fx.couponRepo.On("Update", ctx, coupon).Return(nil)

	newName := "Free espresso"
	updated, err := fx.service.Update(ctx, vendor.ID, coupon.ID, usecase.UpdateCouponInput{Name: &newName})
	require.NoError(t, err)

	assert.Equal(t, "Free espresso", updated.Name)
	assert.Len(t, updated.Outlets, 1)
	assert.Len(t, updated.Interests, 1)
}

func TestCouponService_Update_NonOwnerRejected(t *testing.T) {
	fx := createTestCouponService()
	ctx := context.Background()

	vendor := verifiedVendor()
	otherOrg := &entity.Organization{ID: uuid.New(), VendorAccountID: uuid.New(), Name: "Rival", Verified: true}
	campaign := &entity.Campaign{ID: uuid.New(), OrganizationID: otherOrg.ID, Organization: otherOrg}
	coupon := &entity.Coupon{ID: uuid.New(), CampaignID: campaign.ID, Campaign: campaign, Name: "Rival deal"}

	fx.accountRepo.On("FindByID", ctx, vendor.ID).Return(vendor, nil)
	fx.couponRepo.On("FindByID", ctx, coupon.ID).Return(coupon, nil)

	name := "Defaced"
	_, err := fx.service.Update(ctx, vendor.ID, coupon.ID, usecase.UpdateCouponInput{Name: &name})
	assert.ErrorIs(t, err, domainerrors.ErrNotOwner)
}

func TestCouponService_GenerateQR(t *testing.T) {
	fx := createTestCouponService()
	ctx := context.Background()

	_, _, campaign := couponChain()
	coupon := &entity.Coupon{ID: uuid.New(), CampaignID: campaign.ID, Campaign: campaign, Code: "COFFEE-2026"}
	png := []byte{0x89, 'P', 'N', 'G'}

	fx.couponRepo.On("FindByID", ctx, coupon.ID).Return(coupon, nil)
	fx.qrService.On("GenerateRedemptionQR", coupon.ID, coupon.Code).Return(png, nil)

	got, err := fx.service.GenerateQR(ctx, coupon.ID)
	require.NoError(t, err)
	assert.Equal(t, png, got)
}

func TestCouponService_GenerateQR_UnknownCoupon(t *testing.T) {
	fx := createTestCouponService()
	ctx := context.Background()

	id := uuid.New()
	fx.couponRepo.On("FindByID", ctx, id).Return(nil, repository.ErrCouponNotFound)

	_, err := fx.service.GenerateQR(ctx, id)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}
