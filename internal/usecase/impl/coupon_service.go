package impl

import (
	"context"
	"log/slog"

	deliverycontext "couponhub/internal/delivery/context"
	"couponhub/internal/domain/entity"
	domainerrors "couponhub/internal/domain/errors"
	"couponhub/internal/domain/policy"
	"couponhub/internal/domain/repository"
	"couponhub/internal/domain/service"
	"couponhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// couponService implements the CouponUsecase interface.
type couponService struct {
	accountRepo  repository.AccountRepository
	campaignRepo repository.CampaignRepository
	outletRepo   repository.OutletRepository
	couponRepo   repository.CouponRepository
	catalogRepo  repository.CatalogRepository
	qrService    service.QRCodeService
	logger       *slog.Logger
}

// CouponServiceParams holds dependencies for couponService, injected by Fx.
type CouponServiceParams struct {
	fx.In

	AccountRepo  repository.AccountRepository
	CampaignRepo repository.CampaignRepository
	OutletRepo   repository.OutletRepository
	CouponRepo   repository.CouponRepository
	CatalogRepo  repository.CatalogRepository
	QRService    service.QRCodeService
	Logger       *slog.Logger
}

// NewCouponService is the constructor for couponService.
func NewCouponService(params CouponServiceParams) usecase.CouponUsecase {
	return &couponService{
		accountRepo:  params.AccountRepo,
		campaignRepo: params.CampaignRepo,
		outletRepo:   params.OutletRepo,
		couponRepo:   params.CouponRepo,
		catalogRepo:  params.CatalogRepo,
		qrService:    params.QRService,
		logger:       params.Logger,
	}
}

func (srv *couponService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListPublished returns the coupons visible to consumers.
func (srv *couponService) ListPublished(ctx context.Context) ([]entity.Coupon, error) {
	return srv.couponRepo.ListPublished(ctx)
}

// ListByCampaign returns the coupons of one campaign.
func (srv *couponService) ListByCampaign(ctx context.Context, campaignID uuid.UUID) ([]entity.Coupon, error) {
	return srv.couponRepo.ListByCampaign(ctx, campaignID)
}

// Get returns a single coupon with its ownership chain loaded.
func (srv *couponService) Get(ctx context.Context, id uuid.UUID) (*entity.Coupon, error) {
	coupon, err := srv.couponRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCouponNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to load coupon")
	}

	return coupon, nil
}

// Create adds a coupon under the requester's campaign. Every nested
// reference is validated: the campaign must be owned through a verified
// organization, the type and category must exist, and every outlet must
// resolve to the same ultimate owner as the campaign.
func (srv *couponService) Create(ctx context.Context, requesterID uuid.UUID, input usecase.CreateCouponInput) (*entity.Coupon, error) {
	req, err := loadRequester(ctx, srv.accountRepo, requesterID)
	if err != nil {
		return nil, err
	}

	campaign, err := srv.campaignRepo.FindByID(ctx, input.CampaignID)
	if err != nil {
		if errors.Is(err, repository.ErrCampaignNotFound) {
			return nil, domainerrors.ErrReferenceNotFound.WrapMessage("campaign does not exist")
		}

		return nil, errors.Wrap(err, "failed to load campaign for coupon")
	}

	err = policy.Authorize(req, policy.ActionUpdate, campaign,
		policy.Kind(entity.KindVendor),
		policy.VendorUnrestricted(),
		policy.Owner(),
	)
	if err != nil {
		return nil, err
	}

	if campaign.Organization == nil || !campaign.Organization.Verified {
		return nil, domainerrors.ErrOrganizationNotVerified
	}

	outlets, interests, err := srv.resolveReferences(ctx, campaign, input.TypeID, input.CategoryID, input.OutletIDs, input.InterestIDs)
	if err != nil {
		return nil, err
	}

	coupon := &entity.Coupon{
		TypeID:        input.TypeID,
		CategoryID:    input.CategoryID,
		CampaignID:    campaign.ID,
		Campaign:      campaign,
		Name:          input.Name,
		Description:   input.Description,
		Deal:          input.Deal,
		Terms:         input.Terms,
		Amount:        input.Amount,
		Code:          input.Code,
		Start:         input.Start,
		End:           input.End,
		Advertisement: input.Advertisement,
		Active:        input.Active,
		Published:     input.Published,
		Outlets:       outlets,
		Interests:     interests,
	}
	if err := srv.couponRepo.Create(ctx, coupon); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Coupon created", slog.Any("couponID", coupon.ID), slog.Any("campaignID", campaign.ID))

	return coupon, nil
}

// Update modifies a coupon owned by the requester.
func (srv *couponService) Update(ctx context.Context, requesterID, id uuid.UUID, input usecase.UpdateCouponInput) (*entity.Coupon, error) {
	req, err := loadRequester(ctx, srv.accountRepo, requesterID)
	if err != nil {
		return nil, err
	}

	coupon, err := srv.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	err = policy.Authorize(req, policy.ActionUpdate, coupon,
		policy.Kind(entity.KindVendor),
		policy.VendorUnrestricted(),
		policy.Owner(),
	)
	if err != nil {
		return nil, err
	}

	if input.TypeID != nil {
		coupon.TypeID = *input.TypeID
	}
	if input.CategoryID != nil {
		coupon.CategoryID = *input.CategoryID
	}
	if input.Name != nil {
		coupon.Name = *input.Name
	}
	if input.Description != nil {
		coupon.Description = *input.Description
	}
	if input.Deal != nil {
		coupon.Deal = *input.Deal
	}
	if input.Terms != nil {
		coupon.Terms = *input.Terms
	}
	if input.Amount != nil {
		coupon.Amount = *input.Amount
	}
	if input.Code != nil {
		coupon.Code = *input.Code
	}
	if input.Start != nil {
		coupon.Start = *input.Start
	}
	if input.End != nil {
		coupon.End = *input.End
	}
	if input.Advertisement != nil {
		coupon.Advertisement = *input.Advertisement
	}
	if input.Active != nil {
		coupon.Active = *input.Active
	}
	if input.Published != nil {
		coupon.Published = *input.Published
	}

	outletIDs := input.OutletIDs
	if outletIDs == nil {
		outletIDs = outletIDsOf(coupon.Outlets)
	}
	interestIDs := input.InterestIDs
	if interestIDs == nil {
		interestIDs = interestIDsOf(coupon.Interests)
	}

	outlets, interests, err := srv.resolveReferences(ctx, coupon.Campaign, coupon.TypeID, coupon.CategoryID, outletIDs, interestIDs)
	if err != nil {
		return nil, err
	}
	coupon.Outlets = outlets
	coupon.Interests = interests

	if err := srv.couponRepo.Update(ctx, coupon); err != nil {
		return nil, err
	}

	return coupon, nil
}

// Delete removes a coupon owned by the requester.
func (srv *couponService) Delete(ctx context.Context, requesterID, id uuid.UUID) error {
	req, err := loadRequester(ctx, srv.accountRepo, requesterID)
	if err != nil {
		return err
	}

	coupon, err := srv.Get(ctx, id)
	if err != nil {
		return err
	}

	err = policy.Authorize(req, policy.ActionDelete, coupon,
		policy.Kind(entity.KindVendor),
		policy.VendorUnrestricted(),
		policy.Owner(),
	)
	if err != nil {
		return err
	}

	if err := srv.couponRepo.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete coupon")
	}

	srv.log(ctx).Info("Coupon deleted", slog.Any("couponID", id))

	return nil
}

// GenerateQR renders the coupon's redemption code as a PNG.
func (srv *couponService) GenerateQR(ctx context.Context, id uuid.UUID) ([]byte, error) {
	coupon, err := srv.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrService.GenerateRedemptionQR(coupon.ID, coupon.Code)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render coupon qr")
	}

	return png, nil
}

// resolveReferences validates the nested references of a coupon write.
// Missing entries reject the request body as validation failures, and every
// outlet must share the campaign's ultimate owner.
func (srv *couponService) resolveReferences(
	ctx context.Context,
	campaign *entity.Campaign,
	typeID, categoryID uuid.UUID,
	outletIDs, interestIDs []uuid.UUID,
) ([]entity.Outlet, []entity.Interest, error) {
	if _, err := srv.catalogRepo.FindType(ctx, typeID); err != nil {
		if errors.Is(err, repository.ErrCatalogEntryNotFound) {
			return nil, nil, domainerrors.ErrReferenceNotFound.WrapMessage("coupon type does not exist")
		}

		return nil, nil, errors.Wrap(err, "failed to resolve coupon type")
	}
	if _, err := srv.catalogRepo.FindCategory(ctx, categoryID); err != nil {
		if errors.Is(err, repository.ErrCatalogEntryNotFound) {
			return nil, nil, domainerrors.ErrReferenceNotFound.WrapMessage("category does not exist")
		}

		return nil, nil, errors.Wrap(err, "failed to resolve category")
	}

	outlets, err := srv.outletRepo.FindByIDs(ctx, outletIDs)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to resolve outlets")
	}
	if len(outlets) != len(outletIDs) {
		return nil, nil, domainerrors.ErrReferenceNotFound.WrapMessage("outlet does not exist")
	}
	for i := range outlets {
		if outlets[i].OwnerAccountID() != campaign.OwnerAccountID() {
			return nil, nil, domainerrors.ErrValidationFailed.WithDetails("outlet belongs to a different organization")
		}
	}

	interests, err := srv.catalogRepo.FindInterestsByIDs(ctx, interestIDs)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to resolve interests")
	}
	if len(interests) != len(interestIDs) {
		return nil, nil, domainerrors.ErrReferenceNotFound.WrapMessage("unknown interest")
	}

	return outlets, interests, nil
}

func outletIDsOf(outlets []entity.Outlet) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(outlets))
	for i := range outlets {
		ids = append(ids, outlets[i].ID)
	}

	return ids
}

func interestIDsOf(interests []entity.Interest) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(interests))
	for i := range interests {
		ids = append(ids, interests[i].ID)
	}

	return ids
}
