package impl

import (
	"context"
	"log/slog"

	deliverycontext "couponhub/internal/delivery/context"
	"couponhub/internal/domain/entity"
	domainerrors "couponhub/internal/domain/errors"
	"couponhub/internal/domain/policy"
	"couponhub/internal/domain/repository"
	"couponhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// campaignService implements the CampaignUsecase interface.
type campaignService struct {
	accountRepo  repository.AccountRepository
	orgRepo      repository.OrganizationRepository
	campaignRepo repository.CampaignRepository
	logger       *slog.Logger
}

// CampaignServiceParams holds dependencies for campaignService, injected by Fx.
type CampaignServiceParams struct {
	fx.In

	AccountRepo  repository.AccountRepository
	OrgRepo      repository.OrganizationRepository
	CampaignRepo repository.CampaignRepository
	Logger       *slog.Logger
}

// NewCampaignService is the constructor for campaignService.
func NewCampaignService(params CampaignServiceParams) usecase.CampaignUsecase {
	return &campaignService{
		accountRepo:  params.AccountRepo,
		orgRepo:      params.OrgRepo,
		campaignRepo: params.CampaignRepo,
		logger:       params.Logger,
	}
}

func (srv *campaignService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List returns all campaigns. Reads are public.
func (srv *campaignService) List(ctx context.Context) ([]entity.Campaign, error) {
	return srv.campaignRepo.List(ctx)
}

// Get returns a single campaign with its ownership chain loaded.
func (srv *campaignService) Get(ctx context.Context, id uuid.UUID) (*entity.Campaign, error) {
	campaign, err := srv.campaignRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrCampaignNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to load campaign")
	}

	return campaign, nil
}

// Create adds a campaign under the requester's organization. The referenced
// organization must exist, be verified, and be owned by the requester; a bad
// reference rejects the request body rather than 404ing.
func (srv *campaignService) Create(ctx context.Context, requesterID uuid.UUID, input usecase.CreateCampaignInput) (*entity.Campaign, error) {
	req, err := loadRequester(ctx, srv.accountRepo, requesterID)
	if err != nil {
		return nil, err
	}

	org, err := srv.orgRepo.FindByID(ctx, input.OrganizationID)
	if err != nil {
		if errors.Is(err, repository.ErrOrganizationNotFound) {
			return nil, domainerrors.ErrReferenceNotFound.WrapMessage("organization does not exist")
		}

		return nil, errors.Wrap(err, "failed to load organization for campaign")
	}

	// The new campaign does not exist yet, so ownership is asserted against
	// the parent organization with an update-strength check.
	err = policy.Authorize(req, policy.ActionUpdate, org,
		policy.Kind(entity.KindVendor),
		policy.VendorUnrestricted(),
		policy.Owner(),
	)
	if err != nil {
		return nil, err
	}

	if !org.Verified {
		return nil, domainerrors.ErrOrganizationNotVerified
	}

	campaign := &entity.Campaign{
		OrganizationID: org.ID,
		Organization:   org,
		Name:           input.Name,
		Start:          input.Start,
		End:            input.End,
		Active:         input.Active,
	}
	if err := srv.campaignRepo.Create(ctx, campaign); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Campaign created", slog.Any("campaignID", campaign.ID), slog.Any("organizationID", org.ID))

	return campaign, nil
}

// Update modifies a campaign owned by the requester.
func (srv *campaignService) Update(ctx context.Context, requesterID, id uuid.UUID, input usecase.UpdateCampaignInput) (*entity.Campaign, error) {
	req, err := loadRequester(ctx, srv.accountRepo, requesterID)
	if err != nil {
		return nil, err
	}

	campaign, err := srv.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	err = policy.Authorize(req, policy.ActionUpdate, campaign,
		policy.Kind(entity.KindVendor),
		policy.VendorUnrestricted(),
		policy.Owner(),
	)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		campaign.Name = *input.Name
	}
	if input.Start != nil {
		campaign.Start = *input.Start
	}
	if input.End != nil {
		campaign.End = *input.End
	}
	if input.Active != nil {
		campaign.Active = *input.Active
	}

	if err := srv.campaignRepo.Update(ctx, campaign); err != nil {
		return nil, err
	}

	return campaign, nil
}

// Delete removes a campaign owned by the requester.
func (srv *campaignService) Delete(ctx context.Context, requesterID, id uuid.UUID) error {
	req, err := loadRequester(ctx, srv.accountRepo, requesterID)
	if err != nil {
		return err
	}

	campaign, err := srv.Get(ctx, id)
	if err != nil {
		return err
	}

	err = policy.Authorize(req, policy.ActionDelete, campaign,
		policy.Kind(entity.KindVendor),
		policy.VendorUnrestricted(),
		policy.Owner(),
	)
	if err != nil {
		return err
	}

	if err := srv.campaignRepo.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete campaign")
	}

	srv.log(ctx).Info("Campaign deleted", slog.Any("campaignID", id))

	return nil
}
