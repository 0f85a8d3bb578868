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

// organizationService implements the OrganizationUsecase interface.
type organizationService struct {
	accountRepo repository.AccountRepository
	orgRepo     repository.OrganizationRepository
	logger      *slog.Logger
}

// OrganizationServiceParams holds dependencies for organizationService, injected by Fx.
type OrganizationServiceParams struct {
	fx.In

	AccountRepo repository.AccountRepository
	OrgRepo     repository.OrganizationRepository
	Logger      *slog.Logger
}

// NewOrganizationService is the constructor for organizationService.
func NewOrganizationService(params OrganizationServiceParams) usecase.OrganizationUsecase {
	return &organizationService{
		accountRepo: params.AccountRepo,
		orgRepo:     params.OrgRepo,
		logger:      params.Logger,
	}
}

func (srv *organizationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List returns all organizations. Reads are public.
func (srv *organizationService) List(ctx context.Context) ([]entity.Organization, error) {
	return srv.orgRepo.List(ctx)
}

// Get returns a single organization.
func (srv *organizationService) Get(ctx context.Context, id uuid.UUID) (*entity.Organization, error) {
	org, err := srv.orgRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrOrganizationNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to load organization")
	}

	return org, nil
}

// Create registers the vendor's single organization. The requester must be a
// verified, unrestricted vendor; the one-per-vendor limit and the unique name
// are enforced by database constraints, so two racing requests cannot both
// win.
func (srv *organizationService) Create(ctx context.Context, requesterID uuid.UUID, input usecase.CreateOrganizationInput) (*entity.Organization, error) {
	req, err := loadRequester(ctx, srv.accountRepo, requesterID)
	if err != nil {
		return nil, err
	}

	err = policy.Authorize(req, policy.ActionCreate, nil,
		policy.Kind(entity.KindVendor),
		policy.VendorVerified(),
		policy.VendorUnrestricted(),
	)
	if err != nil {
		return nil, err
	}

	org := &entity.Organization{
		VendorAccountID: requesterID,
		Name:            input.Name,
		Address:         input.Address,
	}
	if err := srv.orgRepo.Create(ctx, org); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Organization created", slog.Any("organizationID", org.ID), slog.Any("vendorID", requesterID))

	return org, nil
}

// Update modifies the organization. Once verified the record is frozen for
// its owner; only an admin can still touch it.
func (srv *organizationService) Update(ctx context.Context, requesterID, id uuid.UUID, input usecase.UpdateOrganizationInput) (*entity.Organization, error) {
	req, err := loadRequester(ctx, srv.accountRepo, requesterID)
	if err != nil {
		return nil, err
	}

	org, err := srv.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	err = policy.Authorize(req, policy.ActionUpdate, org,
		policy.Kind(entity.KindVendor),
		policy.VendorUnrestricted(),
		policy.Owner(),
	)
	if err != nil {
		return nil, err
	}

	if org.Verified && !req.Admin {
		return nil, domainerrors.ErrOrganizationLocked
	}

	if input.Name != nil {
		org.Name = *input.Name
	}
	if input.Address != nil {
		org.Address = *input.Address
	}

	if err := srv.orgRepo.Update(ctx, org); err != nil {
		return nil, err
	}

	return org, nil
}

// Delete removes the organization, subject to the same lock as Update.
func (srv *organizationService) Delete(ctx context.Context, requesterID, id uuid.UUID) error {
	req, err := loadRequester(ctx, srv.accountRepo, requesterID)
	if err != nil {
		return err
	}

	org, err := srv.Get(ctx, id)
	if err != nil {
		return err
	}

	err = policy.Authorize(req, policy.ActionDelete, org,
		policy.Kind(entity.KindVendor),
		policy.VendorUnrestricted(),
		policy.Owner(),
	)
	if err != nil {
		return err
	}

	if org.Verified && !req.Admin {
		return domainerrors.ErrOrganizationLocked
	}

	if err := srv.orgRepo.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete organization")
	}

	srv.log(ctx).Info("Organization deleted", slog.Any("organizationID", id))

	return nil
}
