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

// outletService implements the OutletUsecase interface.
type outletService struct {
	accountRepo repository.AccountRepository
	orgRepo     repository.OrganizationRepository
	outletRepo  repository.OutletRepository
	logger      *slog.Logger
}

// OutletServiceParams holds dependencies for outletService, injected by Fx.
type OutletServiceParams struct {
	fx.In

	AccountRepo repository.AccountRepository
	OrgRepo     repository.OrganizationRepository
	OutletRepo  repository.OutletRepository
	Logger      *slog.Logger
}

// NewOutletService is the constructor for outletService.
func NewOutletService(params OutletServiceParams) usecase.OutletUsecase {
	return &outletService{
		accountRepo: params.AccountRepo,
		orgRepo:     params.OrgRepo,
		outletRepo:  params.OutletRepo,
		logger:      params.Logger,
	}
}

func (srv *outletService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List returns all outlets. Reads are public.
func (srv *outletService) List(ctx context.Context) ([]entity.Outlet, error) {
	return srv.outletRepo.List(ctx)
}

// Get returns a single outlet with its ownership chain loaded.
func (srv *outletService) Get(ctx context.Context, id uuid.UUID) (*entity.Outlet, error) {
	outlet, err := srv.outletRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrOutletNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to load outlet")
	}

	return outlet, nil
}

// Create adds an outlet under the requester's organization. The same rules
// as campaign creation apply: the organization must exist, be verified, and
// be owned by the requester.
func (srv *outletService) Create(ctx context.Context, requesterID uuid.UUID, input usecase.CreateOutletInput) (*entity.Outlet, error) {
	req, err := loadRequester(ctx, srv.accountRepo, requesterID)
	if err != nil {
		return nil, err
	}

	org, err := srv.orgRepo.FindByID(ctx, input.OrganizationID)
	if err != nil {
		if errors.Is(err, repository.ErrOrganizationNotFound) {
			return nil, domainerrors.ErrReferenceNotFound.WrapMessage("organization does not exist")
		}

		return nil, errors.Wrap(err, "failed to load organization for outlet")
	}

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

	outlet := &entity.Outlet{
		OrganizationID: org.ID,
		Organization:   org,
		Name:           input.Name,
		Description:    input.Description,
		Address:        input.Address,
		Latitude:       input.Latitude,
		Longitude:      input.Longitude,
	}
	outlet.SyncGeom()

	if err := srv.outletRepo.Create(ctx, outlet); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Outlet created", slog.Any("outletID", outlet.ID), slog.Any("organizationID", org.ID))

	return outlet, nil
}

// Update modifies an outlet owned by the requester.
func (srv *outletService) Update(ctx context.Context, requesterID, id uuid.UUID, input usecase.UpdateOutletInput) (*entity.Outlet, error) {
	req, err := loadRequester(ctx, srv.accountRepo, requesterID)
	if err != nil {
		return nil, err
	}

	outlet, err := srv.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	err = policy.Authorize(req, policy.ActionUpdate, outlet,
		policy.Kind(entity.KindVendor),
		policy.VendorUnrestricted(),
		policy.Owner(),
	)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		outlet.Name = *input.Name
	}
	if input.Description != nil {
		outlet.Description = *input.Description
	}
	if input.Address != nil {
		outlet.Address = *input.Address
	}
	if input.Latitude != nil {
		outlet.Latitude = *input.Latitude
	}
	if input.Longitude != nil {
		outlet.Longitude = *input.Longitude
	}
	outlet.SyncGeom()

	if err := srv.outletRepo.Update(ctx, outlet); err != nil {
		return nil, err
	}

	return outlet, nil
}

// Delete removes an outlet owned by the requester.
func (srv *outletService) Delete(ctx context.Context, requesterID, id uuid.UUID) error {
	req, err := loadRequester(ctx, srv.accountRepo, requesterID)
	if err != nil {
		return err
	}

	outlet, err := srv.Get(ctx, id)
	if err != nil {
		return err
	}

	err = policy.Authorize(req, policy.ActionDelete, outlet,
		policy.Kind(entity.KindVendor),
		policy.VendorUnrestricted(),
		policy.Owner(),
	)
	if err != nil {
		return err
	}

	if err := srv.outletRepo.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete outlet")
	}

	srv.log(ctx).Info("Outlet deleted", slog.Any("outletID", id))

	return nil
}
