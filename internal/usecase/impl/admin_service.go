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

// adminService implements the AdminUsecase interface. Every operation is an
// idempotent flag toggle guarded by the admin-only predicate.
type adminService struct {
	accountRepo repository.AccountRepository
	orgRepo     repository.OrganizationRepository
	logger      *slog.Logger
}

// AdminServiceParams holds dependencies for adminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	AccountRepo repository.AccountRepository
	OrgRepo     repository.OrganizationRepository
	Logger      *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	return &adminService{
		accountRepo: params.AccountRepo,
		orgRepo:     params.OrgRepo,
		logger:      params.Logger,
	}
}

func (srv *adminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// requireAdmin loads the requester and evaluates the admin-only predicate.
// Admin checks never get the safe-method bypass.
func (srv *adminService) requireAdmin(ctx context.Context, requesterID uuid.UUID) error {
	requester, err := srv.accountRepo.FindByID(ctx, requesterID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return domainerrors.ErrAdminRequired
		}

		return errors.Wrap(err, "failed to load requester")
	}

	return policy.Authorize(policy.RequesterFrom(requester), policy.ActionUpdate, nil, policy.Admin())
}

// SetAdmin toggles the staff and superuser flags together; the two are never
// granted separately.
func (srv *adminService) SetAdmin(ctx context.Context, requesterID, accountID uuid.UUID, state bool) error {
	if err := srv.requireAdmin(ctx, requesterID); err != nil {
		return err
	}

	account, err := srv.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return domainerrors.ErrNotFound
		}

		return errors.Wrap(err, "failed to load account for admin grant")
	}

	if account.Staff == state && account.Superuser == state {
		return nil
	}

	account.Staff = state
	account.Superuser = state
	if err := srv.accountRepo.Update(ctx, account); err != nil {
		return errors.Wrap(err, "failed to update admin flags")
	}

	srv.log(ctx).Info("Admin grant changed", slog.Any("accountID", accountID), slog.Bool("state", state))

	return nil
}

// SetVendorRestricted toggles the vendor publishing ban.
func (srv *adminService) SetVendorRestricted(ctx context.Context, requesterID, accountID uuid.UUID, state bool) error {
	if err := srv.requireAdmin(ctx, requesterID); err != nil {
		return err
	}

	account, err := srv.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return domainerrors.ErrNotFound
		}

		return errors.Wrap(err, "failed to load account for restriction")
	}

	if account.Kind != entity.KindVendor || account.Vendor == nil {
		return domainerrors.ErrNotVendor
	}

	if account.Vendor.Restricted == state {
		return nil
	}

	account.Vendor.Restricted = state
	if err := srv.accountRepo.Update(ctx, account); err != nil {
		return errors.Wrap(err, "failed to update restriction flag")
	}

	srv.log(ctx).Info("Vendor restriction changed", slog.Any("accountID", accountID), slog.Bool("state", state))

	return nil
}

// SetOrganizationVerified toggles organization approval. Verifying also
// marks the organization reviewed; un-verifying leaves reviewed untouched so
// the record of a past review survives revocation.
func (srv *adminService) SetOrganizationVerified(ctx context.Context, requesterID, organizationID uuid.UUID, state bool) error {
	if err := srv.requireAdmin(ctx, requesterID); err != nil {
		return err
	}

	org, err := srv.orgRepo.FindByID(ctx, organizationID)
	if err != nil {
		if errors.Is(err, repository.ErrOrganizationNotFound) {
			return domainerrors.ErrNotFound
		}

		return errors.Wrap(err, "failed to load organization for verification")
	}

	if org.Verified == state && (!state || org.Reviewed) {
		return nil
	}

	org.Verified = state
	if state {
		org.Reviewed = true
	}
	if err := srv.orgRepo.Update(ctx, org); err != nil {
		return errors.Wrap(err, "failed to update organization verification")
	}

	srv.log(ctx).Info("Organization verification changed", slog.Any("organizationID", organizationID), slog.Bool("state", state))

	return nil
}
