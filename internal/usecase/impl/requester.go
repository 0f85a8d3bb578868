package impl

import (
	"context"

	domainerrors "couponhub/internal/domain/errors"
	"couponhub/internal/domain/policy"
	"couponhub/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// loadRequester resolves the authenticated account into its authorization
// view. A token whose account vanished is treated as invalid.
func loadRequester(ctx context.Context, accountRepo repository.AccountRepository, requesterID uuid.UUID) (policy.Requester, error) {
	account, err := accountRepo.FindByID(ctx, requesterID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return policy.Requester{}, domainerrors.ErrInvalidToken.WrapMessage("account no longer exists")
		}

		return policy.Requester{}, errors.Wrap(err, "failed to load requester")
	}

	return policy.RequesterFrom(account), nil
}
