package impl

import (
	"context"
	"log/slog"
	"time"

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

// engagementService implements the EngagementUsecase interface. All
// operations are consumer-only.
type engagementService struct {
	txManager      repository.TransactionManager
	accountRepo    repository.AccountRepository
	couponRepo     repository.CouponRepository
	engagementRepo repository.EngagementRepository
	publisher      service.EventPublisher
	logger         *slog.Logger
}

// EngagementServiceParams holds dependencies for engagementService, injected by Fx.
type EngagementServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	AccountRepo    repository.AccountRepository
	CouponRepo     repository.CouponRepository
	EngagementRepo repository.EngagementRepository
	Publisher      service.EventPublisher
	Logger         *slog.Logger
}

// NewEngagementService is the constructor for engagementService.
func NewEngagementService(params EngagementServiceParams) usecase.EngagementUsecase {
	return &engagementService{
		txManager:      params.TxManager,
		accountRepo:    params.AccountRepo,
		couponRepo:     params.CouponRepo,
		engagementRepo: params.EngagementRepo,
		publisher:      params.Publisher,
		logger:         params.Logger,
	}
}

func (srv *engagementService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// requireConsumer loads the requester and rejects everyone but consumers.
func (srv *engagementService) requireConsumer(ctx context.Context, requesterID uuid.UUID) error {
	req, err := loadRequester(ctx, srv.accountRepo, requesterID)
	if err != nil {
		return err
	}

	return policy.Authorize(req, policy.ActionCreate, nil, policy.Kind(entity.KindConsumer))
}

// loadEngageableCoupon returns the coupon if it is currently open for
// consumer interaction.
func (srv *engagementService) loadEngageableCoupon(ctx context.Context, couponID uuid.UUID) (*entity.Coupon, error) {
	coupon, err := srv.couponRepo.FindByID(ctx, couponID)
	if err != nil {
		if errors.Is(err, repository.ErrCouponNotFound) {
			return nil, domainerrors.ErrReferenceNotFound.WrapMessage("coupon does not exist")
		}

		return nil, errors.Wrap(err, "failed to load coupon for engagement")
	}

	if !coupon.Published || !coupon.Active {
		return nil, domainerrors.ErrValidationFailed.WithDetails("coupon is not available")
	}

	return coupon, nil
}

// RateCoupon records a 1..5 score with an optional review. A consumer can
// rate each coupon once.
func (srv *engagementService) RateCoupon(ctx context.Context, requesterID uuid.UUID, input usecase.RateCouponInput) (*entity.Rating, error) {
	if err := srv.requireConsumer(ctx, requesterID); err != nil {
		return nil, err
	}
	if input.Rate < 1 || input.Rate > 5 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("rate must be between 1 and 5")
	}

	if _, err := srv.loadEngageableCoupon(ctx, input.CouponID); err != nil {
		return nil, err
	}

	rating := &entity.Rating{
		ConsumerAccountID: requesterID,
		CouponID:          input.CouponID,
		Rate:              input.Rate,
		Review:            input.Review,
	}
	if err := srv.engagementRepo.CreateRating(ctx, rating); err != nil {
		return nil, err
	}

	return rating, nil
}

// ShortlistCoupon saves a coupon for later.
func (srv *engagementService) ShortlistCoupon(ctx context.Context, requesterID, couponID uuid.UUID) (*entity.Shortlist, error) {
	if err := srv.requireConsumer(ctx, requesterID); err != nil {
		return nil, err
	}

	if _, err := srv.loadEngageableCoupon(ctx, couponID); err != nil {
		return nil, err
	}

	shortlist := &entity.Shortlist{
		ConsumerAccountID: requesterID,
		CouponID:          couponID,
		Active:            true,
	}
	if err := srv.engagementRepo.CreateShortlist(ctx, shortlist); err != nil {
		return nil, err
	}

	return shortlist, nil
}

// RedeemCoupon records a use of the coupon if any redemptions remain. The
// count check and the insert share one transaction so concurrent requests
// cannot overdraw the amount.
func (srv *engagementService) RedeemCoupon(ctx context.Context, requesterID, couponID uuid.UUID) (*entity.Redemption, error) {
	if err := srv.requireConsumer(ctx, requesterID); err != nil {
		return nil, err
	}

	coupon, err := srv.loadEngageableCoupon(ctx, couponID)
	if err != nil {
		return nil, err
	}

	redemption := &entity.Redemption{
		ConsumerAccountID: requesterID,
		CouponID:          couponID,
	}
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		engagementRepo := repoFactory.EngagementRepo()

		used, err := engagementRepo.CountRedemptions(ctx, couponID)
		if err != nil {
			return err
		}
		if used >= int64(coupon.Amount) {
			return domainerrors.ErrValidationFailed.WithDetails("no redemptions remaining")
		}

		return engagementRepo.CreateRedemption(ctx, redemption)
	})
	if err != nil {
		return nil, err
	}

	srv.publishRedeemed(ctx, requesterID, couponID)

	return redemption, nil
}

func (srv *engagementService) publishRedeemed(ctx context.Context, accountID, couponID uuid.UUID) {
	event := &service.DomainEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Name:       service.EventCouponRedeemed,
		AccountID:  accountID.String(),
		ResourceID: couponID.String(),
		OccurredAt: time.Now(),
	}
	if err := srv.publisher.PublishEvent(ctx, event); err != nil {
		srv.log(ctx).Error("Failed to publish redemption event", slog.Any("couponID", couponID), slog.Any("error", err))
	}
}
