package impl

import (
	"context"
	"testing"

	"couponhub/internal/domain/entity"
	domainerrors "couponhub/internal/domain/errors"
	"couponhub/internal/domain/service"
	"couponhub/internal/mocks"
	"couponhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type engagementServiceFixtures struct {
	service        usecase.EngagementUsecase
	accountRepo    *mocks.MockAccountRepository
	couponRepo     *mocks.MockCouponRepository
	engagementRepo *mocks.MockEngagementRepository
	publisher      *mocks.MockEventPublisher
}

func createTestEngagementService() engagementServiceFixtures {
	accountRepo := new(mocks.MockAccountRepository)
	couponRepo := new(mocks.MockCouponRepository)
	engagementRepo := new(mocks.MockEngagementRepository)
	publisher := new(mocks.MockEventPublisher)

	factory := &mocks.StubRepositoryFactory{Engagement: engagementRepo}

	svc := NewEngagementService(EngagementServiceParams{
		TxManager:      &mocks.ImmediateTxManager{Factory: factory},
		AccountRepo:    accountRepo,
		CouponRepo:     couponRepo,
		EngagementRepo: engagementRepo,
		Publisher:      publisher,
		Logger:         newDiscardLogger(),
	})

	return engagementServiceFixtures{
		service:        svc,
		accountRepo:    accountRepo,
		couponRepo:     couponRepo,
		engagementRepo: engagementRepo,
		publisher:      publisher,
	}
}

func testConsumer() *entity.Account {
	return &entity.Account{
		ID:       uuid.New(),
		Kind:     entity.KindConsumer,
		Consumer: &entity.ConsumerProfile{},
	}
}

func liveCoupon() *entity.Coupon {
	return &entity.Coupon{
		ID:        uuid.New(),
		Name:      "Free coffee",
		Amount:    2,
		Code:      "COFFEE-2026",
		Active:    true,
		Published: true,
	}
}

func TestEngagementService_RateCoupon(t *testing.T) {
	fx := createTestEngagementService()
	ctx := context.Background()

	consumer := testConsumer()
	coupon := liveCoupon()

	fx.accountRepo.On("FindByID", ctx, consumer.ID).Return(consumer, nil)
	fx.couponRepo.On("FindByID", ctx, coupon.ID).Return(coupon, nil)
	fx.engagementRepo.On("CreateRating", ctx, mock.AnythingOfType("*entity.Rating")).Return(nil)

	rating, err := fx.service.RateCoupon(ctx, consumer.ID, usecase.RateCouponInput{
		CouponID: coupon.ID,
		Rate:     4,
		Review:   "solid deal",
	})
	require.NoError(t, err)

	assert.Equal(t, consumer.ID, rating.ConsumerAccountID)
	assert.Equal(t, 4, rating.Rate)
}

func TestEngagementService_RateCoupon_VendorRejected(t *testing.T) {
	fx := createTestEngagementService()
	ctx := context.Background()

	vendor := verifiedVendor()
	fx.accountRepo.On("FindByID", ctx, vendor.ID).Return(vendor, nil)

	_, err := fx.service.RateCoupon(ctx, vendor.ID, usecase.RateCouponInput{CouponID: uuid.New(), Rate: 5})
	assert.ErrorIs(t, err, domainerrors.ErrNotConsumer)
	fx.engagementRepo.AssertNotCalled(t, "CreateRating", mock.Anything, mock.Anything)
}

func TestEngagementService_RateCoupon_RateOutOfRange(t *testing.T) {
	tests := []struct {
		name string
		rate int
	}{
		{"zero", 0},
		{"negative", -1},
		{"above five", 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestEngagementService()
			ctx := context.Background()

			consumer := testConsumer()
			fx.accountRepo.On("FindByID", ctx, consumer.ID).Return(consumer, nil)

			_, err := fx.service.RateCoupon(ctx, consumer.ID, usecase.RateCouponInput{CouponID: uuid.New(), Rate: tt.rate})
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestEngagementService_RateCoupon_UnpublishedCoupon(t *testing.T) {
	fx := createTestEngagementService()
	ctx := context.Background()

	consumer := testConsumer()
	coupon := liveCoupon()
	coupon.Published = false

	fx.accountRepo.On("FindByID", ctx, consumer.ID).Return(consumer, nil)
	fx.couponRepo.On("FindByID", ctx, coupon.ID).Return(coupon, nil)

	_, err := fx.service.RateCoupon(ctx, consumer.ID, usecase.RateCouponInput{CouponID: coupon.ID, Rate: 3})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestEngagementService_ShortlistCoupon(t *testing.T) {
	fx := createTestEngagementService()
	ctx := context.Background()

	consumer := testConsumer()
	coupon := liveCoupon()

	fx.accountRepo.On("FindByID", ctx, consumer.ID).Return(consumer, nil)
	fx.couponRepo.On("FindByID", ctx, coupon.ID).Return(coupon, nil)
	fx.engagementRepo.On("CreateShortlist", ctx, mock.AnythingOfType("*entity.Shortlist")).Return(nil)

	shortlist, err := fx.service.ShortlistCoupon(ctx, consumer.ID, coupon.ID)
	require.NoError(t, err)

	assert.True(t, shortlist.Active)
	assert.Equal(t, coupon.ID, shortlist.CouponID)
}

func TestEngagementService_RedeemCoupon(t *testing.T) {
	fx := createTestEngagementService()
	ctx := context.Background()

	consumer := testConsumer()
	coupon := liveCoupon()

	fx.accountRepo.On("FindByID", ctx, consumer.ID).Return(consumer, nil)
	fx.couponRepo.On("FindByID", ctx, coupon.ID).Return(coupon, nil)
	fx.engagementRepo.On("CountRedemptions", ctx, coupon.ID).Return(int64(1), nil)
	fx.engagementRepo.On("CreateRedemption", ctx, mock.AnythingOfType("*entity.Redemption")).Return(nil)
	fx.publisher.On("PublishEvent", ctx, mock.AnythingOfType("*service.DomainEvent")).Return(nil)

	redemption, err := fx.service.RedeemCoupon(ctx, consumer.ID, coupon.ID)
	require.NoError(t, err)

	assert.Equal(t, consumer.ID, redemption.ConsumerAccountID)

	fx.publisher.AssertCalled(t, "PublishEvent", ctx, mock.MatchedBy(func(event *service.DomainEvent) bool {
		return event.Name == service.EventCouponRedeemed && event.ResourceID == coupon.ID.String()
	}))
}

func TestEngagementService_RedeemCoupon_Exhausted(t *testing.T) {
	fx := createTestEngagementService()
	ctx := context.Background()

	consumer := testConsumer()
	coupon := liveCoupon()

	fx.accountRepo.On("FindByID", ctx, consumer.ID).Return(consumer, nil)
	fx.couponRepo.On("FindByID", ctx, coupon.ID).Return(coupon, nil)
	fx.engagementRepo.On("CountRedemptions", ctx, coupon.ID).Return(int64(2), nil)

	_, err := fx.service.RedeemCoupon(ctx, consumer.ID, coupon.ID)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	fx.engagementRepo.AssertNotCalled(t, "CreateRedemption", mock.Anything, mock.Anything)
	fx.publisher.AssertNotCalled(t, "PublishEvent", mock.Anything, mock.Anything)
}
