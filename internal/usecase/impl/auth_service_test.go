package impl

import (
	"context"
	"testing"
	"time"

	"couponhub/internal/domain/entity"
	domainerrors "couponhub/internal/domain/errors"
	"couponhub/internal/domain/repository"
	"couponhub/internal/domain/service"
	"couponhub/internal/mocks"
	"couponhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service          usecase.AuthUsecase
	accountRepo      *mocks.MockAccountRepository
	confirmationRepo *mocks.MockConfirmationRepository
	refreshTokenRepo *mocks.MockRefreshTokenRepository
	hasher           *mocks.MockPasswordHasher
	tokenService     *mocks.MockTokenService
	mailer           *mocks.MockMailer
}

func createTestAuthService() authServiceFixtures {
	accountRepo := new(mocks.MockAccountRepository)
	confirmationRepo := new(mocks.MockConfirmationRepository)
	refreshTokenRepo := new(mocks.MockRefreshTokenRepository)
	hasher := new(mocks.MockPasswordHasher)
	tokenService := new(mocks.MockTokenService)
	mailer := new(mocks.MockMailer)

	txManager := &mocks.ImmediateTxManager{Factory: &mocks.StubRepositoryFactory{
		Account:      accountRepo,
		Confirmation: confirmationRepo,
		RefreshToken: refreshTokenRepo,
	}}

	service := NewAuthService(AuthServiceParams{
		TxManager:        txManager,
		AccountRepo:      accountRepo,
		ConfirmationRepo: confirmationRepo,
		RefreshTokenRepo: refreshTokenRepo,
		Hasher:           hasher,
		TokenService:     tokenService,
		Mailer:           mailer,
		Config:           newTestConfig(),
		Logger:           newDiscardLogger(),
	})

	return authServiceFixtures{
		service:          service,
		accountRepo:      accountRepo,
		confirmationRepo: confirmationRepo,
		refreshTokenRepo: refreshTokenRepo,
		hasher:           hasher,
		tokenService:     tokenService,
		mailer:           mailer,
	}
}

func TestAuthService_Login_UnknownEmailHasDistinctError(t *testing.T) {
	fx := createTestAuthService()
	ctx := context.Background()

	fx.accountRepo.On("FindByEmail", ctx, "ghost@example.com").Return(nil, repository.ErrAccountNotFound)

	_, err := fx.service.Login(ctx, usecase.LoginInput{Email: "ghost@example.com", Secret: "whatever"})
	assert.ErrorIs(t, err, domainerrors.ErrAccountDoesNotExist)
	assert.NotErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestAuthService_Login_WrongSecret(t *testing.T) {
	fx := createTestAuthService()
	ctx := context.Background()

	vendor := &entity.Account{
		ID:         uuid.New(),
		Email:      "vendor@example.com",
		SecretHash: "stored-hash",
		Kind:       entity.KindVendor,
		Vendor:     &entity.VendorProfile{},
	}
	fx.accountRepo.On("FindByEmail", ctx, vendor.Email).Return(vendor, nil)
	fx.hasher.On("Check", "wrong", "stored-hash").Return(false)

	_, err := fx.service.Login(ctx, usecase.LoginInput{Email: vendor.Email, Secret: "wrong"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	fx.tokenService.AssertNotCalled(t, "GenerateTokens", mock.Anything, mock.Anything, mock.Anything)
}

func TestAuthService_Login_UnusableSecretNeverMatches(t *testing.T) {
	fx := createTestAuthService()
	ctx := context.Background()

	consumer := &entity.Account{
		ID:         uuid.New(),
		Email:      "consumer@example.com",
		SecretHash: entity.UnusableSecret,
		Kind:       entity.KindConsumer,
		Consumer:   &entity.ConsumerProfile{},
	}
	fx.accountRepo.On("FindByEmail", ctx, consumer.Email).Return(consumer, nil)

	_, err := fx.service.Login(ctx, usecase.LoginInput{Email: consumer.Email, Secret: entity.UnusableSecret})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)

	// The hasher is bypassed entirely for unusable secrets.
	fx.hasher.AssertNotCalled(t, "Check", mock.Anything, mock.Anything)
}

func TestAuthService_Login_ConsumerPINBurnedBeforeTokensReturn(t *testing.T) {
	fx := createTestAuthService()
	ctx := context.Background()

	consumer := &entity.Account{
		ID:         uuid.New(),
		Email:      "consumer@example.com",
		SecretHash: "hashed-pin",
		Kind:       entity.KindConsumer,
		Consumer:   &entity.ConsumerProfile{},
	}
	fx.accountRepo.On("FindByEmail", ctx, consumer.Email).Return(consumer, nil)
	fx.hasher.On("Check", "1abcd", "hashed-pin").Return(true)
	fx.tokenService.On("GenerateTokens", consumer.ID, "consumer", false).Return("access", "refresh", nil)
	fx.tokenService.On("HashToken", "refresh").Return("refresh-hash")
	fx.tokenService.On("RefreshTokenDuration").Return(7 * 24 * time.Hour)
	fx.accountRepo.On("UpdateSecret", ctx, consumer.ID, entity.UnusableSecret).Return(nil)
	fx.refreshTokenRepo.On("Create", ctx, mock.AnythingOfType("*entity.RefreshToken")).Return(nil)

	out, err := fx.service.Login(ctx, usecase.LoginInput{Email: consumer.Email, Secret: "1abcd"})
	require.NoError(t, err)

	assert.Equal(t, "access", out.AccessToken)
	assert.Equal(t, "refresh", out.RefreshToken)
	assert.Equal(t, entity.UnusableSecret, out.Account.SecretHash)
	fx.accountRepo.AssertCalled(t, "UpdateSecret", ctx, consumer.ID, entity.UnusableSecret)

	stored := fx.refreshTokenRepo.Calls[0].Arguments.Get(1).(*entity.RefreshToken)
	assert.Equal(t, "refresh-hash", stored.TokenHash)
	assert.Equal(t, consumer.ID, stored.AccountID)
}

func TestAuthService_Login_VendorKeepsPassword(t *testing.T) {
	fx := createTestAuthService()
	ctx := context.Background()

	vendor := &entity.Account{
		ID:         uuid.New(),
		Email:      "vendor@example.com",
		SecretHash: "stored-hash",
		Kind:       entity.KindVendor,
		Vendor:     &entity.VendorProfile{Verified: true},
	}
	fx.accountRepo.On("FindByEmail", ctx, vendor.Email).Return(vendor, nil)
	fx.hasher.On("Check", "correct-horse", "stored-hash").Return(true)
	fx.tokenService.On("GenerateTokens", vendor.ID, "vendor", false).Return("access", "refresh", nil)
	fx.tokenService.On("HashToken", "refresh").Return("refresh-hash")
	fx.tokenService.On("RefreshTokenDuration").Return(7 * 24 * time.Hour)
	fx.refreshTokenRepo.On("Create", ctx, mock.AnythingOfType("*entity.RefreshToken")).Return(nil)

	out, err := fx.service.Login(ctx, usecase.LoginInput{Email: vendor.Email, Secret: "correct-horse"})
	require.NoError(t, err)

	assert.Equal(t, "stored-hash", out.Account.SecretHash)
	fx.accountRepo.AssertNotCalled(t, "UpdateSecret", mock.Anything, mock.Anything, mock.Anything)
}

func TestAuthService_Refresh_RevokedToken(t *testing.T) {
	fx := createTestAuthService()
	ctx := context.Background()

	claims := &service.Claims{AccountID: uuid.New(), Kind: "vendor", Type: "refresh"}
	fx.tokenService.On("ValidateRefreshToken", "refresh").Return(claims, nil)
	fx.tokenService.On("HashToken", "refresh").Return("refresh-hash")
	fx.refreshTokenRepo.On("FindByHash", ctx, "refresh-hash").Return(nil, repository.ErrRefreshTokenNotFound)

	_, err := fx.service.Refresh(ctx, "refresh")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestAuthService_Refresh_ReissuesAccessToken(t *testing.T) {
	fx := createTestAuthService()
	ctx := context.Background()

	accountID := uuid.New()
	claims := &service.Claims{AccountID: accountID, Kind: "consumer", Type: "refresh"}
	fx.tokenService.On("ValidateRefreshToken", "refresh").Return(claims, nil)
	fx.tokenService.On("HashToken", "refresh").Return("refresh-hash")
	fx.refreshTokenRepo.On("FindByHash", ctx, "refresh-hash").
		Return(&entity.RefreshToken{AccountID: accountID, TokenHash: "refresh-hash"}, nil)
	fx.tokenService.On("GenerateTokens", accountID, "consumer", false).Return("new-access", "unused", nil)

	out, err := fx.service.Refresh(ctx, "refresh")
	require.NoError(t, err)
	assert.Equal(t, "new-access", out.AccessToken)
}

func TestAuthService_ConfirmEmail_Outcomes(t *testing.T) {
	now := time.Now()
	accountID := uuid.New()

	vendorAccount := func() *entity.Account {
		return &entity.Account{
			ID:     accountID,
			Email:  "vendor@example.com",
			Kind:   entity.KindVendor,
			Vendor: &entity.VendorProfile{},
		}
	}

	t.Run("unknown email", func(t *testing.T) {
		fx := createTestAuthService()
		ctx := context.Background()

		fx.accountRepo.On("FindByEmail", ctx, "ghost@example.com").Return(nil, repository.ErrAccountNotFound)

		err := fx.service.ConfirmEmail(ctx, "ghost@example.com", "deadbeef")
		assert.ErrorIs(t, err, domainerrors.ErrAccountNotFound)
	})

	t.Run("unknown code", func(t *testing.T) {
		fx := createTestAuthService()
		ctx := context.Background()

		fx.accountRepo.On("FindByEmail", ctx, "vendor@example.com").Return(vendorAccount(), nil)
		fx.confirmationRepo.On("Find", ctx, "vendor@example.com", "deadbeef").
			Return(nil, repository.ErrConfirmationNotFound)

		err := fx.service.ConfirmEmail(ctx, "vendor@example.com", "deadbeef")
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCode)
	})

	t.Run("consumed code counts as wrong", func(t *testing.T) {
		fx := createTestAuthService()
		ctx := context.Background()

		consumedAt := now.Add(-time.Minute)
		fx.accountRepo.On("FindByEmail", ctx, "vendor@example.com").Return(vendorAccount(), nil)
		fx.confirmationRepo.On("Find", ctx, "vendor@example.com", "deadbeef").
			Return(&entity.EmailConfirmation{
				ID:          uuid.New(),
				AccountID:   accountID,
				ConfirmedAt: &consumedAt,
				ExpiresAt:   now.Add(time.Hour),
			}, nil)

		err := fx.service.ConfirmEmail(ctx, "vendor@example.com", "deadbeef")
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCode)
	})

	t.Run("expired code", func(t *testing.T) {
		fx := createTestAuthService()
		ctx := context.Background()

		fx.accountRepo.On("FindByEmail", ctx, "vendor@example.com").Return(vendorAccount(), nil)
		fx.confirmationRepo.On("Find", ctx, "vendor@example.com", "deadbeef").
			Return(&entity.EmailConfirmation{
				ID:        uuid.New(),
				AccountID: accountID,
				ExpiresAt: now.Add(-time.Minute),
			}, nil)

		err := fx.service.ConfirmEmail(ctx, "vendor@example.com", "deadbeef")
		assert.ErrorIs(t, err, domainerrors.ErrCodeExpired)
	})

	t.Run("success marks vendor verified and consumes code", func(t *testing.T) {
		fx := createTestAuthService()
		ctx := context.Background()

		account := vendorAccount()
		confirmation := &entity.EmailConfirmation{
			ID:        uuid.New(),
			AccountID: accountID,
			ExpiresAt: now.Add(time.Hour),
		}
		fx.accountRepo.On("FindByEmail", ctx, account.Email).Return(account, nil)
		fx.confirmationRepo.On("Find", ctx, account.Email, "deadbeef").Return(confirmation, nil)
		fx.confirmationRepo.On("MarkConfirmed", ctx, confirmation.ID).Return(nil)
		fx.accountRepo.On("Update", ctx, account).Return(nil)

		require.NoError(t, fx.service.ConfirmEmail(ctx, account.Email, "deadbeef"))
		assert.True(t, account.Vendor.Verified)
	})
}

func TestAuthService_ResendVerificationEmail(t *testing.T) {
	t.Run("consumer rejected", func(t *testing.T) {
		fx := createTestAuthService()
		ctx := context.Background()

		consumer := &entity.Account{ID: uuid.New(), Kind: entity.KindConsumer, Consumer: &entity.ConsumerProfile{}}
		fx.accountRepo.On("FindByID", ctx, consumer.ID).Return(consumer, nil)

		err := fx.service.ResendVerificationEmail(ctx, consumer.ID)
		assert.ErrorIs(t, err, domainerrors.ErrNotVendor)
	})

	t.Run("already verified", func(t *testing.T) {
		fx := createTestAuthService()
		ctx := context.Background()

		vendor := &entity.Account{ID: uuid.New(), Kind: entity.KindVendor, Vendor: &entity.VendorProfile{Verified: true}}
		fx.accountRepo.On("FindByID", ctx, vendor.ID).Return(vendor, nil)

		err := fx.service.ResendVerificationEmail(ctx, vendor.ID)
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("issues fresh code and mails it", func(t *testing.T) {
		fx := createTestAuthService()
		ctx := context.Background()

		vendor := &entity.Account{
			ID:     uuid.New(),
			Email:  "vendor@example.com",
			Kind:   entity.KindVendor,
			Vendor: &entity.VendorProfile{},
		}
		fx.accountRepo.On("FindByID", ctx, vendor.ID).Return(vendor, nil)
		fx.confirmationRepo.On("Create", ctx, mock.AnythingOfType("*entity.EmailConfirmation")).Return(nil)
		fx.mailer.On("Send", ctx, mock.AnythingOfType("*service.MailMessage")).Return(nil)

		require.NoError(t, fx.service.ResendVerificationEmail(ctx, vendor.ID))

		created := fx.confirmationRepo.Calls[0].Arguments.Get(1).(*entity.EmailConfirmation)
		assert.Equal(t, vendor.Email, created.Email)
		assert.NotEmpty(t, created.Code)
	})
}
