package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"couponhub/config"
	deliverycontext "couponhub/internal/delivery/context"
	"couponhub/internal/domain/entity"
	domainerrors "couponhub/internal/domain/errors"
	"couponhub/internal/domain/repository"
	"couponhub/internal/domain/service"
	"couponhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager        repository.TransactionManager
	accountRepo      repository.AccountRepository
	confirmationRepo repository.ConfirmationRepository
	refreshTokenRepo repository.RefreshTokenRepository
	hasher           service.PasswordHasher
	tokenService     service.TokenService
	mailer           service.Mailer
	mailSender       string
	siteURL          string
	codeTTL          time.Duration
	logger           *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	AccountRepo      repository.AccountRepository
	ConfirmationRepo repository.ConfirmationRepository
	RefreshTokenRepo repository.RefreshTokenRepository
	Hasher           service.PasswordHasher
	TokenService     service.TokenService
	Mailer           service.Mailer
	Config           *config.Config
	Logger           *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	srv := &authService{
		txManager:        params.TxManager,
		accountRepo:      params.AccountRepo,
		confirmationRepo: params.ConfirmationRepo,
		refreshTokenRepo: params.RefreshTokenRepo,
		hasher:           params.Hasher,
		tokenService:     params.TokenService,
		mailer:           params.Mailer,
		codeTTL:          24 * time.Hour,
		logger:           params.Logger,
	}
	if params.Config != nil && params.Config.Mail != nil {
		srv.mailSender = params.Config.Mail.Sender
		srv.siteURL = params.Config.Mail.SiteURL
	}
	if params.Config != nil && params.Config.Verification != nil && params.Config.Verification.CodeTTL > 0 {
		srv.codeTTL = params.Config.Verification.CodeTTL
	}

	return srv
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login authenticates by email and secret. An unknown email answers with a
// distinct message from a wrong secret; a consumer's PIN is torn down inside
// the same transaction that persists the session, so the PIN is burned even
// if token delivery fails.
func (srv *authService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	account, err := srv.accountRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrAccountDoesNotExist
		}

		return nil, errors.Wrap(err, "failed to load account for login")
	}

	if !account.HasUsableSecret() || !srv.hasher.Check(input.Secret, account.SecretHash) {
		srv.log(ctx).Warn("Login rejected", slog.Any("accountID", account.ID))

		return nil, domainerrors.ErrInvalidCredentials
	}

	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(account.ID, account.Kind.String(), account.IsAdmin())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if account.Kind == entity.KindConsumer {
			// One login per PIN.
			if err := repoFactory.AccountRepo().UpdateSecret(ctx, account.ID, entity.UnusableSecret); err != nil {
				return errors.Wrap(err, "failed to invalidate pin")
			}
			account.SecretHash = entity.UnusableSecret
		}

		tokenRecord := &entity.RefreshToken{
			AccountID: account.ID,
			TokenHash: srv.tokenService.HashToken(refreshToken),
			ExpiresAt: time.Now().Add(srv.tokenService.RefreshTokenDuration()),
		}

		return repoFactory.RefreshTokenRepo().Create(ctx, tokenRecord)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to persist login session", slog.Any("accountID", account.ID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Login succeeded", slog.Any("accountID", account.ID), slog.String("kind", account.Kind.String()))

	return &usecase.LoginOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Account:      account,
	}, nil
}

// Refresh validates a refresh token against its stored hash and issues a new
// access token for the same identity.
func (srv *authService) Refresh(ctx context.Context, refreshToken string) (*usecase.RefreshOutput, error) {
	claims, err := srv.tokenService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, err
	}

	if _, err := srv.refreshTokenRepo.FindByHash(ctx, srv.tokenService.HashToken(refreshToken)); err != nil {
		if errors.Is(err, repository.ErrRefreshTokenNotFound) {
			return nil, domainerrors.ErrInvalidToken.WrapMessage("refresh token revoked or expired")
		}

		return nil, errors.Wrap(err, "failed to look up refresh token")
	}

	accessToken, _, err := srv.tokenService.GenerateTokens(claims.AccountID, claims.Kind, claims.Admin)
	if err != nil {
		return nil, errors.Wrap(err, "failed to re-issue access token")
	}

	return &usecase.RefreshOutput{AccessToken: accessToken}, nil
}

// Verify checks an access token and returns its claims without touching
// storage.
func (srv *authService) Verify(_ context.Context, accessToken string) (*service.Claims, error) {
	return srv.tokenService.ValidateAccessToken(accessToken)
}

// ConfirmEmail consumes a mailed verification code and marks the vendor
// verified. Expired and wrong codes fail distinctly; a consumed code counts
// as wrong.
func (srv *authService) ConfirmEmail(ctx context.Context, email, code string) error {
	account, err := srv.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return domainerrors.ErrAccountNotFound
		}

		return errors.Wrap(err, "failed to load account for confirmation")
	}

	confirmation, err := srv.confirmationRepo.Find(ctx, email, code)
	if err != nil {
		if errors.Is(err, repository.ErrConfirmationNotFound) {
			return domainerrors.ErrInvalidCode
		}

		return errors.Wrap(err, "failed to look up confirmation")
	}

	if confirmation.Consumed() {
		return domainerrors.ErrInvalidCode
	}
	if confirmation.Expired(time.Now()) {
		return domainerrors.ErrCodeExpired
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.ConfirmationRepo().MarkConfirmed(ctx, confirmation.ID); err != nil {
			return errors.Wrap(err, "failed to consume confirmation code")
		}

		if account.Vendor != nil && !account.Vendor.Verified {
			account.Vendor.Verified = true
			if err := repoFactory.AccountRepo().Update(ctx, account); err != nil {
				return errors.Wrap(err, "failed to mark vendor verified")
			}
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to confirm email", slog.Any("accountID", account.ID), slog.Any("error", err))

		return err
	}

	srv.log(ctx).Debug("Email confirmed", slog.Any("accountID", account.ID))

	return nil
}

// ResendVerificationEmail issues a fresh code to an unverified vendor.
func (srv *authService) ResendVerificationEmail(ctx context.Context, accountID uuid.UUID) error {
	account, err := srv.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return domainerrors.ErrNotFound
		}

		return errors.Wrap(err, "failed to load account for resend")
	}

	if account.Kind != entity.KindVendor || account.Vendor == nil {
		return domainerrors.ErrNotVendor
	}
	if account.Vendor.Verified {
		return domainerrors.ErrValidationFailed.WithDetails("email already verified")
	}

	code, err := generateVerificationCode()
	if err != nil {
		return errors.Wrap(err, "failed to generate verification code")
	}

	confirmation := &entity.EmailConfirmation{
		AccountID: account.ID,
		Email:     account.Email,
		Code:      code,
		ExpiresAt: time.Now().Add(srv.codeTTL),
	}
	if err := srv.confirmationRepo.Create(ctx, confirmation); err != nil {
		return errors.Wrap(err, "failed to store confirmation code")
	}

	link := fmt.Sprintf("%s/verify-email?email=%s&code=%s", srv.siteURL, account.Email, code)
	if err := srv.mailer.Send(ctx, &service.MailMessage{
		Subject: "Verify your email",
		From:    srv.mailSender,
		To:      []string{account.Email},
		Text:    fmt.Sprintf("Follow the link to verify your email: %s", link),
	}); err != nil {
		return errors.Wrap(err, "failed to send verification mail")
	}

	return nil
}
