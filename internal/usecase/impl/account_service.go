// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
	"math/big"
	"regexp"
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

const (
	maxHandleLength   = 32
	minPasswordLength = 8

	// PIN space is [16^4, 16^5): always exactly five hex digits.
	pinLowerBound = 1 << 16 // 16^4
	pinUpperBound = 1 << 20 // 16^5
)

var handlePattern = regexp.MustCompile(`^[\w.-]+$`)

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager   repository.TransactionManager
	accountRepo repository.AccountRepository
	catalogRepo repository.CatalogRepository
	hasher      service.PasswordHasher
	mailer      service.Mailer
	publisher   service.EventPublisher
	mailSender  string
	siteURL     string
	codeTTL     time.Duration
	logger      *slog.Logger
}

// AccountServiceParams holds dependencies for accountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	AccountRepo repository.AccountRepository
	CatalogRepo repository.CatalogRepository
	Hasher      service.PasswordHasher
	Mailer      service.Mailer
	Publisher   service.EventPublisher
	Config      *config.Config
	Logger      *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	srv := &accountService{
		txManager:   params.TxManager,
		accountRepo: params.AccountRepo,
		catalogRepo: params.CatalogRepo,
		hasher:      params.Hasher,
		mailer:      params.Mailer,
		publisher:   params.Publisher,
		codeTTL:     24 * time.Hour,
		logger:      params.Logger,
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
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates an account with its specialized profile in one
// transaction. Vendors get a verification email afterwards; consumers start
// with an unusable secret until a PIN is issued.
func (srv *accountService) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	if !input.Kind.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown account kind")
	}

	account := &entity.Account{
		Email: input.Email,
		Kind:  input.Kind,
	}

	var confirmation *entity.EmailConfirmation
	switch input.Kind {
	case entity.KindVendor:
		if err := validateHandle(input.Handle); err != nil {
			return nil, err
		}
		if err := validatePassword(input.Password); err != nil {
			return nil, err
		}

		hashed, err := srv.hasher.Hash(input.Password)
		if err != nil {
			return nil, errors.Wrap(err, "failed to hash password during registration")
		}

		account.Handle = input.Handle
		account.SecretHash = hashed
		account.Vendor = &entity.VendorProfile{}

		code, err := generateVerificationCode()
		if err != nil {
			return nil, errors.Wrap(err, "failed to generate verification code")
		}
		confirmation = &entity.EmailConfirmation{
			Email:     input.Email,
			Code:      code,
			ExpiresAt: time.Now().Add(srv.codeTTL),
		}

	case entity.KindConsumer:
		// Consumers carry no password; the handle doubles as the email.
		account.Handle = input.Email
		account.SecretHash = entity.UnusableSecret
		account.Consumer = &entity.ConsumerProfile{}
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.AccountRepo().Create(ctx, account); err != nil {
			return errors.Wrap(err, "failed to create account")
		}

		if confirmation != nil {
			confirmation.AccountID = account.ID
			if err := repoFactory.ConfirmationRepo().Create(ctx, confirmation); err != nil {
				return errors.Wrap(err, "failed to create email confirmation")
			}
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute registration transaction",
			slog.String("kind", input.Kind.String()), slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	if confirmation != nil {
		srv.sendVerificationMail(ctx, account.Email, confirmation.Code)
	}
	srv.publishEvent(ctx, service.EventAccountRegistered, account.ID, uuid.Nil)

	srv.log(ctx).Debug("Registration completed",
		slog.String("kind", input.Kind.String()), slog.Any("accountID", account.ID))

	return &usecase.RegisterOutput{Account: account}, nil
}

// SendPIN issues a fresh one-time login PIN to a consumer. The PIN replaces
// the stored secret before the mail goes out.
func (srv *accountService) SendPIN(ctx context.Context, email string) error {
	account, err := srv.accountRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return domainerrors.ErrAccountNotFound
		}

		return errors.Wrap(err, "failed to load account for pin")
	}

	if account.Kind != entity.KindConsumer {
		return domainerrors.ErrWrongAccountKind
	}

	pin, err := generatePIN()
	if err != nil {
		return errors.Wrap(err, "failed to generate pin")
	}

	hashed, err := srv.hasher.Hash(pin)
	if err != nil {
		return errors.Wrap(err, "failed to hash pin")
	}

	if err := srv.accountRepo.UpdateSecret(ctx, account.ID, hashed); err != nil {
		return errors.Wrap(err, "failed to store pin")
	}

	if err := srv.mailer.Send(ctx, &service.MailMessage{
		Subject: "Your login PIN",
		From:    srv.mailSender,
		To:      []string{account.Email},
		Text:    fmt.Sprintf("Your one-time login PIN is %s. It works exactly once.", pin),
	}); err != nil {
		srv.log(ctx).Error("Failed to send pin mail", slog.Any("accountID", account.ID), slog.Any("error", err))

		return errors.Wrap(err, "failed to send pin mail")
	}

	srv.log(ctx).Debug("PIN issued", slog.Any("accountID", account.ID))

	return nil
}

// GetAccount loads an account with its profile for display.
func (srv *accountService) GetAccount(ctx context.Context, accountID uuid.UUID) (*entity.Account, error) {
	account, err := srv.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to load account")
	}

	return account, nil
}

// UpdateAccount changes the handle and/or password of the requesting account.
// Consumers cannot change either: their handle mirrors the email and their
// secret is PIN-managed.
func (srv *accountService) UpdateAccount(ctx context.Context, accountID uuid.UUID, input usecase.UpdateAccountInput) (*entity.Account, error) {
	account, err := srv.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to load account for update")
	}

	if account.Kind != entity.KindVendor {
		return nil, domainerrors.ErrNotVendor
	}

	if input.Handle != nil {
		if err := validateHandle(*input.Handle); err != nil {
			return nil, err
		}
		account.Handle = *input.Handle
	}
	if input.Password != nil {
		if err := validatePassword(*input.Password); err != nil {
			return nil, err
		}
		hashed, err := srv.hasher.Hash(*input.Password)
		if err != nil {
			return nil, errors.Wrap(err, "failed to hash new password")
		}
		account.SecretHash = hashed
	}

	if err := srv.accountRepo.Update(ctx, account); err != nil {
		return nil, errors.Wrap(err, "failed to update account")
	}

	return account, nil
}

// UpdateConsumerProfile updates the consumer specialization of the
// requesting account. InterestIDs, when non-nil, replaces the subscription
// set; unknown IDs reject the request.
func (srv *accountService) UpdateConsumerProfile(ctx context.Context, accountID uuid.UUID, input usecase.UpdateConsumerProfileInput) (*entity.Account, error) {
	account, err := srv.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to load account for profile update")
	}

	if account.Kind != entity.KindConsumer || account.Consumer == nil {
		return nil, domainerrors.ErrNotConsumer
	}

	if input.FullName != nil {
		account.Consumer.FullName = *input.FullName
	}
	if input.BirthDate != nil {
		account.Consumer.BirthDate = input.BirthDate
	}
	if input.InterestIDs != nil {
		interests, err := srv.catalogRepo.FindInterestsByIDs(ctx, input.InterestIDs)
		if err != nil {
			return nil, errors.Wrap(err, "failed to resolve interests")
		}
		if len(interests) != len(input.InterestIDs) {
			return nil, domainerrors.ErrReferenceNotFound.WrapMessage("unknown interest")
		}
		account.Consumer.Interests = interests
	}

	if err := srv.accountRepo.Update(ctx, account); err != nil {
		return nil, errors.Wrap(err, "failed to update consumer profile")
	}

	return account, nil
}

func (srv *accountService) sendVerificationMail(ctx context.Context, email, code string) {
	link := fmt.Sprintf("%s/verify-email?email=%s&code=%s", srv.siteURL, email, code)
	err := srv.mailer.Send(ctx, &service.MailMessage{
		Subject: "Verify your email",
		From:    srv.mailSender,
		To:      []string{email},
		Text:    fmt.Sprintf("Follow the link to verify your email: %s", link),
	})
	if err != nil {
		// Registration already committed; the code can be re-sent later.
		srv.log(ctx).Error("Failed to send verification mail", slog.String("email", email), slog.Any("error", err))
	}
}

func (srv *accountService) publishEvent(ctx context.Context, name string, accountID, resourceID uuid.UUID) {
	event := &service.DomainEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Name:       name,
		AccountID:  accountID.String(),
		OccurredAt: time.Now(),
	}
	if resourceID != uuid.Nil {
		event.ResourceID = resourceID.String()
	}

	if err := srv.publisher.PublishEvent(ctx, event); err != nil {
		srv.log(ctx).Error("Failed to publish event", slog.String("event", name), slog.Any("error", err))
	}
}

func validateHandle(handle string) error {
	if handle == "" || len(handle) > maxHandleLength {
		return domainerrors.ErrValidationFailed.WithDetails("handle must be 1-32 characters")
	}
	if !handlePattern.MatchString(handle) {
		return domainerrors.ErrValidationFailed.WithDetails("handle may contain only letters, digits, '.', '-' and '_'")
	}

	return nil
}

func validatePassword(password string) error {
	if len(password) < minPasswordLength {
		return domainerrors.ErrValidationFailed.WithDetails("password must be at least 8 characters")
	}

	return nil
}

// generatePIN draws a uniform value from [16^4, 16^5) and formats it as hex,
// yielding exactly five hex digits.
func generatePIN() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(pinUpperBound-pinLowerBound))
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%x", n.Int64()+pinLowerBound), nil
}

func generateVerificationCode() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}

	return hex.EncodeToString(buf), nil
}
