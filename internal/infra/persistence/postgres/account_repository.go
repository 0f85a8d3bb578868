package postgres

import (
	"context"

	"couponhub/internal/domain/entity"
	domainerrors "couponhub/internal/domain/errors"
	"couponhub/internal/domain/repository"
	"couponhub/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// accountRepository implements the repository.AccountRepository interface using GORM.
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository is the constructor for accountRepository.
// It returns the repository as a domain interface, adhering to dependency inversion.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

// FindByID retrieves a single account by its unique ID, preloading the
// specialized profile and, for vendors, the organization.
func (repo *accountRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	var accountM model.AccountModel
	err := repo.db.WithContext(ctx).
		Preload("VendorProfile.Organization").
		Preload("ConsumerProfile.Interests").
		First(&accountM, "id = ?", id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account by id")
	}

	return toAccountDomain(&accountM), nil
}

// FindByEmail retrieves a single account by its email address.
func (repo *accountRepository) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	var accountM model.AccountModel
	err := repo.db.WithContext(ctx).
		Preload("VendorProfile.Organization").
		Preload("ConsumerProfile.Interests").
		First(&accountM, "email = ?", email).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account by email")
	}

	return toAccountDomain(&accountM), nil
}

// Create persists a new account entity together with its specialized profile.
// GORM's Create with associations inserts into accounts and vendor_profiles
// or consumer_profiles within a single statement batch.
func (repo *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	accountM := fromAccountDomain(account)

	if err := repo.db.WithContext(ctx).Create(accountM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrAccountExists.WrapMessage("email or handle already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required account information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create account")
	}

	account.ID = accountM.ID
	account.CreatedAt = accountM.CreatedAt
	account.UpdatedAt = accountM.UpdatedAt
	if account.Vendor != nil && accountM.VendorProfile != nil {
		account.Vendor.AccountID = accountM.VendorProfile.AccountID
		account.Vendor.UpdatedAt = accountM.VendorProfile.UpdatedAt
	}
	if account.Consumer != nil && accountM.ConsumerProfile != nil {
		account.Consumer.AccountID = accountM.ConsumerProfile.AccountID
		account.Consumer.UpdatedAt = accountM.ConsumerProfile.UpdatedAt
	}

	return nil
}

// Update modifies an existing account entity and its profile.
func (repo *accountRepository) Update(ctx context.Context, account *entity.Account) error {
	accountM := fromAccountDomain(account)

	err := repo.db.WithContext(ctx).
		Session(&gorm.Session{FullSaveAssociations: true}).
		Save(accountM).Error
	if err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrAccountExists.WrapMessage("email or handle already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required account information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update account")
	}

	account.UpdatedAt = accountM.UpdatedAt
	if account.Vendor != nil && accountM.VendorProfile != nil {
		account.Vendor.UpdatedAt = accountM.VendorProfile.UpdatedAt
	}
	if account.Consumer != nil && accountM.ConsumerProfile != nil {
		account.Consumer.UpdatedAt = accountM.ConsumerProfile.UpdatedAt
	}

	return nil
}

// UpdateSecret replaces only the stored secret hash. PIN rotation and
// invalidation go through here so nothing else on the row is touched.
func (repo *accountRepository) UpdateSecret(ctx context.Context, id uuid.UUID, secretHash string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AccountModel{}).
		Where("id = ?", id).
		Update("secret_hash", secretHash)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update account secret")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

func toAccountDomain(data *model.AccountModel) *entity.Account {
	if data == nil {
		return nil
	}

	return &entity.Account{
		ID:         data.ID,
		Email:      data.Email,
		Handle:     data.Handle,
		SecretHash: data.SecretHash,
		Kind:       entity.AccountKind(data.Kind),
		Staff:      data.Staff,
		Superuser:  data.Superuser,
		Vendor:     toVendorProfileDomain(data.VendorProfile),
		Consumer:   toConsumerProfileDomain(data.ConsumerProfile),
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

func fromAccountDomain(data *entity.Account) *model.AccountModel {
	if data == nil {
		return nil
	}

	return &model.AccountModel{
		ID:              data.ID,
		Email:           data.Email,
		Handle:          data.Handle,
		SecretHash:      data.SecretHash,
		Kind:            data.Kind.String(),
		Staff:           data.Staff,
		Superuser:       data.Superuser,
		VendorProfile:   fromVendorProfileDomain(data.Vendor),
		ConsumerProfile: fromConsumerProfileDomain(data.Consumer),
	}
}

func toVendorProfileDomain(data *model.VendorProfileModel) *entity.VendorProfile {
	if data == nil {
		return nil
	}

	return &entity.VendorProfile{
		AccountID:    data.AccountID,
		Verified:     data.Verified,
		Restricted:   data.Restricted,
		Organization: toOrganizationDomain(data.Organization),
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromVendorProfileDomain(data *entity.VendorProfile) *model.VendorProfileModel {
	if data == nil {
		return nil
	}

	// The organization is persisted through its own repository; saving it as
	// an association here would resurrect stale copies.
	return &model.VendorProfileModel{
		AccountID:  data.AccountID,
		Verified:   data.Verified,
		Restricted: data.Restricted,
	}
}

func toConsumerProfileDomain(data *model.ConsumerProfileModel) *entity.ConsumerProfile {
	if data == nil {
		return nil
	}

	interests := make([]entity.Interest, 0, len(data.Interests))
	for _, interestM := range data.Interests {
		interests = append(interests, toInterestDomain(interestM))
	}

	return &entity.ConsumerProfile{
		AccountID: data.AccountID,
		FullName:  data.FullName,
		BirthDate: data.BirthDate,
		Interests: interests,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromConsumerProfileDomain(data *entity.ConsumerProfile) *model.ConsumerProfileModel {
	if data == nil {
		return nil
	}

	interests := make([]model.InterestModel, 0, len(data.Interests))
	for _, interest := range data.Interests {
		interests = append(interests, fromInterestDomain(interest))
	}

	return &model.ConsumerProfileModel{
		AccountID: data.AccountID,
		FullName:  data.FullName,
		BirthDate: data.BirthDate,
		Interests: interests,
	}
}
