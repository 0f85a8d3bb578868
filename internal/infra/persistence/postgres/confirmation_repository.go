package postgres

import (
	"context"
	"time"

	"couponhub/internal/domain/entity"
	domainerrors "couponhub/internal/domain/errors"
	"couponhub/internal/domain/repository"
	"couponhub/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// confirmationRepository implements repository.ConfirmationRepository using GORM.
type confirmationRepository struct {
	db *gorm.DB
}

// NewConfirmationRepository is the constructor for confirmationRepository.
func NewConfirmationRepository(db *gorm.DB) repository.ConfirmationRepository {
	return &confirmationRepository{db: db}
}

// Create stores a freshly issued confirmation code.
func (repo *confirmationRepository) Create(ctx context.Context, confirmation *entity.EmailConfirmation) error {
	confirmationM := fromConfirmationDomain(confirmation)

	if err := repo.db.WithContext(ctx).Create(confirmationM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create email confirmation")
	}

	confirmation.ID = confirmationM.ID
	confirmation.CreatedAt = confirmationM.CreatedAt

	return nil
}

// Find retrieves the newest confirmation bound to the given email and code,
// consumed or not. Expiry and consumption are judged by the caller so the
// distinct failure messages can be produced.
func (repo *confirmationRepository) Find(ctx context.Context, email, code string) (*entity.EmailConfirmation, error) {
	var confirmationM model.EmailConfirmationModel
	err := repo.db.WithContext(ctx).
		Where("email = ? AND code = ?", email, code).
		Order("created_at DESC").
		First(&confirmationM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrConfirmationNotFound
		}

		return nil, errors.Wrap(err, "failed to find email confirmation")
	}

	return toConfirmationDomain(&confirmationM), nil
}

// MarkConfirmed consumes the code.
func (repo *confirmationRepository) MarkConfirmed(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.EmailConfirmationModel{}).
		Where("id = ?", id).
		Update("confirmed_at", time.Now())
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to mark confirmation consumed")
	}
	if result.RowsAffected == 0 {
		return repository.ErrConfirmationNotFound
	}

	return nil
}

func toConfirmationDomain(data *model.EmailConfirmationModel) *entity.EmailConfirmation {
	if data == nil {
		return nil
	}

	return &entity.EmailConfirmation{
		ID:          data.ID,
		AccountID:   data.AccountID,
		Email:       data.Email,
		Code:        data.Code,
		ConfirmedAt: data.ConfirmedAt,
		ExpiresAt:   data.ExpiresAt,
		CreatedAt:   data.CreatedAt,
	}
}

func fromConfirmationDomain(data *entity.EmailConfirmation) *model.EmailConfirmationModel {
	if data == nil {
		return nil
	}

	return &model.EmailConfirmationModel{
		ID:          data.ID,
		AccountID:   data.AccountID,
		Email:       data.Email,
		Code:        data.Code,
		ConfirmedAt: data.ConfirmedAt,
		ExpiresAt:   data.ExpiresAt,
	}
}
