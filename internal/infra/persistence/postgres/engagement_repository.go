package postgres

import (
	"context"

	"couponhub/internal/domain/entity"
	domainerrors "couponhub/internal/domain/errors"
	"couponhub/internal/domain/repository"
	"couponhub/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// engagementRepository implements repository.EngagementRepository using GORM.
type engagementRepository struct {
	db *gorm.DB
}

// NewEngagementRepository is the constructor for engagementRepository.
func NewEngagementRepository(db *gorm.DB) repository.EngagementRepository {
	return &engagementRepository{db: db}
}

// CreateRating records a consumer's score of a coupon. The unique index on
// (consumer, coupon) rejects a second rating.
func (repo *engagementRepository) CreateRating(ctx context.Context, rating *entity.Rating) error {
	ratingM := &model.RatingModel{
		ID:                rating.ID,
		ConsumerAccountID: rating.ConsumerAccountID,
		CouponID:          rating.CouponID,
		Rate:              rating.Rate,
		Review:            rating.Review,
	}

	if err := repo.db.WithContext(ctx).Create(ratingM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("coupon already rated")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrReferenceNotFound.WrapMessage("coupon does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create rating")
	}

	rating.ID = ratingM.ID
	rating.CreatedAt = ratingM.CreatedAt

	return nil
}

// CreateShortlist saves a coupon to a consumer's shortlist.
func (repo *engagementRepository) CreateShortlist(ctx context.Context, shortlist *entity.Shortlist) error {
	shortlistM := &model.ShortlistModel{
		ID:                shortlist.ID,
		ConsumerAccountID: shortlist.ConsumerAccountID,
		CouponID:          shortlist.CouponID,
		Active:            shortlist.Active,
	}

	if err := repo.db.WithContext(ctx).Create(shortlistM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("coupon already shortlisted")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrReferenceNotFound.WrapMessage("coupon does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create shortlist")
	}

	shortlist.ID = shortlistM.ID
	shortlist.CreatedAt = shortlistM.CreatedAt

	return nil
}

// CreateRedemption records a single use of a coupon.
func (repo *engagementRepository) CreateRedemption(ctx context.Context, redemption *entity.Redemption) error {
	redemptionM := &model.RedemptionModel{
		ID:                redemption.ID,
		ConsumerAccountID: redemption.ConsumerAccountID,
		CouponID:          redemption.CouponID,
	}

	if err := repo.db.WithContext(ctx).Create(redemptionM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrReferenceNotFound.WrapMessage("coupon does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create redemption")
	}

	redemption.ID = redemptionM.ID
	redemption.CreatedAt = redemptionM.CreatedAt

	return nil
}

// CountRedemptions returns how many times a coupon has been used.
func (repo *engagementRepository) CountRedemptions(ctx context.Context, couponID uuid.UUID) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.RedemptionModel{}).
		Where("coupon_id = ?", couponID).
		Count(&count).Error
	if err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to count redemptions")
	}

	return count, nil
}
