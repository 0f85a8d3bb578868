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

// couponRepository implements repository.CouponRepository using GORM.
type couponRepository struct {
	db *gorm.DB
}

// NewCouponRepository is the constructor for couponRepository.
func NewCouponRepository(db *gorm.DB) repository.CouponRepository {
	return &couponRepository{db: db}
}

// FindByID retrieves a single coupon, preloading the campaign and its
// organization so the ownership chain resolves, plus outlets and interests.
func (repo *couponRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Coupon, error) {
	var couponM model.CouponModel
	err := repo.db.WithContext(ctx).
		Preload("Campaign.Organization").
		Preload("Outlets").
		Preload("Interests").
		First(&couponM, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCouponNotFound
		}

		return nil, errors.Wrap(err, "failed to find coupon by id")
	}

	return toCouponDomain(&couponM), nil
}

// ListPublished returns coupons visible to consumers.
func (repo *couponRepository) ListPublished(ctx context.Context) ([]entity.Coupon, error) {
	var couponMs []model.CouponModel
	err := repo.db.WithContext(ctx).
		Preload("Outlets").
		Preload("Interests").
		Where("published = ? AND active = ?", true, true).
		Order("created_at").
		Find(&couponMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list published coupons")
	}

	return toCouponDomainSlice(couponMs), nil
}

// ListByCampaign returns the coupons of one campaign.
func (repo *couponRepository) ListByCampaign(ctx context.Context, campaignID uuid.UUID) ([]entity.Coupon, error) {
	var couponMs []model.CouponModel
	err := repo.db.WithContext(ctx).
		Preload("Outlets").
		Preload("Interests").
		Where("campaign_id = ?", campaignID).
		Order("created_at").
		Find(&couponMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list coupons by campaign")
	}

	return toCouponDomainSlice(couponMs), nil
}

// Create persists a new coupon with its outlet and interest links.
func (repo *couponRepository) Create(ctx context.Context, coupon *entity.Coupon) error {
	couponM := fromCouponDomain(coupon)

	if err := repo.db.WithContext(ctx).Create(couponM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrReferenceNotFound.WrapMessage("referenced resource does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create coupon")
	}

	coupon.ID = couponM.ID
	coupon.CreatedAt = couponM.CreatedAt
	coupon.UpdatedAt = couponM.UpdatedAt

	return nil
}

// Update modifies an existing coupon. Outlet and interest links are replaced
// wholesale so removed associations do not linger.
func (repo *couponRepository) Update(ctx context.Context, coupon *entity.Coupon) error {
	couponM := fromCouponDomain(coupon)

	if err := repo.db.WithContext(ctx).Save(couponM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrReferenceNotFound.WrapMessage("referenced resource does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update coupon")
	}

	outlets := make([]model.OutletModel, 0, len(coupon.Outlets))
	for _, outlet := range coupon.Outlets {
		outlets = append(outlets, model.OutletModel{ID: outlet.ID})
	}
	if err := repo.db.WithContext(ctx).Model(couponM).Association("Outlets").Replace(outlets); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to replace coupon outlets")
	}

	interests := make([]model.InterestModel, 0, len(coupon.Interests))
	for _, interest := range coupon.Interests {
		interests = append(interests, model.InterestModel{ID: interest.ID})
	}
	if err := repo.db.WithContext(ctx).Model(couponM).Association("Interests").Replace(interests); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to replace coupon interests")
	}

	coupon.UpdatedAt = couponM.UpdatedAt

	return nil
}

// Delete removes a coupon by ID.
func (repo *couponRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.CouponModel{}, "id = ?", id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete coupon")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCouponNotFound
	}

	return nil
}

func toCouponDomain(data *model.CouponModel) *entity.Coupon {
	if data == nil {
		return nil
	}

	interests := make([]entity.Interest, 0, len(data.Interests))
	for _, interestM := range data.Interests {
		interests = append(interests, toInterestDomain(interestM))
	}

	return &entity.Coupon{
		ID:            data.ID,
		TypeID:        data.TypeID,
		CategoryID:    data.CategoryID,
		CampaignID:    data.CampaignID,
		Campaign:      toCampaignDomain(data.Campaign),
		Name:          data.Name,
		Description:   data.Description,
		Deal:          data.Deal,
		Terms:         data.Terms,
		Amount:        data.Amount,
		Code:          data.Code,
		Start:         data.Start,
		End:           data.End,
		Advertisement: data.Advertisement,
		Active:        data.Active,
		Published:     data.Published,
		Outlets:       toOutletDomainSlice(data.Outlets),
		Interests:     interests,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func toCouponDomainSlice(data []model.CouponModel) []entity.Coupon {
	coupons := make([]entity.Coupon, 0, len(data))
	for i := range data {
		coupons = append(coupons, *toCouponDomain(&data[i]))
	}

	return coupons
}

func fromCouponDomain(data *entity.Coupon) *model.CouponModel {
	if data == nil {
		return nil
	}

	outlets := make([]model.OutletModel, 0, len(data.Outlets))
	for _, outlet := range data.Outlets {
		outlets = append(outlets, model.OutletModel{ID: outlet.ID})
	}
	interests := make([]model.InterestModel, 0, len(data.Interests))
	for _, interest := range data.Interests {
		interests = append(interests, model.InterestModel{ID: interest.ID})
	}

	return &model.CouponModel{
		ID:            data.ID,
		TypeID:        data.TypeID,
		CategoryID:    data.CategoryID,
		CampaignID:    data.CampaignID,
		Name:          data.Name,
		Description:   data.Description,
		Deal:          data.Deal,
		Terms:         data.Terms,
		Amount:        data.Amount,
		Code:          data.Code,
		Start:         data.Start,
		End:           data.End,
		Advertisement: data.Advertisement,
		Active:        data.Active,
		Published:     data.Published,
		Outlets:       outlets,
		Interests:     interests,
	}
}
