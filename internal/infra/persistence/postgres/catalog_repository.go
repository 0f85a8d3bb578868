package postgres

import (
	"context"

	"couponhub/internal/domain/entity"
	"couponhub/internal/domain/repository"
	"couponhub/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// catalogRepository implements repository.CatalogRepository using GORM. The
// catalog tables are admin-managed reference data, so only reads live here.
type catalogRepository struct {
	db *gorm.DB
}

// NewCatalogRepository is the constructor for catalogRepository.
func NewCatalogRepository(db *gorm.DB) repository.CatalogRepository {
	return &catalogRepository{db: db}
}

func (repo *catalogRepository) ListTypes(ctx context.Context) ([]entity.CouponType, error) {
	var typeMs []model.CouponTypeModel
	if err := repo.db.WithContext(ctx).Order("name").Find(&typeMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list coupon types")
	}

	types := make([]entity.CouponType, 0, len(typeMs))
	for _, typeM := range typeMs {
		types = append(types, entity.CouponType{ID: typeM.ID, Name: typeM.Name, Description: typeM.Description})
	}

	return types, nil
}

func (repo *catalogRepository) ListCategories(ctx context.Context) ([]entity.Category, error) {
	var categoryMs []model.CategoryModel
	if err := repo.db.WithContext(ctx).Order("name").Find(&categoryMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list categories")
	}

	categories := make([]entity.Category, 0, len(categoryMs))
	for _, categoryM := range categoryMs {
		categories = append(categories, entity.Category{ID: categoryM.ID, Name: categoryM.Name, Description: categoryM.Description})
	}

	return categories, nil
}

func (repo *catalogRepository) ListInterests(ctx context.Context) ([]entity.Interest, error) {
	var interestMs []model.InterestModel
	if err := repo.db.WithContext(ctx).Order("name").Find(&interestMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list interests")
	}

	interests := make([]entity.Interest, 0, len(interestMs))
	for _, interestM := range interestMs {
		interests = append(interests, toInterestDomain(interestM))
	}

	return interests, nil
}

// FindType validates a nested type reference on coupon writes.
func (repo *catalogRepository) FindType(ctx context.Context, id uuid.UUID) (*entity.CouponType, error) {
	var typeM model.CouponTypeModel
	if err := repo.db.WithContext(ctx).First(&typeM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCatalogEntryNotFound
		}

		return nil, errors.Wrap(err, "failed to find coupon type")
	}

	return &entity.CouponType{ID: typeM.ID, Name: typeM.Name, Description: typeM.Description}, nil
}

// FindCategory validates a nested category reference on coupon writes.
func (repo *catalogRepository) FindCategory(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	var categoryM model.CategoryModel
	if err := repo.db.WithContext(ctx).First(&categoryM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCatalogEntryNotFound
		}

		return nil, errors.Wrap(err, "failed to find category")
	}

	return &entity.Category{ID: categoryM.ID, Name: categoryM.Name, Description: categoryM.Description}, nil
}

// FindInterestsByIDs resolves interest references. Missing IDs are absent
// from the result; the caller compares lengths.
func (repo *catalogRepository) FindInterestsByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Interest, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var interestMs []model.InterestModel
	if err := repo.db.WithContext(ctx).Where("id IN ?", ids).Find(&interestMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find interests by ids")
	}

	interests := make([]entity.Interest, 0, len(interestMs))
	for _, interestM := range interestMs {
		interests = append(interests, toInterestDomain(interestM))
	}

	return interests, nil
}

func toInterestDomain(data model.InterestModel) entity.Interest {
	return entity.Interest{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
	}
}

func fromInterestDomain(data entity.Interest) model.InterestModel {
	return model.InterestModel{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
	}
}
