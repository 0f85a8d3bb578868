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

// outletRepository implements repository.OutletRepository using GORM.
type outletRepository struct {
	db *gorm.DB
}

// NewOutletRepository is the constructor for outletRepository.
func NewOutletRepository(db *gorm.DB) repository.OutletRepository {
	return &outletRepository{db: db}
}

// FindByID retrieves a single outlet, preloading the owning organization.
func (repo *outletRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Outlet, error) {
	var outletM model.OutletModel
	err := repo.db.WithContext(ctx).
		Preload("Organization").
		First(&outletM, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOutletNotFound
		}

		return nil, errors.Wrap(err, "failed to find outlet by id")
	}

	return toOutletDomain(&outletM), nil
}

// FindByIDs retrieves the outlets matching the given IDs, preloading each
// owning organization. Missing IDs are simply absent from the result; the
// caller compares lengths.
func (repo *outletRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Outlet, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var outletMs []model.OutletModel
	err := repo.db.WithContext(ctx).
		Preload("Organization").
		Where("id IN ?", ids).
		Find(&outletMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find outlets by ids")
	}

	return toOutletDomainSlice(outletMs), nil
}

// ListByOrganization returns the outlets of one organization.
func (repo *outletRepository) ListByOrganization(ctx context.Context, organizationID uuid.UUID) ([]entity.Outlet, error) {
	var outletMs []model.OutletModel
	err := repo.db.WithContext(ctx).
		Where("organization_id = ?", organizationID).
		Order("created_at").
		Find(&outletMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list outlets by organization")
	}

	return toOutletDomainSlice(outletMs), nil
}

// List returns all outlets.
func (repo *outletRepository) List(ctx context.Context) ([]entity.Outlet, error) {
	var outletMs []model.OutletModel
	if err := repo.db.WithContext(ctx).Order("created_at").Find(&outletMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list outlets")
	}

	return toOutletDomainSlice(outletMs), nil
}

// Create persists a new outlet.
func (repo *outletRepository) Create(ctx context.Context, outlet *entity.Outlet) error {
	outletM := fromOutletDomain(outlet)

	if err := repo.db.WithContext(ctx).Create(outletM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrReferenceNotFound.WrapMessage("organization does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create outlet")
	}

	outlet.ID = outletM.ID
	outlet.CreatedAt = outletM.CreatedAt
	outlet.UpdatedAt = outletM.UpdatedAt

	return nil
}

// Update modifies an existing outlet.
func (repo *outletRepository) Update(ctx context.Context, outlet *entity.Outlet) error {
	outletM := fromOutletDomain(outlet)

	if err := repo.db.WithContext(ctx).Save(outletM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update outlet")
	}

	outlet.UpdatedAt = outletM.UpdatedAt

	return nil
}

// Delete removes an outlet by ID.
func (repo *outletRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.OutletModel{}, "id = ?", id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete outlet")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOutletNotFound
	}

	return nil
}

func toOutletDomain(data *model.OutletModel) *entity.Outlet {
	if data == nil {
		return nil
	}

	outlet := &entity.Outlet{
		ID:             data.ID,
		OrganizationID: data.OrganizationID,
		Organization:   toOrganizationDomain(data.Organization),
		Name:           data.Name,
		Description:    data.Description,
		Address:        data.Address,
		Latitude:       data.Latitude,
		Longitude:      data.Longitude,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
	outlet.SyncGeom()

	return outlet
}

func toOutletDomainSlice(data []model.OutletModel) []entity.Outlet {
	outlets := make([]entity.Outlet, 0, len(data))
	for i := range data {
		outlets = append(outlets, *toOutletDomain(&data[i]))
	}

	return outlets
}

func fromOutletDomain(data *entity.Outlet) *model.OutletModel {
	if data == nil {
		return nil
	}

	return &model.OutletModel{
		ID:             data.ID,
		OrganizationID: data.OrganizationID,
		Name:           data.Name,
		Description:    data.Description,
		Address:        data.Address,
		Latitude:       data.Latitude,
		Longitude:      data.Longitude,
	}
}
