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

// organizationRepository implements repository.OrganizationRepository using GORM.
type organizationRepository struct {
	db *gorm.DB
}

// NewOrganizationRepository is the constructor for organizationRepository.
func NewOrganizationRepository(db *gorm.DB) repository.OrganizationRepository {
	return &organizationRepository{db: db}
}

// FindByID retrieves a single organization by its unique ID.
func (repo *organizationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Organization, error) {
	var orgM model.OrganizationModel
	err := repo.db.WithContext(ctx).First(&orgM, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrganizationNotFound
		}

		return nil, errors.Wrap(err, "failed to find organization by id")
	}

	return toOrganizationDomain(&orgM), nil
}

// FindByVendor retrieves the organization owned by the given vendor account.
func (repo *organizationRepository) FindByVendor(ctx context.Context, vendorAccountID uuid.UUID) (*entity.Organization, error) {
	var orgM model.OrganizationModel
	err := repo.db.WithContext(ctx).
		First(&orgM, "vendor_account_id = ?", vendorAccountID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrganizationNotFound
		}

		return nil, errors.Wrap(err, "failed to find organization by vendor")
	}

	return toOrganizationDomain(&orgM), nil
}

// List returns all organizations.
func (repo *organizationRepository) List(ctx context.Context) ([]entity.Organization, error) {
	var orgMs []model.OrganizationModel
	if err := repo.db.WithContext(ctx).Order("created_at").Find(&orgMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list organizations")
	}

	orgs := make([]entity.Organization, 0, len(orgMs))
	for i := range orgMs {
		orgs = append(orgs, *toOrganizationDomain(&orgMs[i]))
	}

	return orgs, nil
}

// Create persists a new organization. The unique constraint on
// vendor_account_id turns a concurrent second insert into
// ErrOrganizationLimit instead of a second row.
func (repo *organizationRepository) Create(ctx context.Context, org *entity.Organization) error {
	orgM := fromOrganizationDomain(org)

	if err := repo.db.WithContext(ctx).Create(orgM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			if violatesConstraint(err, "vendor_account_id") {
				return domainerrors.ErrOrganizationLimit
			}

			return domainerrors.ErrOrganizationNameTaken
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrReferenceNotFound.WrapMessage("vendor does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create organization")
	}

	org.ID = orgM.ID
	org.CreatedAt = orgM.CreatedAt
	org.UpdatedAt = orgM.UpdatedAt

	return nil
}

// Update modifies an existing organization.
func (repo *organizationRepository) Update(ctx context.Context, org *entity.Organization) error {
	orgM := fromOrganizationDomain(org)

	if err := repo.db.WithContext(ctx).Save(orgM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrOrganizationNameTaken
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update organization")
	}

	org.UpdatedAt = orgM.UpdatedAt

	return nil
}

// Delete removes an organization by ID.
func (repo *organizationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.OrganizationModel{}, "id = ?", id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete organization")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOrganizationNotFound
	}

	return nil
}

func toOrganizationDomain(data *model.OrganizationModel) *entity.Organization {
	if data == nil {
		return nil
	}

	campaigns := make([]entity.Campaign, 0, len(data.Campaigns))
	for i := range data.Campaigns {
		campaigns = append(campaigns, *toCampaignDomain(&data.Campaigns[i]))
	}
	outlets := make([]entity.Outlet, 0, len(data.Outlets))
	for i := range data.Outlets {
		outlets = append(outlets, *toOutletDomain(&data.Outlets[i]))
	}

	return &entity.Organization{
		ID:              data.ID,
		VendorAccountID: data.VendorAccountID,
		Name:            data.Name,
		Address:         data.Address,
		Verified:        data.Verified,
		Reviewed:        data.Reviewed,
		Campaigns:       campaigns,
		Outlets:         outlets,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

func fromOrganizationDomain(data *entity.Organization) *model.OrganizationModel {
	if data == nil {
		return nil
	}

	// Campaigns and outlets persist through their own repositories.
	return &model.OrganizationModel{
		ID:              data.ID,
		VendorAccountID: data.VendorAccountID,
		Name:            data.Name,
		Address:         data.Address,
		Verified:        data.Verified,
		Reviewed:        data.Reviewed,
	}
}
