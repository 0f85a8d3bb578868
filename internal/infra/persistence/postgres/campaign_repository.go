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

// campaignRepository implements repository.CampaignRepository using GORM.
type campaignRepository struct {
	db *gorm.DB
}

// NewCampaignRepository is the constructor for campaignRepository.
func NewCampaignRepository(db *gorm.DB) repository.CampaignRepository {
	return &campaignRepository{db: db}
}

// FindByID retrieves a single campaign, preloading the owning organization so
// the ownership chain resolves without extra queries.
func (repo *campaignRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Campaign, error) {
	var campaignM model.CampaignModel
	err := repo.db.WithContext(ctx).
		Preload("Organization").
		First(&campaignM, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCampaignNotFound
		}

		return nil, errors.Wrap(err, "failed to find campaign by id")
	}

	return toCampaignDomain(&campaignM), nil
}

// ListByOrganization returns the campaigns of one organization.
func (repo *campaignRepository) ListByOrganization(ctx context.Context, organizationID uuid.UUID) ([]entity.Campaign, error) {
	var campaignMs []model.CampaignModel
	err := repo.db.WithContext(ctx).
		Where("organization_id = ?", organizationID).
		Order("created_at").
		Find(&campaignMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list campaigns by organization")
	}

	return toCampaignDomainSlice(campaignMs), nil
}

// List returns all campaigns.
func (repo *campaignRepository) List(ctx context.Context) ([]entity.Campaign, error) {
	var campaignMs []model.CampaignModel
	if err := repo.db.WithContext(ctx).Order("created_at").Find(&campaignMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list campaigns")
	}

	return toCampaignDomainSlice(campaignMs), nil
}

// Create persists a new campaign.
func (repo *campaignRepository) Create(ctx context.Context, campaign *entity.Campaign) error {
	campaignM := fromCampaignDomain(campaign)

	if err := repo.db.WithContext(ctx).Create(campaignM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrReferenceNotFound.WrapMessage("organization does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create campaign")
	}

	campaign.ID = campaignM.ID
	campaign.CreatedAt = campaignM.CreatedAt
	campaign.UpdatedAt = campaignM.UpdatedAt

	return nil
}

// Update modifies an existing campaign.
func (repo *campaignRepository) Update(ctx context.Context, campaign *entity.Campaign) error {
	campaignM := fromCampaignDomain(campaign)

	if err := repo.db.WithContext(ctx).Save(campaignM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update campaign")
	}

	campaign.UpdatedAt = campaignM.UpdatedAt

	return nil
}

// Delete removes a campaign by ID.
func (repo *campaignRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Delete(&model.CampaignModel{}, "id = ?", id)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete campaign")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCampaignNotFound
	}

	return nil
}

func toCampaignDomain(data *model.CampaignModel) *entity.Campaign {
	if data == nil {
		return nil
	}

	coupons := make([]entity.Coupon, 0, len(data.Coupons))
	for i := range data.Coupons {
		coupons = append(coupons, *toCouponDomain(&data.Coupons[i]))
	}

	return &entity.Campaign{
		ID:             data.ID,
		OrganizationID: data.OrganizationID,
		Organization:   toOrganizationDomain(data.Organization),
		Name:           data.Name,
		Start:          data.Start,
		End:            data.End,
		Active:         data.Active,
		Coupons:        coupons,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}
}

func toCampaignDomainSlice(data []model.CampaignModel) []entity.Campaign {
	campaigns := make([]entity.Campaign, 0, len(data))
	for i := range data {
		campaigns = append(campaigns, *toCampaignDomain(&data[i]))
	}

	return campaigns
}

func fromCampaignDomain(data *entity.Campaign) *model.CampaignModel {
	if data == nil {
		return nil
	}

	return &model.CampaignModel{
		ID:             data.ID,
		OrganizationID: data.OrganizationID,
		Name:           data.Name,
		Start:          data.Start,
		End:            data.End,
		Active:         data.Active,
	}
}
