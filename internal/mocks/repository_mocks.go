// Package mocks holds hand-written testify mocks for the domain interfaces.
package mocks

import (
	"context"

	"couponhub/internal/domain/entity"
	"couponhub/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockAccountRepository mocks repository.AccountRepository.
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Account), args.Error(1)
}

func (m *MockAccountRepository) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Account), args.Error(1)
}

func (m *MockAccountRepository) Create(ctx context.Context, account *entity.Account) error {
	return m.Called(ctx, account).Error(0)
}

func (m *MockAccountRepository) Update(ctx context.Context, account *entity.Account) error {
	return m.Called(ctx, account).Error(0)
}

func (m *MockAccountRepository) UpdateSecret(ctx context.Context, id uuid.UUID, secretHash string) error {
	return m.Called(ctx, id, secretHash).Error(0)
}

// MockConfirmationRepository mocks repository.ConfirmationRepository.
type MockConfirmationRepository struct {
	mock.Mock
}

func (m *MockConfirmationRepository) Create(ctx context.Context, confirmation *entity.EmailConfirmation) error {
	return m.Called(ctx, confirmation).Error(0)
}

func (m *MockConfirmationRepository) Find(ctx context.Context, email, code string) (*entity.EmailConfirmation, error) {
	args := m.Called(ctx, email, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.EmailConfirmation), args.Error(1)
}

func (m *MockConfirmationRepository) MarkConfirmed(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// MockRefreshTokenRepository mocks repository.RefreshTokenRepository.
type MockRefreshTokenRepository struct {
	mock.Mock
}

func (m *MockRefreshTokenRepository) Create(ctx context.Context, token *entity.RefreshToken) error {
	return m.Called(ctx, token).Error(0)
}

func (m *MockRefreshTokenRepository) FindByHash(ctx context.Context, tokenHash string) (*entity.RefreshToken, error) {
	args := m.Called(ctx, tokenHash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.RefreshToken), args.Error(1)
}

func (m *MockRefreshTokenRepository) DeleteByHash(ctx context.Context, tokenHash string) error {
	return m.Called(ctx, tokenHash).Error(0)
}

// MockOrganizationRepository mocks repository.OrganizationRepository.
type MockOrganizationRepository struct {
	mock.Mock
}

func (m *MockOrganizationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Organization, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Organization), args.Error(1)
}

func (m *MockOrganizationRepository) FindByVendor(ctx context.Context, vendorAccountID uuid.UUID) (*entity.Organization, error) {
	args := m.Called(ctx, vendorAccountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Organization), args.Error(1)
}

func (m *MockOrganizationRepository) List(ctx context.Context) ([]entity.Organization, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]entity.Organization), args.Error(1)
}

func (m *MockOrganizationRepository) Create(ctx context.Context, org *entity.Organization) error {
	return m.Called(ctx, org).Error(0)
}

func (m *MockOrganizationRepository) Update(ctx context.Context, org *entity.Organization) error {
	return m.Called(ctx, org).Error(0)
}

func (m *MockOrganizationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// MockCampaignRepository mocks repository.CampaignRepository.
type MockCampaignRepository struct {
	mock.Mock
}

func (m *MockCampaignRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Campaign, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Campaign), args.Error(1)
}

func (m *MockCampaignRepository) ListByOrganization(ctx context.Context, organizationID uuid.UUID) ([]entity.Campaign, error) {
	args := m.Called(ctx, organizationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]entity.Campaign), args.Error(1)
}

func (m *MockCampaignRepository) List(ctx context.Context) ([]entity.Campaign, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]entity.Campaign), args.Error(1)
}

func (m *MockCampaignRepository) Create(ctx context.Context, campaign *entity.Campaign) error {
	return m.Called(ctx, campaign).Error(0)
}

func (m *MockCampaignRepository) Update(ctx context.Context, campaign *entity.Campaign) error {
	return m.Called(ctx, campaign).Error(0)
}

func (m *MockCampaignRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// MockOutletRepository mocks repository.OutletRepository.
type MockOutletRepository struct {
	mock.Mock
}

func (m *MockOutletRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Outlet, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Outlet), args.Error(1)
}

func (m *MockOutletRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Outlet, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]entity.Outlet), args.Error(1)
}

func (m *MockOutletRepository) ListByOrganization(ctx context.Context, organizationID uuid.UUID) ([]entity.Outlet, error) {
	args := m.Called(ctx, organizationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]entity.Outlet), args.Error(1)
}

func (m *MockOutletRepository) List(ctx context.Context) ([]entity.Outlet, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]entity.Outlet), args.Error(1)
}

func (m *MockOutletRepository) Create(ctx context.Context, outlet *entity.Outlet) error {
	return m.Called(ctx, outlet).Error(0)
}

func (m *MockOutletRepository) Update(ctx context.Context, outlet *entity.Outlet) error {
	return m.Called(ctx, outlet).Error(0)
}

func (m *MockOutletRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// MockCouponRepository mocks repository.CouponRepository.
type MockCouponRepository struct {
	mock.Mock
}

func (m *MockCouponRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Coupon, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Coupon), args.Error(1)
}

func (m *MockCouponRepository) ListPublished(ctx context.Context) ([]entity.Coupon, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]entity.Coupon), args.Error(1)
}

func (m *MockCouponRepository) ListByCampaign(ctx context.Context, campaignID uuid.UUID) ([]entity.Coupon, error) {
	args := m.Called(ctx, campaignID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]entity.Coupon), args.Error(1)
}

func (m *MockCouponRepository) Create(ctx context.Context, coupon *entity.Coupon) error {
	return m.Called(ctx, coupon).Error(0)
}

func (m *MockCouponRepository) Update(ctx context.Context, coupon *entity.Coupon) error {
	return m.Called(ctx, coupon).Error(0)
}

func (m *MockCouponRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// MockCatalogRepository mocks repository.CatalogRepository.
type MockCatalogRepository struct {
	mock.Mock
}

func (m *MockCatalogRepository) ListTypes(ctx context.Context) ([]entity.CouponType, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]entity.CouponType), args.Error(1)
}

func (m *MockCatalogRepository) ListCategories(ctx context.Context) ([]entity.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]entity.Category), args.Error(1)
}

func (m *MockCatalogRepository) ListInterests(ctx context.Context) ([]entity.Interest, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]entity.Interest), args.Error(1)
}

func (m *MockCatalogRepository) FindType(ctx context.Context, id uuid.UUID) (*entity.CouponType, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.CouponType), args.Error(1)
}

func (m *MockCatalogRepository) FindCategory(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Category), args.Error(1)
}

func (m *MockCatalogRepository) FindInterestsByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Interest, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]entity.Interest), args.Error(1)
}

// MockEngagementRepository mocks repository.EngagementRepository.
type MockEngagementRepository struct {
	mock.Mock
}

func (m *MockEngagementRepository) CreateRating(ctx context.Context, rating *entity.Rating) error {
	return m.Called(ctx, rating).Error(0)
}

func (m *MockEngagementRepository) CreateShortlist(ctx context.Context, shortlist *entity.Shortlist) error {
	return m.Called(ctx, shortlist).Error(0)
}

func (m *MockEngagementRepository) CreateRedemption(ctx context.Context, redemption *entity.Redemption) error {
	return m.Called(ctx, redemption).Error(0)
}

func (m *MockEngagementRepository) CountRedemptions(ctx context.Context, couponID uuid.UUID) (int64, error) {
	args := m.Called(ctx, couponID)

	return args.Get(0).(int64), args.Error(1)
}

// StubRepositoryFactory hands out the repositories it was built with,
// letting tests drive transactional code without a database.
type StubRepositoryFactory struct {
	Account      repository.AccountRepository
	Confirmation repository.ConfirmationRepository
	RefreshToken repository.RefreshTokenRepository
	Organization repository.OrganizationRepository
	Campaign     repository.CampaignRepository
	Outlet       repository.OutletRepository
	Coupon       repository.CouponRepository
	Catalog      repository.CatalogRepository
	Engagement   repository.EngagementRepository
}

func (f *StubRepositoryFactory) AccountRepo() repository.AccountRepository {
	return f.Account
}

func (f *StubRepositoryFactory) ConfirmationRepo() repository.ConfirmationRepository {
	return f.Confirmation
}

func (f *StubRepositoryFactory) RefreshTokenRepo() repository.RefreshTokenRepository {
	return f.RefreshToken
}

func (f *StubRepositoryFactory) OrganizationRepo() repository.OrganizationRepository {
	return f.Organization
}

func (f *StubRepositoryFactory) CampaignRepo() repository.CampaignRepository {
	return f.Campaign
}

func (f *StubRepositoryFactory) OutletRepo() repository.OutletRepository {
	return f.Outlet
}

func (f *StubRepositoryFactory) CouponRepo() repository.CouponRepository {
	return f.Coupon
}

func (f *StubRepositoryFactory) CatalogRepo() repository.CatalogRepository {
	return f.Catalog
}

func (f *StubRepositoryFactory) EngagementRepo() repository.EngagementRepository {
	return f.Engagement
}

// ImmediateTxManager executes the callback synchronously against a stub
// factory, standing in for a real database transaction.
type ImmediateTxManager struct {
	Factory repository.RepositoryFactory
}

func (tm *ImmediateTxManager) Execute(_ context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	return fn(tm.Factory)
}
