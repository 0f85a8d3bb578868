package impl

import (
	"context"

	"couponhub/internal/domain/entity"
	"couponhub/internal/domain/repository"
	"couponhub/internal/usecase"

	"go.uber.org/fx"
)

// catalogService implements the CatalogUsecase interface. The catalog is
// admin-managed reference data, so this is a read-only pass-through.
type catalogService struct {
	catalogRepo repository.CatalogRepository
}

// CatalogServiceParams holds dependencies for catalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	CatalogRepo repository.CatalogRepository
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{catalogRepo: params.CatalogRepo}
}

func (srv *catalogService) ListTypes(ctx context.Context) ([]entity.CouponType, error) {
	return srv.catalogRepo.ListTypes(ctx)
}

func (srv *catalogService) ListCategories(ctx context.Context) ([]entity.Category, error) {
	return srv.catalogRepo.ListCategories(ctx)
}

func (srv *catalogService) ListInterests(ctx context.Context) ([]entity.Interest, error) {
	return srv.catalogRepo.ListInterests(ctx)
}
