package usecase

import (
	"context"

	"couponhub/internal/domain/entity"
)

// CatalogUsecase serves the admin-managed read-only reference data.
type CatalogUsecase interface {
	ListTypes(ctx context.Context) ([]entity.CouponType, error)
	ListCategories(ctx context.Context) ([]entity.Category, error)
	ListInterests(ctx context.Context) ([]entity.Interest, error)
}
