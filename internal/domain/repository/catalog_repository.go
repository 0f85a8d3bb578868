package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"couponhub/internal/domain/entity"
)

// ErrCatalogEntryNotFound is returned when a referenced type, category or
// interest does not exist.
var ErrCatalogEntryNotFound = errors.New("catalog entry not found")

// CatalogRepository serves the admin-managed read-only reference data.
type CatalogRepository interface {
	ListTypes(ctx context.Context) ([]entity.CouponType, error)
	ListCategories(ctx context.Context) ([]entity.Category, error)
	ListInterests(ctx context.Context) ([]entity.Interest, error)

	// FindType and FindCategory validate nested references on coupon writes.
	FindType(ctx context.Context, id uuid.UUID) (*entity.CouponType, error)
	FindCategory(ctx context.Context, id uuid.UUID) (*entity.Category, error)
	FindInterestsByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Interest, error)
}
