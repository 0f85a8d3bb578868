package handler

import (
	"net/http"

	"couponhub/internal/delivery/http/response"
	"couponhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CatalogHandler serves the read-only reference data endpoints.
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
}

// NewCatalogHandler is the constructor for CatalogHandler, injected by Fx.
func NewCatalogHandler(catalogUC usecase.CatalogUsecase) *CatalogHandler {
	return &CatalogHandler{catalogUC: catalogUC}
}

// ListTypes returns the coupon types.
func (h *CatalogHandler) ListTypes(c echo.Context) error {
	types, err := h.catalogUC.ListTypes(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]catalogView, 0, len(types))
	for i := range types {
		views = append(views, catalogView{ID: types[i].ID, Name: types[i].Name})
	}

	return response.Success(c, http.StatusOK, views, "")
}

// ListCategories returns the coupon categories.
func (h *CatalogHandler) ListCategories(c echo.Context) error {
	categories, err := h.catalogUC.ListCategories(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]catalogView, 0, len(categories))
	for i := range categories {
		views = append(views, catalogView{ID: categories[i].ID, Name: categories[i].Name})
	}

	return response.Success(c, http.StatusOK, views, "")
}

// ListInterests returns the consumer interests.
func (h *CatalogHandler) ListInterests(c echo.Context) error {
	interests, err := h.catalogUC.ListInterests(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newInterestViews(interests), "")
}
