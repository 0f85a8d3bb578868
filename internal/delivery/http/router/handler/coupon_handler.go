package handler

import (
	"net/http"

	"couponhub/internal/delivery/http/response"
	"couponhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CouponHandler holds dependencies for coupon handlers.
type CouponHandler struct {
	couponUC usecase.CouponUsecase
}

// NewCouponHandler is the constructor for CouponHandler, injected by Fx.
func NewCouponHandler(couponUC usecase.CouponUsecase) *CouponHandler {
	return &CouponHandler{couponUC: couponUC}
}

// List returns the published, active coupons.
func (h *CouponHandler) List(c echo.Context) error {
	coupons, err := h.couponUC.ListPublished(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newCouponViews(coupons), "")
}

// Get returns one coupon by ID.
func (h *CouponHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid coupon ID")
	}

	coupon, err := h.couponUC.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newCouponView(coupon), "")
}

// GenerateQR streams the coupon's redemption code as a PNG image.
func (h *CouponHandler) GenerateQR(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid coupon ID")
	}

	png, err := h.couponUC.GenerateQR(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// Create adds a coupon under the requester's campaign.
func (h *CouponHandler) Create(c echo.Context) error {
	accountID, ok := requesterID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid account ID in token")
	}

	var input usecase.CreateCouponInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid coupon input")
	}

	coupon, err := h.couponUC.Create(c.Request().Context(), accountID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newCouponView(coupon), "Coupon created")
}

// Update modifies a coupon.
func (h *CouponHandler) Update(c echo.Context) error {
	accountID, ok := requesterID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid account ID in token")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid coupon ID")
	}

	var input usecase.UpdateCouponInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid coupon input")
	}

	coupon, err := h.couponUC.Update(c.Request().Context(), accountID, id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newCouponView(coupon), "Coupon updated")
}

// Delete removes a coupon.
func (h *CouponHandler) Delete(c echo.Context) error {
	accountID, ok := requesterID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid account ID in token")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid coupon ID")
	}

	if err := h.couponUC.Delete(c.Request().Context(), accountID, id); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}
