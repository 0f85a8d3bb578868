package handler

import (
	"net/http"
	"time"

	"couponhub/internal/delivery/http/response"
	"couponhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// EngagementHandler holds dependencies for consumer coupon interactions.
type EngagementHandler struct {
	engagementUC usecase.EngagementUsecase
}

// NewEngagementHandler is the constructor for EngagementHandler, injected by Fx.
func NewEngagementHandler(engagementUC usecase.EngagementUsecase) *EngagementHandler {
	return &EngagementHandler{engagementUC: engagementUC}
}

type ratingView struct {
	CouponID  uuid.UUID `json:"couponId"`
	Rate      int       `json:"rate"`
	Review    string    `json:"review,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Rate records the consumer's 1..5 score of a coupon.
func (h *EngagementHandler) Rate(c echo.Context) error {
	accountID, ok := requesterID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid account ID in token")
	}

	couponID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid coupon ID")
	}

	var input usecase.RateCouponInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid rating input")
	}
	input.CouponID = couponID

	rating, err := h.engagementUC.RateCoupon(c.Request().Context(), accountID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	view := ratingView{
		CouponID:  rating.CouponID,
		Rate:      rating.Rate,
		Review:    rating.Review,
		CreatedAt: rating.CreatedAt,
	}

	return response.Success(c, http.StatusCreated, view, "Rating recorded")
}

// Shortlist saves a coupon for later.
func (h *EngagementHandler) Shortlist(c echo.Context) error {
	accountID, ok := requesterID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid account ID in token")
	}

	couponID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid coupon ID")
	}

	if _, err := h.engagementUC.ShortlistCoupon(c.Request().Context(), accountID, couponID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, nil, "Coupon shortlisted")
}

// Redeem records a use of the coupon.
func (h *EngagementHandler) Redeem(c echo.Context) error {
	accountID, ok := requesterID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid account ID in token")
	}

	couponID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid coupon ID")
	}

	redemption, err := h.engagementUC.RedeemCoupon(c.Request().Context(), accountID, couponID)
	if err != nil {
		return errors.WithStack(err)
	}

	view := map[string]any{
		"couponId":   redemption.CouponID,
		"redeemedAt": redemption.CreatedAt,
	}

	return response.Success(c, http.StatusCreated, view, "Coupon redeemed")
}
