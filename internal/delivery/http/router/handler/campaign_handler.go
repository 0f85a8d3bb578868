package handler

import (
	"net/http"

	"couponhub/internal/delivery/http/response"
	"couponhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CampaignHandler holds dependencies for campaign handlers.
type CampaignHandler struct {
	campaignUC usecase.CampaignUsecase
	couponUC   usecase.CouponUsecase
}

// NewCampaignHandler is the constructor for CampaignHandler, injected by Fx.
func NewCampaignHandler(campaignUC usecase.CampaignUsecase, couponUC usecase.CouponUsecase) *CampaignHandler {
	return &CampaignHandler{
		campaignUC: campaignUC,
		couponUC:   couponUC,
	}
}

// List returns all campaigns.
func (h *CampaignHandler) List(c echo.Context) error {
	campaigns, err := h.campaignUC.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newCampaignViews(campaigns), "")
}

// Get returns one campaign by ID.
func (h *CampaignHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid campaign ID")
	}

	campaign, err := h.campaignUC.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newCampaignView(campaign), "")
}

// ListCoupons returns the coupons of one campaign.
func (h *CampaignHandler) ListCoupons(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid campaign ID")
	}

	coupons, err := h.couponUC.ListByCampaign(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newCouponViews(coupons), "")
}

// Create adds a campaign under the requester's organization.
func (h *CampaignHandler) Create(c echo.Context) error {
	accountID, ok := requesterID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid account ID in token")
	}

	var input usecase.CreateCampaignInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid campaign input")
	}

	campaign, err := h.campaignUC.Create(c.Request().Context(), accountID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newCampaignView(campaign), "Campaign created")
}

// Update modifies a campaign.
func (h *CampaignHandler) Update(c echo.Context) error {
	accountID, ok := requesterID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid account ID in token")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid campaign ID")
	}

	var input usecase.UpdateCampaignInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid campaign input")
	}

	campaign, err := h.campaignUC.Update(c.Request().Context(), accountID, id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newCampaignView(campaign), "Campaign updated")
}

// Delete removes a campaign.
func (h *CampaignHandler) Delete(c echo.Context) error {
	accountID, ok := requesterID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid account ID in token")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid campaign ID")
	}

	if err := h.campaignUC.Delete(c.Request().Context(), accountID, id); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}
