package handler

import (
	"net/http"

	"couponhub/internal/delivery/http/response"
	"couponhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AdminHandler holds dependencies for admin moderation handlers.
type AdminHandler struct {
	adminUC usecase.AdminUsecase
}

// NewAdminHandler is the constructor for AdminHandler, injected by Fx.
func NewAdminHandler(adminUC usecase.AdminUsecase) *AdminHandler {
	return &AdminHandler{adminUC: adminUC}
}

type adminToggleRequest struct {
	AccountID      uuid.UUID `json:"accountId"`
	OrganizationID uuid.UUID `json:"organizationId"`
	State          bool      `json:"state"`
}

// Grant toggles admin privileges on an account. Staff and superuser always
// move together.
func (h *AdminHandler) Grant(c echo.Context) error {
	adminID, ok := requesterID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid account ID in token")
	}

	var req adminToggleRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid input")
	}

	if err := h.adminUC.SetAdmin(c.Request().Context(), adminID, req.AccountID, req.State); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Admin flag updated")
}

// Restrict toggles the publishing ban on a vendor.
func (h *AdminHandler) Restrict(c echo.Context) error {
	adminID, ok := requesterID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid account ID in token")
	}

	var req adminToggleRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid input")
	}

	if err := h.adminUC.SetVendorRestricted(c.Request().Context(), adminID, req.AccountID, req.State); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Vendor restriction updated")
}

// VerifyOrganization toggles organization approval.
func (h *AdminHandler) VerifyOrganization(c echo.Context) error {
	adminID, ok := requesterID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid account ID in token")
	}

	var req adminToggleRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid input")
	}

	if err := h.adminUC.SetOrganizationVerified(c.Request().Context(), adminID, req.OrganizationID, req.State); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Organization verification updated")
}
