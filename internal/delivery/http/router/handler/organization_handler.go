package handler

import (
	"net/http"

	"couponhub/internal/delivery/http/response"
	"couponhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OrganizationHandler holds dependencies for organization handlers.
type OrganizationHandler struct {
	orgUC usecase.OrganizationUsecase
}

// NewOrganizationHandler is the constructor for OrganizationHandler, injected by Fx.
func NewOrganizationHandler(orgUC usecase.OrganizationUsecase) *OrganizationHandler {
	return &OrganizationHandler{orgUC: orgUC}
}

// List returns all organizations.
func (h *OrganizationHandler) List(c echo.Context) error {
	orgs, err := h.orgUC.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newOrganizationViews(orgs), "")
}

// Get returns one organization by ID.
func (h *OrganizationHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid organization ID")
	}

	org, err := h.orgUC.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newOrganizationView(org), "")
}

// Create registers the vendor's organization.
func (h *OrganizationHandler) Create(c echo.Context) error {
	accountID, ok := requesterID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid account ID in token")
	}

	var input usecase.CreateOrganizationInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid organization input")
	}

	org, err := h.orgUC.Create(c.Request().Context(), accountID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newOrganizationView(org), "Organization created")
}

// Update modifies the organization.
func (h *OrganizationHandler) Update(c echo.Context) error {
	accountID, ok := requesterID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid account ID in token")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid organization ID")
	}

	var input usecase.UpdateOrganizationInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid organization input")
	}

	org, err := h.orgUC.Update(c.Request().Context(), accountID, id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newOrganizationView(org), "Organization updated")
}

// Delete removes the organization.
func (h *OrganizationHandler) Delete(c echo.Context) error {
	accountID, ok := requesterID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid account ID in token")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid organization ID")
	}

	if err := h.orgUC.Delete(c.Request().Context(), accountID, id); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}
