package handler

import (
	"net/http"

	"couponhub/internal/delivery/http/response"
	"couponhub/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// OutletHandler holds dependencies for outlet handlers.
type OutletHandler struct {
	outletUC usecase.OutletUsecase
}

// NewOutletHandler is the constructor for OutletHandler, injected by Fx.
func NewOutletHandler(outletUC usecase.OutletUsecase) *OutletHandler {
	return &OutletHandler{outletUC: outletUC}
}

// List returns all outlets.
func (h *OutletHandler) List(c echo.Context) error {
	outlets, err := h.outletUC.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newOutletViews(outlets), "")
}

// Get returns one outlet by ID.
func (h *OutletHandler) Get(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid outlet ID")
	}

	outlet, err := h.outletUC.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newOutletView(outlet), "")
}

// Create adds an outlet under the requester's organization.
func (h *OutletHandler) Create(c echo.Context) error {
	accountID, ok := requesterID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid account ID in token")
	}

	var input usecase.CreateOutletInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid outlet input")
	}

	outlet, err := h.outletUC.Create(c.Request().Context(), accountID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newOutletView(outlet), "Outlet created")
}

// Update modifies an outlet.
func (h *OutletHandler) Update(c echo.Context) error {
	accountID, ok := requesterID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid account ID in token")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid outlet ID")
	}

	var input usecase.UpdateOutletInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid outlet input")
	}

	outlet, err := h.outletUC.Update(c.Request().Context(), accountID, id, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newOutletView(outlet), "Outlet updated")
}

// Delete removes an outlet.
func (h *OutletHandler) Delete(c echo.Context) error {
	accountID, ok := requesterID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid account ID in token")
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid outlet ID")
	}

	if err := h.outletUC.Delete(c.Request().Context(), accountID, id); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}
