package handler

import (
	"net/http"

	domainerrors "couponhub/internal/domain/errors"
	"couponhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// VerificationHandler serves the plain-text email confirmation link. The
// endpoint is opened from a mail client, so it answers with short human
// phrases instead of the JSON envelope.
type VerificationHandler struct {
	authUC usecase.AuthUsecase
}

// NewVerificationHandler is the constructor for VerificationHandler, injected by Fx.
func NewVerificationHandler(authUC usecase.AuthUsecase) *VerificationHandler {
	return &VerificationHandler{authUC: authUC}
}

// ConfirmEmail consumes the mailed code and marks the vendor verified.
func (h *VerificationHandler) ConfirmEmail(c echo.Context) error {
	email := c.QueryParam("email")
	code := c.QueryParam("code")
	if email == "" || code == "" {
		return c.String(http.StatusBadRequest, "Broken link!")
	}

	err := h.authUC.ConfirmEmail(c.Request().Context(), email, code)
	switch {
	case err == nil:
		return c.String(http.StatusOK, "OK")
	case errors.Is(err, domainerrors.ErrAccountNotFound):
		return c.String(http.StatusBadRequest, "Wrong email!")
	case errors.Is(err, domainerrors.ErrCodeExpired):
		return c.String(http.StatusBadRequest, "Code expired!")
	case errors.Is(err, domainerrors.ErrInvalidCode):
		return c.String(http.StatusBadRequest, "Wrong code!")
	default:
		return errors.WithStack(err)
	}
}
