package handler

import (
	"net/http"

	"couponhub/internal/delivery/http/response"
	"couponhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for token-related handlers.
type AuthHandler struct {
	authUC usecase.AuthUsecase
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(authUC usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{authUC: authUC}
}

// tokenPairView is the wire shape of an issued token pair.
type tokenPairView struct {
	AccessToken  string      `json:"accessToken"`
	RefreshToken string      `json:"refreshToken"`
	Account      accountView `json:"account"`
}

// Login exchanges an email and secret for a token pair. The secret is a
// password for vendors and a one-time PIN for consumers.
func (h *AuthHandler) Login(c echo.Context) error {
	var input usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}

	output, err := h.authUC.Login(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	view := tokenPairView{
		AccessToken:  output.AccessToken,
		RefreshToken: output.RefreshToken,
		Account:      newAccountView(output.Account),
	}

	return response.Success(c, http.StatusOK, view, "Login successful")
}

// Refresh validates a refresh token and issues a new access token.
func (h *AuthHandler) Refresh(c echo.Context) error {
	var input struct {
		RefreshToken string `json:"refreshToken"`
	}
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid refresh input")
	}

	output, err := h.authUC.Refresh(c.Request().Context(), input.RefreshToken)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"accessToken": output.AccessToken}, "Token refreshed")
}

// Verify checks an access token and returns its claims.
func (h *AuthHandler) Verify(c echo.Context) error {
	var input struct {
		Token string `json:"token"`
	}
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid verify input")
	}

	claims, err := h.authUC.Verify(c.Request().Context(), input.Token)
	if err != nil {
		return errors.WithStack(err)
	}

	view := map[string]any{
		"accountId": claims.AccountID,
		"kind":      claims.Kind,
		"admin":     claims.Admin,
	}

	return response.Success(c, http.StatusOK, view, "Token is valid")
}
