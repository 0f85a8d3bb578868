package handler

import (
	"net/http"

	"couponhub/internal/delivery/http/response"
	"couponhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AccountHandler holds dependencies for account-related handlers.
type AccountHandler struct {
	accountUC usecase.AccountUsecase
	authUC    usecase.AuthUsecase
}

// NewAccountHandler is the constructor for AccountHandler, injected by Fx.
func NewAccountHandler(accountUC usecase.AccountUsecase, authUC usecase.AuthUsecase) *AccountHandler {
	return &AccountHandler{
		accountUC: accountUC,
		authUC:    authUC,
	}
}

// Register handles the account registration request. Vendors supply a handle
// and password; consumers only an email.
func (h *AccountHandler) Register(c echo.Context) error {
	var input usecase.RegisterInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}

	output, err := h.accountUC.Register(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newAccountView(output.Account), "Account registered successfully")
}

// SendPIN mails a one-time login PIN to a consumer.
func (h *AccountHandler) SendPIN(c echo.Context) error {
	var input struct {
		Email string `json:"email"`
	}
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid input")
	}

	if err := h.accountUC.SendPIN(c.Request().Context(), input.Email); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "PIN sent")
}

// ResendVerificationEmail issues a fresh confirmation code to the
// authenticated vendor.
func (h *AccountHandler) ResendVerificationEmail(c echo.Context) error {
	accountID, ok := requesterID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid account ID in token")
	}

	if err := h.authUC.ResendVerificationEmail(c.Request().Context(), accountID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Verification email sent")
}

// GetInfo returns the authenticated account with its profile.
func (h *AccountHandler) GetInfo(c echo.Context) error {
	accountID, ok := requesterID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid account ID in token")
	}

	account, err := h.accountUC.GetAccount(c.Request().Context(), accountID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newAccountView(account), "")
}

// UpdateVendor changes the handle and/or password of the authenticated
// vendor.
func (h *AccountHandler) UpdateVendor(c echo.Context) error {
	accountID, ok := requesterID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid account ID in token")
	}

	var input usecase.UpdateAccountInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid input")
	}

	account, err := h.accountUC.UpdateAccount(c.Request().Context(), accountID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newAccountView(account), "Account updated")
}

// UpdateConsumer changes the consumer profile of the authenticated account.
func (h *AccountHandler) UpdateConsumer(c echo.Context) error {
	accountID, ok := requesterID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid account ID in token")
	}

	var input usecase.UpdateConsumerProfileInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid input")
	}

	account, err := h.accountUC.UpdateConsumerProfile(c.Request().Context(), accountID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newAccountView(account), "Profile updated")
}
