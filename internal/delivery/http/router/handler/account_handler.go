// Package handler contains the HTTP handlers for the application.
package handler

import (
	"fmt"
	"log/slog"
	"net/http"

	deliverycontext "accountd/internal/delivery/context"
	"accountd/internal/delivery/http/response"
	domainerrors "accountd/internal/domain/errors"
	"accountd/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AccountHandler holds dependencies for account self-service handlers.
type AccountHandler struct {
	uc     usecase.AccountUsecase
	logger *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler, injected by Fx.
func NewAccountHandler(uc usecase.AccountUsecase, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{
		uc:     uc,
		logger: logger,
	}
}

// Register handles the account registration request.
func (h *AccountHandler) Register(c echo.Context) error {
	input := new(usecase.RegisterInput)
	if err := c.Bind(input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Register(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	// The response carries the public view only; the hash never leaves the usecase.
	return response.Success(c, http.StatusCreated, output.Account, "Account registered successfully")
}

// Login handles the login request and returns the issued token.
func (h *AccountHandler) Login(c echo.Context) error {
	input := new(usecase.LoginInput)
	if err := c.Bind(input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Login(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	welcome := fmt.Sprintf("Welcome %s, here's your token", output.Account.Username)

	return response.Success(c, http.StatusOK, map[string]any{
		"token":   output.Token,
		"account": output.Account,
	}, welcome)
}

// UpdateSelf handles the partial update of the caller's own account.
func (h *AccountHandler) UpdateSelf(c echo.Context) error {
	claims := deliverycontext.GetClaims(c)
	if claims == nil {
		return response.Unauthorized(c,
			domainerrors.ErrUnauthorized.ErrorCode(),
			domainerrors.ErrUnauthorized.Message(),
		)
	}

	// An empty body binds to a zero struct; the usecase rejects it as an
	// empty update.
	input := new(usecase.UpdateAccountInput)
	if err := c.Bind(input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid update input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.UpdateAccount(c.Request().Context(), claims.Email(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, updateMessage(output))
}

// updateMessage phrases the confirmation for each update combination.
func updateMessage(output *usecase.UpdateAccountOutput) string {
	switch {
	case output.UsernameUpdated && output.PasswordUpdated:
		return "Username and password updated"
	case output.PasswordUpdated:
		return "Password updated"
	default:
		return "Username updated"
	}
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
