package handler

import (
	"log/slog"
	"net/http"

	"accountd/internal/delivery/http/response"
	"accountd/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// DirectoryHandler holds dependencies for the admin-only directory handlers.
type DirectoryHandler struct {
	uc     usecase.DirectoryUsecase
	logger *slog.Logger
}

// NewDirectoryHandler is the constructor for DirectoryHandler, injected by Fx.
func NewDirectoryHandler(uc usecase.DirectoryUsecase, logger *slog.Logger) *DirectoryHandler {
	return &DirectoryHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListAccounts returns the public view of every account.
func (h *DirectoryHandler) ListAccounts(c echo.Context) error {
	views, err := h.uc.ListAccounts(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, views, "Accounts retrieved successfully")
}

// GetAccount returns a single account by the email path parameter.
func (h *DirectoryHandler) GetAccount(c echo.Context) error {
	email := c.Param("email")
	if email == "" {
		return response.BadRequest(c, "INVALID_INPUT", "email path parameter is required")
	}

	view, err := h.uc.GetAccount(c.Request().Context(), email)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "Account retrieved successfully")
}

// DeleteAccount removes a single account by the email path parameter.
func (h *DirectoryHandler) DeleteAccount(c echo.Context) error {
	email := c.Param("email")
	if email == "" {
		return response.BadRequest(c, "INVALID_INPUT", "email path parameter is required")
	}

	if err := h.uc.DeleteAccount(c.Request().Context(), email); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Account deleted")
}
