// Package middleware contains the HTTP middleware for authentication, authorization and error handling.
package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "accountd/internal/delivery/context"
	"accountd/internal/delivery/http/response"
	"accountd/internal/domain/entity"
	domainerrors "accountd/internal/domain/errors"
	"accountd/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// bearerScheme is the expected authorization scheme name.
const bearerScheme = "Bearer"

// AuthMiddleware provides middleware for token authentication and role authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, logger: logger}
}

// Authenticate is the core middleware function that validates the access token.
// Any extraction or verification failure terminates the request with 401;
// no operation logic runs after a rejection.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString, err := extractToken(c)
		if err != nil {
			return m.reject(c, err)
		}

		claims, err := m.tokenSvc.Verify(tokenString)
		if err != nil {
			return m.reject(c, err)
		}

		// Attach the verified claim set for the remainder of request handling.
		// Downstream reads the subject from here and never re-parses the token.
		deliverycontext.SetClaims(c, claims)

		return next(c)
	}
}

// RequireAdmin restricts the route to the administrative account.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims := deliverycontext.GetClaims(c)
		if claims == nil || claims.AccountRole() != entity.RoleAdmin {
			return response.Forbidden(c,
				domainerrors.ErrAdminOnly.ErrorCode(),
				domainerrors.ErrAdminOnly.Message(),
			)
		}

		return next(c)
	}
}

// reject logs the verification failure server-side and answers with the
// generic unauthorized error. The failure kind is not exposed to the caller.
func (m *AuthMiddleware) reject(c echo.Context, err error) error {
	m.logger.Debug("Token rejected",
		slog.String("path", c.Request().URL.Path),
		slog.Any("error", err),
	)

	return response.Unauthorized(c,
		domainerrors.ErrUnauthorized.ErrorCode(),
		domainerrors.ErrUnauthorized.Message(),
	)
}

// extractToken pulls the token out of the Authorization header. The header
// value is the scheme name and the token separated by a single space; a
// missing header or a header without a second field counts as missing.
func extractToken(c echo.Context) (string, error) {
	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return "", service.ErrTokenMissing
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], bearerScheme) || parts[1] == "" {
		return "", service.ErrTokenMissing
	}

	return parts[1], nil
}
