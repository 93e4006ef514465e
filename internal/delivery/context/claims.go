package context

import (
	"github.com/labstack/echo/v4"

	"accountd/internal/domain/service"
)

// KeyClaims is the key for storing the verified token claims in echo.Context.
const KeyClaims ContextKey = "claims"

// SetClaims attaches the verified claim set to the request after the
// authentication middleware succeeds.
func SetClaims(c echo.Context, claims *service.Claims) {
	c.Set(string(KeyClaims), claims)
}

// GetClaims extracts the verified claim set from echo.Context.
// It returns nil when the request was not authenticated.
func GetClaims(c echo.Context) *service.Claims {
	if claims, ok := c.Get(string(KeyClaims)).(*service.Claims); ok {
		return claims
	}

	return nil
}
