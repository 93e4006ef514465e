package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	deliverycontext "accountd/internal/delivery/context"
	"accountd/internal/domain/entity"
	"accountd/internal/domain/service"
	mockservice "accountd/internal/mocks/service"
)

func newAuthTestContext(t *testing.T, authHeader string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/accounts", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func newTestAuthMiddleware(t *testing.T) (*AuthMiddleware, *mockservice.MockTokenService) {
	t.Helper()

	tokenSvc := mockservice.NewMockTokenService(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewAuthMiddleware(tokenSvc, logger), tokenSvc
}

func okHandler(called *bool) echo.HandlerFunc {
	return func(c echo.Context) error {
		*called = true

		return c.NoContent(http.StatusOK)
	}
}

func claimsFor(email string, role entity.Role) *service.Claims {
	return &service.Claims{
		Role:             role.String(),
		RegisteredClaims: jwt.RegisteredClaims{Subject: email},
	}
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	mw, _ := newTestAuthMiddleware(t)
	c, rec := newAuthTestContext(t, "")

	called := false
	err := mw.Authenticate(okHandler(&called))(c)

	require.NoError(t, err)
	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticate_WrongScheme(t *testing.T) {
	mw, _ := newTestAuthMiddleware(t)
	c, rec := newAuthTestContext(t, "Basic dXNlcjpwYXNz")

	called := false
	err := mw.Authenticate(okHandler(&called))(c)

	require.NoError(t, err)
	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticate_SchemeWithoutToken(t *testing.T) {
	mw, _ := newTestAuthMiddleware(t)
	c, rec := newAuthTestContext(t, "Bearer")

	called := false
	err := mw.Authenticate(okHandler(&called))(c)

	require.NoError(t, err)
	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticate_InvalidToken(t *testing.T) {
	mw, tokenSvc := newTestAuthMiddleware(t)
	c, rec := newAuthTestContext(t, "Bearer bad-token")

	tokenSvc.EXPECT().Verify("bad-token").Return(nil, service.ErrTokenSignatureInvalid)

	called := false
	err := mw.Authenticate(okHandler(&called))(c)

	require.NoError(t, err)
	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "UNAUTHORIZED")
}

func TestAuthenticate_ValidTokenAttachesClaims(t *testing.T) {
	mw, tokenSvc := newTestAuthMiddleware(t)
	c, rec := newAuthTestContext(t, "Bearer good-token")

	tokenSvc.EXPECT().Verify("good-token").
		Return(claimsFor("alice@test.com", entity.RoleStandard), nil)

	called := false
	err := mw.Authenticate(okHandler(&called))(c)

	require.NoError(t, err)
	assert.True(t, called)
	assert.Equal(t, http.StatusOK, rec.Code)

	claims := deliverycontext.GetClaims(c)
	require.NotNil(t, claims)
	assert.Equal(t, "alice@test.com", claims.Email())
}

func TestAuthenticate_SchemeIsCaseInsensitive(t *testing.T) {
	mw, tokenSvc := newTestAuthMiddleware(t)
	c, rec := newAuthTestContext(t, "bearer good-token")

	tokenSvc.EXPECT().Verify("good-token").
		Return(claimsFor("alice@test.com", entity.RoleStandard), nil)

	called := false
	err := mw.Authenticate(okHandler(&called))(c)

	require.NoError(t, err)
	assert.True(t, called)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireAdmin_NoClaims(t *testing.T) {
	mw, _ := newTestAuthMiddleware(t)
	c, rec := newAuthTestContext(t, "")

	called := false
	err := mw.RequireAdmin(okHandler(&called))(c)

	require.NoError(t, err)
	assert.False(t, called)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireAdmin_StandardRole(t *testing.T) {
	mw, _ := newTestAuthMiddleware(t)
	c, rec := newAuthTestContext(t, "")
	deliverycontext.SetClaims(c, claimsFor("alice@test.com", entity.RoleStandard))

	called := false
	err := mw.RequireAdmin(okHandler(&called))(c)

	require.NoError(t, err)
	assert.False(t, called)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "ADMIN_ONLY")
}

func TestRequireAdmin_AdminRole(t *testing.T) {
	mw, _ := newTestAuthMiddleware(t)
	c, rec := newAuthTestContext(t, "")
	deliverycontext.SetClaims(c, claimsFor("admin@test.com", entity.RoleAdmin))

	called := false
	err := mw.RequireAdmin(okHandler(&called))(c)

	require.NoError(t, err)
	assert.True(t, called)
	assert.Equal(t, http.StatusOK, rec.Code)
}
