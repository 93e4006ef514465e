package auth

import (
	"strings"
	"testing"
	"time"

	"accountd/config"
	"accountd/internal/domain/entity"
	"accountd/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenService(t *testing.T, ttl time.Duration) service.TokenService {
	t.Helper()

	cfg := &config.Config{Auth: &config.AuthConfig{
		Secret:   "test-secret",
		TokenTTL: ttl,
	}}

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{Auth: &config.AuthConfig{}})

	assert.Error(t, err)
}

func TestJWTService_IssueAndVerify(t *testing.T) {
	svc := newTestTokenService(t, time.Minute)

	token, err := svc.Issue("alice@test.com", entity.RoleStandard)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "alice@test.com", claims.Email())
	assert.Equal(t, entity.RoleStandard, claims.AccountRole())
	require.NotNil(t, claims.ExpiresAt)
	assert.True(t, claims.ExpiresAt.After(time.Now()))
}

func TestJWTService_VerifyCarriesAdminRole(t *testing.T) {
	svc := newTestTokenService(t, time.Minute)

	token, err := svc.Issue("admin@test.com", entity.RoleAdmin)
	require.NoError(t, err)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, claims.AccountRole())
}

func TestJWTService_TamperedSignature(t *testing.T) {
	svc := newTestTokenService(t, time.Minute)

	token, err := svc.Issue("alice@test.com", entity.RoleStandard)
	require.NoError(t, err)

	// Flip a byte in the signature segment.
	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	_, err = svc.Verify(tampered)
	assert.ErrorIs(t, err, service.ErrTokenSignatureInvalid)
}

func TestJWTService_WrongSecret(t *testing.T) {
	svc := newTestTokenService(t, time.Minute)

	otherCfg := &config.Config{Auth: &config.AuthConfig{
		Secret:   "another-secret",
		TokenTTL: time.Minute,
	}}
	other, err := NewJWTService(otherCfg)
	require.NoError(t, err)

	token, err := other.Issue("alice@test.com", entity.RoleStandard)
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, service.ErrTokenSignatureInvalid)
}

func TestJWTService_Expired(t *testing.T) {
	svc := newTestTokenService(t, -time.Minute)

	token, err := svc.Issue("alice@test.com", entity.RoleStandard)
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, service.ErrTokenExpired)
}

func TestJWTService_Malformed(t *testing.T) {
	svc := newTestTokenService(t, time.Minute)

	_, err := svc.Verify("not-a-token")
	assert.ErrorIs(t, err, service.ErrTokenMalformed)
}
