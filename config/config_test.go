package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testYAML = `
env:
  env: test
  serviceName: accountd
  debug: true
  log:
    pretty: true
    level: debug
http:
  port: 8080
auth:
  secret: file-secret
  tokenTTL: 30m
  adminEmail: admin@test.com
  allowedEmailDomains:
    - com
    - net
`

func writeTestConfig(t *testing.T) {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(testYAML), 0o600))
	t.Chdir(dir)
}

func TestLoadWithEnv_FromFile(t *testing.T) {
	writeTestConfig(t)

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)

	assert.Equal(t, "test", cfg.Env.Env)
	assert.Equal(t, "accountd", cfg.Env.ServiceName)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	require.NotNil(t, cfg.Auth)
	assert.Equal(t, "file-secret", cfg.Auth.Secret)
	assert.Equal(t, 30*time.Minute, cfg.Auth.TokenTTL)
	assert.Equal(t, "admin@test.com", cfg.Auth.AdminEmail)
	assert.Equal(t, []string{"com", "net"}, cfg.Auth.AllowedEmailDomains)
}

func TestLoadWithEnv_EnvOverridesFile(t *testing.T) {
	writeTestConfig(t)
	t.Setenv("AUTH_SECRET", "env-secret")

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)

	require.NotNil(t, cfg.Auth)
	assert.Equal(t, "env-secret", cfg.Auth.Secret)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("config")
	assert.Error(t, err)
}

func TestAuthConfig_ApplyDefaults(t *testing.T) {
	auth := &AuthConfig{}
	auth.ApplyDefaults()

	assert.Equal(t, defaultBcryptCost, auth.BcryptCost)
	assert.Equal(t, defaultTokenTTL, auth.TokenTTL)
	assert.Equal(t, defaultAllowedEmailDomains, auth.AllowedEmailDomains)
}

func TestAuthConfig_ApplyDefaultsKeepsExplicitValues(t *testing.T) {
	auth := &AuthConfig{
		BcryptCost:          12,
		TokenTTL:            time.Hour,
		AllowedEmailDomains: []string{"org"},
	}
	auth.ApplyDefaults()

	assert.Equal(t, 12, auth.BcryptCost)
	assert.Equal(t, time.Hour, auth.TokenTTL)
	assert.Equal(t, []string{"org"}, auth.AllowedEmailDomains)
}
