package validator

import (
	"net/http"
	"testing"

	playground "github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type registerPayload struct {
	Username string `validate:"required,alphanum,min=3,max=30"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6,max=30"`
}

func validateAndDescribe(t *testing.T, payload any) (int, string) {
	t.Helper()

	err := New().Validate(payload)
	require.Error(t, err)

	var httpErr *echo.HTTPError
	require.ErrorAs(t, err, &httpErr)
	message, ok := httpErr.Message.(string)
	require.True(t, ok)

	return httpErr.Code, message
}

func TestValidate_Passes(t *testing.T) {
	err := New().Validate(&registerPayload{
		Username: "alice",
		Email:    "alice@test.com",
		Password: "secret1",
	})

	assert.NoError(t, err)
}

func TestValidate_DescribesFirstViolation(t *testing.T) {
	tests := []struct {
		name    string
		payload registerPayload
		message string
	}{
		{
			name:    "missing username",
			payload: registerPayload{Email: "alice@test.com", Password: "secret1"},
			message: "Username is required",
		},
		{
			name:    "non alphanumeric username",
			payload: registerPayload{Username: "al ice", Email: "alice@test.com", Password: "secret1"},
			message: "Username must contain only letters and numbers",
		},
		{
			name:    "bad email",
			payload: registerPayload{Username: "alice", Email: "not-an-email", Password: "secret1"},
			message: "Email must be a valid email address",
		},
		{
			name:    "short password",
			payload: registerPayload{Username: "alice", Email: "alice@test.com", Password: "abc"},
			message: "Password must be at least 6 characters",
		},
		{
			name:    "long password",
			payload: registerPayload{Username: "alice", Email: "alice@test.com", Password: "0123456789012345678901234567890"},
			message: "Password must be at most 30 characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, message := validateAndDescribe(t, &tt.payload)
			assert.Equal(t, http.StatusBadRequest, code)
			assert.Equal(t, tt.message, message)
		})
	}
}

func TestDescribe_SeesThroughWrapping(t *testing.T) {
	err := playground.New(playground.WithRequiredStructEnabled()).Struct(&registerPayload{})
	require.Error(t, err)

	assert.Equal(t, "Username is required", describe(errors.Wrap(err, "validate payload")))
	assert.Equal(t, "boom", describe(errors.New("boom")))
}
