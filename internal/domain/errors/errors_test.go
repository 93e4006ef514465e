package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"accountd/internal/errors"
)

func TestWithDetailsKeepsIdentity(t *testing.T) {
	detailed := ErrValidationFailed.WithDetails("email domain must end in one of: com, net")

	assert.ErrorIs(t, detailed, ErrValidationFailed)
	assert.Equal(t, "email domain must end in one of: com, net", detailed.Details())
	assert.Equal(t, ErrValidationFailed.ErrorCode(), detailed.ErrorCode())
}

func TestWrapMessageKeepsIdentity(t *testing.T) {
	wrapped := ErrDuplicateAccount.WrapMessage("registration rejected by unique email index")

	assert.ErrorIs(t, wrapped, ErrDuplicateAccount)

	var appErr AppError
	require.ErrorAs(t, wrapped, &appErr)
	assert.Equal(t, ErrDuplicateAccount.ErrorCode(), appErr.ErrorCode())
}

func TestIsDistinguishesErrorCodes(t *testing.T) {
	assert.NotErrorIs(t, ErrAccountNotFound, ErrDuplicateAccount)
	assert.NotErrorIs(t, ErrValidationFailed.WithDetails("x"), ErrNoUpdateFields)
}

func TestNewStorageErrorKeepsCauseForLogs(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewStorageError(cause, "failed to create account")

	assert.ErrorIs(t, err, ErrStorageFailure)

	var appErr AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, ErrStorageFailure.Message(), appErr.Message())
	assert.Equal(t, "failed to create account", appErr.Details())
	assert.Contains(t, err.Error(), "connection refused")
}
