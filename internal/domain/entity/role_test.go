package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleFromString(t *testing.T) {
	assert.Equal(t, RoleAdmin, RoleFromString("admin"))
	assert.Equal(t, RoleStandard, RoleFromString("standard"))
	assert.Equal(t, RoleStandard, RoleFromString("something-else"))
	assert.Equal(t, RoleStandard, RoleFromString(""))
}

func TestRoleIsValid(t *testing.T) {
	assert.True(t, RoleStandard.IsValid())
	assert.True(t, RoleAdmin.IsValid())
	assert.False(t, Role("owner").IsValid())
}

func TestAccountIsAdmin(t *testing.T) {
	admin := Account{Role: RoleAdmin}
	standard := Account{Role: RoleStandard}

	assert.True(t, admin.IsAdmin())
	assert.False(t, standard.IsAdmin())
}
