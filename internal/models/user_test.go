package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"folio-backend/internal/models"
)

func TestUserRoleIsPrivileged(t *testing.T) {
	assert.True(t, models.RoleAdmin.IsPrivileged())
	assert.True(t, models.RoleLibrarian.IsPrivileged())
	assert.False(t, models.RoleMember.IsPrivileged())
}

func TestUserRoleIsValid(t *testing.T) {
	assert.True(t, models.RoleAdmin.IsValid())
	assert.True(t, models.RoleLibrarian.IsValid())
	assert.True(t, models.RoleMember.IsValid())
	assert.False(t, models.UserRole("superadmin").IsValid())
	assert.False(t, models.UserRole("").IsValid())
}
