package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleForEmail(t *testing.T) {
	t.Setenv("OWNER_EMAILS", "boss@almanar.org")
	t.Setenv("CHARITY_ADMIN_EMAILS", "zakat@almanar.org, Sadaqah@Almanar.org")
	t.Setenv("DAWA_ADMIN_EMAILS", "")

	assert.Equal(t, RoleOwner, RoleForEmail("boss@almanar.org"))
	assert.Equal(t, RoleCharityAdmin, RoleForEmail("zakat@almanar.org"))
	// matching is case-insensitive and whitespace-tolerant
	assert.Equal(t, RoleCharityAdmin, RoleForEmail("  SADAQAH@almanar.org "))
	assert.Equal(t, RoleMember, RoleForEmail("stranger@example.com"))
}

func TestIsAdminRole(t *testing.T) {
	assert.True(t, IsAdminRole(RoleOwner))
	assert.True(t, IsAdminRole(RoleAcademicAdmin))
	assert.False(t, IsAdminRole(RoleMember))
	assert.False(t, IsAdminRole("random"))
}
