package constants

import (
	"fmt"
	"strings"

	"almanar_backend/internals/configs"
)

const (
	RoleOwner         = "owner"
	RoleAcademicAdmin = "admin_academic"
	RoleQiratAdmin    = "admin_qirat"
	RoleCharityAdmin  = "admin_charity"
	RoleDawaAdmin     = "admin_dawa"
	RoleMember        = "member"
)

// Role error message templates
const (
	ErrOnlyOwnersCanAccess = "❌ Only the owner may access %s."
	ErrOnlyAdminsCanAccess = "❌ Only sector admins or the owner may access %s."
)

func RoleErrorOwner(feature string) string {
	return fmt.Sprintf(ErrOnlyOwnersCanAccess, feature)
}

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleOwner,
		RoleAcademicAdmin,
		RoleQiratAdmin,
		RoleCharityAdmin,
		RoleDawaAdmin,
		RoleMember,
	}

	AdminRoles = []string{
		RoleOwner,
		RoleAcademicAdmin,
		RoleQiratAdmin,
		RoleCharityAdmin,
		RoleDawaAdmin,
	}
)

// env keys holding the comma-separated email allow-list per role
var roleEnvKeys = []struct {
	role string
	key  string
}{
	{RoleOwner, "OWNER_EMAILS"},
	{RoleAcademicAdmin, "ACADEMIC_ADMIN_EMAILS"},
	{RoleQiratAdmin, "QIRAT_ADMIN_EMAILS"},
	{RoleCharityAdmin, "CHARITY_ADMIN_EMAILS"},
	{RoleDawaAdmin, "DAWA_ADMIN_EMAILS"},
}

// RoleForEmail maps a signed-in email to its dashboard role via the static
// allow-lists in ENV. Unknown emails get RoleMember (no admin dashboard).
func RoleForEmail(email string) string {
	email = strings.ToLower(strings.TrimSpace(email))
	for _, re := range roleEnvKeys {
		for _, allowed := range configs.AdminEmails(re.key) {
			if email == allowed {
				return re.role
			}
		}
	}
	return RoleMember
}

func IsAdminRole(role string) bool {
	for _, r := range AdminRoles {
		if r == role {
			return true
		}
	}
	return false
}
