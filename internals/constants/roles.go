package constants

import "fmt"

// Nama role yang dikenal sistem (disimpan di klaim JWT `role`).
const (
	RoleEnterprise = "enterprise"
	RoleInvestor   = "investor"
	RoleAdmin      = "admin"
	RoleSuperadmin = "superadmin"
)

// Template pesan error role
const (
	ErrOnlyAdminsCanAccess     = "❌ Hanya admin yang boleh mengakses fitur %s."
	ErrOnlyEnterpriseCanAccess = "❌ Hanya akun enterprise yang boleh mengakses fitur %s."
)

// Fungsi helper untuk menghasilkan pesan error dinamis
func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorEnterprise(feature string) string {
	return fmt.Sprintf(ErrOnlyEnterpriseCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleEnterprise,
		RoleInvestor,
		RoleAdmin,
		RoleSuperadmin,
	}

	AdminAndAbove = []string{
		RoleAdmin,
		RoleSuperadmin,
	}

	EnterpriseOnly = []string{
		RoleEnterprise,
	}
)

// IsAdminRole: admin atau superadmin (dipakai guard workflow juga, bukan cuma routing).
func IsAdminRole(role string) bool {
	return role == RoleAdmin || role == RoleSuperadmin
}
