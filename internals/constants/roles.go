package constants

import "fmt"

const (
	RoleUser         = "user"
	RoleSales        = "sales"
	RoleSalesManager = "sales_manager"
	RoleAdmin        = "admin"
)

// Template pesan error role
const (
	ErrOnlyManagersCanAccess = "❌ Hanya admin atau sales manager yang boleh mengakses fitur %s."
	ErrOnlySalesCanAccess    = "❌ Hanya tim sales yang boleh mengakses fitur %s."
)

func RoleErrorManager(feature string) string {
	return fmt.Sprintf(ErrOnlyManagersCanAccess, feature)
}

func RoleErrorSales(feature string) string {
	return fmt.Sprintf(ErrOnlySalesCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleUser,
		RoleSales,
		RoleSalesManager,
		RoleAdmin,
	}

	SalesAndAbove = []string{
		RoleSales,
		RoleSalesManager,
		RoleAdmin,
	}

	ManagerAndAbove = []string{
		RoleSalesManager,
		RoleAdmin,
	}
)

// IsManagerOrAbove: role yang boleh baca/tulis semua data CRM Sales.
func IsManagerOrAbove(role string) bool {
	for _, r := range ManagerAndAbove {
		if r == role {
			return true
		}
	}
	return false
}
