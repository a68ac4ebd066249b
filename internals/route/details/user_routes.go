package details

import (
	userRoutes "crm_backend/internals/features/users/user/routes"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// UserRoutes: manajemen user (admin) di bawah /api/admin.
func UserRoutes(admin fiber.Router, db *gorm.DB) {
	userRoutes.UserAdminRoutes(admin, db)
}
