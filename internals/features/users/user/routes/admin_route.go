package routes

import (
	"crm_backend/internals/constants"
	userController "crm_backend/internals/features/users/user/controller"
	authMiddleware "crm_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// UserAdminRoutes: router sudah dilindungi AuthMiddleware.
func UserAdminRoutes(app fiber.Router, db *gorm.DB) {
	userCtrl := userController.NewUserController(db)

	// 🔐 /users – hanya admin
	users := app.Group("/users",
		authMiddleware.OnlyRoles("❌ Hanya admin yang boleh mengelola user.", constants.RoleAdmin),
	)

	users.Get("/", userCtrl.GetUsers)
	users.Post("/", userCtrl.CreateUser)
	users.Patch("/:id", userCtrl.UpdateUser)
}
