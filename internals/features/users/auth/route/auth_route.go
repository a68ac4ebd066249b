// file: internals/features/users/auth/route/auth_route.go
package route

import (
	controller "crm_backend/internals/features/users/auth/controller"
	rateLimiter "crm_backend/internals/middlewares"
	authMiddleware "crm_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	authController := controller.NewAuthController(db)

	// Base: /api/auth
	baseAuth := app.Group("/api/auth")

	// 🔓 Public
	baseAuth.Post("/login", rateLimiter.LoginRateLimiter(), authController.Login)
	baseAuth.Post("/logout", authController.Logout)

	// 🔐 Protected
	baseAuth.Get("/me", authMiddleware.AuthMiddleware(db), authController.Me)
}
