// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	authMiddleware "crm_backend/internals/middlewares/auth"
	routeDetails "crm_backend/internals/route/details"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	startTime = time.Now()

	log.Println("[INFO] Setting up BaseRoutes...")
	BaseRoutes(app, db)

	// ===================== AUTH =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	routeDetails.AuthRoutes(app, db)

	// ===================== CRM (JWT wajib) =====================
	log.Println("[INFO] Setting up CRM group...")
	crm := app.Group("/api/crm", authMiddleware.AuthMiddleware(db))
	routeDetails.CrmRoutes(crm, db)

	// ===================== ADMIN (JWT wajib + role di route) =====================
	log.Println("[INFO] Setting up ADMIN group...")
	admin := app.Group("/api/admin", authMiddleware.AuthMiddleware(db))
	routeDetails.UserRoutes(admin, db)
}
