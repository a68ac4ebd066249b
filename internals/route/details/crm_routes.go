package details

import (
	fidRoute "crm_backend/internals/features/crm/fid/route"
	leadRoute "crm_backend/internals/features/crm/leads/route"
	salesRoute "crm_backend/internals/features/crm/sales/route"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CrmRoutes: semua route di bawah /api/crm (sudah lewat AuthMiddleware).
func CrmRoutes(crm fiber.Router, db *gorm.DB) {
	salesRoute.SalesRoutes(crm, db)
	leadRoute.LeadRoutes(crm, db)
	fidRoute.FidRoutes(crm, db)
}
