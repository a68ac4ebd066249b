package route

import (
	"crm_backend/internals/features/crm/leads/controller"
	"crm_backend/internals/features/crm/leads/service"
	"crm_backend/internals/features/crm/store"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// LeadRoutes: router sudah dilindungi AuthMiddleware.
func LeadRoutes(router fiber.Router, db *gorm.DB) {
	leadCtrl := controller.NewLeadController(
		service.NewLeadLookupService(store.NewGormRecordStore(db)),
	)

	sales := router.Group("/sales")
	sales.Get("/:sales_id/leads", leadCtrl.GetLinkedLeads) // 📄 Lead milik anggota sales
}
