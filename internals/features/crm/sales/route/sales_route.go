package route

import (
	"crm_backend/internals/constants"
	"crm_backend/internals/features/crm/sales/controller"
	"crm_backend/internals/features/crm/store"
	authMiddleware "crm_backend/internals/middlewares/auth"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SalesRoutes: router sudah dilindungi AuthMiddleware.
func SalesRoutes(router fiber.Router, db *gorm.DB) {
	salesCtrl := controller.NewSalesController(db, store.NewGormRecordStore(db))

	onlyManagers := authMiddleware.OnlyRolesSlice(constants.RoleErrorManager("data sales"), constants.ManagerAndAbove)
	onlySales := authMiddleware.OnlyRolesSlice(constants.RoleErrorSales("data sales"), constants.SalesAndAbove)

	sales := router.Group("/sales")
	sales.Get("/list-view", salesCtrl.GetListView)            // 🧾 Descriptor list view
	sales.Get("/", onlySales, salesCtrl.List)                 // 📄 Daftar (paginated)
	sales.Get("/:sales_id", salesCtrl.GetByID)                // 🔍 Detail (cek permission)
	sales.Post("/", onlyManagers, salesCtrl.Create)           // ➕ Buat
	sales.Patch("/:sales_id", onlyManagers, salesCtrl.Update) // ✏️ Ubah
}
