package route

import (
	"crm_backend/internals/configs"
	errorLogService "crm_backend/internals/features/crm/error_logs/service"
	"crm_backend/internals/features/crm/fid/controller"
	"crm_backend/internals/features/crm/fid/service"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func FidRoutes(router fiber.Router, db *gorm.DB) {
	proxy := service.NewFidProxyService(
		configs.LoadFidProxyConfig(),
		errorLogService.NewRecorder(db),
	)
	fidCtrl := controller.NewFidController(proxy)

	router.Get("/fid", fidCtrl.GetFid) // 🔁 Data FID dari webhook
}
