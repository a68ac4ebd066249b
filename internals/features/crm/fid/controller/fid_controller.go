package controller

import (
	"crm_backend/internals/features/crm/fid/service"
	helper "crm_backend/internals/helpers"
	"crm_backend/internals/helpers/i18n"

	"github.com/gofiber/fiber/v2"
)

type FidController struct {
	Proxy *service.FidProxyService
}

func NewFidController(proxy *service.FidProxyService) *FidController {
	return &FidController{Proxy: proxy}
}

// =============================
// 🔁 GET /crm/fid (relay webhook FID)
// =============================
func (ctrl *FidController) GetFid(c *fiber.Ctx) error {
	list, err := ctrl.Proxy.Fetch(c.UserContext())
	if err != nil {
		return helper.FromAppError(c, err)
	}
	return helper.JsonList(c, i18n.T(helper.Lang(c), i18n.MsgFidFetched), list, nil)
}
