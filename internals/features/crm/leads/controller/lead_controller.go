package controller

import (
	"strings"

	"crm_backend/internals/features/crm/leads/model"
	"crm_backend/internals/features/crm/leads/service"
	"crm_backend/internals/features/crm/store"
	helper "crm_backend/internals/helpers"
	"crm_backend/internals/helpers/i18n"

	"github.com/gofiber/fiber/v2"
)

type LeadController struct {
	Leads *service.LeadLookupService
}

func NewLeadController(leads *service.LeadLookupService) *LeadController {
	return &LeadController{Leads: leads}
}

// =============================
// 📄 GET /crm/sales/:sales_id/leads
// =============================
func (ctrl *LeadController) GetLinkedLeads(c *fiber.Ctx) error {
	salesID := strings.TrimSpace(c.Params("sales_id"))
	if salesID == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, i18n.T(helper.Lang(c), i18n.MsgInvalidSalesID))
	}

	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromAppError(c, err)
	}
	principal := store.Principal{UserID: userID.String(), Role: helper.GetUserRole(c)}

	rows, err := ctrl.Leads.GetLinkedLeads(c.UserContext(), principal, salesID)
	if err != nil {
		return helper.FromAppError(c, err)
	}
	// urutan key mengikuti LinkedLeadFields
	return helper.JsonList(c, i18n.T(helper.Lang(c), i18n.MsgLeadsFetched), store.Ordered(rows, model.LinkedLeadFields), nil)
}
