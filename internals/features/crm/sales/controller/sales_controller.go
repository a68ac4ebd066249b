package controller

import (
	"errors"
	"strings"

	"crm_backend/internals/constants"
	"crm_backend/internals/features/crm/sales/dto"
	"crm_backend/internals/features/crm/sales/model"
	"crm_backend/internals/features/crm/store"
	helper "crm_backend/internals/helpers"
	"crm_backend/internals/helpers/apperror"
	"crm_backend/internals/helpers/i18n"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var validateSales = validator.New()

type SalesController struct {
	DB    *gorm.DB
	Store store.RecordStore
}

func NewSalesController(db *gorm.DB, s store.RecordStore) *SalesController {
	return &SalesController{DB: db, Store: s}
}

func principalFrom(c *fiber.Ctx) (store.Principal, error) {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return store.Principal{}, err
	}
	return store.Principal{UserID: userID.String(), Role: helper.GetUserRole(c)}, nil
}

// =======================
// 🧾 GET /crm/sales/list-view
// =======================
func (ctrl *SalesController) GetListView(c *fiber.Ctx) error {
	return helper.JsonOK(c, "ok", model.DefaultListData())
}

// =======================
// 📄 GET /crm/sales?page=&per_page=&cabang=
// Manager: semua; selain itu hanya record miliknya.
// =======================
func (ctrl *SalesController) List(c *fiber.Ctx) error {
	p, err := principalFrom(c)
	if err != nil {
		return helper.FromAppError(c, err)
	}
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.WithContext(c.UserContext()).
		Model(&model.SalesModel{}).
		Scopes(model.ScopeByCabang(strings.TrimSpace(c.Query("cabang"))))
	if !constants.IsManagerOrAbove(p.Role) {
		q = q.Scopes(model.ScopeByUser(p.UserID))
	}
	q = q.Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.FromAppError(c, err)
	}

	var rows []model.SalesModel
	if err := q.Order("modified DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.FromAppError(c, err)
	}

	pg := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage, len(rows))
	return helper.JsonList(c, i18n.T(helper.Lang(c), i18n.MsgSalesListLoaded), dto.ToSalesDTOs(rows), &pg)
}

// =======================
// 🔍 GET /crm/sales/:sales_id
// =======================
func (ctrl *SalesController) GetByID(c *fiber.Ctx) error {
	salesID := strings.TrimSpace(c.Params("sales_id"))
	p, err := principalFrom(c)
	if err != nil {
		return helper.FromAppError(c, err)
	}

	allowed, err := ctrl.Store.CheckPermission(c.UserContext(), p, constants.DocTypeSales, constants.ActionRead, salesID)
	if err != nil {
		return helper.FromAppError(c, err)
	}
	if !allowed {
		return helper.FromAppError(c, &apperror.AuthorizationError{
			Doctype: constants.DocTypeSales, Action: constants.ActionRead, Target: salesID,
		})
	}

	row, err := ctrl.find(c, salesID)
	if err != nil {
		return helper.FromAppError(c, err)
	}
	return helper.JsonOK(c, "ok", dto.ToSalesDTO(*row))
}

// =======================
// ➕ POST /crm/sales (admin/sales_manager)
// =======================
func (ctrl *SalesController) Create(c *fiber.Ctx) error {
	var body dto.CreateSalesRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateSales.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	rec := body.ToModel()
	if err := ctrl.ensurePincab(c, rec.Name, rec.Pincab); err != nil {
		return helper.FromAppError(c, err)
	}

	// BeforeSave mengisi nama dari user kalau kosong
	if err := ctrl.DB.WithContext(c.UserContext()).Create(&rec).Error; err != nil {
		return helper.FromAppError(c, err)
	}
	return helper.JsonCreated(c, i18n.T(helper.Lang(c), i18n.MsgSalesCreated), dto.ToSalesDTO(rec))
}

// =======================
// ✏️ PATCH /crm/sales/:sales_id (admin/sales_manager)
// =======================
func (ctrl *SalesController) Update(c *fiber.Ctx) error {
	salesID := strings.TrimSpace(c.Params("sales_id"))

	var body dto.UpdateSalesRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateSales.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	row, err := ctrl.find(c, salesID)
	if err != nil {
		return helper.FromAppError(c, err)
	}
	body.Apply(row)

	if err := ctrl.ensurePincab(c, row.Name, row.Pincab); err != nil {
		return helper.FromAppError(c, err)
	}
	if err := ctrl.DB.WithContext(c.UserContext()).Save(row).Error; err != nil {
		return helper.FromAppError(c, err)
	}
	return helper.JsonUpdated(c, i18n.T(helper.Lang(c), i18n.MsgSalesUpdated), dto.ToSalesDTO(*row))
}

func (ctrl *SalesController) find(c *fiber.Ctx, salesID string) (*model.SalesModel, error) {
	var row model.SalesModel
	err := ctrl.DB.WithContext(c.UserContext()).First(&row, "name = ?", salesID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fiber.NewError(fiber.StatusNotFound, i18n.T(helper.Lang(c), i18n.MsgSalesNotFound))
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// ensurePincab: pincab harus menunjuk CRM Sales lain yang ada.
func (ctrl *SalesController) ensurePincab(c *fiber.Ctx, self string, pincab *string) error {
	if pincab == nil {
		return nil
	}
	if *pincab == self {
		return &apperror.ValidationError{Field: "pincab", Reason: *pincab}
	}
	var n int64
	if err := ctrl.DB.WithContext(c.UserContext()).
		Model(&model.SalesModel{}).
		Where("name = ?", *pincab).
		Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		return &apperror.NotFoundError{Doctype: constants.DocTypeSales, Name: *pincab}
	}
	return nil
}
