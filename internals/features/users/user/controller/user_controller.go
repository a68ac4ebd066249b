package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	authHelper "crm_backend/internals/features/users/auth/helper"
	"crm_backend/internals/features/users/user/dto"
	"crm_backend/internals/features/users/user/model"
	helper "crm_backend/internals/helpers"
	"crm_backend/internals/helpers/apperror"
)

var validateUser = validator.New()

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

// GET /api/users?q=&page=&per_page=
func (uc *UserController) GetUsers(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := uc.DB.WithContext(c.UserContext()).Model(&model.UserModel{})
	if s := strings.TrimSpace(c.Query("q")); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		q = q.Where("LOWER(user_name) LIKE ? OR LOWER(email) LIKE ? OR LOWER(full_name) LIKE ?", like, like, like)
	}
	q = q.Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.FromAppError(c, err)
	}

	var users []model.UserModel
	if err := q.Order("created_at DESC").Limit(paging.Limit).Offset(paging.Offset).Find(&users).Error; err != nil {
		return helper.FromAppError(c, err)
	}

	pg := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage, len(users))
	return helper.JsonList(c, "Users fetched successfully", dto.FromModels(users), &pg)
}

// POST /api/users
func (uc *UserController) CreateUser(c *fiber.Ctx) error {
	var body dto.CreateUserRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	body.Normalize()
	if err := validateUser.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	hashed, err := authHelper.HashPassword(body.Password)
	if err != nil {
		return helper.FromAppError(c, err)
	}

	user := body.ToModel(hashed)
	if err := uc.DB.WithContext(c.UserContext()).Create(user).Error; err != nil {
		return helper.FromAppError(c, err)
	}
	return helper.JsonCreated(c, "User created successfully", dto.FromModel(*user))
}

// PATCH /api/users/:id
func (uc *UserController) UpdateUser(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid user ID format")
	}

	var body dto.UpdateUserRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	if err := validateUser.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}
	// full_name jadi default nama CRM Sales, tidak boleh dikosongkan
	if body.FullName != nil && strings.TrimSpace(*body.FullName) == "" {
		return helper.FromAppError(c, &apperror.ValidationError{Field: "full_name", Reason: "kosong"})
	}

	var hashed *string
	if body.Password != nil {
		h, err := authHelper.HashPassword(*body.Password)
		if err != nil {
			return helper.FromAppError(c, err)
		}
		hashed = &h
	}

	var user model.UserModel
	db := uc.DB.WithContext(c.UserContext())
	if err := db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User not found")
		}
		return helper.FromAppError(c, err)
	}

	if updates := body.ToUpdates(hashed); len(updates) > 0 {
		if err := db.Model(&user).Updates(updates).Error; err != nil {
			return helper.FromAppError(c, err)
		}
		if err := db.First(&user, "id = ?", id).Error; err != nil {
			return helper.FromAppError(c, err)
		}
	}
	return helper.JsonUpdated(c, "User updated successfully", dto.FromModel(user))
}
