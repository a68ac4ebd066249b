package controller

import (
	"time"

	"crm_backend/internals/features/users/auth/dto"
	"crm_backend/internals/features/users/auth/service"
	authRepo "crm_backend/internals/features/users/auth/repository"
	helper "crm_backend/internals/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var validateLogin = validator.New()

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// =======================
// 🔐 POST /auth/login
// =======================
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var body dto.LoginRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	if err := validateLogin.Struct(&body); err != nil {
		return helper.ValidationError(c, err)
	}

	resp, err := service.Login(c.UserContext(), ac.DB, body)
	if err != nil {
		return helper.FromAppError(c, err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    resp.AccessToken,
		HTTPOnly: true,
		Secure:   true,
		SameSite: "None",
		Path:     "/",
		Expires:  resp.ExpiresAt,
	})
	return helper.JsonOK(c, "Login berhasil", resp)
}

// =======================
// 👤 GET /auth/me
// =======================
func (ac *AuthController) Me(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromAppError(c, err)
	}

	user, err := authRepo.FindUserByID(c.UserContext(), ac.DB, userID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}
	return helper.JsonOK(c, "ok", dto.LoginUser{
		ID:       user.ID.String(),
		UserName: user.UserName,
		FullName: user.FullName,
		Email:    user.Email,
		Role:     user.Role,
	})
}

// =======================
// 🚪 POST /auth/logout (hapus cookie)
// =======================
func (ac *AuthController) Logout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    "",
		HTTPOnly: true,
		Secure:   true,
		SameSite: "None",
		Path:     "/",
		Expires:  time.Unix(0, 0),
	})
	return helper.JsonOK(c, "Logout berhasil", nil)
}
