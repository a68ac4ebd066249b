package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"gorm.io/gorm"

	"crm_backend/internals/configs"
	"crm_backend/internals/features/users/auth/dto"
	authHelper "crm_backend/internals/features/users/auth/helper"
	authRepo "crm_backend/internals/features/users/auth/repository"
	userModel "crm_backend/internals/features/users/user/model"
)

/* ==========================
   Const
========================== */

const accessTTLDefault = 24 * time.Hour

var errInvalidCredentials = fiber.NewError(fiber.StatusUnauthorized, "Email atau Password salah")

func nowUTC() time.Time { return time.Now().UTC() }

func getJWTSecret() (string, error) {
	secret := strings.TrimSpace(configs.JWTSecret)
	if secret == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "Missing JWT Secret")
	}
	return secret, nil
}

func accessTTL() time.Duration {
	hours := configs.GetEnvInt("ACCESS_TOKEN_TTL_HOURS", int(accessTTLDefault/time.Hour))
	if hours <= 0 {
		return accessTTLDefault
	}
	return time.Duration(hours) * time.Hour
}

/* ==========================
   LOGIN (email + password)
========================== */

func Login(ctx context.Context, db *gorm.DB, input dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := authRepo.FindUserByEmail(ctx, db, input.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errInvalidCredentials
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, fiber.NewError(fiber.StatusForbidden, "Akun Anda telah dinonaktifkan. Hubungi admin.")
	}
	if err := authHelper.CheckPasswordHash(user.Password, input.Password); err != nil {
		return nil, errInvalidCredentials
	}

	return issueAccessToken(*user, nowUTC())
}

/* ==========================
   ISSUE TOKEN + Response
========================== */

func buildAccessClaims(user userModel.UserModel, now time.Time, exp time.Time) jwt.MapClaims {
	return jwt.MapClaims{
		"typ":       "access",
		"sub":       user.ID.String(),
		"id":        user.ID.String(),
		"user_name": user.UserName,
		"full_name": user.FullName,
		"role":      user.Role,
		"iat":       now.Unix(),
		"exp":       exp.Unix(),
	}
}

func issueAccessToken(user userModel.UserModel, now time.Time) (*dto.LoginResponse, error) {
	secret, err := getJWTSecret()
	if err != nil {
		return nil, err
	}
	exp := now.Add(accessTTL())

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, buildAccessClaims(user, now, exp))
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		AccessToken: signed,
		ExpiresAt:   exp,
		User: dto.LoginUser{
			ID:       user.ID.String(),
			UserName: user.UserName,
			FullName: user.FullName,
			Email:    user.Email,
			Role:     user.Role,
		},
	}, nil
}
