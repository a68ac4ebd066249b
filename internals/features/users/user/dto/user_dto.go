package dto

import (
	"strings"
	"time"

	uModel "crm_backend/internals/features/users/user/model"
)

/* =======================================================
   REQUEST DTOs
   ======================================================= */

// CreateUserRequest: create by admin
type CreateUserRequest struct {
	UserName string `json:"user_name" validate:"required,min=3,max=50"`
	FullName string `json:"full_name" validate:"omitempty,max=140"`
	Email    string `json:"email"     validate:"required,email,max=255"`
	Password string `json:"password"  validate:"required,min=8"`
	Role     string `json:"role"      validate:"omitempty,oneof=user sales sales_manager admin"`
}

// Normalize: trim & normalisasi dasar
func (r *CreateUserRequest) Normalize() {
	r.UserName = strings.TrimSpace(r.UserName)
	r.FullName = strings.TrimSpace(r.FullName)
	r.Email = strings.TrimSpace(strings.ToLower(r.Email))
	r.Role = strings.ToLower(strings.TrimSpace(r.Role))
}

// ToModel: password sudah di-hash oleh controller
func (r *CreateUserRequest) ToModel(hashedPassword string) *uModel.UserModel {
	return &uModel.UserModel{
		UserName: r.UserName,
		FullName: r.FullName,
		Email:    r.Email,
		Password: hashedPassword,
		Role:     r.Role,
	}
}

// UpdateUserRequest: partial update (pointer: bedakan omit vs diisi)
type UpdateUserRequest struct {
	FullName *string `json:"full_name,omitempty" validate:"omitempty,max=140"`
	Password *string `json:"password,omitempty"  validate:"omitempty,min=8"`
	Role     *string `json:"role,omitempty"      validate:"omitempty,oneof=user sales sales_manager admin"`
	IsActive *bool   `json:"is_active,omitempty"`
}

// ToUpdates: map kolom untuk gorm Updates (password di-hash oleh controller)
func (r *UpdateUserRequest) ToUpdates(hashedPassword *string) map[string]any {
	updates := map[string]any{}
	if r.FullName != nil {
		updates["full_name"] = strings.TrimSpace(*r.FullName)
	}
	if hashedPassword != nil {
		updates["password"] = *hashedPassword
	}
	if r.Role != nil {
		updates["role"] = strings.ToLower(strings.TrimSpace(*r.Role))
	}
	if r.IsActive != nil {
		updates["is_active"] = *r.IsActive
	}
	return updates
}

/* =======================================================
   RESPONSE DTO
   ======================================================= */

type UserDTO struct {
	ID        string    `json:"id"`
	UserName  string    `json:"user_name"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func FromModel(u uModel.UserModel) UserDTO {
	return UserDTO{
		ID:        u.ID.String(),
		UserName:  u.UserName,
		FullName:  u.FullName,
		Email:     u.Email,
		Role:      u.Role,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func FromModels(list []uModel.UserModel) []UserDTO {
	out := make([]UserDTO, 0, len(list))
	for _, u := range list {
		out = append(out, FromModel(u))
	}
	return out
}
