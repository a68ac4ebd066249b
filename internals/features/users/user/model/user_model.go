package model

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var validate = validator.New()

// UserModel merepresentasikan tabel users (link target CRM Sales.user_id)
type UserModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserName  string    `gorm:"size:50;not null" json:"user_name" validate:"required,min=3,max=50"`
	FullName  string    `gorm:"size:140;not null;default:''" json:"full_name" validate:"max=140"`
	Email     string    `gorm:"size:255;unique;not null" json:"email" validate:"required,email"`
	Password  string    `gorm:"not null" json:"-"`
	Role      string    `gorm:"type:varchar(20);not null;default:'user'" json:"role"`
	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}

// BeforeCreate: id dibuat di aplikasi (tidak tergantung gen_random_uuid di DB)
func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	u.SetDefaultValues()
	return u.Validate()
}

// SetDefaultValues memastikan nilai default sebelum validasi
func (u *UserModel) SetDefaultValues() {
	if u.Role == "" {
		u.Role = "user"
	}
	u.FullName = strings.TrimSpace(u.FullName)
	if u.FullName == "" {
		u.FullName = u.UserName
	}
}

func (u *UserModel) Validate() error {
	if err := validate.Struct(u); err != nil {
		return formatValidationError(err)
	}
	return nil
}

func formatValidationError(err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}
	msgs := make([]string, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		switch fieldErr.Tag() {
		case "required":
			msgs = append(msgs, fieldErr.Field()+" wajib diisi.")
		case "email":
			msgs = append(msgs, "Format email tidak valid.")
		case "min":
			msgs = append(msgs, fieldErr.Field()+" harus minimal "+fieldErr.Param()+" karakter.")
		case "max":
			msgs = append(msgs, fieldErr.Field()+" harus kurang dari "+fieldErr.Param()+" karakter.")
		default:
			msgs = append(msgs, fieldErr.Field()+": format tidak valid.")
		}
	}
	return errors.New(strings.Join(msgs, " "))
}
