package service

import (
	"context"
	"errors"
	"strings"

	"crm_backend/internals/constants"
	"crm_backend/internals/features/users/user/model"
	"crm_backend/internals/helpers/apperror"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormUserLookup membaca full name user dari tabel users.
type GormUserLookup struct {
	DB *gorm.DB
}

func NewGormUserLookup(db *gorm.DB) *GormUserLookup {
	return &GormUserLookup{DB: db}
}

// FullName mengembalikan full_name user; *apperror.NotFoundError kalau id tidak ada.
func (l *GormUserLookup) FullName(ctx context.Context, userID string) (string, error) {
	userID = strings.TrimSpace(userID)
	id, err := uuid.Parse(userID)
	if err != nil {
		return "", &apperror.NotFoundError{Doctype: constants.DocTypeUser, Name: userID}
	}

	var row struct {
		FullName string
	}
	// NewDB: lookup bisa dipanggil dari hook, jangan bawa Table/klausa statement pemanggil
	err = l.DB.Session(&gorm.Session{NewDB: true, Context: ctx}).
		Table(model.UserModel{}.TableName()).
		Select("full_name").
		Where("id = ?", id).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", &apperror.NotFoundError{Doctype: constants.DocTypeUser, Name: userID}
	}
	if err != nil {
		return "", err
	}
	return row.FullName, nil
}
