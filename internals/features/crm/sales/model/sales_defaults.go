package model

import (
	"context"
	"strings"

	"crm_backend/internals/helpers/apperror"
)

// UserLookup resolve user id → full name. Harus mengembalikan
// *apperror.NotFoundError kalau user tidak ada.
type UserLookup interface {
	FullName(ctx context.Context, userID string) (string, error)
}

// ApplySalesDefaults mengisi nama dari full name user kalau nama kosong.
// Nama yang sudah terisi tidak disentuh dan tidak memicu lookup.
// Nama kosong atau hanya spasi dianggap kosong.
func ApplySalesDefaults(ctx context.Context, m *SalesModel, users UserLookup) error {
	if m.Nama != nil && strings.TrimSpace(*m.Nama) != "" {
		return nil
	}
	fullName, err := users.FullName(ctx, m.UserID)
	if err != nil {
		return err
	}
	fullName = strings.TrimSpace(fullName)
	if fullName == "" {
		return &apperror.ValidationError{Field: "nama", Reason: "full name user " + m.UserID + " kosong"}
	}
	m.Nama = &fullName
	return nil
}
