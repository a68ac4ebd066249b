package dto

import (
	"strings"
	"time"

	"crm_backend/internals/features/crm/sales/model"
)

// ============================
// Response DTO
// ============================

type SalesDTO struct {
	Name     string    `json:"name"`
	Nama     *string   `json:"nama"`
	UserID   string    `json:"user_id"`
	Cabang   *string   `json:"cabang"`
	Pincab   *string   `json:"pincab"`
	Creation time.Time `json:"creation"`
	Modified time.Time `json:"modified"`
}

// ============================
// Create Request DTO
// ============================

type CreateSalesRequest struct {
	Nama   *string `json:"nama"    validate:"omitempty,max=140"`
	UserID string  `json:"user_id" validate:"required,uuid"`
	Cabang *string `json:"cabang"  validate:"omitempty,max=140"`
	Pincab *string `json:"pincab"  validate:"omitempty,max=140"`
}

// ============================
// Patch Request DTO (nil = tidak diubah, "" = dikosongkan)
// ============================

type UpdateSalesRequest struct {
	Nama   *string `json:"nama"    validate:"omitempty,max=140"`
	UserID *string `json:"user_id" validate:"omitempty,uuid"`
	Cabang *string `json:"cabang"  validate:"omitempty,max=140"`
	Pincab *string `json:"pincab"  validate:"omitempty,max=140"`
}

// ============================
// Converter
// ============================

func ToSalesDTO(m model.SalesModel) SalesDTO {
	return SalesDTO{
		Name:     m.Name,
		Nama:     m.Nama,
		UserID:   m.UserID,
		Cabang:   m.Cabang,
		Pincab:   m.Pincab,
		Creation: m.Creation,
		Modified: m.Modified,
	}
}

func ToSalesDTOs(rows []model.SalesModel) []SalesDTO {
	out := make([]SalesDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, ToSalesDTO(r))
	}
	return out
}

func (r CreateSalesRequest) ToModel() model.SalesModel {
	return model.SalesModel{
		Nama:   trimPtr(r.Nama),
		UserID: strings.TrimSpace(r.UserID),
		Cabang: trimPtr(r.Cabang),
		Pincab: trimPtr(r.Pincab),
	}
}

// Apply menerapkan field yang dikirim ke m.
func (r UpdateSalesRequest) Apply(m *model.SalesModel) {
	if r.Nama != nil {
		m.Nama = trimPtr(r.Nama)
	}
	if r.UserID != nil {
		m.UserID = strings.TrimSpace(*r.UserID)
	}
	if r.Cabang != nil {
		m.Cabang = trimPtr(r.Cabang)
	}
	if r.Pincab != nil {
		m.Pincab = trimPtr(r.Pincab)
	}
}

// trimPtr: "" setelah trim → nil
func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
