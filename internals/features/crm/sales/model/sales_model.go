// file: internals/features/crm/sales/model/sales_model.go
package model

import (
	"time"

	userService "crm_backend/internals/features/users/user/service"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SalesModel = anggota tim sales (doctype "CRM Sales").
type SalesModel struct {
	Name   string  `json:"name"             gorm:"column:name;type:varchar(140);primaryKey"`
	Nama   *string `json:"nama"             gorm:"column:nama;type:varchar(140)"`
	UserID string  `json:"user_id"          gorm:"column:user_id;type:varchar(140);not null;index"`
	Cabang *string `json:"cabang,omitempty" gorm:"column:cabang;type:varchar(140)"`
	// reporting-to (self link ke crm_sales.name)
	Pincab *string `json:"pincab,omitempty" gorm:"column:pincab;type:varchar(140);index"`

	Creation time.Time `json:"creation" gorm:"column:creation;autoCreateTime"`
	Modified time.Time `json:"modified" gorm:"column:modified;autoUpdateTime"`
}

func (SalesModel) TableName() string { return "crm_sales" }

/* =========================
   Hooks
   ========================= */

// BeforeSave jalan sekali per Create/Save, tepat sebelum persist.
func (m *SalesModel) BeforeSave(tx *gorm.DB) error {
	users := userService.NewGormUserLookup(tx)
	return ApplySalesDefaults(tx.Statement.Context, m, users)
}

func (m *SalesModel) BeforeCreate(tx *gorm.DB) error {
	if m.Name == "" {
		m.Name = NewSalesName()
	}
	return nil
}

func NewSalesName() string {
	return "SALES-" + uuid.NewString()
}

/* =========================
   Scopes
   ========================= */

func ScopeByUser(userID string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("user_id = ?", userID)
	}
}

func ScopeByCabang(cabang string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if cabang == "" {
			return db
		}
		return db.Where("cabang = ?", cabang)
	}
}
