// file: internals/features/crm/leads/model/lead_model.go
package model

import "time"

// LeadModel = doctype "CRM Lead". Dikelola sistem CRM; service ini hanya membaca.
type LeadModel struct {
	Name         string    `json:"name"                   gorm:"column:name;type:varchar(140);primaryKey"`
	LeadName     *string   `json:"lead_name,omitempty"    gorm:"column:lead_name;type:varchar(140)"`
	Organization *string   `json:"organization,omitempty" gorm:"column:organization;type:varchar(140)"`
	Status       *string   `json:"status,omitempty"       gorm:"column:status;type:varchar(140)"`
	Email        *string   `json:"email,omitempty"        gorm:"column:email;type:varchar(140)"`
	MobileNo     *string   `json:"mobile_no,omitempty"    gorm:"column:mobile_no;type:varchar(140)"`
	LeadOwner    *string   `json:"lead_owner,omitempty"   gorm:"column:lead_owner;type:varchar(140)"`
	Image        *string   `json:"image,omitempty"        gorm:"column:image;type:text"`
	FirstName    *string   `json:"first_name,omitempty"   gorm:"column:first_name;type:varchar(140)"`
	SalesID      *string   `json:"sales_id,omitempty"     gorm:"column:sales_id;type:varchar(140);index"`
	Creation     time.Time `json:"creation"               gorm:"column:creation;autoCreateTime"`
	Modified     time.Time `json:"modified"               gorm:"column:modified;autoUpdateTime"`
}

func (LeadModel) TableName() string { return "crm_leads" }

// LinkedLeadFields: proyeksi kanonik untuk daftar lead per anggota sales.
var LinkedLeadFields = []string{
	"name",
	"lead_name",
	"organization",
	"status",
	"email",
	"mobile_no",
	"lead_owner",
	"image",
	"first_name",
	"creation",
	"modified",
}
