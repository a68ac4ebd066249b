// file: internals/features/crm/error_logs/model/error_log_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ErrorLogModel = satu kegagalan operasional (mis. proxy FID gagal).
type ErrorLogModel struct {
	ErrorLogID      uuid.UUID      `json:"error_log_id"         gorm:"column:error_log_id;type:uuid;primaryKey"`
	ErrorLogTitle   string         `json:"error_log_title"      gorm:"column:error_log_title;type:varchar(140);not null;index"`
	ErrorLogMessage string         `json:"error_log_message"    gorm:"column:error_log_message;type:text;not null"`
	ErrorLogTrace   string         `json:"error_log_trace"      gorm:"column:error_log_trace;type:text"`
	ErrorLogContext datatypes.JSON `json:"error_log_context"    gorm:"column:error_log_context;type:jsonb"`

	ErrorLogCreatedAt time.Time `json:"error_log_created_at" gorm:"column:error_log_created_at;autoCreateTime;index"`
}

func (ErrorLogModel) TableName() string { return "error_logs" }

func (m *ErrorLogModel) BeforeCreate(tx *gorm.DB) error {
	if m.ErrorLogID == uuid.Nil {
		m.ErrorLogID = uuid.New()
	}
	return nil
}
