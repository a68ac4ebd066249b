// file: internals/features/crm/error_logs/service/recorder.go
package service

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"strings"

	"crm_backend/internals/features/crm/error_logs/model"
	"crm_backend/internals/helpers/logs"

	"github.com/bytedance/sonic"
	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ErrorRecorder dipakai service yang wajib mencatat kegagalan sebelum mengembalikan error.
type ErrorRecorder interface {
	Record(ctx context.Context, title string, err error, fields map[string]any)
}

// Recorder menulis satu baris error_logs (kalau DB ada) + satu entry logrus.
// Gagal simpan ke DB tidak mengubah error asal; cukup di-log.
type Recorder struct {
	DB     *gorm.DB
	Logger *logrus.Logger
}

func NewRecorder(db *gorm.DB) *Recorder {
	return &Recorder{DB: db, Logger: logs.Get(logs.Error)}
}

var _ ErrorRecorder = (*Recorder)(nil)

func (r *Recorder) Record(ctx context.Context, title string, err error, fields map[string]any) {
	if err == nil {
		return
	}
	trace := BuildTrace(err)

	entry := r.logger().WithField("title", title)
	for k, v := range fields {
		entry = entry.WithField(k, v)
	}
	entry.WithField("trace", trace).Error(err.Error())

	if r.DB == nil {
		return
	}

	row := model.ErrorLogModel{
		ErrorLogTitle:   title,
		ErrorLogMessage: err.Error(),
		ErrorLogTrace:   trace,
	}
	if len(fields) > 0 {
		if raw, mErr := sonic.Marshal(fields); mErr == nil {
			row.ErrorLogContext = datatypes.JSON(raw)
		}
	}
	if dbErr := r.DB.WithContext(context.WithoutCancel(ctx)).Create(&row).Error; dbErr != nil {
		r.logger().WithField("title", title).Warnf("gagal simpan error_logs: %v", dbErr)
	}
}

func (r *Recorder) logger() *logrus.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return logs.Get(logs.Error)
}

// BuildTrace: rantai error (luar -> dalam) lalu stack goroutine pemanggil.
func BuildTrace(err error) string {
	var b strings.Builder
	for i := 0; err != nil; i++ {
		fmt.Fprintf(&b, "#%d %T: %s\n", i, err, err.Error())
		err = errors.Unwrap(err)
	}
	b.WriteString("\n")
	b.Write(debug.Stack())
	return b.String()
}
