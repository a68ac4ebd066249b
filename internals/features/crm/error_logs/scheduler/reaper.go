package scheduler

import (
	"context"
	"log"
	"time"

	"crm_backend/internals/configs"
	"crm_backend/internals/features/crm/error_logs/model"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// ── ENTRYPOINT: panggil dari main.go. Return *cron.Cron agar bisa di-Stop saat shutdown.
func StartErrorLogReaper(db *gorm.DB) (*cron.Cron, error) {
	cfg := configs.LoadErrorLogReaperConfig()

	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)))
	_, err := c.AddFunc(cfg.CronSchedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 4*time.Minute)
		defer cancel()

		n, err := PurgeErrorLogs(ctx, db, cfg.RetentionDays, time.Now())
		if err != nil {
			log.Printf("[ERRLOG-REAPER] delete error: %v", err)
			return
		}
		if n > 0 {
			log.Printf("[ERRLOG-REAPER] hard-deleted %d rows older than %dd", n, cfg.RetentionDays)
		}
	})
	if err != nil {
		return nil, err
	}

	log.Printf("[ERRLOG-REAPER] started schedule=%q retention=%dd", cfg.CronSchedule, cfg.RetentionDays)
	c.Start()
	return c, nil
}

// PurgeErrorLogs menghapus error_logs yang lebih tua dari retentionDays relatif ke now.
func PurgeErrorLogs(ctx context.Context, db *gorm.DB, retentionDays int, now time.Time) (int64, error) {
	if db == nil {
		return 0, nil
	}
	if retentionDays <= 0 {
		retentionDays = configs.DefaultErrorLogRetentionDays
	}
	cutoff := now.Add(-time.Duration(retentionDays) * 24 * time.Hour)

	res := db.WithContext(ctx).
		Where("error_log_created_at < ?", cutoff).
		Delete(&model.ErrorLogModel{})
	return res.RowsAffected, res.Error
}
