package configs

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
	"gorm.io/gorm/utils"
)

// Endpoint webhook FID bawaan (dipakai kalau FID_PROXY_URL tidak diset)
const DefaultFidProxyURL = "https://waha-n8n.0zvhbs.easypanel.host/webhook/get-fid"

// Timeout default proxy FID (detik)
const DefaultFidProxyTimeoutSeconds = 10

var JWTSecret string

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ Tidak menemukan .env file, menggunakan ENV dari sistem")
		} else {
			log.Println("✅ .env file berhasil dimuat!")
		}
	} else {
		log.Println("🚀 Running in Railway, menggunakan ENV dari sistem")
	}

	JWTSecret = GetEnv("JWT_SECRET")

	if JWTSecret == "" {
		log.Println("❌ JWT_SECRET belum diset!")
	} else {
		log.Println("✅ JWT_SECRET berhasil dimuat.")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

// GetEnvInt membaca integer dari ENV; nilai kosong/invalid → def.
func GetEnvInt(key string, def int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("⚠️ %s=%q bukan angka, pakai default %d", key, raw, def)
		return def
	}
	return n
}

func GetEnvBool(key string, def bool) bool {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return def
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return def
	}
	return b
}

// =======================
// FID PROXY
// =======================

type FidProxyConfig struct {
	URL     string
	Timeout time.Duration
}

// LoadFidProxyConfig membaca FID_PROXY_URL & FID_PROXY_TIMEOUT (detik, default 10).
// Timeout <= 0 dianggap tidak diset.
func LoadFidProxyConfig() FidProxyConfig {
	secs := GetEnvInt("FID_PROXY_TIMEOUT", DefaultFidProxyTimeoutSeconds)
	if secs <= 0 {
		secs = DefaultFidProxyTimeoutSeconds
	}
	url := strings.TrimSpace(GetEnv("FID_PROXY_URL"))
	if url == "" {
		url = DefaultFidProxyURL
	}
	return FidProxyConfig{
		URL:     url,
		Timeout: time.Duration(secs) * time.Second,
	}
}

// =======================
// ERROR LOG REAPER
// =======================

const (
	DefaultErrorLogRetentionDays = 30
	DefaultErrorLogCleanupCron   = "30 2 * * *"
)

type ErrorLogReaperConfig struct {
	CronSchedule  string
	RetentionDays int
}

func LoadErrorLogReaperConfig() ErrorLogReaperConfig {
	days := GetEnvInt("ERROR_LOG_RETENTION_DAYS", DefaultErrorLogRetentionDays)
	if days <= 0 {
		days = DefaultErrorLogRetentionDays
	}
	schedule := strings.TrimSpace(GetEnv("ERROR_LOG_CLEANUP_CRON"))
	if schedule == "" {
		schedule = DefaultErrorLogCleanupCron
	}
	return ErrorLogReaperConfig{
		CronSchedule:  schedule,
		RetentionDays: days,
	}
}

// =======================
// DATABASE CONNECTOR
// =======================
func BuildPostgresDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=crm_backend&options=-c statement_timeout=3000",
		GetEnv("DB_USER"),
		GetEnv("DB_PASSWORD"),
		GetEnv("DB_HOST"),
		GetEnv("DB_PORT", "5432"),
		GetEnv("DB_NAME"),
		GetEnv("DB_SSLMODE", "require"),
	)
}

// =======================
// GORM LOGGER CUSTOM
// =======================
type GormLogger struct {
	SlowThreshold time.Duration
	LogLevel      gormLogger.LogLevel
}

func NewGormLogger() gormLogger.Interface {
	level := gormLogger.Warn
	if GetEnvBool("DB_LOG_QUERIES", false) {
		level = gormLogger.Info
	}
	return &GormLogger{
		SlowThreshold: 200 * time.Millisecond,
		LogLevel:      level,
	}
}

func (l *GormLogger) LogMode(level gormLogger.LogLevel) gormLogger.Interface {
	cp := *l
	cp.LogLevel = level
	return &cp
}

func (l *GormLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Info {
		log.Printf("[INFO] "+msg, data...)
	}
}

func (l *GormLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Warn {
		log.Printf("[WARN] "+msg, data...)
	}
}

func (l *GormLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Error {
		log.Printf("[ERROR] "+msg, data...)
	}
}

func (l *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.LogLevel <= gormLogger.Silent {
		return
	}
	elapsed := time.Since(begin)
	sql, rows := fc()
	file := utils.FileWithLineNum()

	switch {
	case err != nil && l.LogLevel >= gormLogger.Error && err != gorm.ErrRecordNotFound:
		log.Printf("[ERROR] %s | %v | %s | %d rows | %s", file, err, elapsed, rows, sql)
	case elapsed > l.SlowThreshold && l.LogLevel >= gormLogger.Warn:
		log.Printf("[SLOW SQL] %s | %s | %d rows | %s", file, elapsed, rows, sql)
	case l.LogLevel >= gormLogger.Info:
		log.Printf("[QUERY] %s | %s | %d rows | %s", file, elapsed, rows, sql)
	}
}
