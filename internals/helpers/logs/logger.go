// Package logs menyediakan logger logrus bernama (app, error) dengan rotasi file.
package logs

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"crm_backend/internals/configs"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	App   = "app"
	Error = "error"
)

type Config struct {
	Level      string // trace, debug, info, warn, error
	Format     string // json, text
	Output     string // file, stdout, both
	Path       string
	MaxSize    int // MB
	MaxBackups int
	MaxAge     int // hari
	Compress   bool
}

func LoadConfig() Config {
	format := "json"
	if configs.GetEnv("APP_ENV", "development") == "development" {
		format = "text"
	}
	return Config{
		Level:      strings.ToLower(configs.GetEnv("LOG_LEVEL", "info")),
		Format:     strings.ToLower(configs.GetEnv("LOG_FORMAT", format)),
		Output:     strings.ToLower(configs.GetEnv("LOG_OUTPUT", "both")),
		Path:       configs.GetEnv("LOG_PATH", "./logs"),
		MaxSize:    configs.GetEnvInt("LOG_MAX_SIZE", 100),
		MaxBackups: configs.GetEnvInt("LOG_MAX_BACKUPS", 7),
		MaxAge:     configs.GetEnvInt("LOG_MAX_AGE", 7),
		Compress:   configs.GetEnvBool("LOG_COMPRESS", true),
	}
}

var (
	loggers   = make(map[string]*logrus.Logger)
	loggersMu sync.Mutex
	config    *Config
)

// Init menyiapkan folder log. Aman dipanggil ulang; logger yang sudah dibuat di-reset.
func Init(cfg Config) error {
	loggersMu.Lock()
	defer loggersMu.Unlock()

	if cfg.Output == "file" || cfg.Output == "both" {
		if err := os.MkdirAll(cfg.Path, 0o755); err != nil {
			return fmt.Errorf("failed to create logs directory: %w", err)
		}
	}
	config = &cfg
	loggers = make(map[string]*logrus.Logger)
	return nil
}

// Get mengembalikan logger bernama; dibuat saat pertama dipakai.
func Get(name string) *logrus.Logger {
	loggersMu.Lock()
	defer loggersMu.Unlock()

	if config == nil {
		cfg := Config{Level: "info", Format: "text", Output: "stdout"}
		config = &cfg
	}
	if l, ok := loggers[name]; ok {
		return l
	}
	l := newLogger(name, *config)
	loggers[name] = l
	return l
}

func newLogger(name string, cfg Config) *logrus.Logger {
	l := logrus.New()

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	l.SetLevel(level)

	if cfg.Format == "json" {
		l.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02 15:04:05.000",
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime: "timestamp",
				logrus.FieldKeyMsg:  "message",
			},
		})
	} else {
		l.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05.000",
		})
	}

	var writers []io.Writer
	if cfg.Output == "file" || cfg.Output == "both" {
		writers = append(writers, &lumberjack.Logger{
			Filename:   filepath.Join(cfg.Path, name+".log"),
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
			Compress:   cfg.Compress,
		})
	}
	if cfg.Output == "stdout" || cfg.Output == "both" || len(writers) == 0 {
		writers = append(writers, os.Stdout)
	}
	l.SetOutput(io.MultiWriter(writers...))

	return l
}
