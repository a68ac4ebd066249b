package configs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadFidProxyConfig_Default(t *testing.T) {
	t.Setenv("FID_PROXY_TIMEOUT", "")
	t.Setenv("FID_PROXY_URL", "")

	cfg := LoadFidProxyConfig()
	assert.Equal(t, 10*time.Second, cfg.Timeout)
	assert.Equal(t, DefaultFidProxyURL, cfg.URL)
}

func TestLoadFidProxyConfig_Override(t *testing.T) {
	t.Setenv("FID_PROXY_TIMEOUT", "3")
	t.Setenv("FID_PROXY_URL", "http://localhost:9999/webhook/get-fid")

	cfg := LoadFidProxyConfig()
	assert.Equal(t, 3*time.Second, cfg.Timeout)
	assert.Equal(t, "http://localhost:9999/webhook/get-fid", cfg.URL)
}

func TestLoadFidProxyConfig_InvalidTimeoutFallsBack(t *testing.T) {
	for _, raw := range []string{"abc", "0", "-5"} {
		t.Setenv("FID_PROXY_TIMEOUT", raw)
		assert.Equal(t, 10*time.Second, LoadFidProxyConfig().Timeout, raw)
	}
}

func TestGetEnv_DefaultOnlyWhenUnset(t *testing.T) {
	assert.Equal(t, "fallback", GetEnv("CRM_TEST_SURELY_UNSET_KEY", "fallback"))

	t.Setenv("CRM_TEST_EMPTY", "")
	assert.Equal(t, "", GetEnv("CRM_TEST_EMPTY", "fallback"))
}

func TestLoadErrorLogReaperConfig(t *testing.T) {
	t.Setenv("ERROR_LOG_RETENTION_DAYS", "")
	t.Setenv("ERROR_LOG_CLEANUP_CRON", "")

	cfg := LoadErrorLogReaperConfig()
	assert.Equal(t, 30, cfg.RetentionDays)
	assert.Equal(t, "30 2 * * *", cfg.CronSchedule)
}
