package logs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_WritesToRotatedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Init(Config{Level: "info", Format: "json", Output: "file", Path: dir, MaxSize: 1}))

	l := Get(Error)
	assert.Same(t, l, Get(Error), "logger bernama harus di-cache")

	l.WithField("title", "FID Proxy Error").Error("upstream down")

	raw, err := os.ReadFile(filepath.Join(dir, "error.log"))
	require.NoError(t, err)
	assert.Contains(t, string(raw), "FID Proxy Error")
	assert.Contains(t, string(raw), "upstream down")
}

func TestGet_InvalidLevelFallsBackToInfo(t *testing.T) {
	require.NoError(t, Init(Config{Level: "loud", Output: "stdout"}))
	assert.Equal(t, "info", Get(App).GetLevel().String())
}
