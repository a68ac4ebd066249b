package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"crm_backend/internals/features/crm/error_logs/model"
	"crm_backend/internals/helpers/testdb"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder_WritesOneRowAndOneLogEntry(t *testing.T) {
	db := testdb.Open(t, &model.ErrorLogModel{})
	logger, hook := test.NewNullLogger()
	rec := &Recorder{DB: db, Logger: logger}

	inner := errors.New("connection refused")
	err := fmt.Errorf("GET fid: %w", inner)
	rec.Record(context.Background(), "FID Proxy Error", err, map[string]any{"url": "http://fid.local"})

	require.Len(t, hook.AllEntries(), 1)
	entry := hook.LastEntry()
	assert.Equal(t, logrus.ErrorLevel, entry.Level)
	assert.Equal(t, "FID Proxy Error", entry.Data["title"])
	assert.Equal(t, "http://fid.local", entry.Data["url"])

	var rows []model.ErrorLogModel
	require.NoError(t, db.Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.Equal(t, "FID Proxy Error", rows[0].ErrorLogTitle)
	assert.Equal(t, "GET fid: connection refused", rows[0].ErrorLogMessage)
	assert.Contains(t, rows[0].ErrorLogTrace, "connection refused")
	assert.Contains(t, rows[0].ErrorLogTrace, "goroutine")
	assert.JSONEq(t, `{"url":"http://fid.local"}`, string(rows[0].ErrorLogContext))
}

func TestRecorder_NilErrorIsIgnored(t *testing.T) {
	logger, hook := test.NewNullLogger()
	rec := &Recorder{Logger: logger}

	rec.Record(context.Background(), "FID Proxy Error", nil, nil)
	assert.Empty(t, hook.AllEntries())
}

func TestBuildTrace_ListsWholeChain(t *testing.T) {
	err := fmt.Errorf("luar: %w", fmt.Errorf("tengah: %w", errors.New("dalam")))
	trace := BuildTrace(err)

	assert.Contains(t, trace, "#0 ")
	assert.Contains(t, trace, "#1 ")
	assert.Contains(t, trace, "#2 *errors.errorString: dalam")
}
