package scheduler

import (
	"context"
	"testing"
	"time"

	"crm_backend/internals/features/crm/error_logs/model"
	"crm_backend/internals/helpers/testdb"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPurgeErrorLogs_DeletesOnlyExpiredRows(t *testing.T) {
	db := testdb.Open(t, &model.ErrorLogModel{})
	now := time.Date(2025, 6, 1, 2, 30, 0, 0, time.UTC)

	rows := []model.ErrorLogModel{
		{ErrorLogTitle: "FID Proxy Error", ErrorLogMessage: "lama", ErrorLogCreatedAt: now.AddDate(0, 0, -45)},
		{ErrorLogTitle: "FID Proxy Error", ErrorLogMessage: "baru", ErrorLogCreatedAt: now.AddDate(0, 0, -2)},
	}
	require.NoError(t, db.Create(&rows).Error)

	n, err := PurgeErrorLogs(context.Background(), db, 30, now)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	var left []model.ErrorLogModel
	require.NoError(t, db.Find(&left).Error)
	require.Len(t, left, 1)
	assert.Equal(t, "baru", left[0].ErrorLogMessage)
}

func TestPurgeErrorLogs_NilDB(t *testing.T) {
	n, err := PurgeErrorLogs(context.Background(), nil, 30, time.Now())
	assert.NoError(t, err)
	assert.Zero(t, n)
}
