package model

import (
	"context"
	"testing"

	"crm_backend/internals/helpers/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUsers struct {
	names map[string]string
	calls int
}

func (f *fakeUsers) FullName(_ context.Context, userID string) (string, error) {
	f.calls++
	name, ok := f.names[userID]
	if !ok {
		return "", &apperror.NotFoundError{Doctype: "User", Name: userID}
	}
	return name, nil
}

func strPtr(s string) *string { return &s }

func TestApplySalesDefaults_FillsEmptyNama(t *testing.T) {
	users := &fakeUsers{names: map[string]string{"u1": "Jane Doe"}}

	for _, nama := range []*string{nil, strPtr(""), strPtr("   ")} {
		rec := &SalesModel{UserID: "u1", Nama: nama}
		require.NoError(t, ApplySalesDefaults(context.Background(), rec, users))
		require.NotNil(t, rec.Nama)
		assert.Equal(t, "Jane Doe", *rec.Nama)
	}
}

func TestApplySalesDefaults_KeepsExistingNama(t *testing.T) {
	users := &fakeUsers{names: map[string]string{"u1": "Jane Doe"}}
	rec := &SalesModel{UserID: "u1", Nama: strPtr("Existing")}

	require.NoError(t, ApplySalesDefaults(context.Background(), rec, users))
	require.NoError(t, ApplySalesDefaults(context.Background(), rec, users))

	assert.Equal(t, "Existing", *rec.Nama)
	assert.Zero(t, users.calls, "nama terisi tidak boleh memicu lookup")
}

func TestApplySalesDefaults_UnknownUser(t *testing.T) {
	users := &fakeUsers{names: map[string]string{}}
	rec := &SalesModel{UserID: "ghost"}

	err := ApplySalesDefaults(context.Background(), rec, users)
	assert.True(t, apperror.IsNotFound(err))
	assert.Nil(t, rec.Nama)
}

func TestApplySalesDefaults_BlankFullNameRejected(t *testing.T) {
	users := &fakeUsers{names: map[string]string{"u1": "  "}}
	rec := &SalesModel{UserID: "u1", Nama: strPtr("")}

	err := ApplySalesDefaults(context.Background(), rec, users)
	var verr *apperror.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "nama", verr.Field)
	assert.Equal(t, "", *rec.Nama)
}

func TestDefaultListData(t *testing.T) {
	lv := DefaultListData()

	keys := make([]string, 0, len(lv.Columns))
	for _, c := range lv.Columns {
		keys = append(keys, c.Key)
	}
	assert.Equal(t, []string{"nama", "user_id", "cabang", "pincab", "modified"}, keys)
	assert.Equal(t, []string{"name", "nama", "user_id", "cabang", "pincab", "modified"}, lv.Rows)
	assert.Equal(t, "User", lv.Columns[1].Options)
	assert.Equal(t, "CRM Sales", lv.Columns[3].Options)
	assert.Equal(t, "8rem", lv.Columns[4].Width)

	// salinan baru tiap panggilan
	lv.Rows[0] = "mutated"
	assert.Equal(t, "name", DefaultListData().Rows[0])
}
