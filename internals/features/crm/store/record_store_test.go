package store

import (
	"context"
	"testing"
	"time"

	"crm_backend/internals/constants"
	leadModel "crm_backend/internals/features/crm/leads/model"
	salesModel "crm_backend/internals/features/crm/sales/model"
	userModel "crm_backend/internals/features/users/user/model"
	"crm_backend/internals/helpers/apperror"
	"crm_backend/internals/helpers/testdb"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func strPtr(s string) *string { return &s }

func openStore(t *testing.T) (*GormRecordStore, *gorm.DB) {
	t.Helper()
	db := testdb.Open(t, &userModel.UserModel{}, &salesModel.SalesModel{}, &leadModel.LeadModel{})
	return NewGormRecordStore(db), db
}

func seedUser(t *testing.T, db *gorm.DB, name string) string {
	t.Helper()
	u := userModel.UserModel{UserName: name, Email: name + "@example.com", Password: "x"}
	require.NoError(t, db.Create(&u).Error)
	return u.ID.String()
}

func seedSales(t *testing.T, db *gorm.DB, name, userID string, pincab *string) {
	t.Helper()
	require.NoError(t, db.Create(&salesModel.SalesModel{Name: name, UserID: userID, Pincab: pincab}).Error)
}

func TestQuery_ProjectionFilterAndOrder(t *testing.T) {
	s, db := openStore(t)
	ctx := context.Background()

	base := time.Date(2025, 1, 1, 8, 0, 0, 0, time.UTC)
	leads := []leadModel.LeadModel{
		{Name: "LEAD-1", LeadName: strPtr("Lama"), SalesID: strPtr("S-1"), Modified: base},
		{Name: "LEAD-2", LeadName: strPtr("Baru"), SalesID: strPtr("S-1"), Modified: base.Add(time.Hour)},
		{Name: "LEAD-3", LeadName: strPtr("Lain"), SalesID: strPtr("S-2"), Modified: base},
	}
	// UpdateColumn agar modified tidak ditimpa autoUpdateTime
	for i := range leads {
		require.NoError(t, db.Create(&leads[i]).Error)
		require.NoError(t, db.Model(&leads[i]).UpdateColumn("modified", leads[i].Modified).Error)
	}

	rows, err := s.Query(ctx, constants.DocTypeLead, map[string]any{"sales_id": "S-1"}, []string{"name", "lead_name"})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "LEAD-2", rows[0]["name"])
	assert.Equal(t, "LEAD-1", rows[1]["name"])
	assert.Len(t, rows[0], 2)
	assert.NotContains(t, rows[0], "sales_id")
}

func TestQuery_NoMatchReturnsEmptySlice(t *testing.T) {
	s, _ := openStore(t)

	rows, err := s.Query(context.Background(), constants.DocTypeLead, map[string]any{"sales_id": "NONE"}, leadModel.LinkedLeadFields)
	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestQuery_RejectsUnknownCollectionAndColumns(t *testing.T) {
	s, _ := openStore(t)
	ctx := context.Background()

	_, err := s.Query(ctx, "Payment", nil, []string{"name"})
	var ve *apperror.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "collection", ve.Field)

	_, err = s.Query(ctx, constants.DocTypeLead, nil, []string{"name; DROP TABLE crm_leads"})
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "fields", ve.Field)

	_, err = s.Query(ctx, constants.DocTypeLead, map[string]any{"1=1 OR name": "x"}, []string{"name"})
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "filters", ve.Field)
}

func TestCheckPermission_ManagerReadsAndWritesEverything(t *testing.T) {
	s, _ := openStore(t)
	ctx := context.Background()

	for _, role := range []string{constants.RoleAdmin, constants.RoleSalesManager} {
		p := Principal{UserID: "any", Role: role}
		ok, err := s.CheckPermission(ctx, p, constants.DocTypeSales, constants.ActionRead, "S-X")
		require.NoError(t, err)
		assert.True(t, ok, role)

		ok, err = s.CheckPermission(ctx, p, constants.DocTypeSales, constants.ActionWrite, "S-X")
		require.NoError(t, err)
		assert.True(t, ok, role)
	}
}

func TestCheckPermission_OwnerAndSupervisorChain(t *testing.T) {
	s, db := openStore(t)
	ctx := context.Background()

	head := seedUser(t, db, "kepala")
	staff := seedUser(t, db, "staff")
	other := seedUser(t, db, "lain")

	seedSales(t, db, "S-HEAD", head, nil)
	seedSales(t, db, "S-STAFF", staff, strPtr("S-HEAD"))
	seedSales(t, db, "S-OTHER", other, nil)

	cases := []struct {
		name   string
		user   string
		target string
		want   bool
	}{
		{"pemilik sendiri", staff, "S-STAFF", true},
		{"atasan melihat bawahan", head, "S-STAFF", true},
		{"bawahan tidak melihat atasan", staff, "S-HEAD", false},
		{"user lain ditolak", other, "S-STAFF", false},
		{"record tidak ada", staff, "S-NONE", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ok, err := s.CheckPermission(ctx, Principal{UserID: tc.user, Role: constants.RoleSales}, constants.DocTypeSales, constants.ActionRead, tc.target)
			require.NoError(t, err)
			assert.Equal(t, tc.want, ok)
		})
	}

	ok, err := s.CheckPermission(ctx, Principal{UserID: staff, Role: constants.RoleSales}, constants.DocTypeSales, constants.ActionWrite, "S-STAFF")
	require.NoError(t, err)
	assert.False(t, ok, "write hanya untuk manager")
}

func TestCheckPermission_CycleTerminates(t *testing.T) {
	s, db := openStore(t)
	a := seedUser(t, db, "anggota_a")
	b := seedUser(t, db, "anggota_b")
	outsider := seedUser(t, db, "outsider")

	seedSales(t, db, "S-A", a, strPtr("S-B"))
	seedSales(t, db, "S-B", b, strPtr("S-A"))

	ok, err := s.CheckPermission(context.Background(), Principal{UserID: outsider, Role: constants.RoleUser}, constants.DocTypeSales, constants.ActionRead, "S-A")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = s.CheckPermission(context.Background(), Principal{UserID: b, Role: constants.RoleUser}, constants.DocTypeSales, constants.ActionRead, "S-A")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestCheckPermission_LeadFollowsSalesOwner(t *testing.T) {
	s, db := openStore(t)
	ctx := context.Background()

	owner := seedUser(t, db, "pemilik")
	other := seedUser(t, db, "bukan")
	seedSales(t, db, "S-1", owner, nil)
	require.NoError(t, db.Create(&leadModel.LeadModel{Name: "LEAD-1", SalesID: strPtr("S-1")}).Error)

	ok, err := s.CheckPermission(ctx, Principal{UserID: owner, Role: constants.RoleSales}, constants.DocTypeLead, constants.ActionRead, "LEAD-1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.CheckPermission(ctx, Principal{UserID: other, Role: constants.RoleSales}, constants.DocTypeLead, constants.ActionRead, "LEAD-1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCheckPermission_DeniesUnknownCollectionAndAnonymous(t *testing.T) {
	s, _ := openStore(t)
	ctx := context.Background()

	ok, err := s.CheckPermission(ctx, Principal{UserID: "u", Role: constants.RoleAdmin}, "Payment", constants.ActionRead, "X")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = s.CheckPermission(ctx, Principal{Role: constants.RoleAdmin}, constants.DocTypeSales, constants.ActionRead, "X")
	require.NoError(t, err)
	assert.False(t, ok)
}
