// Package store menyediakan akses baca generik ke koleksi CRM plus cek permission.
package store

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"crm_backend/internals/constants"
	leadModel "crm_backend/internals/features/crm/leads/model"
	salesModel "crm_backend/internals/features/crm/sales/model"
	"crm_backend/internals/helpers/apperror"

	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// Record = satu baris hasil proyeksi, key = nama kolom.
type Record = map[string]any

// Principal = user yang sedang login.
type Principal struct {
	UserID string
	Role   string
}

// RecordStore adalah kapabilitas yang dipakai service CRM.
type RecordStore interface {
	Query(ctx context.Context, collection string, filter map[string]any, projection []string) ([]Record, error)
	CheckPermission(ctx context.Context, principal Principal, collection, action, target string) (bool, error)
}

// Batas kedalaman rantai pincab yang ditelusuri saat cek permission.
const maxReportingDepth = 16

type collectionDef struct {
	table        string
	columns      map[string]struct{}
	defaultOrder string
}

var (
	registryOnce sync.Once
	registry     map[string]collectionDef
)

func collections() map[string]collectionDef {
	registryOnce.Do(func() {
		registry = map[string]collectionDef{
			constants.DocTypeLead:  defFromModel(&leadModel.LeadModel{}),
			constants.DocTypeSales: defFromModel(&salesModel.SalesModel{}),
		}
	})
	return registry
}

// defFromModel mengambil nama tabel & whitelist kolom dari schema GORM.
func defFromModel(m any) collectionDef {
	s, err := schema.Parse(m, &sync.Map{}, schema.NamingStrategy{})
	if err != nil {
		panic(fmt.Sprintf("store: parse schema %T: %v", m, err))
	}
	cols := make(map[string]struct{}, len(s.DBNames))
	for _, name := range s.DBNames {
		cols[name] = struct{}{}
	}
	return collectionDef{
		table:        s.Table,
		columns:      cols,
		defaultOrder: "modified DESC",
	}
}

type GormRecordStore struct {
	DB *gorm.DB
}

func NewGormRecordStore(db *gorm.DB) *GormRecordStore {
	return &GormRecordStore{DB: db}
}

var _ RecordStore = (*GormRecordStore)(nil)

// Query: SELECT projection FROM collection WHERE filter (equality) ORDER BY default.
// Kolom di luar whitelist ditolak sebelum query dijalankan.
func (s *GormRecordStore) Query(ctx context.Context, collection string, filter map[string]any, projection []string) ([]Record, error) {
	def, ok := collections()[collection]
	if !ok {
		return nil, &apperror.ValidationError{Field: "collection", Reason: collection}
	}
	if len(projection) == 0 {
		return nil, &apperror.ValidationError{Field: "fields", Reason: "empty"}
	}
	for _, col := range projection {
		if _, ok := def.columns[col]; !ok {
			return nil, &apperror.ValidationError{Field: "fields", Reason: col}
		}
	}

	q := s.DB.WithContext(ctx).Table(def.table).Select(projection)

	keys := make([]string, 0, len(filter))
	for k := range filter {
		if _, ok := def.columns[k]; !ok {
			return nil, &apperror.ValidationError{Field: "filters", Reason: k}
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		q = q.Where(fmt.Sprintf("%s = ?", k), filter[k])
	}

	rows := make([]map[string]any, 0)
	if err := q.Order(def.defaultOrder).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("query %s: %w", collection, err)
	}
	return rows, nil
}

// CheckPermission:
//   - admin/sales_manager: read & write semua CRM Sales / CRM Lead
//   - CRM Sales read: pemilik record (user_id) atau pemilik salah satu atasan (rantai pincab)
//   - CRM Lead read: mengikuti permission CRM Sales dari sales_id lead
//   - selain itu ditolak
func (s *GormRecordStore) CheckPermission(ctx context.Context, p Principal, collection, action, target string) (bool, error) {
	if strings.TrimSpace(p.UserID) == "" {
		return false, nil
	}
	if action != constants.ActionRead && action != constants.ActionWrite {
		return false, nil
	}

	switch collection {
	case constants.DocTypeSales:
		if constants.IsManagerOrAbove(p.Role) {
			return true, nil
		}
		if action != constants.ActionRead {
			return false, nil
		}
		return s.ownsReportingChain(ctx, p.UserID, target)

	case constants.DocTypeLead:
		if constants.IsManagerOrAbove(p.Role) {
			return true, nil
		}
		if action != constants.ActionRead {
			return false, nil
		}
		var lead struct {
			SalesID *string
		}
		err := s.DB.WithContext(ctx).Model(&leadModel.LeadModel{}).
			Select("sales_id").Where("name = ?", target).Take(&lead).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		if err != nil {
			return false, err
		}
		if lead.SalesID == nil || *lead.SalesID == "" {
			return false, nil
		}
		return s.ownsReportingChain(ctx, p.UserID, *lead.SalesID)

	default:
		return false, nil
	}
}

// ownsReportingChain: true kalau userID pemilik salesName atau salah satu atasannya.
func (s *GormRecordStore) ownsReportingChain(ctx context.Context, userID, salesName string) (bool, error) {
	visited := make(map[string]struct{}, 4)
	current := strings.TrimSpace(salesName)

	for depth := 0; depth < maxReportingDepth && current != ""; depth++ {
		if _, seen := visited[current]; seen {
			return false, nil
		}
		visited[current] = struct{}{}

		var row struct {
			UserID string
			Pincab *string
		}
		err := s.DB.WithContext(ctx).Model(&salesModel.SalesModel{}).
			Select("user_id", "pincab").Where("name = ?", current).Take(&row).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		if err != nil {
			return false, err
		}
		if row.UserID == userID {
			return true, nil
		}
		if row.Pincab == nil {
			return false, nil
		}
		current = strings.TrimSpace(*row.Pincab)
	}
	return false, nil
}
