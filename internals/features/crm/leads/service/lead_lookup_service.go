// file: internals/features/crm/leads/service/lead_lookup_service.go
package service

import (
	"context"
	"strings"

	"crm_backend/internals/constants"
	"crm_backend/internals/features/crm/leads/model"
	"crm_backend/internals/features/crm/store"
	"crm_backend/internals/helpers/apperror"
)

/*
LeadLookupService hanya membaca.
Alur: cek permission read CRM Sales -> query CRM Lead (sales_id = id).
Kalau permission ditolak, query TIDAK dijalankan.
*/
type LeadLookupService struct {
	Store store.RecordStore
}

func NewLeadLookupService(s store.RecordStore) *LeadLookupService {
	return &LeadLookupService{Store: s}
}

// GetLinkedLeads mengembalikan lead milik anggota sales salesID,
// urut modified terbaru, hanya kolom LinkedLeadFields.
func (s *LeadLookupService) GetLinkedLeads(ctx context.Context, p store.Principal, salesID string) ([]store.Record, error) {
	salesID = strings.TrimSpace(salesID)

	allowed, err := s.Store.CheckPermission(ctx, p, constants.DocTypeSales, constants.ActionRead, salesID)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, &apperror.AuthorizationError{
			Doctype: constants.DocTypeSales,
			Action:  constants.ActionRead,
			Target:  salesID,
		}
	}

	rows, err := s.Store.Query(ctx, constants.DocTypeLead,
		map[string]any{"sales_id": salesID},
		model.LinkedLeadFields,
	)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []store.Record{}
	}
	return rows, nil
}
