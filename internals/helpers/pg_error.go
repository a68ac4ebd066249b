package helper

import (
	"errors"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

// MapPGError memetakan constraint error Postgres (pgx/libpq) ke status HTTP.
// ok=false kalau err bukan error Postgres.
func MapPGError(err error) (status int, message string, ok bool) {
	var pgxErr *pgconn.PgError
	if errors.As(err, &pgxErr) {
		status, message = pgCodeToStatus(pgxErr.Code, pgxErr.Message)
		return status, message, true
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		status, message = pgCodeToStatus(string(pqErr.Code), pqErr.Message)
		return status, message, true
	}
	return 0, "", false
}

func pgCodeToStatus(code, fallback string) (int, string) {
	switch code {
	case "23503":
		return http.StatusBadRequest, "Referensi tidak ditemukan (FK violation)."
	case "23505":
		return http.StatusConflict, "Data duplikat (unique violation)."
	case "23502":
		return http.StatusBadRequest, "Kolom wajib belum diisi (not null violation)."
	case "57014":
		return http.StatusGatewayTimeout, "Query dibatalkan (statement timeout)."
	default:
		return http.StatusInternalServerError, fallback
	}
}
