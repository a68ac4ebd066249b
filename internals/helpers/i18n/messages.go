// Package i18n menyimpan katalog pesan user-facing (id default, en).
package i18n

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Kunci pesan = teks Bahasa Indonesia (bahasa default aplikasi).
const (
	MsgNotPermitted    = "Tidak diizinkan"
	MsgNotFound        = "%s %s tidak ditemukan"
	MsgFidProxyFailed  = "Gagal mengambil data FID melalui proxy backend: %s"
	MsgFidInvalidJSON  = "Respon FID bukan JSON yang valid"
	MsgUpstreamStatus  = "status upstream %d"
	MsgInvalidField    = "Field %s tidak valid: %s"
	MsgLeadsFetched    = "Daftar lead berhasil diambil"
	MsgFidFetched      = "Data FID berhasil diambil"
	MsgInternalError   = "Terjadi kesalahan pada server"
	MsgInvalidSalesID  = "sales_id wajib diisi"
	MsgSalesNotFound   = "Data sales tidak ditemukan"
	MsgSalesCreated    = "Data sales berhasil dibuat"
	MsgSalesUpdated    = "Data sales berhasil diperbarui"
	MsgSalesListLoaded = "Daftar sales berhasil diambil"
)

var Default = language.Indonesian

var supported = []language.Tag{language.Indonesian, language.English}

var matcher = language.NewMatcher(supported)

var english = map[string]string{
	MsgNotPermitted:    "Not permitted",
	MsgNotFound:        "%s %s not found",
	MsgFidProxyFailed:  "Failed to fetch FID data through the backend proxy: %s",
	MsgFidInvalidJSON:  "FID response is not valid JSON",
	MsgUpstreamStatus:  "upstream status %d",
	MsgInvalidField:    "Invalid field %s: %s",
	MsgLeadsFetched:    "Leads fetched successfully",
	MsgFidFetched:      "FID data fetched successfully",
	MsgInternalError:   "Internal server error",
	MsgInvalidSalesID:  "sales_id is required",
	MsgSalesNotFound:   "Sales record not found",
	MsgSalesCreated:    "Sales record created",
	MsgSalesUpdated:    "Sales record updated",
	MsgSalesListLoaded: "Sales records fetched successfully",
}

func init() {
	for key, en := range english {
		_ = message.SetString(language.Indonesian, key, key)
		_ = message.SetString(language.English, key, en)
	}
}

// Match memilih bahasa yang didukung dari header Accept-Language.
func Match(acceptLanguage string) language.Tag {
	acceptLanguage = strings.TrimSpace(acceptLanguage)
	if acceptLanguage == "" {
		return Default
	}
	_, idx := language.MatchStrings(matcher, acceptLanguage)
	return supported[idx]
}

// Message adalah pesan yang belum dirender; argumen bertipe Message ikut dirender.
type Message struct {
	Key  string
	Args []any
}

func New(key string, args ...any) Message {
	return Message{Key: key, Args: args}
}

func (m Message) In(tag language.Tag) string {
	args := make([]any, len(m.Args))
	for i, a := range m.Args {
		if nested, ok := a.(Message); ok {
			args[i] = nested.In(tag)
			continue
		}
		args[i] = a
	}
	return message.NewPrinter(tag).Sprintf(m.Key, args...)
}

func (m Message) String() string { return m.In(Default) }

func T(tag language.Tag, key string, args ...any) string {
	return New(key, args...).In(tag)
}
