// Package apperror berisi error domain yang dibedakan per jenis di layer HTTP.
package apperror

import (
	"errors"

	"crm_backend/internals/helpers/i18n"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/text/language"
)

// Localized dipenuhi oleh semua error di paket ini.
type Localized interface {
	error
	StatusCode() int
	Localize(tag language.Tag) string
}

// AuthorizationError: cek permission gagal. Tidak di-retry, tidak dicatat khusus.
type AuthorizationError struct {
	Doctype string
	Action  string
	Target  string
}

func (e *AuthorizationError) Error() string { return e.Localize(i18n.Default) }

func (e *AuthorizationError) StatusCode() int { return fiber.StatusForbidden }

func (e *AuthorizationError) Localize(tag language.Tag) string {
	return i18n.T(tag, i18n.MsgNotPermitted)
}

// UpstreamError: panggilan HTTP keluar / decode JSON gagal.
type UpstreamError struct {
	Message i18n.Message
	Err     error
}

func (e *UpstreamError) Error() string { return e.Message.String() }

func (e *UpstreamError) Unwrap() error { return e.Err }

func (e *UpstreamError) StatusCode() int { return fiber.StatusBadGateway }

func (e *UpstreamError) Localize(tag language.Tag) string { return e.Message.In(tag) }

// NotFoundError: record link tidak ditemukan (mis. User saat pre-save).
type NotFoundError struct {
	Doctype string
	Name    string
}

func (e *NotFoundError) Error() string { return e.Localize(i18n.Default) }

func (e *NotFoundError) StatusCode() int { return fiber.StatusNotFound }

func (e *NotFoundError) Localize(tag language.Tag) string {
	return i18n.T(tag, i18n.MsgNotFound, e.Doctype, e.Name)
}

// ValidationError: input (field/kolom) ditolak sebelum menyentuh DB.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string { return e.Localize(i18n.Default) }

func (e *ValidationError) StatusCode() int { return fiber.StatusBadRequest }

func (e *ValidationError) Localize(tag language.Tag) string {
	return i18n.T(tag, i18n.MsgInvalidField, e.Field, e.Reason)
}

func IsAuthorization(err error) bool {
	var target *AuthorizationError
	return errors.As(err, &target)
}

func IsUpstream(err error) bool {
	var target *UpstreamError
	return errors.As(err, &target)
}

func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}
