package helper

import (
	"errors"

	"crm_backend/internals/helpers/apperror"
	"crm_backend/internals/helpers/i18n"
	"crm_backend/internals/helpers/logs"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/language"
)

// Lang mengambil bahasa response dari Accept-Language.
func Lang(c *fiber.Ctx) language.Tag {
	return i18n.Match(c.Get(fiber.HeaderAcceptLanguage))
}

// FromAppError mengubah error service menjadi response JSON konsisten:
// apperror.* → status sesuai jenis + pesan terlokalisasi,
// *fiber.Error → kode & pesan apa adanya, selain itu 500.
func FromAppError(c *fiber.Ctx, err error) error {
	var le apperror.Localized
	if errors.As(err, &le) {
		return JsonError(c, le.StatusCode(), le.Localize(Lang(c)))
	}
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return JsonError(c, fe.Code, fe.Message)
	}
	if status, msg, ok := MapPGError(err); ok {
		return JsonError(c, status, msg)
	}
	logs.Get(logs.Error).WithFields(logrus.Fields{
		"method": c.Method(),
		"path":   c.OriginalURL(),
		"reqid":  c.Locals("reqid"),
	}).Error(err)
	return JsonError(c, fiber.StatusInternalServerError, i18n.T(Lang(c), i18n.MsgInternalError))
}

// ErrorHandler dipasang di fiber.Config agar error dari middleware (JWT, dsb) ikut format JSON.
func ErrorHandler(c *fiber.Ctx, err error) error {
	return FromAppError(c, err)
}
