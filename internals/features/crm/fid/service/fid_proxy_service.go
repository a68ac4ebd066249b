// file: internals/features/crm/fid/service/fid_proxy_service.go
package service

import (
	"context"
	"errors"
	"fmt"

	"crm_backend/internals/configs"
	errorLogService "crm_backend/internals/features/crm/error_logs/service"
	"crm_backend/internals/helpers/apperror"
	"crm_backend/internals/helpers/i18n"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
)

// angka dibiarkan sebagai json.Number supaya id nasabah panjang tidak terpotong float64
var fidJSON = sonic.Config{UseNumber: true}.Froze()

// Judul entry error_logs untuk semua kegagalan proxy FID.
const ErrorLogTitle = "FID Proxy Error"

/*
FidProxyService: satu GET ke webhook FID, tanpa retry & tanpa cache.
Bentuk payload yang diterima:
  - {"nasabah": [...]} -> isi nasabah
  - [...]              -> apa adanya
  - lainnya            -> []
*/
type FidProxyService struct {
	Config   configs.FidProxyConfig
	Recorder errorLogService.ErrorRecorder
}

func NewFidProxyService(cfg configs.FidProxyConfig, rec errorLogService.ErrorRecorder) *FidProxyService {
	return &FidProxyService{Config: cfg, Recorder: rec}
}

// errInvalidJSON: pembeda kegagalan decode dari kegagalan transport.
var errInvalidJSON = errors.New("fid: invalid json body")

func (s *FidProxyService) Fetch(ctx context.Context) ([]any, error) {
	status, body, err := s.get()
	if err != nil {
		return nil, s.fail(ctx, i18n.New(i18n.MsgFidProxyFailed, err.Error()), err, status)
	}
	if status < 200 || status > 299 {
		reason := i18n.New(i18n.MsgUpstreamStatus, status)
		return nil, s.fail(ctx, i18n.New(i18n.MsgFidProxyFailed, reason), fmt.Errorf("fid: %s", reason.String()), status)
	}

	var payload any
	if err := fidJSON.Unmarshal(body, &payload); err != nil {
		return nil, s.fail(ctx,
			i18n.New(i18n.MsgFidProxyFailed, i18n.New(i18n.MsgFidInvalidJSON)),
			fmt.Errorf("%w: %v", errInvalidJSON, err),
			status,
		)
	}
	return NormalizeFidPayload(payload), nil
}

func (s *FidProxyService) get() (int, []byte, error) {
	agent := fiber.Get(s.Config.URL).Timeout(s.Config.Timeout)
	status, body, errs := agent.Bytes()
	if len(errs) > 0 {
		return status, nil, errors.Join(errs...)
	}
	return status, body, nil
}

// fail: catat tepat satu entry error_logs lalu bungkus jadi UpstreamError.
func (s *FidProxyService) fail(ctx context.Context, msg i18n.Message, cause error, status int) error {
	if s.Recorder != nil {
		s.Recorder.Record(ctx, ErrorLogTitle, cause, map[string]any{
			"url":    s.Config.URL,
			"status": status,
		})
	}
	return &apperror.UpstreamError{Message: msg, Err: cause}
}

// NormalizeFidPayload menyeragamkan payload FID menjadi list.
func NormalizeFidPayload(payload any) []any {
	switch v := payload.(type) {
	case []any:
		return v
	case map[string]any:
		if list, ok := v["nasabah"].([]any); ok {
			return list
		}
	}
	return []any{}
}
