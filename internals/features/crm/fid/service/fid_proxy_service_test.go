package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"crm_backend/internals/configs"
	"crm_backend/internals/helpers/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

type recordedError struct {
	title  string
	err    error
	fields map[string]any
}

type fakeRecorder struct {
	entries []recordedError
}

func (f *fakeRecorder) Record(_ context.Context, title string, err error, fields map[string]any) {
	f.entries = append(f.entries, recordedError{title, err, fields})
}

func upstream(t *testing.T, status int, body string) string {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv.URL
}

func newService(url string, rec *fakeRecorder) *FidProxyService {
	return NewFidProxyService(configs.FidProxyConfig{URL: url, Timeout: 2 * time.Second}, rec)
}

func TestFetch_NormalizesPayloadShapes(t *testing.T) {
	cases := []struct {
		name string
		body string
		want []any
	}{
		{"object nasabah", `{"nasabah":[1,2,3]}`, []any{json.Number("1"), json.Number("2"), json.Number("3")}},
		{"bare list", `[1,2,3]`, []any{json.Number("1"), json.Number("2"), json.Number("3")}},
		{"angka besar", `{"nasabah":[1234567890123456789,{"rek":98765432109876543210}]}`,
			[]any{json.Number("1234567890123456789"), map[string]any{"rek": json.Number("98765432109876543210")}}},
		{"object lain", `{"foo":"bar"}`, []any{}},
		{"nasabah bukan list", `{"nasabah":"x"}`, []any{}},
		{"scalar", `42`, []any{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := &fakeRecorder{}
			got, err := newService(upstream(t, http.StatusOK, tc.body), rec).Fetch(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
			assert.Empty(t, rec.entries)
		})
	}
}

func TestFetch_NonJSONBodyIsUpstreamErrorLoggedOnce(t *testing.T) {
	rec := &fakeRecorder{}
	got, err := newService(upstream(t, http.StatusOK, "<html>bad gateway</html>"), rec).Fetch(context.Background())

	assert.Nil(t, got)
	require.True(t, apperror.IsUpstream(err))
	require.Len(t, rec.entries, 1)
	assert.Equal(t, ErrorLogTitle, rec.entries[0].title)

	var ue *apperror.UpstreamError
	require.ErrorAs(t, err, &ue)
	assert.Equal(t,
		"Gagal mengambil data FID melalui proxy backend: Respon FID bukan JSON yang valid",
		ue.Localize(language.Indonesian))
	assert.Equal(t,
		"Failed to fetch FID data through the backend proxy: FID response is not valid JSON",
		ue.Localize(language.English))
}

func TestFetch_Non2xxIsUpstreamError(t *testing.T) {
	rec := &fakeRecorder{}
	_, err := newService(upstream(t, http.StatusInternalServerError, `{"nasabah":[1]}`), rec).Fetch(context.Background())

	require.True(t, apperror.IsUpstream(err))
	require.Len(t, rec.entries, 1)
	assert.Equal(t, http.StatusInternalServerError, rec.entries[0].fields["status"])

	var ue *apperror.UpstreamError
	require.ErrorAs(t, err, &ue)
	assert.Contains(t, ue.Localize(language.English), "upstream status 500")
}

func TestFetch_TimeoutIsUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(2 * time.Second):
		case <-r.Context().Done():
		}
		_, _ = w.Write([]byte(`[]`))
	}))
	t.Cleanup(srv.Close)

	rec := &fakeRecorder{}
	svc := NewFidProxyService(configs.FidProxyConfig{URL: srv.URL, Timeout: 100 * time.Millisecond}, rec)

	_, err := svc.Fetch(context.Background())
	require.True(t, apperror.IsUpstream(err))
	assert.Len(t, rec.entries, 1)
}

func TestNormalizeFidPayload_Nil(t *testing.T) {
	assert.Equal(t, []any{}, NormalizeFidPayload(nil))
}
