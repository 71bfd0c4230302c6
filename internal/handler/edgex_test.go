package handler

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"edgetrack/internal/config"

	"github.com/stretchr/testify/require"
)

func newTestHandler(t *testing.T) *EdgeXHandler {
	t.Helper()

	path := filepath.Join(t.TempDir(), "secret.json")
	require.NoError(t, os.WriteFile(path,
		[]byte(`{"PRIVATE_KEY_HEX": "12345abcdef67890", "ACCOUNT_ID": "123456789"}`), 0600))

	t.Setenv("SECRET_FILE_PATH", path)
	require.NoError(t, config.Init())
	require.NoError(t, config.InitSecret())

	h, err := NewEdgeXHandler(nil)
	require.NoError(t, err)
	return h
}

func TestFundingMethodNotAllowed(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/edgex/funding", nil)
	rec := httptest.NewRecorder()
	h.Funding(rec, req)

	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestFundingInvalidDate(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/edgex/funding?from=01-02-2026", nil)
	rec := httptest.NewRecorder()
	h.Funding(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "invalid from date")
}

func TestFundingInvalidSize(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/edgex/funding?size=lots", nil)
	rec := httptest.NewRecorder()
	h.Funding(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "invalid size")
}

func TestFundingInvalidType(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/edgex/funding?type=BOGUS", nil)
	rec := httptest.NewRecorder()
	h.Funding(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "unknown transaction type")
}

func TestSummaryMethodNotAllowed(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodDelete, "/edgex/summary", nil)
	rec := httptest.NewRecorder()
	h.Summary(rec, req)

	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
