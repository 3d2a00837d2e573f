package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/Sculsor/Macathon2026/internal/config"
	"github.com/Sculsor/Macathon2026/internal/handler/middlewares"
	"github.com/Sculsor/Macathon2026/internal/keypair"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()

	cfg := &config.ServerFlags{
		ChainFlags: config.ChainFlags{
			RPCURL:      "http://127.0.0.1:1",
			KeypairPath: t.TempDir() + "/missing.json",
			SolanaCLI:   "definitely-not-a-solana-cli",
		},
		ServerAddr: "127.0.0.1:0",
	}

	s, err := NewApp(cfg, zaptest.NewLogger(t))
	require.NoError(t, err)
	t.Cleanup(s.Close)
	return s
}

func TestNewApp_NilConfig(t *testing.T) {
	_, err := NewApp(nil, zaptest.NewLogger(t))
	require.Error(t, err)
}

func TestServer_CertificationDisabledWithoutKey(t *testing.T) {
	s := newTestServer(t)
	h := s.Handler(context.Background(), middlewares.NewActiveRequests())

	req := httptest.NewRequest(http.MethodPost, "/api/certify", strings.NewReader(`{"hash":"abc"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "certification unavailable")
}

func TestServer_OfflineRoutes(t *testing.T) {
	s := newTestServer(t)
	h := s.Handler(context.Background(), middlewares.NewActiveRequests())

	body := `{"receipt":{"merchant":"Starbucks","date":"2026-02-07","currency":"CAD","subtotal":5.15,"tax":0.60,"total":5.75}}`
	req := httptest.NewRequest(http.MethodPost, "/api/receipts/hash", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "c4a36a3456de33dadd49dd6d9695cf021073258e82c10d9385a31453f956ce73")

	body = `{"receipt":{"merchant":"CVS","date":null,"currency":null,"total":25}}`
	req = httptest.NewRequest(http.MethodPost, "/api/receipts/hash", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "48683914f4993c7ae0c6636911dea41392e1f82ddb410e22e1d997ae4da86896")

	req = httptest.NewRequest(http.MethodGet, "/api/verify/short", nil)
	w = httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"found":false`)
}

func TestDisabledCertifier(t *testing.T) {
	d := disabledCertifier{err: keypair.ErrKeyNotFound}
	_, err := d.Certify(context.Background(), "abc")
	assert.ErrorIs(t, err, keypair.ErrKeyNotFound)
}
