package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Sculsor/Macathon2026/internal/certifier"
	"github.com/Sculsor/Macathon2026/internal/config"
	"github.com/Sculsor/Macathon2026/internal/handler/middlewares"
	"github.com/Sculsor/Macathon2026/internal/handler/middlewares/signer"
	"github.com/Sculsor/Macathon2026/internal/mocks"
	"github.com/Sculsor/Macathon2026/internal/model"
	"github.com/Sculsor/Macathon2026/internal/receipt"
	"github.com/Sculsor/Macathon2026/internal/service/signerservice"
)

const signature = "5VERv8NMvzbJMEkV8xnrLkEaWRtSz9CosKDYjCJjBRnbJLgp8uirBgmQpjKhoR4tjF3ZpRzrFmBV6UjKdiSZkQUW"

const receiptJSON = `{"merchant":"Starbucks","date":"2026-02-07","currency":"CAD","subtotal":5.15,"tax":0.60,"total":5.75}`

type testServer struct {
	health   *mocks.MockHealthChecker
	certify  *mocks.MockCertifyService
	verify   *mocks.MockVerifyService
	receipts *mocks.MockReceiptService
	handler  http.Handler
}

func newTestServer(t *testing.T, cfg config.ServerFlags) *testServer {
	t.Helper()
	ctrl := gomock.NewController(t)

	ts := &testServer{
		health:   mocks.NewMockHealthChecker(ctrl),
		certify:  mocks.NewMockCertifyService(ctrl),
		verify:   mocks.NewMockVerifyService(ctrl),
		receipts: mocks.NewMockReceiptService(ctrl),
	}
	ts.handler = SetupHandler(Services{
		Health:   ts.health,
		Certify:  ts.certify,
		Verify:   ts.verify,
		Receipts: ts.receipts,
	}, middlewares.NewActiveRequests(), zap.NewNop(), cfg)
	return ts
}

func (ts *testServer) do(method, path, body string, headers ...string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	w := httptest.NewRecorder()
	ts.handler.ServeHTTP(w, req)
	return w
}

func starbucks(t *testing.T) receipt.Receipt {
	t.Helper()
	r, err := receipt.Decode([]byte(receiptJSON))
	require.NoError(t, err)
	return r
}

func TestPing(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "healthy", wantStatus: http.StatusOK},
		{name: "unhealthy", err: errors.New("rpc node is unhealthy: behind"), wantStatus: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServer(t, config.ServerFlags{})
			ts.health.EXPECT().Ping(gomock.Any()).Return(tt.err)

			w := ts.do(http.MethodGet, "/ping", "")
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestCertify(t *testing.T) {
	ok := model.Certification{Signature: signature, Memo: "DEEPFAKERECEIPT:abc", Hash: "abc"}

	tests := []struct {
		name       string
		body       string
		setup      func(ts *testServer)
		wantStatus int
		wantBody   string
	}{
		{
			name: "hash",
			body: `{"hash":"abc"}`,
			setup: func(ts *testServer) {
				ts.certify.EXPECT().CertifyHash(gomock.Any(), "abc").Return(ok, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"signature":"` + signature + `","memo":"DEEPFAKERECEIPT:abc","hash":"abc"}`,
		},
		{
			name: "receipt",
			body: `{"receipt":` + receiptJSON + `}`,
			setup: func(ts *testServer) {
				ts.certify.EXPECT().CertifyReceipt(gomock.Any(), starbucks(t)).Return(ok, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"signature":"` + signature + `","memo":"DEEPFAKERECEIPT:abc","hash":"abc"}`,
		},
		{
			name:       "nothing to certify",
			body:       `{"hash":"   "}`,
			setup:      func(ts *testServer) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"either hash or receipt is required"}`,
		},
		{
			name:       "broken json",
			body:       `{"hash":`,
			setup:      func(ts *testServer) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "invalid argument",
			body: `{"hash":"abc"}`,
			setup: func(ts *testServer) {
				ts.certify.EXPECT().CertifyHash(gomock.Any(), "abc").Return(model.Certification{}, certifier.ErrInvalidArgument)
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":"hash must not be empty"}`,
		},
		{
			name: "submission failed",
			body: `{"hash":"abc"}`,
			setup: func(ts *testServer) {
				err := &certifier.SubmissionError{Stage: certifier.StageSend, Err: errors.New("insufficient funds")}
				ts.certify.EXPECT().CertifyHash(gomock.Any(), "abc").Return(model.Certification{}, err)
			},
			wantStatus: http.StatusBadGateway,
			wantBody:   `{"error":"memo transaction failed"}`,
		},
		{
			name: "cancelled while waiting for a slot",
			body: `{"hash":"abc"}`,
			setup: func(ts *testServer) {
				ts.certify.EXPECT().CertifyHash(gomock.Any(), "abc").Return(model.Certification{}, context.Canceled)
			},
			wantStatus: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServer(t, config.ServerFlags{})
			tt.setup(ts)

			w := ts.do(http.MethodPost, "/api/certify", tt.body)
			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantBody != "" {
				assert.JSONEq(t, tt.wantBody, w.Body.String())
			}
		})
	}
}

func TestCertify_UnsupportedContentType(t *testing.T) {
	ts := newTestServer(t, config.ServerFlags{})

	req := httptest.NewRequest(http.MethodPost, "/api/certify", strings.NewReader(`{"hash":"abc"}`))
	req.Header.Set("Content-Type", "text/plain")
	w := httptest.NewRecorder()
	ts.handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnsupportedMediaType, w.Code)
}

func TestCertify_SignedRequests(t *testing.T) {
	cfg := config.ServerFlags{SecretKey: "secret"}
	s := signerservice.NewHMACSigner("secret")
	body := `{"hash":"abc"}`

	t.Run("unsigned request is rejected", func(t *testing.T) {
		ts := newTestServer(t, cfg)
		w := ts.do(http.MethodPost, "/api/certify", body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("signed request is served and the response is signed", func(t *testing.T) {
		ts := newTestServer(t, cfg)
		ts.certify.EXPECT().CertifyHash(gomock.Any(), "abc").
			Return(model.Certification{Signature: signature, Memo: "DEEPFAKERECEIPT:abc", Hash: "abc"}, nil)

		w := ts.do(http.MethodPost, "/api/certify", body, signer.HeaderHash, s.Sign([]byte(body)))
		require.Equal(t, http.StatusOK, w.Code)
		assert.True(t, s.Verify(w.Body.Bytes(), w.Header().Get(signer.HeaderHash)))
	})

	t.Run("other routes do not need a signature", func(t *testing.T) {
		ts := newTestServer(t, cfg)
		ts.verify.EXPECT().Verify(gomock.Any(), signature).Return(model.Lookup{Signature: signature})

		w := ts.do(http.MethodGet, "/api/verify/"+signature, "")
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestVerify(t *testing.T) {
	t.Run("get found", func(t *testing.T) {
		ts := newTestServer(t, config.ServerFlags{})
		ts.verify.EXPECT().Verify(gomock.Any(), signature).
			Return(model.Lookup{Signature: signature, Found: true, Memo: "DEEPFAKERECEIPT:abc", Slot: 7})

		w := ts.do(http.MethodGet, "/api/verify/"+signature, "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"signature":"`+signature+`","found":true,"memo":"DEEPFAKERECEIPT:abc","slot":7}`, w.Body.String())
	})

	t.Run("get absent is still 200", func(t *testing.T) {
		ts := newTestServer(t, config.ServerFlags{})
		ts.verify.EXPECT().Verify(gomock.Any(), "abc").
			Return(model.Lookup{Signature: "abc", Reason: "verifier: malformed transaction signature"})

		w := ts.do(http.MethodGet, "/api/verify/abc", "")
		require.Equal(t, http.StatusOK, w.Code)

		var got model.Lookup
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.False(t, got.Found)
		assert.Empty(t, got.Memo)
	})

	t.Run("post with receipt", func(t *testing.T) {
		ts := newTestServer(t, config.ServerFlags{})
		check := model.ReceiptCheck{
			Lookup:      model.Lookup{Signature: signature, Found: true, Memo: "DEEPFAKERECEIPT:abc"},
			Verified:    false,
			Message:     receipt.MessageNotVerified,
			ReceiptHash: "c4a3",
		}
		ts.verify.EXPECT().VerifyReceipt(gomock.Any(), signature, starbucks(t)).Return(check)

		w := ts.do(http.MethodPost, "/api/verify", `{"signature":"`+signature+`","receipt":`+receiptJSON+`}`)
		require.Equal(t, http.StatusOK, w.Code)

		var got map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, true, got["found"])
		assert.Equal(t, false, got["verified"])
		assert.Equal(t, receipt.MessageNotVerified, got["message"])
	})

	t.Run("post without receipt", func(t *testing.T) {
		ts := newTestServer(t, config.ServerFlags{})
		ts.verify.EXPECT().Verify(gomock.Any(), signature).Return(model.Lookup{Signature: signature})

		w := ts.do(http.MethodPost, "/api/verify", `{"signature":"`+signature+`"}`)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("post bad amount", func(t *testing.T) {
		ts := newTestServer(t, config.ServerFlags{})

		w := ts.do(http.MethodPost, "/api/verify", `{"signature":"`+signature+`","receipt":{"total":"lots"}}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestReceipts(t *testing.T) {
	t.Run("hash", func(t *testing.T) {
		ts := newTestServer(t, config.ServerFlags{})
		ts.receipts.EXPECT().Hash(starbucks(t)).Return(model.ReceiptHash{Hash: "h", Memo: "DEEPFAKERECEIPT:h"})

		w := ts.do(http.MethodPost, "/api/receipts/hash", `{"receipt":`+receiptJSON+`}`)
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"hash":"h","memo":"DEEPFAKERECEIPT:h"}`, w.Body.String())
	})

	t.Run("analyze", func(t *testing.T) {
		ts := newTestServer(t, config.ServerFlags{})
		ts.receipts.EXPECT().Analyze(starbucks(t)).Return(receipt.Analysis{
			Verdict:         receipt.VerdictLegit,
			Reasons:         []string{"Arithmetic checks passed"},
			ArithmeticValid: true,
			LineItemsValid:  true,
			Anomalies:       []string{},
		})

		w := ts.do(http.MethodPost, "/api/receipts/analyze", `{"receipt":`+receiptJSON+`}`)
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{
			"fraud_score": 0,
			"verdict": "Likely Legit",
			"reasons": ["Arithmetic checks passed"],
			"arithmetic_valid": true,
			"line_items_valid": true,
			"anomalies_found": []
		}`, w.Body.String())
	})

	t.Run("compare", func(t *testing.T) {
		ts := newTestServer(t, config.ServerFlags{})
		ts.receipts.EXPECT().Compare(starbucks(t), starbucks(t)).Return(model.Comparison{Match: true, Differences: []string{}})

		w := ts.do(http.MethodPost, "/api/receipts/compare", `{"receipt":`+receiptJSON+`,"certified":`+receiptJSON+`}`)
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"match":true,"differences":[]}`, w.Body.String())
	})

	t.Run("missing receipt", func(t *testing.T) {
		ts := newTestServer(t, config.ServerFlags{})

		w := ts.do(http.MethodPost, "/api/receipts/hash", `{}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)

		w = ts.do(http.MethodPost, "/api/receipts/compare", `{"receipt":`+receiptJSON+`}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("empty body", func(t *testing.T) {
		ts := newTestServer(t, config.ServerFlags{})

		req := httptest.NewRequest(http.MethodPost, "/api/receipts/analyze", bytes.NewReader(nil))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		ts.handler.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
