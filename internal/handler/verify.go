package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/Sculsor/Macathon2026/internal/receipt"
)

var errNoReceipt = errors.New("receipt is required")

type verifyRequest struct {
	Signature string           `json:"signature"`
	Receipt   *receipt.Receipt `json:"receipt"`
}

// VerifyHandler отвечает 200 и в случае, когда запись не найдена
type VerifyHandler struct {
	service VerifyService
	log     *zap.Logger
}

func NewVerifyHandler(service VerifyService, log *zap.Logger) *VerifyHandler {
	return &VerifyHandler{service: service, log: log}
}

// GetVerify GET /api/verify/{signature}
func (h *VerifyHandler) GetVerify(w http.ResponseWriter, r *http.Request) {
	signature := chi.URLParam(r, "signature")
	writeJSON(w, h.log, http.StatusOK, h.service.Verify(r.Context(), signature))
}

// PostVerify POST /api/verify: без receipt ведет себя как GetVerify
func (h *VerifyHandler) PostVerify(w http.ResponseWriter, r *http.Request) {
	var req verifyRequest
	if status, err := decodeJSON(r, &req); err != nil {
		logAndWriteError(w, h.log, err, status, err.Error())
		return
	}

	if req.Receipt == nil {
		writeJSON(w, h.log, http.StatusOK, h.service.Verify(r.Context(), req.Signature))
		return
	}
	writeJSON(w, h.log, http.StatusOK, h.service.VerifyReceipt(r.Context(), req.Signature, *req.Receipt))
}
