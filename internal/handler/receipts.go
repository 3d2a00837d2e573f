package handler

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/Sculsor/Macathon2026/internal/receipt"
)

type receiptRequest struct {
	Receipt *receipt.Receipt `json:"receipt"`
}

type compareRequest struct {
	Receipt   *receipt.Receipt `json:"receipt"`
	Certified *receipt.Receipt `json:"certified"`
}

// ReceiptsHandler /api/receipts/*
type ReceiptsHandler struct {
	service ReceiptService
	log     *zap.Logger
}

func NewReceiptsHandler(service ReceiptService, log *zap.Logger) *ReceiptsHandler {
	return &ReceiptsHandler{service: service, log: log}
}

func (h *ReceiptsHandler) Hash(w http.ResponseWriter, r *http.Request) {
	rc, ok := h.decodeReceipt(w, r)
	if !ok {
		return
	}
	writeJSON(w, h.log, http.StatusOK, h.service.Hash(rc))
}

func (h *ReceiptsHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	rc, ok := h.decodeReceipt(w, r)
	if !ok {
		return
	}
	writeJSON(w, h.log, http.StatusOK, h.service.Analyze(rc))
}

func (h *ReceiptsHandler) Compare(w http.ResponseWriter, r *http.Request) {
	var req compareRequest
	if status, err := decodeJSON(r, &req); err != nil {
		logAndWriteError(w, h.log, err, status, err.Error())
		return
	}
	if req.Receipt == nil || req.Certified == nil {
		logAndWriteError(w, h.log, errNoReceipt, http.StatusBadRequest, "receipt and certified are required")
		return
	}
	writeJSON(w, h.log, http.StatusOK, h.service.Compare(*req.Receipt, *req.Certified))
}

func (h *ReceiptsHandler) decodeReceipt(w http.ResponseWriter, r *http.Request) (receipt.Receipt, bool) {
	var req receiptRequest
	if status, err := decodeJSON(r, &req); err != nil {
		logAndWriteError(w, h.log, err, status, err.Error())
		return receipt.Receipt{}, false
	}
	if req.Receipt == nil {
		logAndWriteError(w, h.log, errNoReceipt, http.StatusBadRequest, errNoReceipt.Error())
		return receipt.Receipt{}, false
	}
	return *req.Receipt, true
}
