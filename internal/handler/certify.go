package handler

import (
	"errors"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/Sculsor/Macathon2026/internal/certifier"
	"github.com/Sculsor/Macathon2026/internal/model"
	"github.com/Sculsor/Macathon2026/internal/receipt"
)

var errNothingToCertify = errors.New("either hash or receipt is required")

type certifyRequest struct {
	Hash    string           `json:"hash"`
	Receipt *receipt.Receipt `json:"receipt"`
}

// CertifyHandler POST /api/certify
type CertifyHandler struct {
	service CertifyService
	log     *zap.Logger
}

func NewCertifyHandler(service CertifyService, log *zap.Logger) *CertifyHandler {
	return &CertifyHandler{service: service, log: log}
}

// Certify записывает хеш или квитанцию. Хеш имеет приоритет, если переданы оба.
// 400 неверный запрос, 502 отправка или подтверждение не удались.
func (h *CertifyHandler) Certify(w http.ResponseWriter, r *http.Request) {
	var req certifyRequest
	if status, err := decodeJSON(r, &req); err != nil {
		logAndWriteError(w, h.log, err, status, err.Error())
		return
	}

	var (
		res model.Certification
		err error
	)
	switch {
	case strings.TrimSpace(req.Hash) != "":
		res, err = h.service.CertifyHash(r.Context(), req.Hash)
	case req.Receipt != nil:
		res, err = h.service.CertifyReceipt(r.Context(), *req.Receipt)
	default:
		logAndWriteError(w, h.log, errNothingToCertify, http.StatusBadRequest, errNothingToCertify.Error())
		return
	}

	if err != nil {
		status, msg := certifyErrorStatus(err)
		logAndWriteError(w, h.log, err, status, msg)
		return
	}

	h.log.Info("receipt certified", zap.String("signature", res.Signature), zap.String("hash", res.Hash))
	writeJSON(w, h.log, http.StatusOK, res)
}

func certifyErrorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, certifier.ErrInvalidArgument):
		return http.StatusBadRequest, "hash must not be empty"
	case errors.Is(err, certifier.ErrSubmissionFailed):
		return http.StatusBadGateway, "memo transaction failed"
	default:
		return http.StatusServiceUnavailable, "certification unavailable"
	}
}
