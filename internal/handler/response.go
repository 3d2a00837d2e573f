package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// maxBodySize квитанция с позициями укладывается с большим запасом
const maxBodySize = 1 << 20

var errEmptyBody = errors.New("empty request body")

func writeJSON(w http.ResponseWriter, log *zap.Logger, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error("error encoding response", zap.Error(err))
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

// logAndWriteError логирует ошибку и отвечает клиенту JSON {"error": msg}
func logAndWriteError(w http.ResponseWriter, log *zap.Logger, err error, status int, msg string, fields ...zap.Field) {
	fields = append(fields, zap.Error(err), zap.Int("status", status))
	if status >= http.StatusInternalServerError {
		log.Error(msg, fields...)
	} else {
		log.Warn(msg, fields...)
	}
	writeJSON(w, log, status, errorResponse{Error: msg})
}

// decodeJSON требует application/json и непустое тело
func decodeJSON(r *http.Request, v interface{}) (int, error) {
	if ct := r.Header.Get("Content-Type"); !strings.Contains(ct, "application/json") {
		return http.StatusUnsupportedMediaType, fmt.Errorf("unsupported content type %q", ct)
	}

	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodySize))
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return http.StatusBadRequest, errEmptyBody
		}
		return http.StatusBadRequest, fmt.Errorf("invalid JSON in request: %w", err)
	}
	return http.StatusOK, nil
}
