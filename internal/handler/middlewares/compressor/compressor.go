// Package compressor gzip для тел запросов и ответов.
package compressor

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"
)

var (
	// ErrUnsupportedEncoding тело сжато чем-то кроме gzip
	ErrUnsupportedEncoding = errors.New("unsupported content encoding")
	// ErrCorruptBody заголовок gzip не читается
	ErrCorruptBody = errors.New("invalid gzip request body")
)

// Codec распаковывает тело запроса и оборачивает writer ответа.
// Writer, который нужно закрыть после обработки, реализует io.Closer.
type Codec interface {
	WrapResponse(w http.ResponseWriter, r *http.Request) http.ResponseWriter
	UnwrapRequest(r *http.Request) error
}

// Compress ошибки распаковки отдаются тем же JSON, что и ошибки API:
// 415 для неизвестной кодировки, 400 для битого gzip
func Compress(codec Codec, log *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if err := codec.UnwrapRequest(r); err != nil {
				status := requestErrorStatus(err)
				log.Warn("request body rejected",
					zap.String("uri", r.URL.Path),
					zap.String("content_encoding", r.Header.Get("Content-Encoding")),
					zap.Int("status", status),
					zap.Error(err),
				)
				writeError(w, status, err)
				return
			}

			rw := codec.WrapResponse(w, r)
			if closer, ok := rw.(interface{ Close() error }); ok {
				defer func() {
					if err := closer.Close(); err != nil && !errors.Is(err, http.ErrAbortHandler) {
						log.Error("failed to finish compressed response", zap.String("uri", r.URL.Path), zap.Error(err))
					}
				}()
			}

			next.ServeHTTP(rw, r)
		})
	}
}

func requestErrorStatus(err error) int {
	if errors.Is(err, ErrUnsupportedEncoding) {
		return http.StatusUnsupportedMediaType
	}
	return http.StatusBadRequest
}

func writeError(w http.ResponseWriter, status int, err error) {
	msg := ErrCorruptBody.Error()
	if errors.Is(err, ErrUnsupportedEncoding) {
		msg = ErrUnsupportedEncoding.Error()
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(struct {
		Error string `json:"error"`
	}{Error: msg})
}
