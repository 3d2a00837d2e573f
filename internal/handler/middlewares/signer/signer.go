// Package signer проверяет подпись тела запроса в заголовке HashSHA256
// и подписывает тело ответа тем же ключом.
package signer

import (
	"bytes"
	"errors"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/Sculsor/Macathon2026/pkg/objpool"
)

const (
	HeaderHash = "HashSHA256"

	// MaxBodySize предел тела, которое читается целиком ради проверки подписи
	MaxBodySize = 1 << 20

	// буферы крупнее не возвращаются в пул
	maxPooledBody = 64 << 10
)

var writerPool = objpool.New(func() *bufferedWriter {
	return &bufferedWriter{header: make(http.Header), status: http.StatusOK}
}, func(b *bufferedWriter) bool {
	return b.body.Cap() <= maxPooledBody
})

type Signer interface {
	Sign(data []byte) string
	Verify(data []byte, expectedHash string) bool
}

// HashValidationMiddleware signer == nil отключает проверку
func HashValidationMiddleware(signer Signer, log *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if signer == nil {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxBodySize))
			r.Body.Close()
			if err != nil {
				var tooLarge *http.MaxBytesError
				if errors.As(err, &tooLarge) {
					log.Warn("request body too large", zap.String("uri", r.URL.Path), zap.Int64("limit", tooLarge.Limit))
					http.Error(w, "request body too large", http.StatusRequestEntityTooLarge)
					return
				}
				http.Error(w, "failed to read request body", http.StatusBadRequest)
				return
			}
			r.Body = io.NopCloser(bytes.NewReader(body))

			givenHash := r.Header.Get(HeaderHash)
			if givenHash == "" {
				log.Warn("request body signature missing", zap.String("uri", r.URL.Path))
				http.Error(w, "missing "+HeaderHash+" header", http.StatusBadRequest)
				return
			}

			if !signer.Verify(body, givenHash) {
				log.Warn("request body signature mismatch", zap.String("uri", r.URL.Path))
				http.Error(w, "invalid body signature", http.StatusBadRequest)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// HashResponseMiddleware буферизует ответ и добавляет его подпись в заголовок
func HashResponseMiddleware(signer Signer) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if signer == nil {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			buf := writerPool.Get()
			defer writerPool.Put(buf)
			next.ServeHTTP(buf, r)

			for k, vs := range buf.header {
				for _, v := range vs {
					w.Header().Add(k, v)
				}
			}
			w.Header().Set(HeaderHash, signer.Sign(buf.body.Bytes()))
			w.WriteHeader(buf.status)
			_, _ = w.Write(buf.body.Bytes())
		})
	}
}

type bufferedWriter struct {
	header      http.Header
	body        bytes.Buffer
	status      int
	wroteHeader bool
}

// Reset готовит writer к повторному использованию из пула
func (b *bufferedWriter) Reset() {
	for k := range b.header {
		delete(b.header, k)
	}
	b.body.Reset()
	b.status = http.StatusOK
	b.wroteHeader = false
}

func (b *bufferedWriter) Header() http.Header {
	return b.header
}

func (b *bufferedWriter) WriteHeader(status int) {
	if b.wroteHeader {
		return
	}
	b.wroteHeader = true
	b.status = status
}

func (b *bufferedWriter) Write(p []byte) (int, error) {
	b.wroteHeader = true
	return b.body.Write(p)
}
