package middlewares

import (
	"net/http"

	"go.uber.org/zap"
)

// ConcurrencyLimiter отклоняет запрос с 429, если уже обрабатывается maxConcurrent запросов.
// maxConcurrent <= 0 отключает ограничение.
func ConcurrencyLimiter(maxConcurrent int, log *zap.Logger) func(next http.Handler) http.Handler {
	if maxConcurrent <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}

	slots := make(chan struct{}, maxConcurrent)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case slots <- struct{}{}:
				defer func() { <-slots }()
				next.ServeHTTP(w, r)
			default:
				log.Warn("too many concurrent requests", zap.String("uri", r.URL.Path), zap.Int("limit", maxConcurrent))
				http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
			}
		})
	}
}
