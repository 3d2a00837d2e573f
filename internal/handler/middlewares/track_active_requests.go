package middlewares

import (
	"context"
	"net/http"
	"sync"
)

// ActiveRequests учитывает запросы в обработке, чтобы при остановке дождаться их завершения
type ActiveRequests struct {
	wg      sync.WaitGroup
	mu      sync.RWMutex
	closing bool
}

func NewActiveRequests() *ActiveRequests {
	return &ActiveRequests{}
}

// Middleware после начала остановки новые запросы получают 503
func (a *ActiveRequests) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		a.mu.RLock()
		if a.closing {
			a.mu.RUnlock()
			http.Error(w, "Server is shutting down", http.StatusServiceUnavailable)
			return
		}
		a.wg.Add(1)
		a.mu.RUnlock()

		defer a.wg.Done()
		next.ServeHTTP(w, r)
	})
}

// Drain запрещает новые запросы и ждет текущие, не дольше ctx
func (a *ActiveRequests) Drain(ctx context.Context) error {
	a.mu.Lock()
	a.closing = true
	a.mu.Unlock()

	done := make(chan struct{})
	go func() {
		a.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
