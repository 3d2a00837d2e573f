package observers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/Sculsor/Macathon2026/internal/model"
	"github.com/Sculsor/Macathon2026/internal/retry"
)

const deliveryTimeout = 30 * time.Second

// HTTPObserver отправляет события в webhook. Доставка не гарантируется:
// 5xx и сетевые ошибки повторяются несколько раз, 4xx нет.
type HTTPObserver struct {
	url    string
	log    *zap.Logger
	client *http.Client
	policy retry.Policy

	mu     sync.Mutex
	closed bool
	wg     sync.WaitGroup
}

func NewHTTPObserver(url string, log *zap.Logger) *HTTPObserver {
	return &HTTPObserver{
		url: url,
		client: &http.Client{
			Timeout: 10 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        10,
				IdleConnTimeout:     30 * time.Second,
				MaxIdleConnsPerHost: 10,
			},
		},
		policy: retry.Policy{Attempts: 3},
		log:    log,
	}
}

// OnReceiptEvent после Close события отбрасываются
func (h *HTTPObserver) OnReceiptEvent(event model.ReceiptEvent) {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		h.log.Debug("Webhook closed, event dropped", zap.String("action", string(event.Action)))
		return
	}
	h.wg.Add(1)
	h.mu.Unlock()

	go func() {
		defer h.wg.Done()
		h.send(event)
	}()
}

// Wait ждет завершения отправки всех событий
func (h *HTTPObserver) Wait() {
	h.wg.Wait()
}

// Close дожидается отправки и закрывает простаивающие соединения
func (h *HTTPObserver) Close() error {
	h.mu.Lock()
	h.closed = true
	h.mu.Unlock()

	h.wg.Wait()
	h.client.CloseIdleConnections()
	return nil
}

func (h *HTTPObserver) send(event model.ReceiptEvent) {
	jsonData, err := json.Marshal(event)
	if err != nil {
		h.log.Error("Failed to marshal event", zap.Error(err))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), deliveryTimeout)
	defer cancel()

	err = retry.Do(ctx, h.policy, func(ctx context.Context) error {
		return h.post(ctx, jsonData)
	})
	if err != nil {
		h.log.Warn("Failed to deliver event",
			zap.String("action", string(event.Action)),
			zap.String("signature", event.Signature),
			zap.Error(err),
		)
	}
}

func (h *HTTPObserver) post(ctx context.Context, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.url, bytes.NewReader(body))
	if err != nil {
		return retry.Permanent(fmt.Errorf("failed to create request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := h.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send event: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		err := fmt.Errorf("webhook rejected event: status %d: %s", resp.StatusCode, respBody)
		if resp.StatusCode < http.StatusInternalServerError {
			return retry.Permanent(err)
		}
		return err
	}

	h.log.Debug("Event delivered", zap.Int("status", resp.StatusCode))
	return nil
}
