package handler

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const pingTimeout = 3 * time.Second

// PingHandler отвечает 200, если RPC-узел здоров, иначе 503
type PingHandler struct {
	checker HealthChecker
	log     *zap.Logger
}

func NewPingHandler(checker HealthChecker, log *zap.Logger) *PingHandler {
	return &PingHandler{checker: checker, log: log}
}

func (h *PingHandler) GetPing(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	if err := h.checker.Ping(ctx); err != nil {
		h.log.Warn("rpc node ping failed", zap.Error(err))
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}
	w.WriteHeader(http.StatusOK)
}
