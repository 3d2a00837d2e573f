package observers

import (
	"github.com/Sculsor/Macathon2026/internal/model"
	"go.uber.org/zap"
)

type EventLogger struct {
	logger *zap.Logger
}

func NewEventLogger(logger *zap.Logger) *EventLogger {
	return &EventLogger{
		logger: logger,
	}
}

func (m *EventLogger) OnReceiptEvent(event model.ReceiptEvent) {
	fields := []zap.Field{
		zap.String("action", string(event.Action)),
		zap.String("signature", event.Signature),
		zap.String("memo", event.Memo),
	}

	if !event.Success {
		m.logger.Warn("receipt event failed", append(fields, zap.String("error", event.Error))...)
		return
	}
	m.logger.Info("receipt event processed", fields...)
}
