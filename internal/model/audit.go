package model

import "time"

// Action тип операции с мемо-записью
type Action string

const (
	ActionCertify Action = "certify"
	ActionVerify  Action = "verify"
)

// ReceiptEvent - событие сертификации или проверки квитанции
type ReceiptEvent struct {
	Timestamp time.Time `json:"-"`  // Внутреннее представление времени
	Ts        int64     `json:"ts"` // Unix timestamp в миллисекундах
	Action    Action    `json:"action"`
	Signature string    `json:"signature,omitempty"`
	Memo      string    `json:"memo,omitempty"`
	Success   bool      `json:"success"`
	Error     string    `json:"error,omitempty"`
}

// NewReceiptEvent заполняет время события
func NewReceiptEvent(action Action, now time.Time) ReceiptEvent {
	return ReceiptEvent{
		Timestamp: now,
		Ts:        now.UnixMilli(),
		Action:    action,
	}
}
