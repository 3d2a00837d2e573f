package model

import "time"

// Certification результат записи хеша квитанции в блокчейн
type Certification struct {
	Signature string `json:"signature"`
	Memo      string `json:"memo"`
	Hash      string `json:"hash"`
}

// Lookup результат поиска мемо-записи по подписи.
// Reason заполняется только когда запись не найдена.
type Lookup struct {
	Signature string     `json:"signature"`
	Found     bool       `json:"found"`
	Memo      string     `json:"memo,omitempty"`
	Slot      uint64     `json:"slot,omitempty"`
	BlockTime *time.Time `json:"block_time,omitempty"`
	Reason    string     `json:"reason,omitempty"`
}

// ReceiptCheck результат сверки квитанции с мемо-записью транзакции
type ReceiptCheck struct {
	Lookup
	Verified     bool   `json:"verified"`
	Message      string `json:"message"`
	ReceiptHash  string `json:"receipt_hash"`
	ExpectedHash string `json:"expected_hash,omitempty"`
}

// ReceiptHash каноничный хеш квитанции и мемо, под которым он будет записан
type ReceiptHash struct {
	Hash string `json:"hash"`
	Memo string `json:"memo"`
}

// Comparison расхождения квитанции пользователя с сертифицированной
type Comparison struct {
	Match       bool     `json:"match"`
	Differences []string `json:"differences"`
}
