package handler

import (
	"context"

	"github.com/Sculsor/Macathon2026/internal/model"
	"github.com/Sculsor/Macathon2026/internal/receipt"
)

//go:generate mockgen -destination=../mocks/handler_mock.go -package=mocks github.com/Sculsor/Macathon2026/internal/handler HealthChecker,CertifyService,VerifyService,ReceiptService

// HealthChecker проверка доступности RPC-узла
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// CertifyService запись хеша квитанции в блокчейн
type CertifyService interface {
	// CertifyHash записывает готовый хеш.
	CertifyHash(ctx context.Context, hash string) (model.Certification, error)

	// CertifyReceipt считает каноничный хеш квитанции и записывает его.
	CertifyReceipt(ctx context.Context, r receipt.Receipt) (model.Certification, error)
}

// VerifyService поиск мемо-записи. Ошибок не возвращает: запись либо найдена, либо нет.
type VerifyService interface {
	Verify(ctx context.Context, signature string) model.Lookup
	VerifyReceipt(ctx context.Context, signature string, r receipt.Receipt) model.ReceiptCheck
}

// ReceiptService операции над квитанцией без обращения к сети
type ReceiptService interface {
	Hash(r receipt.Receipt) model.ReceiptHash
	Analyze(r receipt.Receipt) receipt.Analysis
	Compare(user, certified receipt.Receipt) model.Comparison
}
