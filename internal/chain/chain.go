// Package chain содержит интерфейсы к Solana RPC, которыми пользуются certifier и verifier,
// и конструктор клиента для выбранного кластера.
package chain

import (
	"context"
	"fmt"
	"strings"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
)

//go:generate mockgen -destination=../mocks/chain_mock.go -package=mocks github.com/Sculsor/Macathon2026/internal/chain Submitter,Fetcher,HealthClient

// DefaultEndpoint публичный тестовый кластер
const DefaultEndpoint = "https://api.devnet.solana.com"

const healthOK = "ok"

// Submitter отправка транзакции и ожидание подтверждения
type Submitter interface {
	GetLatestBlockhash(ctx context.Context, commitment rpc.CommitmentType) (*rpc.GetLatestBlockhashResult, error)
	SendTransactionWithOpts(ctx context.Context, transaction *solana.Transaction, opts rpc.TransactionOpts) (solana.Signature, error)
	GetSignatureStatuses(ctx context.Context, searchTransactionHistory bool, transactionSignatures ...solana.Signature) (*rpc.GetSignatureStatusesResult, error)
}

// Fetcher произвольный JSON-RPC вызов с разбором ответа в out
type Fetcher interface {
	RPCCallForInto(ctx context.Context, out interface{}, method string, params []interface{}) error
}

// HealthClient проверка состояния узла
type HealthClient interface {
	GetHealth(ctx context.Context) (string, error)
}

// NewClient создает RPC клиент для endpoint, пустая строка означает DefaultEndpoint
func NewClient(endpoint string) *rpc.Client {
	endpoint = strings.TrimSpace(endpoint)
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return rpc.New(endpoint)
}

// HealthChecker адаптер getHealth к ping-хендлеру
type HealthChecker struct {
	client HealthClient
}

func NewHealthChecker(client HealthClient) *HealthChecker {
	return &HealthChecker{client: client}
}

func (h *HealthChecker) Ping(ctx context.Context) error {
	status, err := h.client.GetHealth(ctx)
	if err != nil {
		return fmt.Errorf("rpc health check failed: %w", err)
	}
	if status != healthOK {
		return fmt.Errorf("rpc node is unhealthy: %s", status)
	}
	return nil
}
