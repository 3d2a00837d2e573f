// Package app собирает компоненты, общие для CLI и HTTP-сервера:
// RPC-клиент, наблюдателей за событиями, certifier и verifier.
package app

import (
	"context"
	"fmt"

	"github.com/gagliardetto/solana-go/rpc"
	"go.uber.org/zap"

	"github.com/Sculsor/Macathon2026/internal/certifier"
	"github.com/Sculsor/Macathon2026/internal/chain"
	"github.com/Sculsor/Macathon2026/internal/config"
	"github.com/Sculsor/Macathon2026/internal/keypair"
	"github.com/Sculsor/Macathon2026/internal/observers"
	"github.com/Sculsor/Macathon2026/internal/verifier"
)

// App владеет RPC-клиентом и наблюдателями, Close освобождает их
type App struct {
	cfg       config.ChainFlags
	log       *zap.Logger
	client    *rpc.Client
	publisher *observers.EventPublisherImpl
	resources *ResourceGroup
}

func New(cfg config.ChainFlags, log *zap.Logger) *App {
	a := &App{
		cfg:       cfg,
		log:       log,
		client:    chain.NewClient(cfg.RPCURL),
		publisher: observers.NewEventPublisher(observers.NewEventLogger(log)),
		resources: NewResourceGroup(log),
	}
	a.resources.Register("rpc client", a.client)

	if cfg.WebhookURL != "" {
		webhook := observers.NewHTTPObserver(cfg.WebhookURL, log)
		a.publisher.Register(webhook)
		a.resources.Register("webhook", webhook)
	}

	log.Info("solana rpc client created",
		zap.String("endpoint", cfg.RPCURL),
		zap.Bool("webhook", cfg.WebhookURL != ""),
	)
	return a
}

// Certifier загружает ключ подписи. Отсутствие ключа возвращается как keypair.ErrKeyNotFound.
func (a *App) Certifier(ctx context.Context) (*certifier.Certifier, error) {
	resolver := keypair.NewResolver(keypair.Options{
		Override: a.cfg.KeypairPath,
		CLI:      a.cfg.SolanaCLI,
	}, a.log)

	key, _, err := resolver.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load signing key: %w", err)
	}

	c := certifier.New(a.client, key, certifier.Config{
		ConfirmTimeout: a.cfg.ConfirmTimeout,
		PollInterval:   a.cfg.PollInterval,
	}, a.log)
	c.SetPublisher(a.publisher)
	return c, nil
}

func (a *App) Verifier() *verifier.Verifier {
	v := verifier.New(a.client, a.log)
	v.SetPublisher(a.publisher)
	return v
}

func (a *App) HealthChecker() *chain.HealthChecker {
	return chain.NewHealthChecker(a.client)
}

func (a *App) Close() error {
	return a.resources.CloseAll()
}
