// Package server поднимает HTTP API сертификации и проверки квитанций.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gagliardetto/solana-go"
	"go.uber.org/zap"

	"github.com/Sculsor/Macathon2026/internal/app"
	"github.com/Sculsor/Macathon2026/internal/config"
	"github.com/Sculsor/Macathon2026/internal/handler"
	"github.com/Sculsor/Macathon2026/internal/handler/middlewares"
	"github.com/Sculsor/Macathon2026/internal/service/certifyservice"
	"github.com/Sculsor/Macathon2026/internal/service/receiptservice"
	"github.com/Sculsor/Macathon2026/internal/service/verifyservice"
)

const (
	shutdownTimeout = 30 * time.Second
	drainTimeout    = 10 * time.Second
)

type Server struct {
	cfg    *config.ServerFlags
	log    *zap.Logger
	app    *app.App
	server *http.Server
}

func NewApp(cfg *config.ServerFlags, log *zap.Logger) (*Server, error) {
	if cfg == nil {
		return nil, errors.New("server config is nil")
	}
	return &Server{
		cfg: cfg,
		log: log,
		app: app.New(cfg.ChainFlags, log),
	}, nil
}

// Handler собирает роутер со всеми сервисами
func (s *Server) Handler(ctx context.Context, active *middlewares.ActiveRequests) http.Handler {
	services := handler.Services{
		Health:   s.app.HealthChecker(),
		Certify:  certifyservice.NewCertifyService(s.certifier(ctx), s.cfg.RateLimit, s.log),
		Verify:   verifyservice.NewVerifyService(s.app.Verifier()),
		Receipts: receiptservice.NewReceiptService(),
	}
	return handler.SetupHandler(services, active, s.log, *s.cfg)
}

// certifier без ключа сервер продолжает работать, только сертификация отвечает ошибкой
func (s *Server) certifier(ctx context.Context) certifyservice.Certifier {
	c, err := s.app.Certifier(ctx)
	if err != nil {
		s.log.Warn("certification disabled", zap.Error(err))
		return disabledCertifier{err: err}
	}
	return c
}

func (s *Server) Run() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
		syscall.SIGQUIT,
	)
	defer stop()

	active := middlewares.NewActiveRequests()

	s.server = &http.Server{
		Addr:              s.cfg.ServerAddr,
		Handler:           s.Handler(ctx, active),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("server starting", zap.String("addr", s.cfg.ServerAddr))
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("server failed to start: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.log.Info("graceful shutdown initiated")
	s.shutdown(active)
	s.log.Info("server stopped gracefully")
	return nil
}

func (s *Server) shutdown(active *middlewares.ActiveRequests) {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.server.Shutdown(shutdownCtx); err != nil {
		s.log.Error("server shutdown failed", zap.Error(err))
	}

	s.log.Info("waiting for active requests to complete")
	drainCtx, cancelDrain := context.WithTimeout(context.Background(), drainTimeout)
	defer cancelDrain()

	if err := active.Drain(drainCtx); err != nil {
		s.log.Warn("timeout waiting for requests", zap.Error(err))
	} else {
		s.log.Info("all requests completed")
	}
}

func (s *Server) Close() {
	if err := s.app.Close(); err != nil {
		s.log.Error("resources close failed", zap.Error(err))
	}
}

type disabledCertifier struct {
	err error
}

func (d disabledCertifier) Certify(context.Context, string) (solana.Signature, error) {
	return solana.Signature{}, d.err
}
