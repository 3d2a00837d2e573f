// Command certifier записывает хеш квитанции в блокчейн мемо-транзакцией
// и печатает подпись подтвержденной транзакции.
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"go.uber.org/zap"

	"github.com/Sculsor/Macathon2026/internal/app"
	"github.com/Sculsor/Macathon2026/internal/config"
	"github.com/Sculsor/Macathon2026/internal/logger"
	"github.com/Sculsor/Macathon2026/internal/memo"
	"github.com/Sculsor/Macathon2026/internal/receipt"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, out io.Writer) error {
	cfg, err := config.ParseCertifierConfig(args)
	if err != nil {
		return err
	}

	zlog, err := logger.InitializeConsole(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer zlog.Sync() //nolint:errcheck

	hash, err := receiptHash(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := app.New(cfg.ChainFlags, zlog)
	defer a.Close()

	c, err := a.Certifier(ctx)
	if err != nil {
		return err
	}

	zlog.Info("certifying receipt hash", zap.String("hash", hash), zap.String("payer", c.Payer().String()))

	sig, err := c.Certify(ctx, hash)
	if err != nil {
		return fmt.Errorf("certification failed: %w", err)
	}

	fmt.Fprintf(out, "signature: %s\nmemo: %s\n", sig, memo.Format(hash))
	return nil
}

// receiptHash готовый хеш из --hash или каноничный хеш файла квитанции
func receiptHash(cfg *config.CertifierFlags) (string, error) {
	if hash := strings.TrimSpace(cfg.Hash); hash != "" {
		return hash, nil
	}

	data, err := os.ReadFile(cfg.ReceiptPath)
	if err != nil {
		return "", fmt.Errorf("failed to read receipt: %w", err)
	}
	r, err := receipt.Decode(data)
	if err != nil {
		return "", err
	}
	return receipt.CanonicalHash(r), nil
}
