// Command verifier ищет мемо-запись по подписи транзакции и, если передан
// файл квитанции, сверяет ее хеш с записанным.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/Sculsor/Macathon2026/internal/app"
	"github.com/Sculsor/Macathon2026/internal/config"
	"github.com/Sculsor/Macathon2026/internal/logger"
	"github.com/Sculsor/Macathon2026/internal/receipt"
)

// errNotVerified запись не найдена или не совпала с квитанцией, код выхода 1
var errNotVerified = errors.New("receipt not verified")

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, errNotVerified) {
			os.Exit(1)
		}
		log.Fatal(err)
	}
}

// memoVerifier часть verifier.Verifier, нужная команде
type memoVerifier interface {
	Verify(ctx context.Context, signature string) (string, bool)
}

func run(args []string, out io.Writer) error {
	cfg, err := config.ParseVerifierConfig(args)
	if err != nil {
		return err
	}

	zlog, err := logger.InitializeConsole(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer zlog.Sync() //nolint:errcheck

	var r *receipt.Receipt
	if cfg.ReceiptPath != "" {
		data, err := os.ReadFile(cfg.ReceiptPath)
		if err != nil {
			return fmt.Errorf("failed to read receipt: %w", err)
		}
		decoded, err := receipt.Decode(data)
		if err != nil {
			return err
		}
		r = &decoded
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := app.New(cfg.ChainFlags, zlog)
	defer a.Close()

	return report(ctx, a.Verifier(), cfg.Signature, r, out)
}

// report печатает найденное мемо и результат сверки
func report(ctx context.Context, v memoVerifier, signature string, r *receipt.Receipt, out io.Writer) error {
	text, ok := v.Verify(ctx, signature)
	if !ok {
		fmt.Fprintln(out, "memo: not found")
		return errNotVerified
	}
	fmt.Fprintf(out, "memo: %s\n", text)

	if r == nil {
		return nil
	}

	res := receipt.Verify(*r, text)
	fmt.Fprintf(out, "receipt hash: %s\n%s\n", res.ReceiptHash, res.Message)
	if !res.Verified {
		return errNotVerified
	}
	return nil
}
