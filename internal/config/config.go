// Package config собирает настройки команд: значения по умолчанию,
// затем флаги, затем переменные окружения (окружение важнее флагов).
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/spf13/pflag"
)

const (
	DefaultRPCURL       = "https://api.devnet.solana.com"
	DefaultLogLevel     = "info"
	DefaultSolanaCLI    = "solana"
	DefaultConfirmWait  = 60 * time.Second
	DefaultPollInterval = 500 * time.Millisecond
)

// ChainFlags общие настройки работы с кластером
type ChainFlags struct {
	RPCURL         string        `env:"RPC_URL"`
	LogLevel       string        `env:"LOGLEVEL"`
	KeypairPath    string        `env:"SOLANA_KEYPAIR_PATH"`
	SolanaCLI      string        `env:"SOLANA_CLI"`
	ConfirmTimeout time.Duration `env:"CONFIRM_TIMEOUT"`
	PollInterval   time.Duration `env:"CONFIRM_POLL_INTERVAL"`
	WebhookURL     string        `env:"WEBHOOK_URL"`
}

func setDefaultChainFlags(cfg *ChainFlags) {
	cfg.RPCURL = DefaultRPCURL
	cfg.LogLevel = DefaultLogLevel
	cfg.SolanaCLI = DefaultSolanaCLI
	cfg.ConfirmTimeout = DefaultConfirmWait
	cfg.PollInterval = DefaultPollInterval
}

func bindChainFlags(flags *pflag.FlagSet, cfg *ChainFlags) {
	flags.StringVarP(&cfg.RPCURL, "rpc-url", "u", cfg.RPCURL, "Solana RPC endpoint")
	flags.StringVarP(&cfg.LogLevel, "loglevel", "g", cfg.LogLevel, "Logger level")
	flags.StringVar(&cfg.KeypairPath, "keypair", cfg.KeypairPath, "Path to signing keypair file")
	flags.StringVar(&cfg.SolanaCLI, "solana-cli", cfg.SolanaCLI, "Solana CLI used to look up the keypair path")
	flags.DurationVar(&cfg.ConfirmTimeout, "confirm-timeout", cfg.ConfirmTimeout, "How long to wait for confirmation")
	flags.DurationVar(&cfg.PollInterval, "poll-interval", cfg.PollInterval, "Signature status polling interval")
	flags.StringVar(&cfg.WebhookURL, "webhook", cfg.WebhookURL, "URL to POST certification and verification events to")
}

// parse разбирает флаги и накладывает поверх них окружение
func parse(flags *pflag.FlagSet, args []string, cfg interface{}) error {
	if err := flags.Parse(args); err != nil {
		return fmt.Errorf("failed to parse flags: %w", err)
	}

	for i := 0; i < flags.NArg(); i++ {
		arg := flags.Arg(i)
		if len(arg) > 0 && arg[0] == '-' {
			return fmt.Errorf("unknown flag: %s", arg)
		}
	}

	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("failed to parse environment variables: %w", err)
	}
	return nil
}
