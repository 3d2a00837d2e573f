package config

import (
	"errors"
	"strings"

	"github.com/spf13/pflag"
)

var ErrNoInput = errors.New("either --hash or --receipt is required")

type CertifierFlags struct {
	ChainFlags
	Hash        string `env:"RECEIPT_HASH"`
	ReceiptPath string `env:"RECEIPT_PATH"`
}

func ParseCertifierConfig(args []string) (*CertifierFlags, error) {
	var cfg CertifierFlags

	setDefaultChainFlags(&cfg.ChainFlags)

	flags := pflag.NewFlagSet("certifier", pflag.ContinueOnError)
	bindChainFlags(flags, &cfg.ChainFlags)
	flags.StringVar(&cfg.Hash, "hash", "", "Receipt hash to certify")
	flags.StringVarP(&cfg.ReceiptPath, "receipt", "r", "", "Receipt JSON file; its canonical hash is certified")

	if err := parse(flags, args, &cfg); err != nil {
		return nil, err
	}

	if strings.TrimSpace(cfg.Hash) == "" && cfg.ReceiptPath == "" {
		return nil, ErrNoInput
	}
	return &cfg, nil
}
