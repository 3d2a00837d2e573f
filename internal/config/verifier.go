package config

import (
	"errors"

	"github.com/spf13/pflag"
)

var ErrNoSignature = errors.New("transaction signature is required")

type VerifierFlags struct {
	ChainFlags
	Signature   string `env:"SIGNATURE"`
	ReceiptPath string `env:"RECEIPT_PATH"`
}

// ParseVerifierConfig подпись можно передать флагом или первым аргументом
func ParseVerifierConfig(args []string) (*VerifierFlags, error) {
	var cfg VerifierFlags

	setDefaultChainFlags(&cfg.ChainFlags)

	flags := pflag.NewFlagSet("verifier", pflag.ContinueOnError)
	bindChainFlags(flags, &cfg.ChainFlags)
	flags.StringVarP(&cfg.Signature, "signature", "s", "", "Transaction signature to verify")
	flags.StringVarP(&cfg.ReceiptPath, "receipt", "r", "", "Receipt JSON file to check against the memo")

	if err := parse(flags, args, &cfg); err != nil {
		return nil, err
	}

	if cfg.Signature == "" && flags.NArg() > 0 {
		cfg.Signature = flags.Arg(0)
	}
	if cfg.Signature == "" {
		return nil, ErrNoSignature
	}
	return &cfg, nil
}
