package config

import (
	"github.com/spf13/pflag"
)

type ServerFlags struct {
	ChainFlags
	ServerAddr  string `env:"ADDRESS"`
	SecretKey   string `env:"KEY"`
	RateLimit   int    `env:"RATE_LIMIT"`
	MaxRequests int    `env:"MAX_REQUESTS"`
}

func ParseServerConfig(args []string) (*ServerFlags, error) {
	var cfg ServerFlags

	setDefaultServerFlag(&cfg)

	flags := pflag.NewFlagSet("server", pflag.ContinueOnError)
	bindChainFlags(flags, &cfg.ChainFlags)
	flags.StringVarP(&cfg.ServerAddr, "address", "a", cfg.ServerAddr, "HTTP server address")
	flags.StringVarP(&cfg.SecretKey, "key", "k", "", "Secret key for request body signatures")
	flags.IntVarP(&cfg.RateLimit, "ratelimit", "l", 0, "Max concurrent certifications, 0 means unlimited")
	flags.IntVarP(&cfg.MaxRequests, "max-requests", "m", 0, "Max requests in flight before answering 429, 0 means unlimited")

	if err := parse(flags, args, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaultServerFlag(cfg *ServerFlags) {
	setDefaultChainFlags(&cfg.ChainFlags)
	cfg.ServerAddr = ":8080"
}
