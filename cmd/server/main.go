package main

import (
	"log"
	"os"

	"go.uber.org/zap"

	"github.com/Sculsor/Macathon2026/internal/config"
	"github.com/Sculsor/Macathon2026/internal/logger"
	"github.com/Sculsor/Macathon2026/internal/server"
)

func main() {
	cfg, err := config.ParseServerConfig(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	zlog, err := logger.Initialize(cfg.LogLevel)
	if err != nil {
		log.Fatal(err)
	}
	defer zlog.Sync() //nolint:errcheck

	if err := run(cfg, zlog); err != nil {
		zlog.Error("server stopped with error", zap.Error(err))
		os.Exit(1)
	}
}

func run(cfg *config.ServerFlags, zlog *zap.Logger) error {
	app, err := server.NewApp(cfg, zlog)
	if err != nil {
		return err
	}
	defer app.Close()

	return app.Run()
}
