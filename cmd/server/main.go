package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"clash-player-proxy/internal/config"
	"clash-player-proxy/internal/logging"
	"clash-player-proxy/internal/server"
)

func main() {
	// Local development convenience; real environments set vars directly.
	_ = godotenv.Load()

	cfg := config.Load()
	logger := logging.NewLogger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(cfg, logger)
	srv.Run(ctx, stop)
}
