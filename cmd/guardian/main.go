package main

import (
	"context"

	"go.uber.org/zap"

	"github.com/BuzzLyutic/choretle/internal/config"
	"github.com/BuzzLyutic/choretle/internal/server"
)

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	var cfg config.Guardian
	if err := config.Load("guardian", &cfg); err != nil {
		logger.Fatal("Failed to get config for guardian service", zap.Error(err))
	}
	logger = logger.With(zap.String("service", cfg.Name))

	srv := server.New(cfg.Port, server.NewGuardianRouter())
	if err := server.Run(context.Background(), srv, logger); err != nil {
		logger.Fatal("Server error", zap.Error(err))
	}
}
