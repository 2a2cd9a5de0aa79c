package main

import (
	"context"

	"go.uber.org/zap"

	"github.com/BuzzLyutic/choretle/internal/config"
	"github.com/BuzzLyutic/choretle/internal/handler"
	"github.com/BuzzLyutic/choretle/internal/server"
)

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	var cfg config.Pioneer
	if err := config.Load("pioneer", &cfg); err != nil {
		logger.Fatal("Failed to get config for pioneer service", zap.Error(err))
	}
	logger = logger.With(zap.String("service", cfg.Name))

	directory := handler.NewDirectoryHandler(cfg.Services)
	srv := server.New(cfg.Port, server.NewPioneerRouter(directory))
	if err := server.Run(context.Background(), srv, logger); err != nil {
		logger.Fatal("Server error", zap.Error(err))
	}
}
