package main

import (
	"context"

	"go.uber.org/zap"

	"github.com/BuzzLyutic/choretle/internal/config"
	"github.com/BuzzLyutic/choretle/internal/handler"
	"github.com/BuzzLyutic/choretle/internal/persistence"
	"github.com/BuzzLyutic/choretle/internal/server"
	"github.com/BuzzLyutic/choretle/internal/service"
	"github.com/BuzzLyutic/choretle/internal/worker"
)

func main() {
	// Подключаем логгер
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	var cfg config.Overseer
	if err := config.Load("overseer", &cfg); err != nil {
		logger.Fatal("Failed to get config for overseer service", zap.Error(err))
	}
	logger = logger.With(zap.String("service", cfg.Name))

	ctx := context.Background()

	// Подключаем хранилище задач
	store, err := persistence.Open(ctx, cfg.DB, logger)
	if err != nil {
		logger.Fatal("Failed to connect to task storage", zap.Error(err))
	}
	defer store.Close(ctx) // Запланированное закрытие соединения

	health := worker.NewHealthChecker(store, logger, cfg.HealthInterval)
	health.Start(ctx)
	defer health.Stop()

	taskHandler := handler.NewTaskHandler(service.NewTaskService(store), logger)
	srv := server.New(cfg.Port, server.NewOverseerRouter(taskHandler, health))

	if err := server.Run(ctx, srv, logger); err != nil {
		logger.Error("Server error", zap.Error(err))
	}
}
