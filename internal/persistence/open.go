// Package persistence picks the task store named in configuration.
package persistence

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/BuzzLyutic/choretle/internal/config"
	"github.com/BuzzLyutic/choretle/internal/repo"
	"github.com/BuzzLyutic/choretle/internal/repo/memrepo"
	"github.com/BuzzLyutic/choretle/internal/repo/mongorepo"
	"github.com/BuzzLyutic/choretle/internal/repo/pgrepo"
	"github.com/BuzzLyutic/choretle/internal/repo/sqliterepo"
)

// Open connects to the configured backend and verifies it answers a ping.
func Open(ctx context.Context, cfg config.Database, logger *zap.Logger) (repo.Backend, error) {
	var (
		backend repo.Backend
		err     error
	)

	switch cfg.Driver {
	case "mongo", "":
		backend, err = mongorepo.Connect(ctx, cfg.Conn, cfg.DB, cfg.Collection)
	case "postgres":
		backend, err = pgrepo.Connect(ctx, cfg.Conn, cfg.Collection)
	case "sqlite":
		backend, err = sqliterepo.Open(ctx, cfg.Conn, cfg.Collection)
	case "memory":
		backend = memrepo.New()
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
	if err != nil {
		return nil, err
	}

	if err := backend.Ping(ctx); err != nil {
		backend.Close(ctx)
		return nil, err
	}

	logger.Info("Connected to task storage",
		zap.String("driver", cfg.Driver),
		zap.String("collection", cfg.Collection),
	)
	return backend, nil
}
