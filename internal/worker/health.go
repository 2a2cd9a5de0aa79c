package worker

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

// Pinger is anything that can report whether its store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthChecker pings the task store on an interval and remembers the outcome,
// so health checks never block on the store themselves.
type HealthChecker struct {
	target   Pinger
	logger   *zap.Logger
	interval time.Duration
	healthy  atomic.Bool
	wg       sync.WaitGroup
	stop     chan struct{}
	stopOnce sync.Once
}

func NewHealthChecker(target Pinger, logger *zap.Logger, interval time.Duration) *HealthChecker {
	if interval <= 0 {
		interval = 5 * time.Second
	}
	return &HealthChecker{
		target:   target,
		logger:   logger,
		interval: interval,
		stop:     make(chan struct{}),
	}
}

// Start runs one check synchronously, then keeps checking in the background.
func (h *HealthChecker) Start(ctx context.Context) {
	h.logger.Info("Starting storage health", zap.Duration("interval", h.interval))
	h.check(ctx)

	h.wg.Add(1)
	go h.run(ctx)
}

func (h *HealthChecker) Stop() {
	h.stopOnce.Do(func() {
		h.logger.Info("Stopping storage health...")
		close(h.stop)
	})
	h.wg.Wait()
}

func (h *HealthChecker) Healthy() bool {
	return h.healthy.Load()
}

func (h *HealthChecker) run(ctx context.Context) {
	defer h.wg.Done()

	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	for {
		select {
		case <-h.stop:
			return
		case <-ctx.Done():
			return
		case <-ticker.C: // Очередная проверка хранилища
			h.check(ctx)
		}
	}
}

func (h *HealthChecker) check(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, h.interval)
	defer cancel()

	err := h.target.Ping(ctx) // Таймаут пинга не больше интервала
	was := h.healthy.Swap(err == nil)

	switch {
	case err != nil && was:
		h.logger.Error("Storage became unavailable", zap.Error(err))
	case err != nil:
		h.logger.Debug("Storage still unavailable", zap.Error(err))
	case !was:
		h.logger.Info("Storage is available")
	}
}
