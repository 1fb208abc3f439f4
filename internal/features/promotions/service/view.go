package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"promo-banner/internal/core/logger"
	"promo-banner/internal/core/scheduler"

	"go.uber.org/zap"
)

// NewRefreshScheduler revalidates the store every period.
func NewRefreshScheduler(store *PromotionStore, period time.Duration) *scheduler.Periodic {
	log := logger.Named("promotions")
	return scheduler.NewPeriodic("refresh", period, func(ctx context.Context) {
		if err := store.Refresh(ctx); err != nil {
			log.Warn("Scheduled refresh failed", zap.Error(err))
		}
	})
}

// NewRotationScheduler advances the store every period.
func NewRotationScheduler(store *PromotionStore, period time.Duration) *scheduler.Periodic {
	return scheduler.NewPeriodic("rotation", period, store.Advance)
}

// View binds a PromotionStore to its two timers for the lifetime of a display.
type View struct {
	store    *PromotionStore
	refresh  *scheduler.Periodic
	rotation *scheduler.Periodic
	logger   *zap.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
}

// NewView creates a stopped view.
func NewView(store *PromotionStore, refreshEvery, rotateEvery time.Duration) *View {
	return &View{
		store:    store,
		refresh:  NewRefreshScheduler(store, refreshEvery),
		rotation: NewRotationScheduler(store, rotateEvery),
		logger:   logger.Named("view"),
	}
}

// Start performs the initial load and arms both timers. A failed initial
// load is logged, not returned: the fallback is shown and the refresh timer
// keeps trying.
func (v *View) Start(ctx context.Context) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.cancel != nil {
		return fmt.Errorf("view already started")
	}

	ctx, cancel := context.WithCancel(ctx)

	if err := v.store.Initialize(ctx); err != nil {
		v.logger.Warn("Initial promotions load failed", zap.Error(err))
	}

	if err := v.refresh.Start(ctx); err != nil {
		cancel()
		v.store.Wait()
		return fmt.Errorf("failed to start refresh timer: %w", err)
	}
	if err := v.rotation.Start(ctx); err != nil {
		v.refresh.Stop()
		cancel()
		v.store.Wait()
		return fmt.Errorf("failed to start rotation timer: %w", err)
	}

	v.cancel = cancel
	v.logger.Info("Banner view started",
		zap.Duration("refresh_every", v.refresh.Period()),
		zap.Duration("rotate_every", v.rotation.Period()),
	)
	return nil
}

// Close stops both timers and waits for in-flight work. It is safe to call more than once.
func (v *View) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.cancel == nil {
		return
	}

	v.cancel()
	v.refresh.Stop()
	v.rotation.Stop()
	v.store.Wait()
	v.cancel = nil

	v.logger.Info("Banner view stopped")
}

// Store returns the underlying store.
func (v *View) Store() *PromotionStore {
	return v.store
}
