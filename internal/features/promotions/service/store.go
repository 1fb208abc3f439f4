package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"promo-banner/internal/core/logger"
	"promo-banner/internal/features/promotions/domain"
	"promo-banner/internal/features/promotions/ports"

	"go.uber.org/zap"
)

// Options tunes a PromotionStore.
type Options struct {
	// CacheExpiration is how old a snapshot may be and still be rendered on startup.
	CacheExpiration time.Duration
	// TransitionMidpoint is requested between BeginTransition and Apply.
	TransitionMidpoint time.Duration
	// ImageBaseURL is joined with each promotion's image name.
	ImageBaseURL string
}

// PromotionStore owns the display state and implements ports.PromotionService.
//
// State changes go through mu and are whole replacements. Renders are
// serialized through renderMu and always show the latest state. Backend
// fetches run outside both locks, so overlapping refreshes are allowed and
// the last one to finish wins.
type PromotionStore struct {
	source   ports.PromotionSource
	cache    ports.SnapshotCache
	renderer ports.Renderer
	opts     Options
	logger   *zap.Logger

	mu    sync.Mutex
	state domain.DisplayState

	renderMu sync.Mutex

	background sync.WaitGroup

	now   func() time.Time
	sleep func(ctx context.Context, d time.Duration)
}

// NewPromotionStore creates an empty store. Nothing is rendered until Initialize.
func NewPromotionStore(source ports.PromotionSource, cache ports.SnapshotCache, renderer ports.Renderer, opts Options) *PromotionStore {
	return &PromotionStore{
		source:   source,
		cache:    cache,
		renderer: renderer,
		opts:     opts,
		logger:   logger.Named("promotions"),
		state:    domain.DisplayState{Items: domain.PromotionSet{}},
		now:      time.Now,
		sleep:    sleepContext,
	}
}

// Initialize renders from a valid cached snapshot and revalidates it in the
// background, or waits for the backend when there is none. The returned error
// is the failed initial refresh; the fallback is already on screen by then.
func (s *PromotionStore) Initialize(ctx context.Context) error {
	s.renderMu.Lock()
	s.renderer.SetState(domain.BannerStateLoading)
	s.renderMu.Unlock()

	entry, ok := s.cache.Read(ctx)
	if ok && entry.IsValid(s.now(), s.opts.CacheExpiration) {
		s.replace(domain.FilterActive(entry.Payload))
		s.logger.Info("Rendering cached promotions",
			zap.Int("count", len(entry.Payload)),
			zap.Duration("age", s.now().Sub(entry.StoredAt)),
		)
		s.render(ctx)

		s.background.Add(1)
		go func() {
			defer s.background.Done()
			if err := s.Refresh(ctx); err != nil {
				s.logger.Warn("Background refresh failed", zap.Error(err))
			}
		}()
		return nil
	}

	if ok {
		s.logger.Debug("Cached promotions expired", zap.Time("stored_at", entry.StoredAt))
	}

	return s.Refresh(ctx)
}

// Refresh fetches the backend once and applies the result.
// A failure with promotions on screen is absorbed visually but still returned.
func (s *PromotionStore) Refresh(ctx context.Context) error {
	raw, err := s.source.FetchPromotions(ctx)
	if err != nil {
		if s.showError() {
			s.logger.Warn("No promotions available, showing fallback", zap.Error(err))
		} else {
			s.logger.Info("Refresh failed, keeping current promotions", zap.Error(err))
		}
		return fmt.Errorf("service: failed to refresh promotions: %w", err)
	}

	items := domain.FilterActive(raw)
	if len(items) == 0 {
		s.logger.Info("Backend returned no active promotions, keeping current set", zap.Int("received", len(raw)))
		s.renderMu.Lock()
		s.renderer.SetState(domain.BannerStateReady)
		if _, ok := s.current(); !ok {
			s.renderer.Apply(domain.FallbackSlide())
		}
		s.renderMu.Unlock()
		return nil
	}

	s.replace(items)

	if err := s.cache.Write(ctx, items, s.now()); err != nil {
		s.logger.Warn("Failed to persist promotions snapshot", zap.Error(err))
	}

	s.logger.Debug("Promotions refreshed", zap.Int("received", len(raw)), zap.Int("active", len(items)))
	s.render(ctx)
	return nil
}

// Advance moves to the next promotion and renders it with a transition.
// With fewer than two promotions it does nothing.
func (s *PromotionStore) Advance(ctx context.Context) {
	s.mu.Lock()
	moved := s.state.Advance()
	s.mu.Unlock()

	if moved {
		s.render(ctx)
	}
}

// Snapshot returns a copy of the display state.
func (s *PromotionStore) Snapshot() domain.DisplayState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Wait blocks until background refreshes started by Initialize return.
func (s *PromotionStore) Wait() {
	s.background.Wait()
}

func (s *PromotionStore) replace(items domain.PromotionSet) {
	s.mu.Lock()
	s.state.Replace(items)
	s.mu.Unlock()
}

func (s *PromotionStore) current() (domain.Promotion, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Current()
}

// render shows the current promotion with a transition, or the fallback
// directly when there is none, and marks the banner ready.
func (s *PromotionStore) render(ctx context.Context) {
	s.renderMu.Lock()
	defer s.renderMu.Unlock()

	s.renderer.SetState(domain.BannerStateReady)

	p, ok := s.current()
	if !ok {
		s.renderer.Apply(domain.FallbackSlide())
		return
	}

	s.renderer.BeginTransition(s.opts.TransitionMidpoint)
	s.sleep(ctx, s.opts.TransitionMidpoint)

	// The set may have been replaced while fading out.
	if latest, ok := s.current(); ok {
		p = latest
	}
	s.renderer.Apply(domain.NewSlide(p, s.opts.ImageBaseURL))
	s.renderer.EndTransition()
}

// showError renders the error state when nothing else can be shown.
// It reports false, touching nothing, when promotions are on screen.
func (s *PromotionStore) showError() bool {
	s.renderMu.Lock()
	defer s.renderMu.Unlock()

	if _, ok := s.current(); ok {
		return false
	}

	s.renderer.SetState(domain.BannerStateError)
	s.renderer.Apply(domain.FallbackSlide())
	return true
}

// sleepContext waits for d or until ctx is done.
func sleepContext(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-t.C:
	case <-ctx.Done():
	}
}
