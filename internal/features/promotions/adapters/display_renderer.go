package adapters

import (
	"sync"
	"time"

	"promo-banner/internal/core/logger"
	"promo-banner/internal/features/promotions/domain"

	"go.uber.org/zap"
)

// DisplayRenderer keeps the visible frame in memory so it can be served over HTTP.
type DisplayRenderer struct {
	mu     sync.RWMutex
	frame  domain.Frame
	now    func() time.Time
	logger *zap.Logger
}

// NewDisplayRenderer starts in the loading state showing the fallback text.
func NewDisplayRenderer() *DisplayRenderer {
	d := &DisplayRenderer{
		now:    time.Now,
		logger: logger.Named("display"),
	}
	d.frame = domain.Frame{
		Slide:     domain.FallbackSlide(),
		State:     domain.BannerStateLoading,
		UpdatedAt: d.now(),
	}
	return d
}

// SetState implements ports.Renderer.
func (d *DisplayRenderer) SetState(state domain.BannerState) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.frame.State = state
	d.frame.UpdatedAt = d.now()
}

// BeginTransition implements ports.Renderer.
func (d *DisplayRenderer) BeginTransition(midpoint time.Duration) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.frame.Transitioning = true
	d.frame.UpdatedAt = d.now()
}

// Apply implements ports.Renderer.
func (d *DisplayRenderer) Apply(slide domain.Slide) {
	d.mu.Lock()
	d.frame.Slide = slide
	d.frame.UpdatedAt = d.now()
	d.mu.Unlock()

	d.logger.Debug("Slide applied",
		zap.String("promotion_id", string(slide.PromotionID)),
		zap.String("title", slide.Title),
		zap.Bool("fallback", slide.Fallback),
	)
}

// EndTransition implements ports.Renderer.
func (d *DisplayRenderer) EndTransition() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.frame.Transitioning = false
	d.frame.UpdatedAt = d.now()
}

// Frame implements ports.FrameReader.
func (d *DisplayRenderer) Frame() domain.Frame {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.frame
}
