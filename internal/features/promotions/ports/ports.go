package ports

import (
	"context"
	"time"

	"promo-banner/internal/features/promotions/domain"
)

// PromotionSource fetches the current promotions from the backend.
// Implementations make one round trip and never retry.
type PromotionSource interface {
	FetchPromotions(ctx context.Context) ([]domain.Promotion, error)
}

// SnapshotCache is the single-slot persistent cache of the active set.
type SnapshotCache interface {
	// Read returns the stored entry. Missing or corrupt data yields false, never an error.
	Read(ctx context.Context) (domain.CacheEntry, bool)
	// Write overwrites the stored entry.
	Write(ctx context.Context, items domain.PromotionSet, now time.Time) error
}

// Renderer is the presentation boundary. Calls are serialized by the caller.
type Renderer interface {
	// SetState switches the container between loading, ready and error.
	SetState(state domain.BannerState)
	// BeginTransition starts hiding the current content; new content follows after midpoint.
	BeginTransition(midpoint time.Duration)
	// Apply swaps in the content.
	Apply(slide domain.Slide)
	// EndTransition reveals the applied content.
	EndTransition()
}

// FrameReader exposes what a display is currently showing.
type FrameReader interface {
	Frame() domain.Frame
}

// PromotionService is the primary port used by the HTTP handler.
type PromotionService interface {
	Snapshot() domain.DisplayState
	Refresh(ctx context.Context) error
}

// HealthChecker reports whether a dependency is reachable.
type HealthChecker interface {
	Ping(ctx context.Context) error
}
