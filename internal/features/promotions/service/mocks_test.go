package service

import (
	"context"
	"sync"
	"time"

	"promo-banner/internal/features/promotions/domain"

	"github.com/stretchr/testify/mock"
)

// MockPromotionSource is a mock implementation of ports.PromotionSource
type MockPromotionSource struct {
	mock.Mock
}

func (m *MockPromotionSource) FetchPromotions(ctx context.Context) ([]domain.Promotion, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Promotion), args.Error(1)
}

// MockSnapshotCache is a mock implementation of ports.SnapshotCache
type MockSnapshotCache struct {
	mock.Mock
}

func (m *MockSnapshotCache) Read(ctx context.Context) (domain.CacheEntry, bool) {
	args := m.Called(ctx)
	return args.Get(0).(domain.CacheEntry), args.Bool(1)
}

func (m *MockSnapshotCache) Write(ctx context.Context, items domain.PromotionSet, now time.Time) error {
	args := m.Called(ctx, items, now)
	return args.Error(0)
}

// recordingRenderer records every render call in order.
type recordingRenderer struct {
	mu     sync.Mutex
	events []string
	slides []domain.Slide
	state  domain.BannerState
}

func (r *recordingRenderer) SetState(state domain.BannerState) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.state = state
	r.events = append(r.events, "state:"+string(state))
}

func (r *recordingRenderer) BeginTransition(time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, "begin")
}

func (r *recordingRenderer) Apply(slide domain.Slide) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.slides = append(r.slides, slide)
	r.events = append(r.events, "apply")
}

func (r *recordingRenderer) EndTransition() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, "end")
}

func (r *recordingRenderer) Events() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.events))
	copy(out, r.events)
	return out
}

func (r *recordingRenderer) LastSlide() (domain.Slide, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.slides) == 0 {
		return domain.Slide{}, false
	}
	return r.slides[len(r.slides)-1], true
}

func (r *recordingRenderer) Applied() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.slides)
}

func (r *recordingRenderer) State() domain.BannerState {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}
