package adapters

import (
	"time"

	"promo-banner/internal/features/promotions/domain"
	"promo-banner/internal/features/promotions/ports"
)

// MultiRenderer forwards every call to each renderer in order.
type MultiRenderer []ports.Renderer

func (m MultiRenderer) SetState(state domain.BannerState) {
	for _, r := range m {
		r.SetState(state)
	}
}

func (m MultiRenderer) BeginTransition(midpoint time.Duration) {
	for _, r := range m {
		r.BeginTransition(midpoint)
	}
}

func (m MultiRenderer) Apply(slide domain.Slide) {
	for _, r := range m {
		r.Apply(slide)
	}
}

func (m MultiRenderer) EndTransition() {
	for _, r := range m {
		r.EndTransition()
	}
}
