package adapters

import (
	"testing"
	"time"

	"promo-banner/internal/features/promotions/domain"

	"github.com/stretchr/testify/assert"
)

func TestDisplayRenderer_StartsLoading(t *testing.T) {
	d := NewDisplayRenderer()

	f := d.Frame()
	assert.Equal(t, domain.BannerStateLoading, f.State)
	assert.True(t, f.Slide.Fallback)
	assert.Equal(t, domain.DefaultDescription, f.Slide.Description)
	assert.False(t, f.Transitioning)
}

func TestDisplayRenderer_Transition(t *testing.T) {
	d := NewDisplayRenderer()
	tick := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	d.now = func() time.Time { return tick }

	d.SetState(domain.BannerStateReady)
	d.BeginTransition(500 * time.Millisecond)
	assert.True(t, d.Frame().Transitioning)

	slide := domain.Slide{PromotionID: "7", Title: "Pizza", Description: "Grande"}
	d.Apply(slide)
	assert.Equal(t, slide, d.Frame().Slide)
	assert.True(t, d.Frame().Transitioning)

	d.EndTransition()
	f := d.Frame()
	assert.False(t, f.Transitioning)
	assert.Equal(t, domain.BannerStateReady, f.State)
	assert.Equal(t, tick, f.UpdatedAt)
}
