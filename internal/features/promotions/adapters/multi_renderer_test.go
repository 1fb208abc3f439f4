package adapters

import (
	"testing"
	"time"

	"promo-banner/internal/features/promotions/domain"

	"github.com/stretchr/testify/assert"
)

type callLog struct {
	calls []string
}

func (c *callLog) SetState(state domain.BannerState)     { c.calls = append(c.calls, "state:"+string(state)) }
func (c *callLog) BeginTransition(midpoint time.Duration) { c.calls = append(c.calls, "begin") }
func (c *callLog) Apply(slide domain.Slide)               { c.calls = append(c.calls, "apply:"+slide.Title) }
func (c *callLog) EndTransition()                         { c.calls = append(c.calls, "end") }

func TestMultiRenderer_FansOut(t *testing.T) {
	a, b := &callLog{}, &callLog{}
	m := MultiRenderer{a, b}

	m.SetState(domain.BannerStateReady)
	m.BeginTransition(time.Millisecond)
	m.Apply(domain.Slide{Title: "x"})
	m.EndTransition()

	want := []string{"state:ready", "begin", "apply:x", "end"}
	assert.Equal(t, want, a.calls)
	assert.Equal(t, want, b.calls)
}

func TestMultiRenderer_Empty(t *testing.T) {
	assert.NotPanics(t, func() {
		var m MultiRenderer
		m.SetState(domain.BannerStateError)
		m.Apply(domain.FallbackSlide())
	})
}
