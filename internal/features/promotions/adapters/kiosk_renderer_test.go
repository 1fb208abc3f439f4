package adapters

import (
	"errors"
	"testing"

	"promo-banner/internal/features/promotions/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedScript struct {
	js   string
	args []interface{}
}

type fakeRunner struct {
	calls []recordedScript
	err   error
}

func (f *fakeRunner) Run(js string, args ...interface{}) error {
	f.calls = append(f.calls, recordedScript{js: js, args: args})
	return f.err
}

func TestKioskRenderer_Sequence(t *testing.T) {
	runner := &fakeRunner{}
	k := newKioskRenderer(runner)

	k.SetState(domain.BannerStateReady)
	k.BeginTransition(0)
	k.Apply(domain.Slide{Title: "Combo", Description: "2x1", ImageURL: "http://img/a.png"})
	k.EndTransition()

	require.Len(t, runner.calls, 4)
	assert.Equal(t, setStateJS, runner.calls[0].js)
	assert.Equal(t, []interface{}{"ready"}, runner.calls[0].args)
	assert.Equal(t, beginTransitionJS, runner.calls[1].js)
	assert.Equal(t, applyJS, runner.calls[2].js)
	assert.Equal(t, []interface{}{"Combo", "2x1", "http://img/a.png"}, runner.calls[2].args)
	assert.Equal(t, endTransitionJS, runner.calls[3].js)
}

func TestKioskRenderer_FallbackClearsImage(t *testing.T) {
	runner := &fakeRunner{}
	k := newKioskRenderer(runner)

	k.Apply(domain.FallbackSlide())

	require.Len(t, runner.calls, 1)
	assert.Equal(t, []interface{}{"", domain.DefaultDescription, ""}, runner.calls[0].args)
}

func TestKioskRenderer_ScriptErrorsAreSwallowed(t *testing.T) {
	runner := &fakeRunner{err: errors.New("target closed")}
	k := newKioskRenderer(runner)

	assert.NotPanics(t, func() {
		k.SetState(domain.BannerStateError)
		k.Apply(domain.FallbackSlide())
	})
	assert.Len(t, runner.calls, 2)
}

func TestKioskRenderer_CloseWithoutBrowser(t *testing.T) {
	k := newKioskRenderer(&fakeRunner{})
	assert.NoError(t, k.Close())
	assert.NoError(t, k.Close())
}
