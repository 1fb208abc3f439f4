package adapters

import (
	"context"
	"fmt"
	"sync"
	"time"

	"promo-banner/internal/core/config"
	"promo-banner/internal/core/logger"
	"promo-banner/internal/core/proxy"
	"promo-banner/internal/features/promotions/domain"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"go.uber.org/zap"
)

// DOM scripts for the banner page. Each is evaluated as a function with the given arguments.
const (
	setStateJS = `(state) => {
		const c = document.querySelector('.banner-container');
		if (!c) return;
		c.classList.toggle('loading', state === 'loading');
		c.classList.toggle('error', state === 'error');
	}`

	beginTransitionJS = `() => {
		for (const sel of ['.promotional-title', '.promotional-text', '.banner-container']) {
			const el = document.querySelector(sel);
			if (!el) continue;
			el.classList.remove('fade-in');
			el.classList.add('fade-out');
		}
	}`

	applyJS = `(title, text, image) => {
		const t = document.querySelector('.promotional-title');
		const p = document.querySelector('.promotional-text');
		const c = document.querySelector('.banner-container');
		if (t) t.textContent = title;
		if (p) p.textContent = text;
		if (c) c.style.backgroundImage = image ? "url('" + image + "')" : '';
	}`

	endTransitionJS = `() => {
		for (const sel of ['.promotional-title', '.promotional-text', '.banner-container']) {
			const el = document.querySelector(sel);
			if (!el) continue;
			el.classList.remove('fade-out');
			el.classList.add('fade-in');
		}
	}`
)

// scriptRunner evaluates a JS function on the banner page.
type scriptRunner interface {
	Run(js string, args ...interface{}) error
}

type rodPage struct {
	page *rod.Page
}

func (p rodPage) Run(js string, args ...interface{}) error {
	_, err := p.page.Eval(js, args...)
	return err
}

// KioskRenderer implements ports.Renderer by driving a banner page in Chromium.
// Script failures are logged; the display keeps whatever it showed last.
type KioskRenderer struct {
	runner scriptRunner
	logger *zap.Logger

	closeOnce sync.Once
	browser   *rod.Browser
	forwarder *proxy.ForwardingProxy
}

func newKioskRenderer(runner scriptRunner) *KioskRenderer {
	return &KioskRenderer{
		runner: runner,
		logger: logger.Named("kiosk"),
	}
}

// LaunchKiosk starts Chromium, opens cfg.PageURL and returns a renderer bound to that page.
// Authenticated proxies are reached through a local ForwardingProxy.
func LaunchKiosk(ctx context.Context, cfg config.KioskConfig, settings proxy.Settings) (*KioskRenderer, error) {
	log := logger.Named("kiosk")

	l := launcher.New().
		Context(ctx).
		Headless(cfg.Headless).
		NoSandbox(true)

	var forwarder *proxy.ForwardingProxy
	if settings.HasProxy() {
		proxyAddr := settings.HostPort()
		if settings.HasCredentials() {
			fp, err := proxy.NewForwardingProxy(settings.FullURL())
			if err != nil {
				return nil, err
			}
			if proxyAddr, err = fp.Start(ctx); err != nil {
				return nil, fmt.Errorf("failed to start proxy forwarder: %w", err)
			}
			forwarder = fp
		}
		l = l.Proxy(proxyAddr)
		log.Debug("Browser configured with proxy", zap.String("proxy", proxyAddr))
	}

	stopForwarder := func() {
		if forwarder != nil {
			_ = forwarder.Stop()
		}
	}

	u, err := l.Launch()
	if err != nil {
		stopForwarder()
		return nil, fmt.Errorf("failed to launch browser: %w", err)
	}

	browser := rod.New().Context(ctx).ControlURL(u)
	if err := browser.Connect(); err != nil {
		stopForwarder()
		return nil, fmt.Errorf("failed to connect to browser: %w", err)
	}

	page, err := browser.Page(proto.TargetCreateTarget{URL: cfg.PageURL})
	if err != nil {
		_ = browser.Close()
		stopForwarder()
		return nil, fmt.Errorf("failed to open banner page: %w", err)
	}
	if err := page.WaitLoad(); err != nil {
		log.Warn("Banner page did not finish loading", zap.Error(err))
	}

	k := newKioskRenderer(rodPage{page: page})
	k.browser = browser
	k.forwarder = forwarder

	log.Info("Kiosk display started", zap.String("page", cfg.PageURL), zap.Bool("headless", cfg.Headless))
	return k, nil
}

// SetState implements ports.Renderer.
func (k *KioskRenderer) SetState(state domain.BannerState) {
	k.run("set_state", setStateJS, string(state))
}

// BeginTransition implements ports.Renderer. The CSS owns the fade duration.
func (k *KioskRenderer) BeginTransition(midpoint time.Duration) {
	k.run("begin_transition", beginTransitionJS)
}

// Apply implements ports.Renderer.
func (k *KioskRenderer) Apply(slide domain.Slide) {
	k.run("apply", applyJS, slide.Title, slide.Description, slide.ImageURL)
}

// EndTransition implements ports.Renderer.
func (k *KioskRenderer) EndTransition() {
	k.run("end_transition", endTransitionJS)
}

// Close shuts the browser and the proxy forwarder down.
func (k *KioskRenderer) Close() error {
	var err error
	k.closeOnce.Do(func() {
		if k.browser != nil {
			err = k.browser.Close()
		}
		if k.forwarder != nil {
			if ferr := k.forwarder.Stop(); err == nil {
				err = ferr
			}
		}
	})
	return err
}

func (k *KioskRenderer) run(step, js string, args ...interface{}) {
	if err := k.runner.Run(js, args...); err != nil {
		k.logger.Warn("Kiosk script failed", zap.String("step", step), zap.Error(err))
	}
}
