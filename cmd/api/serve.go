package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"promo-banner/internal/core/cache"
	"promo-banner/internal/core/logger"
	"promo-banner/internal/core/proxy"
	"promo-banner/internal/core/server"
	"promo-banner/internal/features/promotions/adapters"
	"promo-banner/internal/features/promotions/handler"
	"promo-banner/internal/features/promotions/service"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the banner and its status API",
	Long: `Run the banner until SIGINT or SIGTERM.

The banner is rendered to an in-memory display exposed at GET /banner and,
when KIOSK_ENABLED is set, to a Chromium page driven over CDP.`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	defer logger.Sync()
	l := logger.Get()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	l.Info("Application starting",
		zap.String("environment", cfg.Environment),
		zap.String("promotions_url", cfg.Promotions.ListURL()),
	)

	backend, err := cache.Open(cfg.Cache)
	if err != nil {
		return err
	}
	defer backend.Close()

	if err := backend.Ping(ctx); err != nil {
		l.Warn("Snapshot cache unreachable, starting without it", zap.Error(err))
	}

	snapshots := adapters.NewCacheSnapshotStore(backend, cfg.Cache.Key)
	source := adapters.NewHTTPPromotionSource(cfg.Promotions.ListURL(), cfg.Promotions.HTTPTimeout)

	display := adapters.NewDisplayRenderer()
	renderers := adapters.MultiRenderer{display}

	if cfg.Kiosk.Enabled {
		kiosk, err := adapters.LaunchKiosk(ctx, cfg.Kiosk, proxy.FromConfig(cfg.Proxy))
		if err != nil {
			return fmt.Errorf("failed to start kiosk display: %w", err)
		}
		defer kiosk.Close()
		renderers = append(renderers, kiosk)
	}

	store := service.NewPromotionStore(source, snapshots, renderers, service.Options{
		CacheExpiration:    cfg.Cache.Expiration,
		TransitionMidpoint: cfg.Promotions.TransitionMidpoint,
		ImageBaseURL:       cfg.Promotions.ImageBaseURL(),
	})
	view := service.NewView(store, cfg.Promotions.RefreshInterval, cfg.Promotions.RotationInterval)

	srv := server.New(cfg)
	handler.NewPromotionHandler(store, display, backend).Register(srv.App)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := srv.Run(); err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		if err := view.Start(gctx); err != nil {
			_ = srv.Shutdown()
			return err
		}

		<-gctx.Done()
		view.Close()
		return srv.Shutdown()
	})

	if err := g.Wait(); err != nil {
		l.Error("Application stopped with error", zap.Error(err))
		return err
	}

	l.Info("Application stopped")
	return nil
}
