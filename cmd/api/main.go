package main

import (
	"fmt"
	"os"

	"promo-banner/internal/core/config"
	"promo-banner/internal/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// cfg is loaded once by the root command before any subcommand runs.
var cfg *config.AppConfig

var configDir string

// rootCmd runs the banner service when no subcommand is given.
var rootCmd = &cobra.Command{
	Use:   "promo-banner",
	Short: "Restaurant promotions banner",
	Long: `promo-banner keeps the promotional banner fresh.

It renders promotions from a local snapshot cache, revalidates the cache
against the promotions backend in the background and rotates the visible
promotion on a timer.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE:              runServe,
}

// @title Promo Banner API
// @version 1.0
// @description Status API of the restaurant promotions banner.
// @contact.name API Support
// @license.name MIT
// @host localhost:8080
// @BasePath /
func main() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", ".", "directory containing the .env file")
	rootCmd.AddCommand(serveCmd, snapshotCmd, fetchCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func setup(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load(configDir)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(loaded.Environment, loaded.LogLevel); err != nil {
		return fmt.Errorf("failed to init logger: %w", err)
	}

	cfg = loaded
	logger.Get().Debug("Configuration loaded",
		zap.String("environment", cfg.Environment),
		zap.String("log_level", cfg.LogLevel),
		zap.String("cache_backend", cfg.Cache.Backend),
	)
	return nil
}
