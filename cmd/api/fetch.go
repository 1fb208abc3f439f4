package main

import (
	"context"
	"fmt"
	"time"

	"promo-banner/internal/features/promotions/adapters"
	"promo-banner/internal/features/promotions/domain"

	"github.com/spf13/cobra"
)

var fetchTimeout time.Duration

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch promotions from the backend once",
	Long: `Call the promotions backend once and print the active promotions in
rotation order. The snapshot cache is neither read nor written.`,
	RunE: runFetch,
}

func init() {
	fetchCmd.Flags().DurationVar(&fetchTimeout, "timeout", 30*time.Second, "give up after this long")
}

// fetchReport is the output of the fetch command.
type fetchReport struct {
	Received int                 `json:"received"`
	Active   int                 `json:"active"`
	Items    domain.PromotionSet `json:"items"`
}

func runFetch(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), fetchTimeout)
	defer cancel()

	source := adapters.NewHTTPPromotionSource(cfg.Promotions.ListURL(), cfg.Promotions.HTTPTimeout)
	raw, err := source.FetchPromotions(ctx)
	if err != nil {
		return fmt.Errorf("fetch failed: %w", err)
	}

	active := domain.FilterActive(raw)
	return printJSON(cmd, fetchReport{
		Received: len(raw),
		Active:   len(active),
		Items:    active,
	})
}
