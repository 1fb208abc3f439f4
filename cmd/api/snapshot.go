package main

import (
	"context"
	"fmt"
	"time"

	"promo-banner/internal/core/cache"
	"promo-banner/internal/features/promotions/adapters"
	"promo-banner/internal/features/promotions/domain"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Print the cached promotions snapshot",
	Long: `Print the promotions snapshot stored in the configured cache backend
together with its age and whether it is still fresh enough to render
without contacting the backend.`,
	RunE: runSnapshot,
}

// snapshotReport is the output of the snapshot command.
type snapshotReport struct {
	Found    bool                `json:"found"`
	Valid    bool                `json:"valid"`
	StoredAt *time.Time          `json:"stored_at,omitempty"`
	Age      string              `json:"age,omitempty"`
	Count    int                 `json:"count"`
	Items    domain.PromotionSet `json:"items"`
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
	defer cancel()

	backend, err := cache.Open(cfg.Cache)
	if err != nil {
		return err
	}
	defer backend.Close()

	store := adapters.NewCacheSnapshotStore(backend, cfg.Cache.Key)
	return printJSON(cmd, newSnapshotReport(ctx, store, cfg.Cache.Expiration, time.Now()))
}

func newSnapshotReport(ctx context.Context, store *adapters.CacheSnapshotStore, expiration time.Duration, now time.Time) snapshotReport {
	report := snapshotReport{Items: domain.PromotionSet{}}

	entry, ok := store.Read(ctx)
	if !ok {
		return report
	}

	report.Found = true
	report.Valid = entry.IsValid(now, expiration)
	report.StoredAt = &entry.StoredAt
	report.Age = now.Sub(entry.StoredAt).Round(time.Second).String()
	report.Count = len(entry.Payload)
	report.Items = entry.Payload
	return report
}

func printJSON(cmd *cobra.Command, v interface{}) error {
	out, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return err
}
