package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"promo-banner/internal/core/cache"
	"promo-banner/internal/core/config"
	"promo-banner/internal/features/promotions/adapters"
	"promo-banner/internal/features/promotions/domain"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSnapshotReport(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Missing", func(t *testing.T) {
		store := adapters.NewCacheSnapshotStore(cache.NewMemoryAdapter(), "k")

		report := newSnapshotReport(ctx, store, 5*time.Minute, now)
		assert.False(t, report.Found)
		assert.False(t, report.Valid)
		assert.NotNil(t, report.Items)
	})

	t.Run("Fresh", func(t *testing.T) {
		store := adapters.NewCacheSnapshotStore(cache.NewMemoryAdapter(), "k")
		items := domain.PromotionSet{{ID: "1", Title: "A", Active: true}}
		require.NoError(t, store.Write(ctx, items, now.Add(-30*time.Second)))

		report := newSnapshotReport(ctx, store, 5*time.Minute, now)
		assert.True(t, report.Found)
		assert.True(t, report.Valid)
		assert.Equal(t, "30s", report.Age)
		assert.Equal(t, 1, report.Count)
	})

	t.Run("Expired", func(t *testing.T) {
		store := adapters.NewCacheSnapshotStore(cache.NewMemoryAdapter(), "k")
		require.NoError(t, store.Write(ctx, domain.PromotionSet{}, now.Add(-5*time.Minute)))

		report := newSnapshotReport(ctx, store, 5*time.Minute, now)
		assert.True(t, report.Found)
		assert.False(t, report.Valid)
	})
}

func TestRunFetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"id": 2, "title": "B", "active": true}, {"id": 3, "active": false}]`))
	}))
	defer server.Close()

	cfg = &config.AppConfig{Promotions: config.PromotionsConfig{
		APIURL:      server.URL,
		Path:        "/api/promos/promocoes",
		HTTPTimeout: 5 * time.Second,
	}}
	fetchTimeout = 5 * time.Second

	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)
	cmd.SetContext(context.Background())

	require.NoError(t, runFetch(cmd, nil))

	var report fetchReport
	require.NoError(t, jsoniter.Unmarshal(out.Bytes(), &report))
	assert.Equal(t, 2, report.Received)
	assert.Equal(t, 1, report.Active)
	assert.Equal(t, "B", report.Items[0].Title)
}

func TestRunFetch_BackendDown(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	cfg = &config.AppConfig{Promotions: config.PromotionsConfig{APIURL: server.URL, HTTPTimeout: time.Second}}
	fetchTimeout = 5 * time.Second

	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())

	err := runFetch(cmd, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNetwork)
}
