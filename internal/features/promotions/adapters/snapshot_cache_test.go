package adapters

import (
	"context"
	"testing"
	"time"

	"promo-banner/internal/core/cache"
	"promo-banner/internal/features/promotions/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKey = "promotions_snapshot"

func TestCacheSnapshotStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewCacheSnapshotStore(cache.NewMemoryAdapter(), testKey)

	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.FixedZone("BRT", -3*3600))
	items := domain.PromotionSet{
		{ID: "1", Title: "Combo", Image: "combo.png", Active: true},
		{ID: "2", Description: "Sobremesa", Active: true, Items: []int{9}},
	}

	require.NoError(t, store.Write(ctx, items, now))

	entry, ok := store.Read(ctx)
	require.True(t, ok)
	assert.Equal(t, items, entry.Payload)
	assert.True(t, now.Equal(entry.StoredAt))
	assert.Equal(t, time.UTC, entry.StoredAt.Location())
}

func TestCacheSnapshotStore_WriteOverwrites(t *testing.T) {
	ctx := context.Background()
	store := NewCacheSnapshotStore(cache.NewMemoryAdapter(), testKey)
	now := time.Now()

	require.NoError(t, store.Write(ctx, domain.PromotionSet{{ID: "1", Active: true}}, now))
	require.NoError(t, store.Write(ctx, domain.PromotionSet{{ID: "2", Active: true}}, now.Add(time.Minute)))

	entry, ok := store.Read(ctx)
	require.True(t, ok)
	require.Len(t, entry.Payload, 1)
	assert.Equal(t, domain.PromotionID("2"), entry.Payload[0].ID)
}

func TestCacheSnapshotStore_WriteNilItems(t *testing.T) {
	ctx := context.Background()
	store := NewCacheSnapshotStore(cache.NewMemoryAdapter(), testKey)

	require.NoError(t, store.Write(ctx, nil, time.Now()))

	entry, ok := store.Read(ctx)
	require.True(t, ok)
	assert.NotNil(t, entry.Payload)
	assert.Empty(t, entry.Payload)
}

func TestCacheSnapshotStore_Miss(t *testing.T) {
	store := NewCacheSnapshotStore(cache.NewMemoryAdapter(), testKey)

	_, ok := store.Read(context.Background())
	assert.False(t, ok)
}

func TestCacheSnapshotStore_CorruptData(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "NotJSON", raw: "{{{"},
		{name: "MissingTimestamp", raw: `{"payload": []}`},
		{name: "MissingPayload", raw: `{"stored_at": "2024-05-01T10:00:00Z"}`},
		{name: "ZeroTimestamp", raw: `{"payload": [], "stored_at": "0001-01-01T00:00:00Z"}`},
		{name: "PayloadNotArray", raw: `{"payload": {"id": 1}, "stored_at": "2024-05-01T10:00:00Z"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			mem := cache.NewMemoryAdapter()
			require.NoError(t, mem.Set(ctx, testKey, []byte(tt.raw), 0))

			store := NewCacheSnapshotStore(mem, testKey)
			_, ok := store.Read(ctx)
			assert.False(t, ok)
		})
	}
}

func TestCacheSnapshotStore_ClosedBackend(t *testing.T) {
	ctx := context.Background()
	mem := cache.NewMemoryAdapter()
	store := NewCacheSnapshotStore(mem, testKey)
	require.NoError(t, store.Write(ctx, domain.PromotionSet{{ID: "1", Active: true}}, time.Now()))
	require.NoError(t, mem.Close())

	_, ok := store.Read(ctx)
	assert.False(t, ok)
}

func TestDecodeEntry_Corrupt(t *testing.T) {
	_, err := decodeEntry([]byte("nope"))
	assert.ErrorIs(t, err, domain.ErrCacheCorrupt)
}
