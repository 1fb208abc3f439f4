package adapters

import (
	"context"
	"errors"
	"fmt"
	"time"

	"promo-banner/internal/core/cache"
	"promo-banner/internal/core/logger"
	"promo-banner/internal/features/promotions/domain"

	"go.uber.org/zap"
)

// CacheSnapshotStore implements ports.SnapshotCache on top of a cache.Cache slot.
// Payload and timestamp are written as one record.
type CacheSnapshotStore struct {
	cache  cache.Cache
	key    string
	logger *zap.Logger
}

// NewCacheSnapshotStore creates a snapshot store using key as its only slot.
func NewCacheSnapshotStore(c cache.Cache, key string) *CacheSnapshotStore {
	return &CacheSnapshotStore{
		cache:  c,
		key:    key,
		logger: logger.Named("snapshot"),
	}
}

// Read returns the stored snapshot. Absent, unreachable and corrupt slots all read as a miss.
func (s *CacheSnapshotStore) Read(ctx context.Context) (domain.CacheEntry, bool) {
	data, err := s.cache.Get(ctx, s.key)
	if err != nil {
		if !errors.Is(err, cache.ErrNotFound) {
			s.logger.Warn("Failed to read promotions snapshot", zap.String("key", s.key), zap.Error(err))
		}
		return domain.CacheEntry{}, false
	}

	entry, err := decodeEntry(data)
	if err != nil {
		s.logger.Warn("Ignoring promotions snapshot", zap.String("key", s.key), zap.Error(err))
		return domain.CacheEntry{}, false
	}

	return entry, true
}

// Write overwrites the slot with items stamped at now. The slot itself never expires;
// validity is decided by the reader.
func (s *CacheSnapshotStore) Write(ctx context.Context, items domain.PromotionSet, now time.Time) error {
	if items == nil {
		items = domain.PromotionSet{}
	}

	data, err := json.Marshal(domain.CacheEntry{Payload: items, StoredAt: now.UTC()})
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	if err := s.cache.Set(ctx, s.key, data, 0); err != nil {
		return fmt.Errorf("failed to save snapshot to cache: %w", err)
	}

	return nil
}

// decodeEntry parses a stored snapshot and checks it is structurally complete.
func decodeEntry(data []byte) (domain.CacheEntry, error) {
	var raw struct {
		Payload  *domain.PromotionSet `json:"payload"`
		StoredAt *time.Time           `json:"stored_at"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return domain.CacheEntry{}, fmt.Errorf("%w: %w", domain.ErrCacheCorrupt, err)
	}
	if raw.Payload == nil || raw.StoredAt == nil || raw.StoredAt.IsZero() {
		return domain.CacheEntry{}, fmt.Errorf("%w: missing payload or timestamp", domain.ErrCacheCorrupt)
	}

	return domain.CacheEntry{Payload: *raw.Payload, StoredAt: *raw.StoredAt}, nil
}
