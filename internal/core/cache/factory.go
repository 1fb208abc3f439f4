package cache

import (
	"fmt"

	"promo-banner/internal/core/config"
)

// Open builds the Cache selected by cfg.Backend.
func Open(cfg config.CacheConfig) (Cache, error) {
	switch cfg.Backend {
	case config.CacheBackendRedis:
		return NewRedisAdapter(cfg.RedisURL)
	case config.CacheBackendSQLite:
		return NewSQLiteAdapter(cfg.SQLitePath)
	case config.CacheBackendMemory:
		return NewMemoryAdapter(), nil
	default:
		return nil, fmt.Errorf("unsupported cache backend: %s", cfg.Backend)
	}
}
