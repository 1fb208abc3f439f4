package domain

import "errors"

var (
	// ErrNetwork is returned when the backend cannot be reached or answers with a failure status.
	ErrNetwork = errors.New("network error")
	// ErrDecode is returned when the backend body is not a list of promotions.
	ErrDecode = errors.New("decode error")
	// ErrCacheCorrupt marks a stored snapshot that cannot be decoded. It never leaves the cache adapter.
	ErrCacheCorrupt = errors.New("cache corrupt")
)
