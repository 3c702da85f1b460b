package repository

import "context"

// CacheRepository stores computed results by key. Misses and backend errors
// both report ok=false; the caller recomputes either way.
type CacheRepository interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key string, value string) error
}
