package repositories

import (
	"context"
	"time"
)

// CacheRepositoryInterface is a minimal TTL key-value cache.
type CacheRepositoryInterface interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
