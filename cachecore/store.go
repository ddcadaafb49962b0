package cachecore

import (
	"context"
	"time"
)

// Store is the shared cache backend contract.
// Get reports a missing key via the bool; the error channel carries backend
// failures only, never misses.
type Store interface {
	Driver() Driver
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	DeleteMany(ctx context.Context, keys ...string) error
	Flush(ctx context.Context) error
}
