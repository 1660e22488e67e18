// Package cache is a get-or-fetch response cache with a fixed time-to-live
// per entry. It is advisory: services invalidate keys eagerly after writes
// instead of relying on expiry.
package cache

import (
	"context"
	"encoding/json"
	"time"
)

// DefaultTTL bounds how stale a cached aggregate may get before the next
// read refetches it.
const DefaultTTL = 5 * time.Minute

// Store is the raw keyed byte store behind a Cache. Implementations must
// treat a missing key as (nil, nil).
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// envelope wraps a cached value with the moment it was stored.
type envelope struct {
	Data     json.RawMessage `json:"data"`
	CachedAt time.Time       `json:"cached_at"`
}

type Cache struct {
	store Store
	now   func() time.Time
}

func New(store Store) *Cache {
	return &Cache{store: store, now: time.Now}
}

// Invalidate removes a stored entry regardless of its age.
func (c *Cache) Invalidate(ctx context.Context, key string) {
	// Best effort: a failed delete only costs freshness, not correctness.
	_ = c.store.Delete(ctx, key)
}

// GetOrFetch returns the cached value for key when one exists and is younger
// than ttl, otherwise calls fetch, stores its result and returns it. Any
// store failure or corrupted entry counts as a miss; only fetch errors reach
// the caller.
func GetOrFetch[T any](ctx context.Context, c *Cache, key string, ttl time.Duration, fetch func(ctx context.Context) (T, error)) (T, error) {
	if raw, err := c.store.Get(ctx, key); err == nil && raw != nil {
		var env envelope
		if err := json.Unmarshal(raw, &env); err == nil && c.now().Sub(env.CachedAt) < ttl {
			var v T
			if err := json.Unmarshal(env.Data, &v); err == nil {
				return v, nil
			}
		}
	}

	v, err := fetch(ctx)
	if err != nil {
		var zero T
		return zero, err
	}

	if data, err := json.Marshal(v); err == nil {
		env := envelope{Data: data, CachedAt: c.now()}
		if raw, err := json.Marshal(env); err == nil {
			_ = c.store.Set(ctx, key, raw)
		}
	}
	return v, nil
}
