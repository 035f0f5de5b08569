// Package cache provides the serialized FAQ page cache.
package cache

import (
	"context"
	"time"
)

// PageCache stores serialized result pages under deterministic keys.
// The cache is never authoritative: a miss (or an expired key) simply sends
// the caller back to the store.
type PageCache interface {
	// Get retrieves the payload for key. The second result reports whether
	// the key was present; a non-nil error means the cache itself failed
	// and is distinct from a miss.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores payload at key with the given TTL.
	Set(ctx context.Context, key string, payload []byte, ttl time.Duration) error
}
