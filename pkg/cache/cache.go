// Package cache stores laid out scenes and rendered artifacts.
//
// Rendering is cheap next to the rsvg-convert round trip for PNG and PDF,
// and the server sees the same chart many times, so the pipeline keeps its
// results in a [Cache]. Three backends exist: [FileCache] for the CLI,
// [RedisCache] for a shared server deployment, and [NullCache] when caching
// is off.
//
// Keys come from a [Keyer]. They hash every input that changes the output,
// including the "now" instant truncated to the minute, so a cached chart
// never shows a stale today marker for long.
package cache

import (
	"context"
	"time"
)

// Cache is a byte store with per-entry expiry.
type Cache interface {
	// Get returns the stored value and true, or false on a miss.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data under key. A zero ttl never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Close releases the backend.
	Close() error
}
