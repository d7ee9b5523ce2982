// Package cache is the page-fragment cache used by the home feed. The
// interface is injected into the middleware so tests can substitute the
// deterministic in-memory implementation.
package cache

import (
	"context"
	"time"
)

// HomeFeedKey is the fixed key the home feed's rendered body is stored under.
const HomeFeedKey = "page:home-feed"

type Cache interface {
	// Get returns the cached value and whether the key was present and
	// unexpired. A backend error is treated as a miss.
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration)
	Clear(ctx context.Context, key string)
}
