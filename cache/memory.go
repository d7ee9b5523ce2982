package cache

import (
	"context"
	"sync"
	"time"
)

type entry struct {
	value     []byte
	expiresAt time.Time
}

// MemoryCache keeps entries in process memory. The clock is injectable so
// expiry can be tested without sleeping.
type MemoryCache struct {
	mu      sync.Mutex
	entries map[string]entry
	clock   func() time.Time
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		entries: make(map[string]entry),
		clock:   time.Now,
	}
}

// WithClock replaces the time source. Returns the cache for chaining.
func (mc *MemoryCache) WithClock(clock func() time.Time) *MemoryCache {
	mc.clock = clock
	return mc
}

func (mc *MemoryCache) Get(ctx context.Context, key string) ([]byte, bool) {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	cached, ok := mc.entries[key]
	if !ok {
		return nil, false
	}
	if mc.clock().After(cached.expiresAt) {
		delete(mc.entries, key)
		return nil, false
	}
	return cached.value, true
}

func (mc *MemoryCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	copied := make([]byte, len(value))
	copy(copied, value)
	mc.entries[key] = entry{value: copied, expiresAt: mc.clock().Add(ttl)}
}

func (mc *MemoryCache) Clear(ctx context.Context, key string) {
	mc.mu.Lock()
	defer mc.mu.Unlock()
	delete(mc.entries, key)
}
