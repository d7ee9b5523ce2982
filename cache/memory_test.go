package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCacheRoundTrip(t *testing.T) {
	mc := NewMemoryCache()

	mc.Set(context.Background(), "key", []byte("value"), time.Minute)

	value, ok := mc.Get(context.Background(), "key")
	require.True(t, ok)
	assert.Equal(t, []byte("value"), value)
}

func TestMemoryCacheMiss(t *testing.T) {
	mc := NewMemoryCache()

	_, ok := mc.Get(context.Background(), "missing")

	assert.False(t, ok)
}

func TestMemoryCacheExpiry(t *testing.T) {
	now := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	mc := NewMemoryCache().WithClock(func() time.Time { return now })

	mc.Set(context.Background(), "key", []byte("value"), 20*time.Second)

	now = now.Add(19 * time.Second)
	_, ok := mc.Get(context.Background(), "key")
	assert.True(t, ok)

	now = now.Add(2 * time.Second)
	_, ok = mc.Get(context.Background(), "key")
	assert.False(t, ok)
}

func TestMemoryCacheClear(t *testing.T) {
	mc := NewMemoryCache()
	mc.Set(context.Background(), "key", []byte("value"), time.Minute)

	mc.Clear(context.Background(), "key")

	_, ok := mc.Get(context.Background(), "key")
	assert.False(t, ok)
}

func TestMemoryCacheCopiesValue(t *testing.T) {
	mc := NewMemoryCache()
	value := []byte("value")
	mc.Set(context.Background(), "key", value, time.Minute)

	value[0] = 'x'

	cached, ok := mc.Get(context.Background(), "key")
	require.True(t, ok)
	assert.Equal(t, []byte("value"), cached)
}
