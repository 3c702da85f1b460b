package repository

import (
	"bytes"
	"context"
	"log"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCache(t *testing.T) {
	ctx := context.Background()
	cache := NewMemoryCache()

	_, ok := cache.Get(ctx, "k")
	assert.False(t, ok)

	require.NoError(t, cache.Set(ctx, "k", "v"))
	val, ok := cache.Get(ctx, "k")
	assert.True(t, ok)
	assert.Equal(t, "v", val)
}

// Runs only when a Redis server is available, e.g. REDIS_TEST_ADDR=localhost:6379.
func TestRedisCache(t *testing.T) {
	addr := os.Getenv("REDIS_TEST_ADDR")
	if addr == "" {
		t.Skip("REDIS_TEST_ADDR not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cache := NewRedisCache(addr, "", time.Minute)
	t.Cleanup(func() { cache.Close() })
	require.NoError(t, cache.Ping(ctx))

	key := "test:" + t.Name()
	require.NoError(t, cache.Set(ctx, key, `{"rows":[]}`))
	val, ok := cache.Get(ctx, key)
	assert.True(t, ok)
	assert.Equal(t, `{"rows":[]}`, val)

	_, ok = cache.Get(ctx, key+":missing")
	assert.False(t, ok)
}

func TestRedisCache_UnreachableServerIsLoggedMiss(t *testing.T) {
	var logs bytes.Buffer
	log.SetOutput(&logs)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	// Nothing listens on port 1.
	cache := NewRedisCache("127.0.0.1:1", "", time.Minute)
	cache.timeout = 200 * time.Millisecond
	t.Cleanup(func() { cache.Close() })

	start := time.Now()
	_, ok := cache.Get(context.Background(), "k")

	assert.False(t, ok)
	assert.Contains(t, logs.String(), "Warning: redis get k failed")
	assert.Less(t, time.Since(start), 2*time.Second)
	assert.Error(t, cache.Set(context.Background(), "k", "v"))
}
