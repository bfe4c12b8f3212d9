package utils_test

import (
	"testing"
	"time"

	"agency/src/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheSetGet(t *testing.T) {
	cache := utils.NewCache[int]()

	cache.Set("answer", 42, time.Minute)
	value, ok := cache.Get("answer")
	require.True(t, ok)
	assert.Equal(t, 42, value)

	_, ok = cache.Get("missing")
	assert.False(t, ok)
}

func TestCacheExpiration(t *testing.T) {
	cache := utils.NewCache[string]()

	cache.Set("short", "lived", 10*time.Millisecond)
	time.Sleep(20 * time.Millisecond)

	_, ok := cache.Get("short")
	assert.False(t, ok)
}

func TestCacheClear(t *testing.T) {
	cache := utils.NewCache[string]()
	cache.Set("a", "1", time.Minute)
	cache.Set("b", "2", time.Minute)

	cache.Clear()

	_, ok := cache.Get("a")
	assert.False(t, ok)
	_, ok = cache.Get("b")
	assert.False(t, ok)
}
