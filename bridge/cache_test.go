package bridge

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResultCacheRoundtrip(t *testing.T) {
	cache, err := NewResultCache(256)
	assert.NoError(t, err)

	pattern := []byte("hello")
	positions := []int{10, 42, 99}
	cache.Put(pattern, positions)

	got, ok := cache.Get(pattern)
	assert.True(t, ok)
	assert.Equal(t, positions, got.Positions)
	assert.Equal(t, 3, got.Count)
}

func TestResultCacheMiss(t *testing.T) {
	cache, err := NewResultCache(256)
	assert.NoError(t, err)

	_, ok := cache.Get([]byte("missing"))
	assert.False(t, ok)
}

func TestFNV1ADeterministic(t *testing.T) {
	assert.Equal(t, fnv1a([]byte("test")), fnv1a([]byte("test")))
	assert.NotEqual(t, fnv1a([]byte("test")), fnv1a([]byte("tset")))
}

func TestResultCacheHitRate(t *testing.T) {
	cache, err := NewResultCache(16)
	assert.NoError(t, err)

	cache.Put([]byte("a"), []int{1})
	cache.Get([]byte("a"))
	cache.Get([]byte("b"))

	assert.InDelta(t, 0.5, cache.HitRate(), 1e-9)
}
