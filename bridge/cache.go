// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.
package bridge

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// CachedResult is a cached fmindex.Index.LocateAll result.
type CachedResult struct {
	Positions []int
	Count     int
}

// ResultCache caches fmindex search results keyed by an FNV-1a hash of
// the query pattern, avoiding a repeated backward-search/LF-walk for a
// previously seen pattern.
type ResultCache struct {
	cache *lru.Cache[uint64, CachedResult]
	hits  int
	total int
}

// NewResultCache returns a ResultCache holding at most capacity
// entries, evicting least-recently-used entries once full.
func NewResultCache(capacity int) (*ResultCache, error) {
	c, err := lru.New[uint64, CachedResult](capacity)
	if err != nil {
		return nil, err
	}
	return &ResultCache{cache: c}, nil
}

// fnv1a hashes pattern. Kept byte-for-byte identical to the reference
// implementation's own fnv1a so cache keys are reproducible across
// ports.
func fnv1a(data []byte) uint64 {
	const (
		offsetBasis uint64 = 0xcbf29ce484222325
		prime       uint64 = 0x100000001b3
	)
	h := offsetBasis
	for _, b := range data {
		h ^= uint64(b)
		h *= prime
	}
	return h
}

// Get looks up a previously stored result for pattern.
func (c *ResultCache) Get(pattern []byte) (CachedResult, bool) {
	c.total++
	v, ok := c.cache.Get(fnv1a(pattern))
	if ok {
		c.hits++
	}
	return v, ok
}

// Put stores positions as the result for pattern.
func (c *ResultCache) Put(pattern []byte, positions []int) {
	c.cache.Add(fnv1a(pattern), CachedResult{Positions: positions, Count: len(positions)})
}

// HitRate returns the fraction of Get calls that were cache hits, or 0
// if Get has never been called.
func (c *ResultCache) HitRate() float64 {
	if c.total == 0 {
		return 0
	}
	return float64(c.hits) / float64(c.total)
}

// Len returns the number of cached entries.
func (c *ResultCache) Len() int { return c.cache.Len() }
