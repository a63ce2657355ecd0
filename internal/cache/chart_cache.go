// Package cache keeps recently computed charts in memory.
package cache

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"jyotish/internal/domain/entity"
)

// DefaultSize is the number of charts kept when no size is configured.
const DefaultSize = 1024

// ChartCache is a bounded, concurrency-safe LRU of charts keyed by request
// fingerprint. Cached charts are shared; callers must treat them as read-only.
type ChartCache struct {
	lru *lru.Cache[string, *entity.Chart]
}

// New returns a cache holding at most size charts. A non-positive size uses DefaultSize.
func New(size int) (*ChartCache, error) {
	if size <= 0 {
		size = DefaultSize
	}
	c, err := lru.New[string, *entity.Chart](size)
	if err != nil {
		return nil, fmt.Errorf("new chart cache: %w", err)
	}
	return &ChartCache{lru: c}, nil
}

// Get returns the chart stored under key.
func (c *ChartCache) Get(key string) (*entity.Chart, bool) {
	return c.lru.Get(key)
}

// Add stores chart under key and reports whether an older entry was evicted.
func (c *ChartCache) Add(key string, chart *entity.Chart) bool {
	return c.lru.Add(key, chart)
}

// Remove drops key from the cache.
func (c *ChartCache) Remove(key string) {
	c.lru.Remove(key)
}

// Len returns the number of cached charts.
func (c *ChartCache) Len() int {
	return c.lru.Len()
}

// Purge empties the cache.
func (c *ChartCache) Purge() {
	c.lru.Purge()
}
