// Package cache implements a bounded memo of search bracket results,
// installed into a search.Searcher via EnableCache (spec.md §4.10).
//
// Grounded on golang-lru's use in the onpair compression example's
// dictionary cache (seiflotfy-onpair): a fixed-capacity LRU is a natural
// fit for memoizing repeated lookups against an immutable backing store,
// which is exactly the relationship between a pattern's bracket range and
// the suffix array it was computed from.
package cache

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// range_ is the cached bracket result for one pattern.
type range_ struct {
	first, last int
}

// Cache memoizes pattern -> bracket range lookups. The key is the full
// pattern content (not just its first byte, as the reference's cache
// did) so that unrelated patterns sharing a prefix never collide —
// spec.md §9's resolution of that Open Question.
type Cache struct {
	lru *lru.Cache[string, range_]
}

// New creates a Cache holding at most capacity entries. Capacity must be
// positive.
func New(capacity int) (*Cache, error) {
	l, err := lru.New[string, range_](capacity)
	if err != nil {
		return nil, err
	}
	return &Cache{lru: l}, nil
}

// Get looks up pattern's cached range.
func (c *Cache) Get(pattern []byte) (first, last int, ok bool) {
	r, ok := c.lru.Get(keyOf(pattern))
	if !ok {
		return 0, 0, false
	}
	return r.first, r.last, true
}

// Add records pattern's bracket range, evicting the least recently used
// entry if the cache is at capacity.
func (c *Cache) Add(pattern []byte, first, last int) {
	c.lru.Add(keyOf(pattern), range_{first, last})
}

// Purge discards every cached entry.
func (c *Cache) Purge() {
	c.lru.Purge()
}

func keyOf(pattern []byte) string {
	return string(pattern)
}
