package search

// rangeCache is the pluggable cache hook of spec.md §4.10: a memo of
// pattern bytes to the bracket range a full search previously found for
// them. Keyed on the complete (pattern, length) pair, resolving the Open
// Question the reference left as a first-byte-only key (which could
// collide on unrelated patterns sharing a first byte).
//
// Implemented by package cache; Searcher only depends on this interface
// so alternative strategies can be swapped in without touching the search
// algorithm.
type rangeCache interface {
	Get(pattern []byte) (first, last int, ok bool)
	Add(pattern []byte, first, last int)
}

// EnableCache installs c as this Searcher's bracket-result cache. Passing
// nil disables caching.
func (s *Searcher) EnableCache(c rangeCache) {
	s.cache = c
}
