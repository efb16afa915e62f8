// Package search implements substring search over a persisted suffix
// array: the bracketing binary search of spec.md §4.4, its incremental
// and case-insensitive variants, and the occurrence cursor and region
// extraction built on top of it (spec.md §4).
package search

import (
	"github.com/gosary/sary/array"
	"github.com/gosary/sary/text"
)

// Searcher binds a text view and an array view together and carries the
// mutable state of a search in progress: the current match range, a
// cursor into it, and (after SortOccurrences or ICaseSearch) an owned
// slice of entries standing in for the array view.
//
// A Searcher is not safe for concurrent use; callers needing concurrent
// searches over the same files should open independent Searchers, which
// is cheap since the underlying views are memory-mapped.
type Searcher struct {
	text *text.View
	arr  *array.View

	src     entrySource
	pattern Pattern

	first, last int
	hasRange    bool
	cursor      int

	isSorted bool
	owned    []int

	cache rangeCache
}

// New binds t and a together. Both must outlive the Searcher.
func New(t *text.View, a *array.View) *Searcher {
	s := &Searcher{text: t, arr: a}
	s.resetState()
	return s
}

// resetState discards any match range, owned buffer, and accumulated
// pattern skip, returning the Searcher to its just-opened state. Mirrors
// the reference's init_saryer_states, called at the top of every "first
// time" search entry point (Search, SearchLen, ICaseSearchLen, and the
// first call of a fresh ISearch chain).
func (s *Searcher) resetState() {
	s.src = arraySource{s.arr}
	s.pattern = Pattern{}
	s.first, s.last, s.hasRange = 0, 0, false
	s.cursor = 0
	s.isSorted = false
	s.owned = nil
}

// Search looks up pattern and reports whether at least one occurrence
// exists. A successful call resets any previous match range; a failed
// one leaves the Searcher with no active range.
func (s *Searcher) Search(pattern []byte) bool {
	return s.SearchLen(pattern, len(pattern))
}

// SearchLen is Search with an explicit pattern length, for callers that
// hold pattern in a larger buffer (spec.md §4.5).
func (s *Searcher) SearchLen(pattern []byte, length int) bool {
	s.resetState()
	return s.bracketSearch(pattern, length, 0, s.arr.Len())
}

// bracketSearch runs the comparator-driven bracket (consulting and
// populating the cache if one is installed) over src[offset:offset+rng)
// and, on success, installs the resulting range as current.
func (s *Searcher) bracketSearch(pattern []byte, length, offset, rng int) bool {
	key := pattern[:length]

	if s.cache != nil {
		if first, last, ok := s.cache.Get(key); ok {
			s.pattern = Pattern{Str: pattern, Len: length, Skip: s.pattern.Skip}
			s.first, s.last, s.hasRange = first, last, true
			s.cursor = first
			return true
		}
	}

	pat := Pattern{Str: pattern, Len: length, Skip: s.pattern.Skip}
	first, last, ok := bracket(s.src, offset, offset+rng, s.text.Data(), pat)
	s.pattern = pat
	if !ok {
		s.hasRange = false
		return false
	}

	s.first, s.last, s.hasRange = first, last, true
	s.cursor = first
	if s.cache != nil {
		s.cache.Add(key, first, last)
	}
	return true
}

// CountOccurrences returns the number of matches in the current range, or
// 0 if no search has succeeded.
func (s *Searcher) CountOccurrences() int {
	if !s.hasRange {
		return 0
	}
	return s.last - s.first + 1
}
