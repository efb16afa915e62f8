package search

import "sort"

// NextOffset returns the text offset of the next occurrence in the
// current match range and advances the cursor, or ok == false once the
// range is exhausted or no search has succeeded (spec.md §4.8).
func (s *Searcher) NextOffset() (offset int, ok bool) {
	if !s.hasRange || s.cursor > s.last {
		return 0, false
	}
	offset = s.src.at(s.cursor)
	s.cursor++
	return offset, true
}

// NextOccurrenceSuffix returns the text from the next occurrence's offset
// through end of file, for callers that want to print or scan the match
// in place rather than just its offset.
func (s *Searcher) NextOccurrenceSuffix() ([]byte, bool) {
	off, ok := s.NextOffset()
	if !ok {
		return nil, false
	}
	return s.text.Data()[off:], true
}

// PeekNextPosition returns the offset the next NextOffset call would
// return, without advancing the cursor.
func (s *Searcher) PeekNextPosition() (offset int, ok bool) {
	if !s.hasRange || s.cursor > s.last {
		return 0, false
	}
	return s.src.at(s.cursor), true
}

// ResetCursor rewinds the cursor to the start of the current match range,
// letting callers re-iterate occurrences already found.
func (s *Searcher) ResetCursor() {
	s.cursor = s.first
}

// SortOccurrences reorders the current match range by text offset rather
// than suffix order, so NextOffset (and the region extraction built on
// it) visits occurrences in document order instead of the order the
// suffix array happens to store them in. It materializes an owned copy of
// the range the first time it is called — subsequent calls (and the
// idempotent case of sorting an already-sorted range) just re-sort that
// copy in place.
//
// Once a range has been sorted, ISearch may no longer be used on this
// Searcher: sorting is a one-way trip away from suffix order.
func (s *Searcher) SortOccurrences() {
	if !s.hasRange {
		return
	}
	n := s.CountOccurrences()
	if s.owned == nil {
		entries := make([]int, n)
		for i := 0; i < n; i++ {
			entries[i] = s.src.at(s.first + i)
		}
		s.owned = entries
		s.src = sliceSource(entries)
	}
	sort.Ints(s.owned)
	s.first, s.last = 0, n-1
	s.cursor = 0
	s.isSorted = true
}
