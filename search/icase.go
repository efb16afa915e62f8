package search

// ICaseSearch is the case-insensitive counterpart of Search (spec.md
// §4.7): every ASCII letter position in pattern is tried against both its
// upper and lower case, and the union of the resulting matches becomes the
// new range.
func (s *Searcher) ICaseSearch(pattern []byte) bool {
	return s.ICaseSearchLen(pattern, len(pattern))
}

// ICaseSearchLen is ICaseSearch with an explicit pattern length.
func (s *Searcher) ICaseSearchLen(pattern []byte, length int) bool {
	if length == 0 {
		return s.ISearch(pattern, 0)
	}

	s.resetState()

	tmp := make([]byte, length)
	copy(tmp, pattern[:length])

	var results []int
	s.expandCase(tmp, 0, length, &results)

	if len(results) == 0 {
		s.hasRange = false
		return false
	}

	s.owned = results
	s.src = sliceSource(results)
	s.first, s.last = 0, len(results)-1
	s.cursor = 0
	s.hasRange = true
	s.isSorted = false
	return true
}

// expandCase recursively tries both case candidates of tmp[k], narrowing
// via ISearch at each level and, at the leaf (k+1 == length), appending
// every matching entry's decoded offset to out. It is grounded on
// icase_search/expand_letter in saryer.c: each candidate byte is tried
// against the range the previous recursion level proved, and the range is
// restored before the next candidate so siblings see the same starting
// point.
//
// Because ISearch always sets pattern.Skip = length regardless of
// success, the skip is decremented by one after each candidate (success
// or not) so sibling candidates at this level see the skip value they
// started with.
func (s *Searcher) expandCase(tmp []byte, k, length int, out *[]int) {
	for _, c := range expandLetter(tmp[k]) {
		savedFirst, savedLast, savedHasRange := s.first, s.last, s.hasRange
		tmp[k] = c

		if s.ISearch(tmp, k+1) {
			if k+1 < length {
				s.expandCase(tmp, k+1, length, out)
			} else {
				for i := s.first; i <= s.last; i++ {
					*out = append(*out, s.src.at(i))
				}
			}
		}

		s.first, s.last, s.hasRange = savedFirst, savedLast, savedHasRange
		s.pattern.Skip--
	}
}

// expandLetter returns the case candidates for byte b: both cases for an
// ASCII letter (upper tried first, matching the reference's traversal
// order), or b alone for anything else.
func expandLetter(b byte) []byte {
	switch {
	case b >= 'a' && b <= 'z':
		return []byte{b - ('a' - 'A'), b}
	case b >= 'A' && b <= 'Z':
		return []byte{b, b + ('a' - 'A')}
	default:
		return []byte{b}
	}
}
