package search

import "github.com/gosary/sary/text"

// seeker locates the head and tail of the region surrounding an
// occurrence. backward and forward are given the occurrence's text offset
// and return the region's start and end offsets respectively (spec.md
// §4.9); NextLine, NextContextLines and NextTaggedRegion each supply a
// different pair grounded on the corresponding seek functions in package
// text.
type seeker struct {
	backward func(data []byte, pos int) int
	forward  func(data []byte, pos int) int
}

func lineSeeker() seeker {
	return seeker{
		backward: func(data []byte, pos int) int { return text.SeekLinesBackward(data, pos, 0) },
		forward:  func(data []byte, pos int) int { return text.SeekLinesForward(data, pos, 0) },
	}
}

func contextSeeker(before, after int) seeker {
	return seeker{
		backward: func(data []byte, pos int) int { return text.SeekLinesBackward(data, pos, before) },
		forward:  func(data []byte, pos int) int { return text.SeekLinesForward(data, pos, after) },
	}
}

func taggedSeeker(startTag, endTag []byte) seeker {
	return seeker{
		backward: func(data []byte, pos int) int { return text.SeekPatternBackward(data, pos, startTag) },
		forward:  func(data []byte, pos int) int { return text.SeekPatternForward(data, pos, endTag) },
	}
}

// NextLine returns the full line containing the next occurrence, advancing
// the cursor past it (and past any subsequent occurrence the line already
// covers, once SortOccurrences has been called).
func (s *Searcher) NextLine() ([]byte, bool) {
	head, tail, ok := s.nextRegion(lineSeeker())
	if !ok {
		return nil, false
	}
	return s.text.Data()[head:tail], true
}

// NextContextLines returns before lines of leading context, the line
// containing the next occurrence, and after lines of trailing context
// (grep -A/-B/-C style), joining with any subsequent occurrence whose
// context overlaps once the range has been sorted by offset.
func (s *Searcher) NextContextLines(before, after int) ([]byte, bool) {
	head, tail, ok := s.nextRegion(contextSeeker(before, after))
	if !ok {
		return nil, false
	}
	return s.text.Data()[head:tail], true
}

// NextTaggedRegion returns the text spanning from the nearest occurrence
// of startTag at or before the next occurrence through the nearest
// occurrence of endTag at or after it. If startTag is never found
// backward from the occurrence, the region starts at beginning of file;
// symmetrically for endTag and end of file (spec.md §9's resolved Open
// Question on tagged-region absence).
func (s *Searcher) NextTaggedRegion(startTag, endTag []byte) ([]byte, bool) {
	head, tail, ok := s.nextRegion(taggedSeeker(startTag, endTag))
	if !ok {
		return nil, false
	}
	return s.text.Data()[head:tail], true
}

// nextRegion is the shared shape behind NextLine, NextContextLines and
// NextTaggedRegion: seek out from the next occurrence, advance past it,
// and — when the range has been sorted by offset — absorb any following
// occurrences whose own region already overlaps this one.
func (s *Searcher) nextRegion(sk seeker) (head, tail int, ok bool) {
	if !s.hasRange || s.cursor > s.last {
		return 0, 0, false
	}
	data := s.text.Data()
	pos := s.src.at(s.cursor)
	head = sk.backward(data, pos)
	tail = sk.forward(data, pos)
	s.cursor++

	if s.isSorted {
		tail = s.joinSubsequentRegions(sk, tail)
	}
	return head, tail, true
}

// joinSubsequentRegions extends tail to absorb every following occurrence
// whose own region head falls within [.., tail), consuming those
// occurrences from the cursor so NextLine/etc. never emit the same text
// twice for adjacent matches (spec.md §4.9's region-join, the suffix-array
// analogue of grep -A/-B/-C overlap de-duplication; requires the range to
// be in offset order, hence only applied when isSorted).
func (s *Searcher) joinSubsequentRegions(sk seeker, tail int) int {
	data := s.text.Data()
	for {
		nextPos, ok := s.PeekNextPosition()
		if !ok {
			break
		}
		nextHead := sk.backward(data, nextPos)
		if nextHead >= tail {
			break
		}
		s.cursor++
		if nt := sk.forward(data, nextPos); nt > tail {
			tail = nt
		}
	}
	return tail
}
