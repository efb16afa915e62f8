package search

import "bytes"

// compare is the truncating suffix comparator of spec.md §4.3. It compares
// pat.Str[pat.Skip:pat.Len] against the text suffix starting at
// candidateOffset+pat.Skip, but only over min(want, avail) bytes, where
// want is the remaining pattern length and avail is the remaining suffix
// length.
//
// Grounded on bsearchcmp in saryer.c: the comparison is deliberately
// truncated rather than padded, so a pattern that runs past end-of-text
// compares equal to whatever prefix of it the suffix can supply. That
// makes the comparator report equal whenever the pattern is a prefix of
// the suffix (a true match) but also, at the very edge of the text, when
// the suffix is merely a prefix of the pattern. The bracketing pass in
// bracket.go is what turns that into a correct match range; the
// comparator itself does not try to tell the two apart. Do not "fix" this
// by comparing full lengths — it would change which offsets round-trip
// through Search for patterns longer than the remaining text, in a way
// the reference implementation never did.
func compare(textData []byte, pat Pattern, candidateOffset int) int {
	want := pat.Len - pat.Skip
	avail := len(textData) - candidateOffset - pat.Skip
	if avail < 0 {
		avail = 0
	}
	n := want
	if avail < n {
		n = avail
	}
	if n <= 0 {
		return 0
	}

	lo := pat.Skip
	clo := candidateOffset + pat.Skip
	return bytes.Compare(pat.Str[lo:lo+n], textData[clo:clo+n])
}

// lowerCompare is compare, sharpened for the lower-bound pass of
// bracket.go. compare's truncation reports equal both for a true match
// (pattern is a prefix of the suffix) and for the opposite case at the
// edge of the text, where the suffix runs out first and is itself a
// prefix of the pattern. Those two cases must not both count as "pattern
// sorts at or before the suffix": spec.md §3's array invariant says a
// prefix is strictly less than any extension of it, so a suffix that is
// merely a truncated prefix of the pattern is strictly less than the
// pattern, not equal to it, and must not pull the lower bound down to
// include it (the "abracadabra" suffix "a" must not bracket into a
// search for "abra").
//
// The upper-bound pass doesn't need this: those short suffixes already
// compare >= 0 under plain compare (0, same as a true match) and fall
// outside the upper bound's range on their own merits, so plain compare
// is left untouched there.
func lowerCompare(textData []byte, pat Pattern, candidateOffset int) int {
	c := compare(textData, pat, candidateOffset)
	if c != 0 {
		return c
	}

	want := pat.Len - pat.Skip
	avail := len(textData) - candidateOffset - pat.Skip
	if avail < 0 {
		avail = 0
	}
	if avail < want {
		// The suffix ran out before the pattern did, and what it had
		// matched exactly: it's a proper prefix of the pattern, hence
		// strictly less than it.
		return 1
	}
	return 0
}
