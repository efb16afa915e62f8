package search

// bracket performs the dual binary search of spec.md §4.4 over src[lo:hi),
// returning the inclusive [first,last] range of entries whose candidate
// suffix has pat as a prefix. ok is false when no entry matches.
//
// The lower-bound pass finds the smallest index whose lowerCompare result
// is <= 0 (pattern sorts at or before the suffix) — lowerCompare rather
// than the plain truncated comparator, so a suffix that runs out before
// the pattern does, matching only on the bytes it has, sorts as strictly
// greater than the pattern instead of spuriously equal (see comparator.go).
// The upper-bound pass finds the largest index, starting from first
// rather than lo, whose plain compare result is >= 0; it doesn't need the
// sharpened comparator because those short suffixes already compare >= 0
// there and fall out of range on their own. Starting the second pass at
// first is the one piece of the reference's next_low/next_high narrowing
// kept here — both passes still run in O(log n) regardless, so the rest
// of that optimization (the comparator re-use across passes) is a
// constant-factor refinement this implementation does not reproduce
// bit-for-bit.
func bracket(src entrySource, lo, hi int, textData []byte, pat Pattern) (first, last int, ok bool) {
	if lo >= hi {
		return 0, 0, false
	}
	if pat.Len <= pat.Skip {
		// Nothing left to compare: every remaining candidate qualifies.
		return lo, hi - 1, true
	}

	cmp := func(i int) int { return compare(textData, pat, src.at(i)) }
	cmpLower := func(i int) int { return lowerCompare(textData, pat, src.at(i)) }

	first = lowerBound(lo, hi, func(i int) bool { return cmpLower(i) <= 0 })
	if first == hi {
		return 0, 0, false
	}

	last = upperBound(first, hi-1, func(i int) bool { return cmp(i) >= 0 })
	if last < first {
		return 0, 0, false
	}
	return first, last, true
}

// lowerBound returns the smallest i in [lo,hi) with pred(i) true, assuming
// pred is false on a prefix of the range and true on the remaining suffix.
// Returns hi if pred is never true.
func lowerBound(lo, hi int, pred func(int) bool) int {
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if pred(mid) {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	return lo
}

// upperBound returns the largest i in [lo,hi] with pred(i) true, assuming
// pred is true on a prefix of the range and false on the remainder.
// Returns lo-1 if pred is never true.
func upperBound(lo, hi int, pred func(int) bool) int {
	ans := lo - 1
	for lo <= hi {
		mid := lo + (hi-lo)/2
		if pred(mid) {
			ans = mid
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}
	return ans
}
