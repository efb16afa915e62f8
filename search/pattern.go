package search

// Pattern holds the mutable search-key state shared by a Searcher across a
// sequence of calls. Str is the pattern bytes being searched for, Len is
// its length, and Skip is the number of leading bytes of Str already known
// to match every candidate still in range — set by Searcher.ISearch to
// avoid recomparing a prefix the previous call already bracketed
// (spec.md §4.6).
type Pattern struct {
	Str  []byte
	Len  int
	Skip int
}
