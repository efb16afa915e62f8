package search

import "errors"

// ErrNoRange names the state in which no search has succeeded yet. The
// Searcher methods that need a match range (NextOffset, PeekNextPosition,
// NextLine, NextContextLines, NextTaggedRegion) do not return it; they
// report that state with ok == false.
var ErrNoRange = errors.New("search: no active match range")
