package search

import "github.com/gosary/sary/array"

// entrySource abstracts over where a Searcher reads index-point entries
// from: the memory-mapped array file (the common case), or an owned
// in-memory slice once SortOccurrences or ICaseSearch has materialized one
// (spec.md §4.7, §4.8).
type entrySource interface {
	at(i int) int
	len() int
}

type arraySource struct {
	v *array.View
}

func (s arraySource) at(i int) int { return s.v.At(i) }
func (s arraySource) len() int     { return s.v.Len() }

type sliceSource []int

func (s sliceSource) at(i int) int { return s[i] }
func (s sliceSource) len() int     { return len(s) }
