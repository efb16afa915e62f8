// Package sorter orders a just-built array file into suffix order, the
// precondition search.Searcher's bracketing depends on. It is grounded on
// the sary_builder_sort/sary_builder_block_sort entry points in
// builder.c; sary's own block-sort internals (sorter.c) were not
// retrieved, so SortBlocks/MergeBlocks below are a from-scratch design
// consistent with that documented contract rather than a port.
package sorter

import (
	"bytes"
	"container/heap"
	"fmt"
	"os"
	"sort"

	"github.com/gosary/sary/array"
	"github.com/gosary/sary/progress"
	"github.com/gosary/sary/text"
)

// Sorter sorts the array file at arrayPath against the text at t.
type Sorter struct {
	text      *text.View
	arrayPath string
	width     int
	progress  *progress.Reporter
}

// New creates a Sorter for the array file at arrayPath, holding offsets
// into t, at the given entry width.
func New(t *text.View, arrayPath string, width int) *Sorter {
	return &Sorter{text: t, arrayPath: arrayPath, width: width}
}

// ConnectProgress installs a progress reporter, mirroring
// sary_sorter_connect_progress.
func (s *Sorter) ConnectProgress(total int, fn progress.Func) {
	s.progress = progress.New("sort", total, fn)
}

// suffixLess reports whether the suffix starting at text offset a sorts
// before the one starting at b: shorter-is-less when one is a prefix of
// the other (spec.md §3's array data model, distinct from the truncating
// comparator in package search's comparator.go).
func suffixLess(data []byte, a, b int) bool {
	return bytes.Compare(data[a:], data[b:]) < 0
}

// Sort loads every entry of the array file into memory, sorts it by full
// suffix order, and rewrites the file. Suited to corpora whose array fits
// comfortably in memory; SortBlocks/MergeBlocks also hold the whole array
// in memory, so they do not lower that requirement.
func (s *Sorter) Sort() error {
	entries, err := array.LoadAll(s.arrayPath, s.width)
	if err != nil {
		return err
	}

	data := s.text.Data()
	n := len(entries)
	sort.Slice(entries, func(i, j int) bool {
		s.progress.Report(i)
		return suffixLess(data, entries[i], entries[j])
	})
	s.progress.Report(n)

	return array.WriteAll(s.arrayPath, s.width, entries)
}

// SortBlocks splits the unsorted array file into blockSize-entry chunks,
// sorts each chunk in memory, and streams each sorted chunk to its own
// temp file alongside arrayPath. Call MergeBlocks afterward to produce
// the final sorted array. blockSize must be positive. The whole unsorted
// array is loaded into memory first; only the sorting is done per block.
func (s *Sorter) SortBlocks(blockSize int) ([]string, error) {
	if blockSize <= 0 {
		return nil, fmt.Errorf("sorter: block size must be positive, got %d", blockSize)
	}

	entries, err := array.LoadAll(s.arrayPath, s.width)
	if err != nil {
		return nil, err
	}
	data := s.text.Data()

	var blockPaths []string
	for start := 0; start < len(entries); start += blockSize {
		end := start + blockSize
		if end > len(entries) {
			end = len(entries)
		}
		block := append([]int(nil), entries[start:end]...)
		sort.Slice(block, func(i, j int) bool {
			return suffixLess(data, block[i], block[j])
		})

		path := fmt.Sprintf("%s.block%d", s.arrayPath, len(blockPaths))
		if err := array.WriteAll(path, s.width, block); err != nil {
			return blockPaths, err
		}
		blockPaths = append(blockPaths, path)
		s.progress.Report(end)
	}
	return blockPaths, nil
}

// heapItem is one in-flight element of the k-way merge: the next
// unconsumed entry of a block, and which block it came from.
type heapItem struct {
	offset    int
	blockIdx  int
	entryIdx  int
}

type mergeHeap struct {
	items []heapItem
	data  []byte
}

func (h *mergeHeap) Len() int { return len(h.items) }
func (h *mergeHeap) Less(i, j int) bool {
	return suffixLess(h.data, h.items[i].offset, h.items[j].offset)
}
func (h *mergeHeap) Swap(i, j int) { h.items[i], h.items[j] = h.items[j], h.items[i] }
func (h *mergeHeap) Push(x any)    { h.items = append(h.items, x.(heapItem)) }
func (h *mergeHeap) Pop() any {
	old := h.items
	n := len(old)
	it := old[n-1]
	h.items = old[:n-1]
	return it
}

// MergeBlocks performs a container/heap k-way merge of the sorted block
// files produced by SortBlocks into outPath, then removes the block
// files. Every block file is loaded into memory in full before merging.
func (s *Sorter) MergeBlocks(blockPaths []string, outPath string) error {
	blocks := make([][]int, len(blockPaths))
	for i, p := range blockPaths {
		entries, err := array.LoadAll(p, s.width)
		if err != nil {
			return err
		}
		blocks[i] = entries
	}

	h := &mergeHeap{data: s.text.Data()}
	for bi, block := range blocks {
		if len(block) > 0 {
			heap.Push(h, heapItem{offset: block[0], blockIdx: bi, entryIdx: 0})
		}
	}
	heap.Init(h)

	w, err := array.CreateWriter(outPath, s.width)
	if err != nil {
		return err
	}

	merged := 0
	for h.Len() > 0 {
		it := heap.Pop(h).(heapItem)
		if err := w.Write(it.offset); err != nil {
			w.Close()
			return err
		}
		merged++
		s.progress.Report(merged)

		next := it.entryIdx + 1
		if next < len(blocks[it.blockIdx]) {
			heap.Push(h, heapItem{offset: blocks[it.blockIdx][next], blockIdx: it.blockIdx, entryIdx: next})
		}
	}

	if err := w.Close(); err != nil {
		return err
	}

	for _, p := range blockPaths {
		os.Remove(p)
	}
	return nil
}
