package sorter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gosary/sary/array"
	"github.com/gosary/sary/text"
)

func openTextFixture(t *testing.T, contents string) *text.View {
	t.Helper()
	path := filepath.Join(t.TempDir(), "corpus.txt")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	tv, err := text.Open(path)
	if err != nil {
		t.Fatalf("text.Open: %v", err)
	}
	t.Cleanup(func() { tv.Close() })
	return tv
}

func readEntries(t *testing.T, path string) []int {
	t.Helper()
	entries, err := array.LoadAll(path, array.Width4)
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	return entries
}

func TestSort(t *testing.T) {
	tv := openTextFixture(t, "abracadabra")
	arrPath := filepath.Join(t.TempDir(), "x.ary")

	unsorted := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	if err := array.WriteAll(arrPath, array.Width4, unsorted); err != nil {
		t.Fatalf("WriteAll: %v", err)
	}

	s := New(tv, arrPath, array.Width4)
	if err := s.Sort(); err != nil {
		t.Fatalf("Sort: %v", err)
	}

	got := readEntries(t, arrPath)
	data := tv.Data()
	for i := 1; i < len(got); i++ {
		if string(data[got[i-1]:]) > string(data[got[i]:]) {
			t.Fatalf("entries not sorted at %d: %v", i, got)
		}
	}
}

func TestSortBlocksAndMerge(t *testing.T) {
	tv := openTextFixture(t, "abracadabra")
	arrPath := filepath.Join(t.TempDir(), "x.ary")

	unsorted := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	if err := array.WriteAll(arrPath, array.Width4, unsorted); err != nil {
		t.Fatalf("WriteAll: %v", err)
	}

	s := New(tv, arrPath, array.Width4)
	blockPaths, err := s.SortBlocks(3)
	if err != nil {
		t.Fatalf("SortBlocks: %v", err)
	}
	if len(blockPaths) == 0 {
		t.Fatal("SortBlocks produced no blocks")
	}

	outPath := filepath.Join(t.TempDir(), "out.ary")
	if err := s.MergeBlocks(blockPaths, outPath); err != nil {
		t.Fatalf("MergeBlocks: %v", err)
	}
	for _, p := range blockPaths {
		if _, err := os.Stat(p); !os.IsNotExist(err) {
			t.Errorf("block file %s still exists after merge", p)
		}
	}

	got := readEntries(t, outPath)
	if len(got) != len(unsorted) {
		t.Fatalf("merged entry count = %d, want %d", len(got), len(unsorted))
	}
	data := tv.Data()
	for i := 1; i < len(got); i++ {
		if string(data[got[i-1]:]) > string(data[got[i]:]) {
			t.Fatalf("merged entries not sorted at %d: %v", i, got)
		}
	}
}
