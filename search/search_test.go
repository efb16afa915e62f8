package search

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/gosary/sary/array"
	"github.com/gosary/sary/text"
)

// openFixture writes contents to a text file and a byte-indexed suffix
// array for it (sorted), returning a ready-to-search Searcher.
func openFixture(t *testing.T, contents string) *Searcher {
	t.Helper()
	dir := t.TempDir()
	textPath := filepath.Join(dir, "corpus.txt")
	if err := os.WriteFile(textPath, []byte(contents), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	entries := make([]int, len(contents))
	for i := range entries {
		entries[i] = i
	}
	sort.Slice(entries, func(i, j int) bool {
		return contents[entries[i]:] < contents[entries[j]:]
	})

	arrPath := filepath.Join(dir, "corpus.ary")
	if err := array.WriteAll(arrPath, array.Width4, entries); err != nil {
		t.Fatalf("WriteAll: %v", err)
	}

	tv, err := text.Open(textPath)
	if err != nil {
		t.Fatalf("text.Open: %v", err)
	}
	av, err := array.Open(arrPath, array.Width4)
	if err != nil {
		t.Fatalf("array.Open: %v", err)
	}
	t.Cleanup(func() { tv.Close(); av.Close() })

	return New(tv, av)
}

func collectOffsets(t *testing.T, s *Searcher) []int {
	t.Helper()
	var out []int
	for {
		off, ok := s.NextOffset()
		if !ok {
			break
		}
		out = append(out, off)
	}
	return out
}

func TestSearchAbracadabra(t *testing.T) {
	s := openFixture(t, "abracadabra")

	if !s.Search([]byte("abra")) {
		t.Fatal("Search(abra) = false, want true")
	}
	if got, want := s.CountOccurrences(), 2; got != want {
		t.Errorf("CountOccurrences() = %d, want %d", got, want)
	}
	offsets := collectOffsets(t, s)
	sort.Ints(offsets)
	if want := []int{0, 7}; !equalInts(offsets, want) {
		t.Errorf("offsets = %v, want %v", offsets, want)
	}

	if !s.Search([]byte("a")) {
		t.Fatal("Search(a) = false, want true")
	}
	offsets = collectOffsets(t, s)
	sort.Ints(offsets)
	if want := []int{0, 3, 5, 7, 10}; !equalInts(offsets, want) {
		t.Errorf("offsets = %v, want %v", offsets, want)
	}
}

func TestSearchEmptyPatternMatchesEverything(t *testing.T) {
	s := openFixture(t, "abracadabra")
	if !s.Search(nil) {
		t.Fatal("Search(\"\") = false, want true")
	}
	if got, want := s.CountOccurrences(), len("abracadabra"); got != want {
		t.Errorf("CountOccurrences() = %d, want %d", got, want)
	}
}

func TestSearchNotFound(t *testing.T) {
	s := openFixture(t, "abracadabra")
	if s.Search([]byte("xyz")) {
		t.Fatal("Search(xyz) = true, want false")
	}
	if s.CountOccurrences() != 0 {
		t.Errorf("CountOccurrences() after failed search = %d, want 0", s.CountOccurrences())
	}
}

// TestSearchPatternLongerThanTrailingSuffix guards against a suffix that
// runs out before the pattern does — e.g. searching "abc" over "ab" — but
// matches exactly on the bytes it has. Such a suffix is a proper prefix of
// the pattern, hence strictly less than it (spec.md §3), and must not
// leak into the match range as a false positive.
func TestSearchPatternLongerThanTrailingSuffix(t *testing.T) {
	s := openFixture(t, "ab")
	if s.Search([]byte("abc")) {
		t.Fatalf("Search(abc) over \"ab\" = true, want false (got offsets %v)", collectOffsets(t, s))
	}
	if got := s.CountOccurrences(); got != 0 {
		t.Errorf("CountOccurrences() = %d, want 0", got)
	}
}

func TestSearchSortOccurrences(t *testing.T) {
	s := openFixture(t, "abracadabra")
	s.Search([]byte("a"))
	s.SortOccurrences()
	offsets := collectOffsets(t, s)
	if want := []int{0, 3, 5, 7, 10}; !equalInts(offsets, want) {
		t.Errorf("sorted offsets = %v, want %v", offsets, want)
	}

	// Sort idempotence.
	s.Search([]byte("a"))
	s.SortOccurrences()
	s.SortOccurrences()
	offsets = collectOffsets(t, s)
	if want := []int{0, 3, 5, 7, 10}; !equalInts(offsets, want) {
		t.Errorf("double-sorted offsets = %v, want %v", offsets, want)
	}
}

func TestICaseSearch(t *testing.T) {
	s := openFixture(t, "AaAa")

	if !s.Search([]byte("a")) {
		t.Fatal("Search(a) = false, want true")
	}
	offsets := collectOffsets(t, s)
	sort.Ints(offsets)
	if want := []int{1, 3}; !equalInts(offsets, want) {
		t.Errorf("case-sensitive offsets = %v, want %v", offsets, want)
	}

	if !s.ICaseSearch([]byte("a")) {
		t.Fatal("ICaseSearch(a) = false, want true")
	}
	offsets = collectOffsets(t, s)
	sort.Ints(offsets)
	if want := []int{0, 1, 2, 3}; !equalInts(offsets, want) {
		t.Errorf("case-insensitive offsets = %v, want %v", offsets, want)
	}
}

func TestISearchIncrementalRefinement(t *testing.T) {
	s := openFixture(t, "foobar\nfoobaz\n")
	// openFixture indexes every byte, not only line starts; both lines still
	// begin with "foo", so every prefix brackets the same two line starts
	if !s.ISearch([]byte("f"), 1) {
		t.Fatal("isearch(f,1) = false")
	}
	n1 := s.CountOccurrences()

	if !s.ISearch([]byte("fo"), 2) {
		t.Fatal("isearch(fo,2) = false")
	}
	n2 := s.CountOccurrences()
	if n2 > n1 {
		t.Errorf("isearch(fo,2) count %d > isearch(f,1) count %d", n2, n1)
	}

	if !s.ISearch([]byte("foo"), 3) {
		t.Fatal("isearch(foo,3) = false")
	}
	n3 := s.CountOccurrences()
	if n3 > n2 {
		t.Errorf("isearch(foo,3) count %d > isearch(fo,2) count %d", n3, n2)
	}

	direct := openFixture(t, "foobar\nfoobaz\n")
	direct.Search([]byte("foo"))
	if got, want := n3, direct.CountOccurrences(); got != want {
		t.Errorf("isearch(foo,3) count %d, want %d (equal to fresh Search)", got, want)
	}
}

func TestNextContextLines(t *testing.T) {
	s := openFixture(t, "a\nb\nc\nd\ne\nf\ng\nh\ni\nj\n")
	if !s.Search([]byte("e")) {
		t.Fatal("Search(e) = false")
	}
	region, ok := s.NextContextLines(1, 1)
	if !ok {
		t.Fatal("NextContextLines = false")
	}
	if got, want := string(region), "d\ne\nf\n"; got != want {
		t.Errorf("context region = %q, want %q", got, want)
	}
}

func TestNextTaggedRegion(t *testing.T) {
	s := openFixture(t, "<p>x</p><p>y</p>")
	if !s.Search([]byte("y")) {
		t.Fatal("Search(y) = false")
	}
	region, ok := s.NextTaggedRegion([]byte("<p"), []byte("</p>"))
	if !ok {
		t.Fatal("NextTaggedRegion = false")
	}
	if got, want := string(region), "<p>y</p>"; got != want {
		t.Errorf("tagged region = %q, want %q", got, want)
	}
}

func TestOverlapJoinRequiresSort(t *testing.T) {
	s := openFixture(t, "xxx\n")
	if !s.Search([]byte("x")) {
		t.Fatal("Search(x) = false")
	}
	s.SortOccurrences()

	region, ok := s.NextLine()
	if !ok {
		t.Fatal("NextLine = false")
	}
	if got, want := string(region), "xxx\n"; got != want {
		t.Errorf("joined line = %q, want %q", got, want)
	}
	if _, ok := s.NextLine(); ok {
		t.Error("NextLine after join: want exhausted range, got another region")
	}
}

func TestISearchAfterSortPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("ISearch after SortOccurrences: want panic, got none")
		}
	}()
	s := openFixture(t, "abracadabra")
	s.Search([]byte("a"))
	s.SortOccurrences()
	s.ISearch([]byte("ab"), 2)
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
