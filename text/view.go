// Package text provides a read-only, memory-mapped view of a corpus file
// with a movable cursor and the line/region helpers search and builder
// build on (spec.md §4.1).
//
// None of this is used by the bracketing search itself — only by result
// extraction (region.go, package search) and by the index-point builder.
package text

import "github.com/gosary/sary/internal/mmapfile"

// View is an immutable byte buffer obtained by mapping a file.
//
// A zero-length file yields an empty View: BOF and EOF both equal 0, and
// every search over it returns no match (spec.md §4.1, §7). A View is safe
// to share read-only across goroutines; it holds no mutable state itself
// (mutable state — the cursor — lives in Cursor).
type View struct {
	mm   *mmapfile.File
	data []byte
}

// Open maps the file at path for reading.
func Open(path string) (*View, error) {
	mm, err := mmapfile.Open(path)
	if err != nil {
		return nil, err
	}
	return &View{mm: mm, data: mm.Data()}, nil
}

// Close unmaps the underlying file.
func (v *View) Close() error {
	return v.mm.Close()
}

// Data returns the full mapped buffer. The comparator (package search)
// reads directly from this slice.
func (v *View) Data() []byte {
	return v.data
}

// Size returns the size of the text in bytes.
func (v *View) Size() int {
	return len(v.data)
}

// BOF returns the offset of the beginning of the file: always 0.
func (v *View) BOF() int {
	return 0
}

// EOF returns the one-past-the-end sentinel offset.
func (v *View) EOF() int {
	return len(v.data)
}

// NewCursor returns a Cursor positioned at BOF, on line 1.
func (v *View) NewCursor() *Cursor {
	return &Cursor{v: v, pos: 0, lineno: 1}
}
