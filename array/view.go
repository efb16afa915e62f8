// Package array provides a read-only view of a persisted suffix array: a
// flat, memory-mapped vector of fixed-width big-endian signed integers,
// each an index-point offset into a companion text file (spec.md §3, §4.2).
package array

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/gosary/sary/internal/intconv"
	"github.com/gosary/sary/internal/mmapfile"
)

// Width4 and Width8 are the supported entry widths, in bytes.
//
// spec.md §9's Open Questions flags the reference's hardcoded 4-byte
// entry as a limitation (~2GiB ceiling); View parameterizes it instead of
// treating 4 as a universal constant.
const (
	Width4 = 4
	Width8 = 8
)

// ErrInvalidWidth is returned when an entry width other than 4 or 8 bytes
// is requested.
var ErrInvalidWidth = errors.New("array: entry width must be 4 or 8 bytes")

// ErrTruncatedFile is returned when the array file's length is not a
// multiple of the entry width. A zero-length file is not an error.
var ErrTruncatedFile = errors.New("array: file length is not a multiple of the entry width")

// View is a read-only, memory-mapped vector of index-point offsets.
type View struct {
	mm    *mmapfile.File
	data  []byte
	width int
}

// Open maps the array file at path using the given entry width (Width4 or
// Width8). A zero-length file is accepted and yields a View with Len() == 0
// (spec.md §5, "Empty array / empty text yield 'no match' without error").
func Open(path string, width int) (*View, error) {
	if width != Width4 && width != Width8 {
		return nil, ErrInvalidWidth
	}

	mm, err := mmapfile.Open(path)
	if err != nil {
		return nil, err
	}
	data := mm.Data()
	if len(data)%width != 0 {
		mm.Close()
		return nil, fmt.Errorf("%w: %d bytes, width %d", ErrTruncatedFile, len(data), width)
	}

	return &View{mm: mm, data: data, width: width}, nil
}

// Close unmaps the array file.
func (v *View) Close() error {
	return v.mm.Close()
}

// Len returns the number of entries (index points).
func (v *View) Len() int {
	if v.width == 0 {
		return 0
	}
	return len(v.data) / v.width
}

// Width returns the entry width in bytes.
func (v *View) Width() int {
	return v.width
}

// At decodes and returns entry i as a text offset.
func (v *View) At(i int) int {
	off := i * v.width
	switch v.width {
	case Width4:
		return int(int32(binary.BigEndian.Uint32(v.data[off : off+4])))
	case Width8:
		return intconv.Int64ToInt(int64(binary.BigEndian.Uint64(v.data[off : off+8])))
	default:
		panic("array: invalid width")
	}
}
