package array

import (
	"bufio"
	"encoding/binary"
	"os"

	"github.com/gosary/sary/internal/intconv"
)

// Writer appends big-endian entries to an array file. It is the Go
// counterpart of sary's SaryWriter, used by package builder and package
// sorter — never by package search, which only reads array files.
type Writer struct {
	f     *os.File
	w     *bufio.Writer
	width int
	buf   [Width8]byte
}

// CreateWriter creates (truncating) the array file at path for entries of
// the given width.
func CreateWriter(path string, width int) (*Writer, error) {
	if width != Width4 && width != Width8 {
		return nil, ErrInvalidWidth
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	return &Writer{f: f, w: bufio.NewWriter(f), width: width}, nil
}

// Write appends one entry (a text offset).
func (w *Writer) Write(offset int) error {
	switch w.width {
	case Width4:
		binary.BigEndian.PutUint32(w.buf[:4], uint32(intconv.IntToInt32(offset)))
		_, err := w.w.Write(w.buf[:4])
		return err
	case Width8:
		binary.BigEndian.PutUint64(w.buf[:8], uint64(offset))
		_, err := w.w.Write(w.buf[:8])
		return err
	default:
		panic("array: invalid width")
	}
}

// Flush flushes buffered writes to the underlying file.
func (w *Writer) Flush() error {
	return w.w.Flush()
}

// Close flushes and closes the array file.
func (w *Writer) Close() error {
	if err := w.w.Flush(); err != nil {
		w.f.Close()
		return err
	}
	return w.f.Close()
}
