// Package mmapfile maps a read-only file into memory.
//
// It is the lowest leaf in the dependency order from spec.md §2: text.View
// and array.View both sit on top of it. Mapping is shared and read-only, so
// distinct *File values over the same path may be used concurrently from
// separate goroutines (spec.md §5).
package mmapfile

import (
	"errors"
	"os"

	"golang.org/x/sys/unix"
)

// ErrClosed is returned by Close when the File has already been closed.
var ErrClosed = errors.New("mmapfile: use of closed file")

// File is a read-only memory-mapped file.
//
// A zero-length file maps to a nil, zero-length Data slice; callers must
// tolerate that (spec.md §4.1).
type File struct {
	data []byte
	f    *os.File
}

// Open maps path read-only. The caller must call Close when done.
func Open(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}

	size := fi.Size()
	if size == 0 {
		// mmap(2) rejects zero-length mappings; the reference library
		// handles empty text/array files as a legitimate, if degenerate,
		// case (spec.md §4.1, §7).
		return &File{data: nil, f: f}, nil
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		f.Close()
		return nil, err
	}

	return &File{data: data, f: f}, nil
}

// Data returns the mapped bytes. The slice is valid until Close.
func (m *File) Data() []byte {
	return m.data
}

// Close unmaps the file and releases the underlying descriptor.
func (m *File) Close() error {
	if m.f == nil {
		return ErrClosed
	}
	var err error
	if m.data != nil {
		err = unix.Munmap(m.data)
		m.data = nil
	}
	cerr := m.f.Close()
	m.f = nil
	if err != nil {
		return err
	}
	return cerr
}
