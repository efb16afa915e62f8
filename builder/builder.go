// Package builder assigns index points over a text.View and writes them
// as a big-endian array file, grounded on sary_builder_index in
// builder.c.
package builder

import (
	"context"

	"github.com/gosary/sary/array"
	"github.com/gosary/sary/progress"
	"github.com/gosary/sary/text"
)

// Builder assigns index points over a text.View and writes them to an
// array file, matching sary's SaryBuilder (builder.c).
type Builder struct {
	text      *text.View
	arrayPath string
	width     int
	ipoint    IndexPointFunc
	progress  *progress.Reporter
}

// New creates a Builder writing to arrayPath at the given entry width,
// using IndexEveryByte as the default index-point strategy (matching
// sary_ipoint_bytestream, builder.c's default).
func New(t *text.View, arrayPath string, width int) *Builder {
	return &Builder{text: t, arrayPath: arrayPath, width: width, ipoint: IndexEveryByte}
}

// SetIndexPointFunc overrides the index-point strategy.
func (b *Builder) SetIndexPointFunc(f IndexPointFunc) {
	b.ipoint = f
}

// ConnectProgress installs a progress reporter, mirroring
// sary_builder_connect_progress.
func (b *Builder) ConnectProgress(fn progress.Func) {
	b.progress = progress.New("index", b.text.Size(), fn)
}

// Index walks index points in increasing order and writes each as a
// big-endian entry to the array file, returning the count written. The
// resulting array is in index-point order, not sorted order — a later
// call to sorter.Sort (or SortBlocks/MergeBlocks) is required before the
// array can be searched.
func (b *Builder) Index(ctx context.Context) (int, error) {
	w, err := array.CreateWriter(b.arrayPath, b.width)
	if err != nil {
		return 0, err
	}

	count := 0
	pos := 0
	for {
		if err := ctx.Err(); err != nil {
			w.Close()
			return count, err
		}

		next, ok := b.ipoint(b.text, pos)
		if !ok {
			break
		}
		if err := w.Write(next); err != nil {
			w.Close()
			return count, err
		}
		b.progress.Report(next)
		count++
		pos = next + 1
	}

	if err := w.Close(); err != nil {
		return count, err
	}
	return count, nil
}
