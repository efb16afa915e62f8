// Package progress reports long-running builder and sorter work back to
// a caller, grounded on sary_progress_connect/sary_progress_set_count in
// builder.c. Unlike the reference's function-pointer-plus-userdata pair,
// it is a single Go closure; a nil Reporter is a no-op, matching the
// reference's progress_quiet default.
package progress

// State describes one update: label is the operation name ("index",
// "sort"), count is work completed so far, and total is the known upper
// bound (e.g. file size in bytes, or entry count).
type State struct {
	Label string
	Count int
	Total int
}

// Func is called with each progress update.
type Func func(State)

// Reporter wraps a possibly-nil Func so callers never need to nil-check
// before reporting.
type Reporter struct {
	label string
	total int
	fn    Func
}

// New creates a Reporter for an operation called label with the given
// total. fn may be nil, in which case Report is a no-op.
func New(label string, total int, fn Func) *Reporter {
	return &Reporter{label: label, total: total, fn: fn}
}

// Report invokes the underlying Func, if any, with the current count.
func (r *Reporter) Report(count int) {
	if r == nil || r.fn == nil {
		return
	}
	r.fn(State{Label: r.label, Count: count, Total: r.total})
}
