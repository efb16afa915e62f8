package builder

import "github.com/gosary/sary/text"

// IndexPointFunc assigns the next index point at or after pos, mirroring
// sary's SaryIpointFunc (builder.c). It returns ok == false once no
// further index point exists before end of file.
type IndexPointFunc func(t *text.View, pos int) (next int, ok bool)

// IndexEveryByte assigns an index point at every byte offset — the
// default strategy (sary_ipoint_bytestream in builder.c), suited to
// binary data or corpora searched at arbitrary byte granularity.
func IndexEveryByte(t *text.View, pos int) (int, bool) {
	if pos >= t.Size() {
		return 0, false
	}
	return pos, true
}

// IndexEveryWord assigns one index point per word start, skipping runs
// of ASCII whitespace (mirrors sary_text_goto_next_word via the
// text.Cursor it wraps).
func IndexEveryWord(t *text.View, pos int) (int, bool) {
	if pos >= t.Size() {
		return 0, false
	}
	c := t.NewCursor()
	c.SetPos(pos)
	if pos == 0 {
		// The very first word, if any, starts at bof.
		data := t.Data()
		if len(data) > 0 && !isSpace(data[0]) {
			return 0, true
		}
	}
	c.GotoNextWord()
	if c.IsEOF() {
		return 0, false
	}
	return c.Pos(), true
}

// IndexEveryLine assigns one index point at the start of every line.
func IndexEveryLine(t *text.View, pos int) (int, bool) {
	if pos >= t.Size() {
		return 0, false
	}
	if pos == 0 {
		return 0, true
	}
	c := t.NewCursor()
	c.SetPos(pos - 1)
	c.GotoNextLine()
	if c.IsEOF() {
		return 0, false
	}
	return c.Pos(), true
}

// IndexEveryParagraph assigns one index point per paragraph — a run of
// non-blank lines following a blank line or beginning of file.
func IndexEveryParagraph(t *text.View, pos int) (int, bool) {
	data := t.Data()
	start := pos
	if start > 0 {
		// Skip to the end of the current paragraph: the next blank line.
		for start < len(data) && !(data[start] == '\n' && data[start-1] == '\n') {
			start++
		}
	}
	for start < len(data) && data[start] == '\n' {
		start++
	}
	if start >= len(data) {
		return 0, false
	}
	return start, true
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	default:
		return false
	}
}
