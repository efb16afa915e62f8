package text

import "bytes"

// This file is the Go counterpart of sary's str.c byte-scan helpers
// (sary_str_seek_bol, sary_str_seek_eol, sary_str_seek_lines_backward/
// forward, sary_str_seek_pattern_backward2/forward2, sary_str_get_region).
// They operate on raw offsets into a shared []byte rather than raw
// pointers, so the region extractors in package search can call them
// without depending on a Cursor.

// SeekBOL returns the offset of the start of the line containing pos
// (the offset just past the nearest preceding '\n', or 0).
func SeekBOL(data []byte, pos int) int {
	for i := pos - 1; i >= 0; i-- {
		if data[i] == '\n' {
			return i + 1
		}
	}
	return 0
}

// SeekEOL returns the offset just past the next '\n' at or after pos, or
// len(data) if there is none.
func SeekEOL(data []byte, pos int) int {
	idx := bytes.IndexByte(data[pos:], '\n')
	if idx == -1 {
		return len(data)
	}
	return pos + idx + 1
}

// SeekLinesBackward returns the start of the line containing pos, then
// walks n further lines backward. Used for context extraction (spec.md
// §4.9) with n = 0 for plain line mode and n = B for "-B" context.
func SeekLinesBackward(data []byte, pos, n int) int {
	head := SeekBOL(data, pos)
	for i := 0; i < n; i++ {
		if head == 0 {
			break
		}
		head = SeekBOL(data, head-1)
	}
	return head
}

// SeekLinesForward returns the end of the line containing pos (just past
// its newline, or EOF), then walks n further lines forward.
func SeekLinesForward(data []byte, pos, n int) int {
	tail := SeekEOL(data, pos)
	for i := 0; i < n; i++ {
		if tail >= len(data) {
			break
		}
		tail = SeekEOL(data, tail)
	}
	return tail
}

// SeekPatternBackward returns the offset of the nearest occurrence of tag
// at or before pos. If tag never occurs at or before pos, it returns 0
// (bof) — the reference's seek helpers degrade to the buffer boundary
// rather than signal failure (spec.md §9 Open Questions).
func SeekPatternBackward(data []byte, pos int, tag []byte) int {
	if len(tag) == 0 {
		return pos
	}
	hi := pos
	if hi > len(data)-len(tag) {
		hi = len(data) - len(tag)
	}
	for i := hi; i >= 0; i-- {
		if bytes.Equal(data[i:i+len(tag)], tag) {
			return i
		}
	}
	return 0
}

// SeekPatternForward returns the offset just past the nearest occurrence
// of tag at or after pos. If tag never occurs at or after pos, it returns
// len(data) (eof).
func SeekPatternForward(data []byte, pos int, tag []byte) int {
	if len(tag) == 0 {
		return pos
	}
	idx := bytes.Index(data[pos:], tag)
	if idx == -1 {
		return len(data)
	}
	return pos + idx + len(tag)
}

// GetRegion returns up to n bytes of data starting at head, clipped to
// len(data). head and n are assumed non-negative.
func GetRegion(data []byte, head, n int) []byte {
	end := head + n
	if end > len(data) {
		end = len(data)
	}
	if head > end {
		head = end
	}
	return data[head:end]
}

func isWhitespace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	default:
		return false
	}
}

// seekForwardWhitespace advances pos to the first whitespace byte at or
// after pos (the end of the current word), or to EOF.
func seekForwardWhitespace(data []byte, pos int) int {
	for pos < len(data) && !isWhitespace(data[pos]) {
		pos++
	}
	return pos
}

// skipForwardWhitespace advances pos past a run of whitespace bytes.
func skipForwardWhitespace(data []byte, pos int) int {
	for pos < len(data) && isWhitespace(data[pos]) {
		pos++
	}
	return pos
}
