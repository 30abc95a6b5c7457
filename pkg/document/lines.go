package document

import (
	"sort"
	"unicode/utf8"
)

// LineInfo holds byte-offset metadata for a single line.
type LineInfo struct {
	// StartOffset is the byte index of the first byte of the line.
	StartOffset int

	// NewlineStart is the byte index where the newline sequence begins.
	// For a line without a trailing newline it equals EndOffset.
	NewlineStart int

	// EndOffset is the byte index just past the newline (or end of file).
	EndOffset int
}

// BuildLines constructs the line index for content.
// Both LF and CRLF line endings are recognized.
func BuildLines(content []byte) []LineInfo {
	if len(content) == 0 {
		return []LineInfo{{StartOffset: 0, NewlineStart: 0, EndOffset: 0}}
	}

	var lines []LineInfo
	start := 0

	for i, b := range content {
		if b != '\n' {
			continue
		}
		nl := i
		if i > 0 && content[i-1] == '\r' && nl > start {
			nl = i - 1
		}
		lines = append(lines, LineInfo{StartOffset: start, NewlineStart: nl, EndOffset: i + 1})
		start = i + 1
	}

	if start <= len(content) {
		lines = append(lines, LineInfo{
			StartOffset:  start,
			NewlineStart: len(content),
			EndOffset:    len(content),
		})
	}

	// A trailing newline produces a final empty line entry only when content
	// actually ends mid-line; drop the phantom entry for "ends with newline"
	// unless the file is otherwise empty.
	if len(lines) > 1 {
		last := lines[len(lines)-1]
		if last.StartOffset == last.EndOffset && last.StartOffset == len(content) &&
			content[len(content)-1] == '\n' {
			lines = lines[:len(lines)-1]
		}
	}

	return lines
}

// PositionAt converts a byte offset into 1-based (line, column).
// Columns count runes from the start of the line. Offsets at or past the end
// of content map to one past the last rune of the last line.
func (d *Document) PositionAt(offset int) (line, col int) {
	if offset < 0 {
		return 0, 0
	}
	if offset > len(d.content) {
		offset = len(d.content)
	}

	idx := sort.Search(len(d.lines), func(i int) bool {
		return d.lines[i].EndOffset > offset
	})
	if idx >= len(d.lines) {
		idx = len(d.lines) - 1
	}

	li := d.lines[idx]
	if offset < li.StartOffset {
		return 0, 0
	}

	segEnd := offset
	if segEnd > li.EndOffset {
		segEnd = li.EndOffset
	}
	col = utf8.RuneCount(d.content[li.StartOffset:segEnd]) + 1
	return idx + 1, col
}

// Offset converts a 1-based (line, column) pair into a byte offset.
//
// Column line-length+1 addresses the position just before the line's newline
// (the insertion point at end of line). Column line-length+2 addresses the
// position just past the newline, so a span ending there consumes the
// trailing newline; this is how whole-line deletions are expressed.
// Out-of-range positions return ok=false.
func (d *Document) Offset(line, col int) (int, bool) {
	if line < 1 || line > len(d.lines) || col < 1 {
		return 0, false
	}

	li := d.lines[line-1]
	runeLen := utf8.RuneCount(d.content[li.StartOffset:li.NewlineStart])
	switch {
	case col <= runeLen+1:
		off := li.StartOffset
		for n := 1; n < col; n++ {
			_, size := utf8.DecodeRune(d.content[off:])
			off += size
		}
		return off, true
	case col == runeLen+2:
		return li.EndOffset, true
	default:
		return 0, false
	}
}

// ColumnAt returns the 1-based rune column of a byte offset within its line.
// It is a convenience wrapper around PositionAt.
func (d *Document) ColumnAt(offset int) int {
	_, col := d.PositionAt(offset)
	return col
}
