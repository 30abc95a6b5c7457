package fix

import (
	"fmt"
	"strings"
)

// Diff is a minimal unified diff between two versions of a document, used to
// show what a preview run would change.
type Diff struct {
	// Path labels both sides of the diff header.
	Path string

	// Hunks holds the rendered hunks, already formatted.
	Hunks []string
}

// Empty reports whether the two sides were identical.
func (d *Diff) Empty() bool {
	return len(d.Hunks) == 0
}

// String renders the diff in unified format.
func (d *Diff) String() string {
	if d.Empty() {
		return ""
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "--- %s\n+++ %s\n", d.Path, d.Path)
	for _, h := range d.Hunks {
		sb.WriteString(h)
	}
	return sb.String()
}

// GenerateDiff computes a line-based unified diff. It trims the common prefix
// and suffix and emits one hunk for the changed middle, which is exact for
// the localized rewrites the fix pipeline produces.
func GenerateDiff(path string, before, after []byte) *Diff {
	d := &Diff{Path: path}
	if string(before) == string(after) {
		return d
	}

	oldLines := splitLines(before)
	newLines := splitLines(after)

	// Common prefix.
	prefix := 0
	for prefix < len(oldLines) && prefix < len(newLines) && oldLines[prefix] == newLines[prefix] {
		prefix++
	}

	// Common suffix, not overlapping the prefix.
	suffix := 0
	for suffix < len(oldLines)-prefix && suffix < len(newLines)-prefix &&
		oldLines[len(oldLines)-1-suffix] == newLines[len(newLines)-1-suffix] {
		suffix++
	}

	oldMid := oldLines[prefix : len(oldLines)-suffix]
	newMid := newLines[prefix : len(newLines)-suffix]

	var hunk strings.Builder
	fmt.Fprintf(&hunk, "@@ -%d,%d +%d,%d @@\n",
		hunkStart(prefix, len(oldMid)), len(oldMid),
		hunkStart(prefix, len(newMid)), len(newMid))
	for _, line := range oldMid {
		hunk.WriteString("-" + line + "\n")
	}
	for _, line := range newMid {
		hunk.WriteString("+" + line + "\n")
	}

	d.Hunks = append(d.Hunks, hunk.String())
	return d
}

// hunkStart returns the 1-based start line for a hunk, using the unified
// diff convention that an empty range points at the preceding line.
func hunkStart(prefix, length int) int {
	if length == 0 {
		return prefix
	}
	return prefix + 1
}

// splitLines splits content into lines without newline characters. A trailing
// newline does not produce a phantom empty line.
func splitLines(content []byte) []string {
	if len(content) == 0 {
		return nil
	}
	s := string(content)
	s = strings.TrimSuffix(s, "\n")
	return strings.Split(s, "\n")
}
