package check

import "github.com/booklint/booklint/pkg/document"

// Edit is a precise text replacement attached to a Finding. The span is
// half-open in document order; an empty Replacement deletes the span, and an
// empty span inserts Replacement at Start.
//
// Every Edit must be produced by the same check that reported the Finding it
// is attached to, from the same position source, so spans never straddle a
// parse boundary ambiguously.
type Edit struct {
	// Span is the half-open [Start, End) region to replace.
	Span document.Span

	// Replacement is the new text; empty means delete.
	Replacement string

	// Description explains the correction in human terms.
	Description string

	// Unsafe marks edits that could change document meaning under some
	// renderer. The classification is per-edit, not per-check: the same
	// check may emit safe and unsafe edits for different occurrences.
	Unsafe bool
}

// IsDelete reports whether the edit removes text without replacement.
func (e *Edit) IsDelete() bool {
	return e.Replacement == ""
}

// IsInsert reports whether the edit inserts at a point without removing.
func (e *Edit) IsInsert() bool {
	return e.Span.Start == e.Span.End
}

// Replace builds a safe edit covering [start, end).
func Replace(start, end document.Position, replacement, description string) *Edit {
	return &Edit{
		Span:        document.Span{Start: start, End: end},
		Replacement: replacement,
		Description: description,
	}
}

// Delete builds a safe deletion of [start, end).
func Delete(start, end document.Position, description string) *Edit {
	return Replace(start, end, "", description)
}

// Insert builds a safe insertion at a point.
func Insert(at document.Position, text, description string) *Edit {
	return Replace(at, at, text, description)
}
