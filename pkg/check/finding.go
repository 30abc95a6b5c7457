package check

import (
	"cmp"
	"slices"

	"github.com/booklint/booklint/pkg/document"
)

// Severity classifies the importance of a finding.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// IsValid reports whether the severity is one of the known values.
func (s Severity) IsValid() bool {
	switch s {
	case SeverityError, SeverityWarning, SeverityInfo:
		return true
	default:
		return false
	}
}

// Finding is a single reported issue. Findings are never mutated after
// creation; the engine orders them by (line, column, check id).
type Finding struct {
	// CheckID identifies the check that produced this finding.
	CheckID string

	// Message is the human-readable description of the issue.
	Message string

	// Severity indicates the importance of the finding.
	Severity Severity

	// Line is the 1-based line number of the finding.
	Line int

	// Column is the 1-based rune column of the finding.
	Column int

	// Edit optionally proposes a correction for this specific occurrence.
	Edit *Edit
}

// HasEdit reports whether the finding carries a proposed fix.
func (f *Finding) HasEdit() bool {
	return f.Edit != nil
}

// Position returns the finding location as a document.Position.
func (f *Finding) Position() document.Position {
	return document.Position{Line: f.Line, Column: f.Column}
}

// Compare orders findings by (line, column, check id). It is the single
// ordering used by the engine and the fix pipeline so that output is
// deterministic for a given document and configuration.
func Compare(a, b Finding) int {
	if c := cmp.Compare(a.Line, b.Line); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Column, b.Column); c != 0 {
		return c
	}
	return cmp.Compare(a.CheckID, b.CheckID)
}

// Sort stable-sorts findings into the canonical order.
func Sort(findings []Finding) {
	slices.SortStableFunc(findings, Compare)
}

// Builder assembles a Finding fluently. It mirrors how checks construct
// findings: position and message first, then severity and an optional edit.
type Builder struct {
	f Finding
}

// NewFinding starts a finding for the given check at a position.
func NewFinding(checkID string, pos document.Position, message string) *Builder {
	return &Builder{f: Finding{
		CheckID: checkID,
		Message: message,
		Line:    pos.Line,
		Column:  pos.Column,
	}}
}

// WithSeverity sets the finding severity.
func (b *Builder) WithSeverity(s Severity) *Builder {
	b.f.Severity = s
	return b
}

// WithEdit attaches a proposed correction.
func (b *Builder) WithEdit(e *Edit) *Builder {
	b.f.Edit = e
	return b
}

// Build returns the assembled Finding.
func (b *Builder) Build() Finding {
	return b.f
}
