// Package check defines the capability contract implemented by every lint
// check: the Check interface and its two execution variants, findings, edits,
// metadata, and per-check settings.
package check

import (
	"context"

	"github.com/booklint/booklint/pkg/document"
)

// Check is the base capability every lint check implements.
//
// Checks must be pure functions of (Document, Settings): no shared mutable
// state across calls, except an internal read-through cache for lookups the
// check performs itself. Such a cache must be safe for concurrent reads and
// never required for correctness; a cold cache and a warm cache must produce
// identical findings.
type Check interface {
	// ID returns the stable unique identifier (e.g. "MD010").
	ID() string

	// Name returns the human-readable name (e.g. "no-hard-tabs").
	Name() string

	// Description explains what the check looks for.
	Description() string

	// Metadata returns category, stability, and provenance information.
	Metadata() Metadata

	// DefaultSeverity is the severity used when configuration does not
	// override it.
	DefaultSeverity() Severity

	// CanFix reports whether the check ever attaches an Edit to a finding.
	CanFix() bool
}

// LineRunner is a line-oriented check. It scans Document.Lines directly and
// receives a tree only if the engine already built one for another check in
// the same pass; it must tolerate a nil tree.
type LineRunner interface {
	Check
	CheckLines(ctx *Context) ([]Finding, error)
}

// TreeRunner is a tree-oriented check. The engine guarantees ctx.Tree is
// non-nil before invoking it.
type TreeRunner interface {
	Check
	CheckTree(ctx *Context) ([]Finding, error)
}

// Configurable is implemented by checks that declare typed options. The
// engine calls ValidateSettings during construction so malformed option
// values surface before any document is linted. Unknown keys must be
// ignored for forward compatibility.
type Configurable interface {
	ValidateSettings(s Settings) error
}

// Context carries everything a single check invocation may consume.
// It is a short-lived parameter object created per check per pass.
type Context struct {
	// Ctx is the ambient context for cancellation propagation.
	Ctx context.Context

	// Doc is the document under analysis.
	Doc *document.Document

	// Tree is the document's syntax tree. Non-nil for TreeRunner checks;
	// may be nil for LineRunner checks.
	Tree *document.Tree

	// Settings holds the check-specific option block (never nil).
	Settings Settings
}

// IntOption returns a check option as an int, or the default.
func (c *Context) IntOption(key string, def int) int {
	return c.Settings.Int(key, def)
}

// StringOption returns a check option as a string, or the default.
func (c *Context) StringOption(key string, def string) string {
	return c.Settings.String(key, def)
}

// BoolOption returns a check option as a bool, or the default.
func (c *Context) BoolOption(key string, def bool) bool {
	return c.Settings.Bool(key, def)
}

// StringsOption returns a check option as a string slice, or the default.
func (c *Context) StringsOption(key string, def []string) []string {
	return c.Settings.Strings(key, def)
}

// Base provides the identity half of the Check interface. Embed it in check
// implementations and supply one of the run methods.
type Base struct {
	id       string
	name     string
	desc     string
	meta     Metadata
	severity Severity
	fixable  bool
}

// NewBase constructs a Base with the given identity and metadata.
func NewBase(id, name, desc string, meta Metadata, severity Severity, fixable bool) Base {
	return Base{id: id, name: name, desc: desc, meta: meta, severity: severity, fixable: fixable}
}

// ID returns the stable unique identifier for this check.
func (b *Base) ID() string { return b.id }

// Name returns the human-readable check name.
func (b *Base) Name() string { return b.name }

// Description explains what the check looks for.
func (b *Base) Description() string { return b.desc }

// Metadata returns the check's metadata.
func (b *Base) Metadata() Metadata { return b.meta }

// DefaultSeverity returns the severity used absent configuration.
func (b *Base) DefaultSeverity() Severity { return b.severity }

// CanFix reports whether the check ever proposes edits.
func (b *Base) CanFix() bool { return b.fixable }
