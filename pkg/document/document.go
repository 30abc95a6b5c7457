// Package document provides the immutable Markdown document model for booklint.
// A Document owns the raw bytes of one file, an eagerly-built line index, and
// a lazily-built syntax tree. All positions reported through this package are
// 1-based; columns count UTF-8 scalar values (runes), not bytes.
package document

import (
	"errors"
	"fmt"
	"sync"
	"unicode/utf8"
)

// ErrInvalidEncoding indicates the input bytes are not valid UTF-8.
var ErrInvalidEncoding = errors.New("content is not valid UTF-8")

// Document is an immutable view of a single Markdown file.
//
// A Document is constructed once per lint pass and never mutated. After the
// fix pipeline rewrites content, callers must construct a new Document from
// the rewritten bytes rather than reusing this one, so that line and column
// accounting never goes stale.
type Document struct {
	path    string
	content []byte
	lines   []LineInfo

	treeOnce sync.Once
	tree     *Tree
	treeErr  error
	parser   Parser
}

// Option configures Document construction.
type Option func(*Document)

// WithParser overrides the Markdown parser used for lazy tree construction.
// The default is a goldmark parser with GFM extensions enabled.
func WithParser(p Parser) Option {
	return func(d *Document) {
		d.parser = p
	}
}

// New creates a Document from raw bytes.
// It fails only if the content is not valid UTF-8; the line index is built
// eagerly and the syntax tree is deferred until first use.
func New(content []byte, path string, opts ...Option) (*Document, error) {
	if !utf8.Valid(content) {
		return nil, fmt.Errorf("%s: %w", path, ErrInvalidEncoding)
	}

	// Copy so later mutation of the caller's buffer cannot reach us.
	owned := make([]byte, len(content))
	copy(owned, content)

	d := &Document{
		path:    path,
		content: owned,
		lines:   BuildLines(owned),
		parser:  defaultParser,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

// Path returns the source path the document was loaded from.
// It may be empty for in-memory content.
func (d *Document) Path() string {
	return d.path
}

// Content returns the full original bytes. Callers must not mutate the
// returned slice.
func (d *Document) Content() []byte {
	return d.content
}

// Lines returns every line as a string, excluding newline characters.
// lines[i] is exactly the text between newline i and newline i+1, with no
// normalization or trimming, so column arithmetic round-trips into the
// original bytes.
func (d *Document) Lines() []string {
	out := make([]string, len(d.lines))
	for i, li := range d.lines {
		out[i] = string(d.content[li.StartOffset:li.NewlineStart])
	}
	return out
}

// LineCount returns the number of lines in the document.
func (d *Document) LineCount() int {
	return len(d.lines)
}

// Line returns the content of a 1-based line number, excluding the newline.
// It returns the empty string for out-of-range line numbers.
func (d *Document) Line(n int) string {
	if n < 1 || n > len(d.lines) {
		return ""
	}
	li := d.lines[n-1]
	return string(d.content[li.StartOffset:li.NewlineStart])
}

// LineBytes returns the raw bytes of a 1-based line, excluding the newline.
func (d *Document) LineBytes(n int) []byte {
	if n < 1 || n > len(d.lines) {
		return nil
	}
	li := d.lines[n-1]
	return d.content[li.StartOffset:li.NewlineStart]
}

// LineInfoAt returns the line index entry for a 1-based line number.
func (d *Document) LineInfoAt(n int) (LineInfo, bool) {
	if n < 1 || n > len(d.lines) {
		return LineInfo{}, false
	}
	return d.lines[n-1], true
}

// Tree returns the document's syntax tree, building it on first access and
// caching it for the lifetime of the Document. The tree is never rebuilt, so
// every check in a pass observes the same node identities and positions.
func (d *Document) Tree() (*Tree, error) {
	d.treeOnce.Do(func() {
		root, err := d.parser.Parse(d.content)
		if err != nil {
			d.treeErr = fmt.Errorf("parse %s: %w", d.path, err)
			return
		}
		d.tree = &Tree{doc: d, root: root}
	})
	return d.tree, d.treeErr
}
