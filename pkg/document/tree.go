package document

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	gmparser "github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

// Position is a 1-based line/column location. Columns count runes.
type Position struct {
	Line   int
	Column int
}

// IsValid reports whether the position has positive line and column.
func (p Position) IsValid() bool {
	return p.Line > 0 && p.Column > 0
}

// Before reports whether p comes strictly before q in document order.
func (p Position) Before(q Position) bool {
	if p.Line != q.Line {
		return p.Line < q.Line
	}
	return p.Column < q.Column
}

// Span is a half-open [Start, End) range of positions.
type Span struct {
	Start Position
	End   Position
}

// IsValid reports whether both endpoints are valid and ordered.
func (s Span) IsValid() bool {
	return s.Start.IsValid() && s.End.IsValid() && !s.End.Before(s.Start)
}

// Overlaps reports whether two half-open spans share any position.
func (s Span) Overlaps(o Span) bool {
	return s.Start.Before(o.End) && o.Start.Before(s.End)
}

// Parser converts Markdown bytes into a goldmark AST. Implementations must be
// deterministic for a given input and safe for concurrent use; any conformant
// parser that produces per-node source segments is substitutable.
type Parser interface {
	Parse(source []byte) (ast.Node, error)
}

// goldmarkParser is the default Parser, configured for GFM.
type goldmarkParser struct {
	md goldmark.Markdown
}

func (p *goldmarkParser) Parse(source []byte) (ast.Node, error) {
	reader := text.NewReader(source)
	return p.md.Parser().Parse(reader, gmparser.WithContext(gmparser.NewContext())), nil
}

//nolint:gochecknoglobals // Shared stateless parser instance; goldmark parse calls take a fresh context.
var defaultParser Parser = &goldmarkParser{
	md: goldmark.New(goldmark.WithExtensions(extension.GFM)),
}

// Tree is the lazily-built syntax tree of a Document. It is the single seam
// through which structural checks obtain positions and text, guaranteeing
// consistent coordinates across every check in a pass.
type Tree struct {
	doc  *Document
	root ast.Node
}

// Root returns the root node of the tree.
func (t *Tree) Root() ast.Node {
	return t.root
}

// Document returns the owning document.
func (t *Tree) Document() *Document {
	return t.doc
}

// Walk visits every node in the tree in document order.
func (t *Tree) Walk(fn func(n ast.Node, entering bool) (ast.WalkStatus, error)) error {
	return ast.Walk(t.root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		return fn(n, entering)
	})
}

// FindAll returns every node of the given kind, in document order.
func (t *Tree) FindAll(kind ast.NodeKind) []ast.Node {
	var out []ast.Node
	_ = t.Walk(func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if entering && n.Kind() == kind {
			out = append(out, n)
		}
		return ast.WalkContinue, nil
	})
	return out
}

// PositionOf returns the 1-based line/column span of a node, derived from the
// parser's source segments. Nodes without any source segment (for example
// empty containers) yield the zero Span.
func (t *Tree) PositionOf(n ast.Node) Span {
	start, end, ok := t.rangeOf(n)
	if !ok {
		return Span{}
	}
	sl, sc := t.doc.PositionAt(start)
	el, ec := t.doc.PositionAt(end)
	return Span{
		Start: Position{Line: sl, Column: sc},
		End:   Position{Line: el, Column: ec},
	}
}

// TextOf returns the source text covered by a node.
func (t *Tree) TextOf(n ast.Node) string {
	start, end, ok := t.rangeOf(n)
	if !ok {
		return ""
	}
	return string(t.doc.content[start:end])
}

// ByteRangeOf returns the byte range covered by a node.
func (t *Tree) ByteRangeOf(n ast.Node) (start, end int, ok bool) {
	return t.rangeOf(n)
}

// rangeOf computes the byte range of a node from its own segments, falling
// back to the union of its children's ranges.
func (t *Tree) rangeOf(n ast.Node) (int, int, bool) {
	switch v := n.(type) {
	case *ast.Text:
		seg := v.Segment
		return seg.Start, seg.Stop, true
	case *ast.String:
		// Synthetic string nodes carry no source segment.
		return 0, 0, false
	}

	if n.Type() == ast.TypeBlock {
		lines := n.Lines()
		if lines != nil && lines.Len() > 0 {
			first := lines.At(0)
			last := lines.At(lines.Len() - 1)
			return first.Start, last.Stop, true
		}
	}

	// Union of children.
	start, end := -1, -1
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		cs, ce, ok := t.rangeOf(c)
		if !ok {
			continue
		}
		if start < 0 || cs < start {
			start = cs
		}
		if ce > end {
			end = ce
		}
	}
	if start < 0 {
		return 0, 0, false
	}
	return start, end, true
}
