package standard

import (
	"strings"
	"unicode/utf8"

	"github.com/yuin/goldmark/ast"

	"github.com/booklint/booklint/pkg/document"
)

// isBlank reports whether a line contains only spaces and tabs.
func isBlank(line string) bool {
	return strings.TrimRight(line, " \t") == ""
}

// runeLen returns the number of runes in a line.
func runeLen(line string) int {
	return utf8.RuneCountInString(line)
}

// headingLevel returns the level of a heading node, or 0 for other nodes.
func headingLevel(n ast.Node) int {
	h, ok := n.(*ast.Heading)
	if !ok {
		return 0
	}
	return h.Level
}

// startLine returns the 1-based line a node starts on, or 0 when the node has
// no resolvable source position.
func startLine(tree *document.Tree, n ast.Node) int {
	return tree.PositionOf(n).Start.Line
}

// lineStartPos is the position of column 1 on a line.
func lineStartPos(line int) document.Position {
	return document.Position{Line: line, Column: 1}
}

// nodePos returns the start position of a node, falling back to the start of
// the document when the node has no resolvable source range.
func nodePos(tree *document.Tree, n ast.Node) document.Position {
	span := tree.PositionOf(n)
	if !span.IsValid() {
		return document.Position{Line: 1, Column: 1}
	}
	return span.Start
}

// runeCol converts a byte index within a line to a 1-based rune column.
func runeCol(line string, byteIdx int) int {
	return utf8.RuneCountInString(line[:byteIdx]) + 1
}

// codeFenceMask marks the lines that open, close, or sit inside a fenced code
// block, so text-pattern checks can skip them.
func codeFenceMask(lines []string) []bool {
	mask := make([]bool, len(lines))
	inFence := false
	var fence string

	for i, line := range lines {
		trimmed := strings.TrimLeft(line, " ")
		if len(line)-len(trimmed) > 3 {
			mask[i] = inFence
			continue
		}
		switch {
		case !inFence && (strings.HasPrefix(trimmed, "```") || strings.HasPrefix(trimmed, "~~~")):
			inFence = true
			fence = trimmed[:3]
			mask[i] = true
		case inFence && strings.HasPrefix(trimmed, fence):
			inFence = false
			mask[i] = true
		default:
			mask[i] = inFence
		}
	}
	return mask
}

// inCodeSpan reports whether a byte index on a line falls inside an inline
// code span, judged by the parity of preceding backticks.
func inCodeSpan(line string, byteIdx int) bool {
	return strings.Count(line[:byteIdx], "`")%2 == 1
}
