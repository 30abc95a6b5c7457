package mdbook

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark/ast"

	"github.com/booklint/booklint/pkg/check"
	"github.com/booklint/booklint/pkg/document"
)

// SummaryStructure checks that SUMMARY.md follows the structure the mdBook
// renderer expects: every list item is a link, and every link points to a
// Markdown chapter.
type SummaryStructure struct {
	check.Base
}

// NewSummaryStructure creates the MDBOOK003 check.
func NewSummaryStructure() *SummaryStructure {
	return &SummaryStructure{Base: check.NewBase(
		"MDBOOK003",
		"summary-structure",
		"SUMMARY.md entries should be links to Markdown chapters",
		check.Metadata{
			Category:     check.CategoryMdBook,
			Stability:    check.StabilityStable,
			IntroducedIn: "v0.2.0",
		},
		check.SeverityError,
		false,
	)}
}

// CheckTree applies only to files named SUMMARY.md; all other documents
// yield no findings.
func (c *SummaryStructure) CheckTree(ctx *check.Context) ([]check.Finding, error) {
	if filepath.Base(ctx.Doc.Path()) != "SUMMARY.md" {
		return nil, nil
	}

	var findings []check.Finding
	for _, n := range ctx.Tree.FindAll(ast.KindListItem) {
		link := firstLink(n)
		pos := itemPos(ctx.Tree, n)

		if link == nil {
			findings = append(findings, check.NewFinding(
				c.ID(),
				pos,
				"Summary entry is not a link",
			).Build())
			continue
		}

		dest := string(link.Destination)
		if dest == "" {
			// Draft chapters use an empty destination; mdBook allows them.
			continue
		}
		if target := strings.SplitN(dest, "#", 2)[0]; !strings.HasSuffix(target, ".md") {
			findings = append(findings, check.NewFinding(
				c.ID(),
				pos,
				fmt.Sprintf("Summary entry links to %q, expected a .md chapter", dest),
			).Build())
		}
	}

	return findings, nil
}

// firstLink returns the first link nested under a list item, or nil.
func firstLink(item ast.Node) *ast.Link {
	for child := item.FirstChild(); child != nil; child = child.NextSibling() {
		if link, ok := child.(*ast.Link); ok {
			return link
		}
		if link := firstLink(child); link != nil {
			return link
		}
	}
	return nil
}

func itemPos(tree *document.Tree, n ast.Node) document.Position {
	span := tree.PositionOf(n)
	if !span.IsValid() {
		return document.Position{Line: 1, Column: 1}
	}
	return span.Start
}
