package mdbook

import (
	"fmt"
	"strings"

	"github.com/yuin/goldmark/ast"

	"github.com/booklint/booklint/pkg/check"
)

// NoAbsolutePaths flags link and image destinations that start with a slash.
// Absolute paths break when a book is served under a sub-path.
type NoAbsolutePaths struct {
	check.Base
}

// NewNoAbsolutePaths creates the MDBOOK007 check.
func NewNoAbsolutePaths() *NoAbsolutePaths {
	return &NoAbsolutePaths{Base: check.NewBase(
		"MDBOOK007",
		"no-absolute-paths",
		"Links and images should use relative paths",
		check.Metadata{
			Category:     check.CategoryMdBook,
			Stability:    check.StabilityExperimental,
			IntroducedIn: "v0.4.0",
		},
		check.SeverityWarning,
		false,
	)}
}

// CheckTree inspects link and image destinations.
func (c *NoAbsolutePaths) CheckTree(ctx *check.Context) ([]check.Finding, error) {
	var findings []check.Finding

	flag := func(n ast.Node, kind, dest string) {
		span := ctx.Tree.PositionOf(n)
		if !span.IsValid() {
			return
		}
		findings = append(findings, check.NewFinding(
			c.ID(),
			span.Start,
			fmt.Sprintf("%s destination %q is an absolute path", kind, dest),
		).Build())
	}

	for _, n := range ctx.Tree.FindAll(ast.KindLink) {
		if link, ok := n.(*ast.Link); ok && strings.HasPrefix(string(link.Destination), "/") {
			flag(n, "Link", string(link.Destination))
		}
	}
	for _, n := range ctx.Tree.FindAll(ast.KindImage) {
		if img, ok := n.(*ast.Image); ok && strings.HasPrefix(string(img.Destination), "/") {
			flag(n, "Image", string(img.Destination))
		}
	}

	return findings, nil
}
