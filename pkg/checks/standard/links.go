package standard

import (
	"regexp"

	"github.com/yuin/goldmark/ast"

	"github.com/booklint/booklint/pkg/check"
	"github.com/booklint/booklint/pkg/document"
)

// EmptyLink flags links with no destination.
type EmptyLink struct {
	check.Base
}

// NewEmptyLink creates the MD042 check.
func NewEmptyLink() *EmptyLink {
	return &EmptyLink{Base: check.NewBase(
		"MD042",
		"no-empty-links",
		"Links should have a destination",
		check.Metadata{
			Category:     check.CategoryContent,
			Stability:    check.StabilityStable,
			IntroducedIn: "v0.1.0",
		},
		check.SeverityError,
		false,
	)}
}

// CheckTree flags links whose destination is empty or a bare fragment.
func (c *EmptyLink) CheckTree(ctx *check.Context) ([]check.Finding, error) {
	var findings []check.Finding
	for _, n := range ctx.Tree.FindAll(ast.KindLink) {
		link, ok := n.(*ast.Link)
		if !ok {
			continue
		}
		dest := string(link.Destination)
		if dest != "" && dest != "#" {
			continue
		}
		findings = append(findings, check.NewFinding(
			c.ID(),
			nodePos(ctx.Tree, n),
			"Link has no destination",
		).Build())
	}
	return findings, nil
}

// ImageAltText flags images without alternate text.
type ImageAltText struct {
	check.Base
}

// NewImageAltText creates the MD045 check.
func NewImageAltText() *ImageAltText {
	return &ImageAltText{Base: check.NewBase(
		"MD045",
		"no-alt-text",
		"Images should have alternate text",
		check.Metadata{
			Category:     check.CategoryContent,
			Stability:    check.StabilityStable,
			IntroducedIn: "v0.1.0",
		},
		check.SeverityWarning,
		false,
	)}
}

// CheckTree flags images whose alt text renders empty.
func (c *ImageAltText) CheckTree(ctx *check.Context) ([]check.Finding, error) {
	var findings []check.Finding
	for _, n := range ctx.Tree.FindAll(ast.KindImage) {
		if ctx.Tree.TextOf(n) != "" {
			continue
		}
		findings = append(findings, check.NewFinding(
			c.ID(),
			nodePos(ctx.Tree, n),
			"Image has no alternate text",
		).Build())
	}
	return findings, nil
}

// bareURLRe matches a URL that is not already fenced by markup. The
// surrounding-character checks happen in code, since the interesting context
// is the byte before the match.
var bareURLRe = regexp.MustCompile(`https?://[^\s<>\[\]()"']+`)

// linkDefRe matches a link reference definition line, which carries its URL
// bare by construction.
var linkDefRe = regexp.MustCompile(`^[ \t]*\[[^\]]+\]:[ \t]`)

// BareURL flags URLs pasted directly into prose instead of being written as
// autolinks or links.
type BareURL struct {
	check.Base
}

// NewBareURL creates the MD034 check.
func NewBareURL() *BareURL {
	return &BareURL{Base: check.NewBase(
		"MD034",
		"no-bare-urls",
		"URLs should be enclosed in angle brackets or written as links",
		check.Metadata{
			Category:     check.CategoryContent,
			Stability:    check.StabilityStable,
			IntroducedIn: "v1.3.0",
		},
		check.SeverityWarning,
		true,
	)}
}

// CheckLines scans prose lines for unwrapped URLs. Each finding carries a
// safe edit wrapping the URL in angle brackets.
func (c *BareURL) CheckLines(ctx *check.Context) ([]check.Finding, error) {
	lines := ctx.Doc.Lines()
	fenced := codeFenceMask(lines)

	var findings []check.Finding
	for i, line := range lines {
		if fenced[i] || linkDefRe.MatchString(line) {
			continue
		}

		for _, loc := range bareURLRe.FindAllStringIndex(line, -1) {
			start, end := loc[0], loc[1]
			if start > 0 {
				switch line[start-1] {
				case '<', '(', '"', '\'', '=', '`':
					continue
				}
			}
			if inCodeSpan(line, start) {
				continue
			}

			url := line[start:end]
			lineNum := i + 1
			at := document.Position{Line: lineNum, Column: runeCol(line, start)}
			edit := check.Replace(
				at,
				document.Position{Line: lineNum, Column: runeCol(line, end)},
				"<"+url+">",
				"Wrap URL in angle brackets",
			)
			findings = append(findings, check.NewFinding(
				c.ID(),
				at,
				"Bare URL used; wrap it in angle brackets or make it a link",
			).WithEdit(edit).Build())
		}
	}

	return findings, nil
}
