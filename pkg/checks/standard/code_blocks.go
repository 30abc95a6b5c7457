package standard

import (
	"bytes"

	"github.com/yuin/goldmark/ast"

	"github.com/booklint/booklint/pkg/check"
	"github.com/booklint/booklint/pkg/document"
	"github.com/booklint/booklint/pkg/langdetect"
)

// FencedCodeLanguage checks that fenced code blocks declare a language.
type FencedCodeLanguage struct {
	check.Base
}

// NewFencedCodeLanguage creates the MD040 check.
func NewFencedCodeLanguage() *FencedCodeLanguage {
	return &FencedCodeLanguage{Base: check.NewBase(
		"MD040",
		"fenced-code-language",
		"Fenced code blocks should declare a language",
		check.Metadata{
			Category:     check.CategoryContent,
			Stability:    check.StabilityStable,
			IntroducedIn: "v0.1.0",
		},
		check.SeverityWarning,
		true,
	)}
}

// ValidateSettings checks the suggest-language option type.
func (c *FencedCodeLanguage) ValidateSettings(s check.Settings) error {
	return s.ExpectBool(c.ID(), "suggest-language")
}

// CheckTree flags fenced blocks with no info string. When language detection
// yields a confident guess, the finding carries an unsafe edit inserting the
// language after the opening fence.
func (c *FencedCodeLanguage) CheckTree(ctx *check.Context) ([]check.Finding, error) {
	suggest := ctx.BoolOption("suggest-language", true)
	source := ctx.Doc.Content()

	var findings []check.Finding
	for _, n := range ctx.Tree.FindAll(ast.KindFencedCodeBlock) {
		fcb, ok := n.(*ast.FencedCodeBlock)
		if !ok || fcb.Language(source) != nil {
			continue
		}

		lines := fcb.Lines()
		if lines.Len() == 0 {
			// Nothing to classify and nothing worth annotating.
			continue
		}

		contentLine, _ := ctx.Doc.PositionAt(lines.At(0).Start)
		fenceLine := contentLine - 1
		if fenceLine < 1 {
			continue
		}

		builder := check.NewFinding(
			c.ID(),
			document.Position{Line: fenceLine, Column: 1},
			"Fenced code block has no language specified",
		)

		if suggest {
			var body bytes.Buffer
			for i := 0; i < lines.Len(); i++ {
				seg := lines.At(i)
				body.Write(seg.Value(source))
			}
			if lang, ok := langdetect.Detect(body.Bytes()); ok {
				at := document.Position{Line: fenceLine, Column: runeLen(ctx.Doc.Line(fenceLine)) + 1}
				edit := check.Insert(at, lang, "Add detected language "+lang)
				edit.Unsafe = true
				builder = builder.WithEdit(edit)
			}
		}

		findings = append(findings, builder.Build())
	}

	return findings, nil
}
