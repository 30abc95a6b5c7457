package standard

import (
	"fmt"
	"strings"

	"github.com/yuin/goldmark/ast"

	"github.com/booklint/booklint/pkg/check"
	"github.com/booklint/booklint/pkg/document"
)

// HeadingIncrement checks that heading levels only increment by one.
type HeadingIncrement struct {
	check.Base
}

// NewHeadingIncrement creates the MD001 check.
func NewHeadingIncrement() *HeadingIncrement {
	return &HeadingIncrement{Base: check.NewBase(
		"MD001",
		"heading-increment",
		"Heading levels should only increment by one level at a time",
		check.Metadata{
			Category:     check.CategoryStructural,
			Stability:    check.StabilityStable,
			IntroducedIn: "v0.1.0",
		},
		check.SeverityWarning,
		false,
	)}
}

// CheckTree walks headings in document order and compares adjacent levels.
func (c *HeadingIncrement) CheckTree(ctx *check.Context) ([]check.Finding, error) {
	var findings []check.Finding
	prev := 0

	for _, h := range ctx.Tree.FindAll(ast.KindHeading) {
		level := headingLevel(h)
		if level == 0 {
			continue
		}
		if prev > 0 && level > prev+1 {
			findings = append(findings, check.NewFinding(
				c.ID(),
				lineStartPos(startLine(ctx.Tree, h)),
				fmt.Sprintf("Heading level jumped from H%d to H%d", prev, level),
			).Build())
		}
		prev = level
	}

	return findings, nil
}

// FirstHeadingLevel checks that the first heading of the document is at the
// configured level.
type FirstHeadingLevel struct {
	check.Base
}

// NewFirstHeadingLevel creates the MD002 check.
func NewFirstHeadingLevel() *FirstHeadingLevel {
	return &FirstHeadingLevel{Base: check.NewBase(
		"MD002",
		"first-heading-level",
		"The first heading should be at the configured level",
		check.Metadata{
			Category:     check.CategoryStructural,
			Stability:    check.StabilityStable,
			IntroducedIn: "v0.1.0",
		},
		check.SeverityWarning,
		false,
	)}
}

// ValidateSettings checks the level option type.
func (c *FirstHeadingLevel) ValidateSettings(s check.Settings) error {
	return s.ExpectInt(c.ID(), "level")
}

// CheckTree inspects only the first heading.
func (c *FirstHeadingLevel) CheckTree(ctx *check.Context) ([]check.Finding, error) {
	want := ctx.IntOption("level", 1)

	headings := ctx.Tree.FindAll(ast.KindHeading)
	if len(headings) == 0 {
		return nil, nil
	}

	got := headingLevel(headings[0])
	if got == want {
		return nil, nil
	}

	finding := check.NewFinding(
		c.ID(),
		lineStartPos(startLine(ctx.Tree, headings[0])),
		fmt.Sprintf("First heading should be level %d, got level %d", want, got),
	).Build()
	return []check.Finding{finding}, nil
}

// SingleTitle checks that at most one top-level heading exists.
type SingleTitle struct {
	check.Base
}

// NewSingleTitle creates the MD025 check.
func NewSingleTitle() *SingleTitle {
	return &SingleTitle{Base: check.NewBase(
		"MD025",
		"single-title",
		"Documents should have a single top-level heading",
		check.Metadata{
			Category:     check.CategoryStructural,
			Stability:    check.StabilityStable,
			IntroducedIn: "v0.1.0",
		},
		check.SeverityWarning,
		false,
	)}
}

// ValidateSettings checks the level option type.
func (c *SingleTitle) ValidateSettings(s check.Settings) error {
	return s.ExpectInt(c.ID(), "level")
}

// CheckTree flags every top-level heading after the first.
func (c *SingleTitle) CheckTree(ctx *check.Context) ([]check.Finding, error) {
	level := ctx.IntOption("level", 1)

	var findings []check.Finding
	seen := false
	for _, h := range ctx.Tree.FindAll(ast.KindHeading) {
		if headingLevel(h) != level {
			continue
		}
		if !seen {
			seen = true
			continue
		}
		findings = append(findings, check.NewFinding(
			c.ID(),
			lineStartPos(startLine(ctx.Tree, h)),
			fmt.Sprintf("Multiple top-level headings (level %d) in the same document", level),
		).Build())
	}

	return findings, nil
}

// TrailingPunctuation flags headings that end in punctuation and proposes
// removing it.
type TrailingPunctuation struct {
	check.Base
}

// NewTrailingPunctuation creates the MD026 check.
func NewTrailingPunctuation() *TrailingPunctuation {
	return &TrailingPunctuation{Base: check.NewBase(
		"MD026",
		"no-trailing-punctuation",
		"Headings should not end with punctuation",
		check.Metadata{
			Category:     check.CategoryContent,
			Stability:    check.StabilityStable,
			IntroducedIn: "v0.1.0",
		},
		check.SeverityInfo,
		true,
	)}
}

// ValidateSettings checks the punctuation option type.
func (c *TrailingPunctuation) ValidateSettings(s check.Settings) error {
	return s.ExpectString(c.ID(), "punctuation")
}

// CheckTree inspects the rendered text of each heading.
func (c *TrailingPunctuation) CheckTree(ctx *check.Context) ([]check.Finding, error) {
	punctuation := ctx.StringOption("punctuation", ".,;:!")

	var findings []check.Finding
	for _, h := range ctx.Tree.FindAll(ast.KindHeading) {
		text := ctx.Tree.TextOf(h)
		trimmed := strings.TrimRight(text, punctuation)
		if trimmed == text || trimmed == "" {
			continue
		}

		span := ctx.Tree.PositionOf(h)
		if !span.IsValid() {
			continue
		}
		excess := runeLen(text) - runeLen(trimmed)
		start := document.Position{Line: span.End.Line, Column: span.End.Column - excess}

		edit := check.Delete(start, span.End, "Remove trailing punctuation")
		findings = append(findings, check.NewFinding(
			c.ID(),
			start,
			fmt.Sprintf("Heading ends with punctuation %q", text[len(trimmed):]),
		).WithEdit(edit).Build())
	}

	return findings, nil
}
