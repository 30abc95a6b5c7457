package standard

import (
	"fmt"
	"strings"

	"github.com/booklint/booklint/pkg/check"
	"github.com/booklint/booklint/pkg/document"
)

// TrailingWhitespace flags spaces and tabs at the end of a line.
// Every occurrence carries a safe deletion edit.
type TrailingWhitespace struct {
	check.Base
}

// NewTrailingWhitespace creates the MD009 check.
func NewTrailingWhitespace() *TrailingWhitespace {
	return &TrailingWhitespace{Base: check.NewBase(
		"MD009",
		"no-trailing-spaces",
		"Lines should not end with whitespace",
		check.Metadata{
			Category:     check.CategoryFormatting,
			Stability:    check.StabilityStable,
			IntroducedIn: "v0.1.0",
		},
		check.SeverityWarning,
		true,
	)}
}

// CheckLines scans each line for trailing spaces or tabs.
func (c *TrailingWhitespace) CheckLines(ctx *check.Context) ([]check.Finding, error) {
	var findings []check.Finding

	for i, line := range ctx.Doc.Lines() {
		trimmed := strings.TrimRight(line, " \t")
		if trimmed == line {
			continue
		}

		lineNum := i + 1
		startCol := runeLen(trimmed) + 1
		endCol := runeLen(line) + 1

		edit := check.Delete(
			document.Position{Line: lineNum, Column: startCol},
			document.Position{Line: lineNum, Column: endCol},
			"Remove trailing whitespace",
		)
		findings = append(findings, check.NewFinding(
			c.ID(),
			document.Position{Line: lineNum, Column: startCol},
			"Trailing whitespace",
		).WithEdit(edit).Build())
	}

	return findings, nil
}

// HardTabs flags tab characters and proposes replacing each with spaces.
type HardTabs struct {
	check.Base
}

// NewHardTabs creates the MD010 check.
func NewHardTabs() *HardTabs {
	return &HardTabs{Base: check.NewBase(
		"MD010",
		"no-hard-tabs",
		"Hard tab characters should be replaced with spaces",
		check.Metadata{
			Category:     check.CategoryFormatting,
			Stability:    check.StabilityStable,
			IntroducedIn: "v0.1.0",
		},
		check.SeverityWarning,
		true,
	)}
}

// ValidateSettings checks the spaces-per-tab option type.
func (c *HardTabs) ValidateSettings(s check.Settings) error {
	return s.ExpectInt(c.ID(), "spaces-per-tab")
}

// CheckLines reports one finding per tab character.
func (c *HardTabs) CheckLines(ctx *check.Context) ([]check.Finding, error) {
	spaces := ctx.IntOption("spaces-per-tab", 4)
	if spaces < 1 {
		spaces = 1
	}
	replacement := strings.Repeat(" ", spaces)

	var findings []check.Finding
	for i, line := range ctx.Doc.Lines() {
		lineNum := i + 1
		col := 0
		for _, r := range line {
			col++
			if r != '\t' {
				continue
			}
			edit := check.Replace(
				document.Position{Line: lineNum, Column: col},
				document.Position{Line: lineNum, Column: col + 1},
				replacement,
				fmt.Sprintf("Replace tab with %d spaces", spaces),
			)
			findings = append(findings, check.NewFinding(
				c.ID(),
				document.Position{Line: lineNum, Column: col},
				fmt.Sprintf("Hard tab found; use %d spaces instead", spaces),
			).WithEdit(edit).Build())
		}
	}

	return findings, nil
}

// MultipleBlankLines flags runs of blank lines longer than the allowed
// maximum and proposes deleting the excess lines.
type MultipleBlankLines struct {
	check.Base
}

// NewMultipleBlankLines creates the MD012 check.
func NewMultipleBlankLines() *MultipleBlankLines {
	return &MultipleBlankLines{Base: check.NewBase(
		"MD012",
		"no-multiple-blank-lines",
		"Consecutive blank lines should not exceed the configured maximum",
		check.Metadata{
			Category:     check.CategoryFormatting,
			Stability:    check.StabilityStable,
			IntroducedIn: "v0.1.0",
		},
		check.SeverityWarning,
		true,
	)}
}

// ValidateSettings checks the max-blank-lines option type.
func (c *MultipleBlankLines) ValidateSettings(s check.Settings) error {
	return s.ExpectInt(c.ID(), "max-blank-lines")
}

// CheckLines reports each run of blank lines exceeding the maximum.
func (c *MultipleBlankLines) CheckLines(ctx *check.Context) ([]check.Finding, error) {
	maxBlank := ctx.IntOption("max-blank-lines", 1)
	if maxBlank < 0 {
		maxBlank = 0
	}

	lines := ctx.Doc.Lines()

	var findings []check.Finding
	streakStart := 0
	streak := 0

	flush := func() {
		if streak <= maxBlank {
			return
		}
		firstExcess := streakStart + maxBlank
		lastExcess := streakStart + streak - 1

		edit := check.Delete(
			lineStartPos(firstExcess),
			document.Position{Line: lastExcess, Column: runeLen(lines[lastExcess-1]) + 2},
			fmt.Sprintf("Remove %d excess blank line(s)", streak-maxBlank),
		)
		findings = append(findings, check.NewFinding(
			c.ID(),
			lineStartPos(firstExcess),
			fmt.Sprintf("Too many consecutive blank lines (%d found, %d allowed)", streak, maxBlank),
		).WithEdit(edit).Build())
	}

	for i, line := range lines {
		if isBlank(line) {
			if streak == 0 {
				streakStart = i + 1
			}
			streak++
			continue
		}
		flush()
		streak = 0
	}
	flush()

	return findings, nil
}

// FinalNewline checks that the document ends with exactly one newline.
type FinalNewline struct {
	check.Base
}

// NewFinalNewline creates the MD047 check.
func NewFinalNewline() *FinalNewline {
	return &FinalNewline{Base: check.NewBase(
		"MD047",
		"single-trailing-newline",
		"Files should end with a single newline character",
		check.Metadata{
			Category:     check.CategoryFormatting,
			Stability:    check.StabilityStable,
			IntroducedIn: "v0.1.0",
		},
		check.SeverityWarning,
		true,
	)}
}

// CheckLines verifies the final byte of the document.
func (c *FinalNewline) CheckLines(ctx *check.Context) ([]check.Finding, error) {
	content := ctx.Doc.Content()
	if len(content) == 0 || content[len(content)-1] == '\n' {
		return nil, nil
	}

	lastLine := ctx.Doc.LineCount()
	at := document.Position{Line: lastLine, Column: runeLen(ctx.Doc.Line(lastLine)) + 1}

	edit := check.Insert(at, "\n", "Add a trailing newline")
	finding := check.NewFinding(c.ID(), at, "File should end with a newline").
		WithEdit(edit).Build()
	return []check.Finding{finding}, nil
}
