package standard

import (
	"fmt"

	"github.com/booklint/booklint/pkg/check"
	"github.com/booklint/booklint/pkg/document"
)

// MaxLineLength flags lines longer than the configured maximum. There is no
// safe automatic rewrap, so findings never carry an edit.
type MaxLineLength struct {
	check.Base
}

// NewMaxLineLength creates the MD013 check.
func NewMaxLineLength() *MaxLineLength {
	return &MaxLineLength{Base: check.NewBase(
		"MD013",
		"line-length",
		"Lines should not exceed the configured maximum length",
		check.Metadata{
			Category:     check.CategoryFormatting,
			Stability:    check.StabilityStable,
			IntroducedIn: "v0.1.0",
		},
		check.SeverityInfo,
		false,
	)}
}

// ValidateSettings checks the max-length option type.
func (c *MaxLineLength) ValidateSettings(s check.Settings) error {
	return s.ExpectInt(c.ID(), "max-length")
}

// CheckLines measures each line in runes.
func (c *MaxLineLength) CheckLines(ctx *check.Context) ([]check.Finding, error) {
	maxLen := ctx.IntOption("max-length", 80)
	if maxLen < 1 {
		return nil, nil
	}

	var findings []check.Finding
	for i, line := range ctx.Doc.Lines() {
		length := runeLen(line)
		if length <= maxLen {
			continue
		}
		findings = append(findings, check.NewFinding(
			c.ID(),
			document.Position{Line: i + 1, Column: maxLen + 1},
			fmt.Sprintf("Line length %d exceeds maximum %d", length, maxLen),
		).Build())
	}

	return findings, nil
}
