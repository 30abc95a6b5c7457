package standard

import (
	"regexp"
	"strings"

	"github.com/booklint/booklint/pkg/check"
	"github.com/booklint/booklint/pkg/document"
)

// emphasisPattern pairs an emphasis marker with the expression that finds it
// space-padded. Markers are ordered longest first so strong emphasis is
// claimed before its single-character prefix can match.
type emphasisPattern struct {
	marker string
	re     *regexp.Regexp
}

var emphasisPatterns = buildEmphasisPatterns()

func buildEmphasisPatterns() []emphasisPattern {
	markers := []string{"**", "__", "*", "_"}
	out := make([]emphasisPattern, 0, len(markers))
	for _, m := range markers {
		q := regexp.QuoteMeta(m)
		c := regexp.QuoteMeta(string(m[0]))
		// Space just inside the opener, the closer, or both.
		expr := q + `(?:[ \t]+[^` + c + `]*?|[^` + c + `\s][^` + c + `]*?[ \t]+)` + q
		out = append(out, emphasisPattern{marker: m, re: regexp.MustCompile(expr)})
	}
	return out
}

// SpacesInEmphasis flags emphasis markers separated from their content by
// whitespace, which stops the emphasis from rendering.
type SpacesInEmphasis struct {
	check.Base
}

// NewSpacesInEmphasis creates the MD037 check.
func NewSpacesInEmphasis() *SpacesInEmphasis {
	return &SpacesInEmphasis{Base: check.NewBase(
		"MD037",
		"no-space-in-emphasis",
		"Emphasis markers should not be separated from their content by spaces",
		check.Metadata{
			Category:     check.CategoryFormatting,
			Stability:    check.StabilityStable,
			IntroducedIn: "v1.3.0",
		},
		check.SeverityWarning,
		true,
	)}
}

// CheckLines scans prose lines for space-padded emphasis. Each finding
// carries a safe edit that trims the padding.
func (c *SpacesInEmphasis) CheckLines(ctx *check.Context) ([]check.Finding, error) {
	lines := ctx.Doc.Lines()
	fenced := codeFenceMask(lines)

	var findings []check.Finding
	for i, line := range lines {
		if fenced[i] {
			continue
		}
		findings = append(findings, c.checkLine(line, i+1)...)
	}
	return findings, nil
}

func (c *SpacesInEmphasis) checkLine(line string, lineNum int) []check.Finding {
	var findings []check.Finding
	var claimed [][2]int

	for _, p := range emphasisPatterns {
		for _, loc := range p.re.FindAllStringIndex(line, -1) {
			start, end := loc[0], loc[1]
			if overlapsAny(claimed, start, end) || inCodeSpan(line, start) {
				continue
			}
			claimed = append(claimed, [2]int{start, end})

			inner := line[start+len(p.marker) : end-len(p.marker)]
			trimmed := strings.Trim(inner, " \t")
			if trimmed == "" {
				continue
			}
			// A lone marker with spaces on both sides reads as prose
			// (or arithmetic), not failed emphasis.
			leading := strings.TrimLeft(inner, " \t") != inner
			trailing := strings.TrimRight(inner, " \t") != inner
			if len(p.marker) == 1 && leading && trailing {
				continue
			}

			at := document.Position{Line: lineNum, Column: runeCol(line, start)}
			edit := check.Replace(
				at,
				document.Position{Line: lineNum, Column: runeCol(line, end)},
				p.marker+trimmed+p.marker,
				"Remove spaces inside emphasis markers",
			)
			findings = append(findings, check.NewFinding(
				c.ID(),
				at,
				"Spaces inside emphasis markers",
			).WithEdit(edit).Build())
		}
	}

	return findings
}

func overlapsAny(claimed [][2]int, start, end int) bool {
	for _, iv := range claimed {
		if start < iv[1] && iv[0] < end {
			return true
		}
	}
	return false
}
