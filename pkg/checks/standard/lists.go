package standard

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/yuin/goldmark/ast"

	"github.com/booklint/booklint/pkg/check"
	"github.com/booklint/booklint/pkg/document"
)

// markerStyles maps the style option to the marker byte goldmark records on
// unordered lists.
var markerStyles = map[string]byte{
	"asterisk": '*',
	"dash":     '-',
	"plus":     '+',
}

func styleName(marker byte) string {
	for name, b := range markerStyles {
		if b == marker {
			return name
		}
	}
	return string(marker)
}

// UnorderedListStyle checks that unordered list markers are used
// consistently.
type UnorderedListStyle struct {
	check.Base
}

// NewUnorderedListStyle creates the MD004 check.
func NewUnorderedListStyle() *UnorderedListStyle {
	return &UnorderedListStyle{Base: check.NewBase(
		"MD004",
		"ul-style",
		"Unordered list markers should use a consistent style",
		check.Metadata{
			Category:     check.CategoryFormatting,
			Stability:    check.StabilityStable,
			IntroducedIn: "v0.1.0",
		},
		check.SeverityWarning,
		false,
	)}
}

// ValidateSettings rejects style values outside the known set.
func (c *UnorderedListStyle) ValidateSettings(s check.Settings) error {
	if err := s.ExpectString(c.ID(), "style"); err != nil {
		return err
	}
	style := s.String("style", "consistent")
	if style == "consistent" {
		return nil
	}
	if _, ok := markerStyles[style]; !ok {
		return &check.OptionError{
			CheckID: c.ID(),
			Key:     "style",
			Value:   style,
			Want:    "one of consistent, asterisk, dash, plus",
		}
	}
	return nil
}

// CheckTree compares each unordered list's marker against the expected style.
// In consistent mode the first list in the document sets the expectation.
func (c *UnorderedListStyle) CheckTree(ctx *check.Context) ([]check.Finding, error) {
	style := ctx.StringOption("style", "consistent")

	var want byte
	if style != "consistent" {
		want = markerStyles[style]
	}

	var findings []check.Finding
	for _, n := range ctx.Tree.FindAll(ast.KindList) {
		list, ok := n.(*ast.List)
		if !ok || list.IsOrdered() {
			continue
		}
		if want == 0 {
			want = list.Marker
			continue
		}
		if list.Marker == want {
			continue
		}
		findings = append(findings, check.NewFinding(
			c.ID(),
			lineStartPos(startLine(ctx.Tree, n)),
			fmt.Sprintf("Unordered list uses %q marker, expected %s style", string(list.Marker), styleName(want)),
		).Build())
	}

	return findings, nil
}

// orderedPrefixRe extracts the numeric marker of an ordered list item line.
var orderedPrefixRe = regexp.MustCompile(`^([ \t]*)(\d+)[.)]`)

// olPrefixStyles are the accepted values of the ol-prefix style option.
var olPrefixStyles = map[string]bool{
	"one":            true,
	"ordered":        true,
	"one_or_ordered": true,
}

// OrderedListPrefix checks the numbering of ordered list items. Style "one"
// expects every prefix to repeat the first item's number, "ordered" expects
// sequential numbering, and "one_or_ordered" (the default) accepts whichever
// of the two the list's second item establishes.
type OrderedListPrefix struct {
	check.Base
}

// NewOrderedListPrefix creates the MD029 check.
func NewOrderedListPrefix() *OrderedListPrefix {
	return &OrderedListPrefix{Base: check.NewBase(
		"MD029",
		"ol-prefix",
		"Ordered list item prefixes should follow a consistent numbering style",
		check.Metadata{
			Category:     check.CategoryFormatting,
			Stability:    check.StabilityStable,
			IntroducedIn: "v1.3.0",
		},
		check.SeverityWarning,
		true,
	)}
}

// ValidateSettings rejects style values outside the known set.
func (c *OrderedListPrefix) ValidateSettings(s check.Settings) error {
	if err := s.ExpectString(c.ID(), "style"); err != nil {
		return err
	}
	style := s.String("style", "one_or_ordered")
	if !olPrefixStyles[style] {
		return &check.OptionError{
			CheckID: c.ID(),
			Key:     "style",
			Value:   style,
			Want:    "one of one, ordered, one_or_ordered",
		}
	}
	return nil
}

// olItem is one ordered list item's marker as it appears in source.
type olItem struct {
	line     int
	startCol int
	endCol   int
	value    int
}

// CheckTree validates the numbering of every ordered list independently.
// Each wrong prefix carries a safe edit replacing the number.
func (c *OrderedListPrefix) CheckTree(ctx *check.Context) ([]check.Finding, error) {
	style := ctx.StringOption("style", "one_or_ordered")

	var findings []check.Finding
	for _, n := range ctx.Tree.FindAll(ast.KindList) {
		list, ok := n.(*ast.List)
		if !ok || !list.IsOrdered() {
			continue
		}

		items := c.collectItems(ctx, n)
		if len(items) < 2 {
			continue
		}

		sequential := style == "ordered" ||
			(style == "one_or_ordered" && items[1].value != items[0].value)

		for i, item := range items {
			want := items[0].value
			if sequential {
				want = items[0].value + i
			}
			if item.value == want {
				continue
			}

			at := document.Position{Line: item.line, Column: item.startCol}
			edit := check.Replace(
				at,
				document.Position{Line: item.line, Column: item.endCol},
				strconv.Itoa(want),
				fmt.Sprintf("Renumber list item to %d", want),
			)
			findings = append(findings, check.NewFinding(
				c.ID(),
				at,
				fmt.Sprintf("Ordered list item prefix is %d, expected %d", item.value, want),
			).WithEdit(edit).Build())
		}
	}

	return findings, nil
}

// collectItems reads each list item's numeric marker back out of the source
// line, since the parser only records the list's starting number.
func (c *OrderedListPrefix) collectItems(ctx *check.Context, list ast.Node) []olItem {
	var items []olItem
	for child := list.FirstChild(); child != nil; child = child.NextSibling() {
		span := ctx.Tree.PositionOf(child)
		if !span.IsValid() {
			continue
		}
		line := ctx.Doc.Line(span.Start.Line)
		m := orderedPrefixRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		value, err := strconv.Atoi(m[2])
		if err != nil {
			continue
		}
		items = append(items, olItem{
			line:     span.Start.Line,
			startCol: runeLen(m[1]) + 1,
			endCol:   runeLen(m[1]) + runeLen(m[2]) + 1,
			value:    value,
		})
	}
	return items
}
