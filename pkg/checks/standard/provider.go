// Package standard provides the built-in catalogue of general Markdown
// checks: whitespace hygiene, heading structure, line length, lists,
// emphasis, code blocks, and links. The checks are bundled as a single
// provider so callers compose them into a registry explicitly.
package standard

import (
	"github.com/booklint/booklint/pkg/check"
	"github.com/booklint/booklint/pkg/engine"
)

// Version is the provider's semantic version.
const Version = "1.3.0"

// Provider returns the standard check bundle.
func Provider() engine.Provider {
	return engine.NewStaticProvider(
		"standard",
		Version,
		"General Markdown checks: whitespace, headings, line length, lists, emphasis, code blocks, links",
		// Whitespace.
		func() check.Check { return NewTrailingWhitespace() }, // MD009
		func() check.Check { return NewHardTabs() },           // MD010
		func() check.Check { return NewMultipleBlankLines() }, // MD012
		func() check.Check { return NewFinalNewline() },       // MD047
		// Headings.
		func() check.Check { return NewHeadingIncrement() },    // MD001
		func() check.Check { return NewFirstHeadingLevel() },   // MD002
		func() check.Check { return NewSingleTitle() },         // MD025
		func() check.Check { return NewTrailingPunctuation() }, // MD026
		// Layout.
		func() check.Check { return NewMaxLineLength() },      // MD013
		func() check.Check { return NewUnorderedListStyle() }, // MD004
		func() check.Check { return NewOrderedListPrefix() },  // MD029
		// Emphasis.
		func() check.Check { return NewSpacesInEmphasis() }, // MD037
		// Code blocks.
		func() check.Check { return NewFencedCodeLanguage() }, // MD040
		// Links and images.
		func() check.Check { return NewEmptyLink() },    // MD042
		func() check.Check { return NewImageAltText() }, // MD045
		func() check.Check { return NewBareURL() },      // MD034
	)
}
