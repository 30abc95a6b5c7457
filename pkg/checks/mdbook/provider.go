// Package mdbook provides checks specific to mdBook projects: SUMMARY.md
// structure, internal link targets, and path conventions the mdBook renderer
// depends on.
package mdbook

import (
	"github.com/booklint/booklint/pkg/check"
	"github.com/booklint/booklint/pkg/engine"
)

// Version is the release version of the mdbook check catalogue.
const Version = "0.4.0"

// Provider returns the mdBook check provider.
func Provider() engine.Provider {
	return engine.NewStaticProvider(
		"mdbook",
		Version,
		"Checks for mdBook book sources",
		func() check.Check { return NewValidInternalLinks() },
		func() check.Check { return NewSummaryStructure() },
		func() check.Check { return NewNoAbsolutePaths() },
	)
}
