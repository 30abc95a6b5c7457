// Package preprocessor implements the mdBook preprocessor protocol: the
// [context, book] JSON pair arrives on stdin, findings are reported on
// stderr, and the book is echoed on stdout unchanged. booklint never mutates
// book content during a build; fixing stays an explicit CLI action.
package preprocessor

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/booklint/booklint/internal/logging"
	"github.com/booklint/booklint/pkg/document"
	"github.com/booklint/booklint/pkg/engine"
)

// chapter is the subset of mdBook's chapter structure the linter needs.
type chapter struct {
	Name     string     `json:"name"`
	Content  string     `json:"content"`
	Path     *string    `json:"path"`
	SubItems []bookItem `json:"sub_items"`
}

// bookItem is one entry in a book's sections. Separators and part titles
// are not objects, so decoding is tolerant: anything without a Chapter key
// is ignored.
type bookItem struct {
	Chapter *chapter `json:"Chapter"`
}

func (b *bookItem) UnmarshalJSON(data []byte) error {
	// "Separator" and {"PartTitle": ...} items decode to a nil Chapter.
	var probe struct {
		Chapter *chapter `json:"Chapter"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil
	}
	b.Chapter = probe.Chapter
	return nil
}

// book mirrors the sections array for linting purposes.
type book struct {
	Sections []bookItem `json:"sections"`
}

// Run executes one preprocessor invocation. The raw book JSON is echoed to
// output byte-for-byte; a separate decode drives the in-memory lint pass.
func Run(ctx context.Context, eng *engine.Engine, input io.Reader, output io.Writer) error {
	var pair []json.RawMessage
	if err := json.NewDecoder(input).Decode(&pair); err != nil {
		return fmt.Errorf("decode preprocessor input: %w", err)
	}
	if len(pair) != 2 {
		return fmt.Errorf("expected [context, book] pair, got %d element(s)", len(pair))
	}
	rawBook := pair[1]

	var b book
	if err := json.Unmarshal(rawBook, &b); err != nil {
		return fmt.Errorf("decode book: %w", err)
	}

	total := 0
	for _, item := range b.Sections {
		total += lintItem(ctx, eng, item)
	}
	if total > 0 {
		logging.FromContext(ctx).Warn("book has lint findings", logging.FieldFindingsTotal, total)
	}

	if _, err := output.Write(rawBook); err != nil {
		return fmt.Errorf("write book: %w", err)
	}
	return nil
}

// lintItem lints one chapter and its sub-items, returning the finding count.
// A chapter that fails to lint is reported and skipped; the build goes on.
func lintItem(ctx context.Context, eng *engine.Engine, item bookItem) int {
	ch := item.Chapter
	if ch == nil {
		return 0
	}

	path := ch.Name
	if ch.Path != nil && *ch.Path != "" {
		path = *ch.Path
	}
	logger := logging.FromContext(ctx)

	count := 0
	doc, err := document.New([]byte(ch.Content), path)
	if err != nil {
		logger.Warn("skipping chapter", logging.FieldPath, path, logging.FieldError, err)
	} else {
		findings, err := eng.Lint(logging.WithLogger(ctx, logger.With(logging.FieldPath, path)), doc)
		if err != nil {
			logger.Warn("lint failed", logging.FieldPath, path, logging.FieldError, err)
		}
		for _, f := range findings {
			logger.Warn(f.Message,
				logging.FieldPath, fmt.Sprintf("%s:%d:%d", path, f.Line, f.Column),
				logging.FieldCheck, f.CheckID,
			)
		}
		count = len(findings)
	}

	for _, sub := range ch.SubItems {
		count += lintItem(ctx, eng, sub)
	}
	return count
}

// Supports reports whether the preprocessor supports a renderer. Linting is
// renderer-independent, so every renderer is supported.
func Supports(string) bool {
	return true
}
