// Package langdetect classifies code snippets so fence annotations can be
// suggested for unlabelled code blocks. It combines cheap structural
// heuristics with go-enry's classifier and reports whether the result is
// confident enough to act on.
package langdetect

import (
	"bytes"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// candidates narrows the classifier to languages that commonly appear in
// documentation code blocks. An open-ended classification is too noisy to
// suggest edits from.
var candidates = []string{
	"Go", "Python", "Shell", "JavaScript", "TypeScript",
	"Ruby", "Rust", "Java", "C", "C++", "SQL", "JSON",
	"YAML", "TOML", "HTML", "CSS", "Dockerfile",
}

// Detect returns a fence tag for the snippet and whether the classification
// is confident. Callers should not suggest a language when ok is false.
func Detect(content []byte) (tag string, ok bool) {
	trimmed := bytes.TrimSpace(content)
	if len(trimmed) == 0 {
		return "", false
	}

	if lang, safe := enry.GetLanguageByShebang(content); safe {
		return normalize(lang), true
	}

	if tag := byPattern(trimmed); tag != "" {
		return tag, true
	}

	if lang, safe := enry.GetLanguageByClassifier(content, candidates); safe && lang != "" {
		return normalize(lang), true
	}

	return "", false
}

// byPattern recognizes a handful of unmistakable syntactic signatures. These
// run before the statistical classifier because they are cheaper and never
// misfire on the languages they cover.
func byPattern(trimmed []byte) string {
	text := string(trimmed)

	switch {
	case bytes.HasPrefix(trimmed, []byte("package ")):
		return "go"
	case bytes.HasPrefix(trimmed, []byte("#!")):
		return "bash"
	case bytes.HasPrefix(trimmed, []byte("FROM ")) && bytes.Contains(trimmed, []byte("\nRUN ")):
		return "dockerfile"
	case looksLikeJSON(trimmed):
		return "json"
	case looksLikeHTML(trimmed):
		return "html"
	case strings.Contains(text, "fn main()") || strings.Contains(text, "println!"):
		return "rust"
	case strings.Contains(text, "def ") && strings.Contains(text, "):"):
		return "python"
	case hasSQLPrefix(text):
		return "sql"
	}

	return ""
}

func looksLikeJSON(trimmed []byte) bool {
	if !bytes.HasPrefix(trimmed, []byte("{")) && !bytes.HasPrefix(trimmed, []byte("[")) {
		return false
	}
	return bytes.Contains(trimmed, []byte(`"`))
}

func looksLikeHTML(trimmed []byte) bool {
	lower := bytes.ToLower(trimmed)
	return bytes.Contains(lower, []byte("<!doctype html")) ||
		bytes.Contains(lower, []byte("<html")) ||
		bytes.Contains(lower, []byte("<body>"))
}

func hasSQLPrefix(text string) bool {
	upper := strings.ToUpper(strings.TrimSpace(text))
	for _, kw := range []string{"SELECT ", "INSERT ", "UPDATE ", "DELETE ", "CREATE TABLE"} {
		if strings.HasPrefix(upper, kw) {
			return true
		}
	}
	return false
}

// normalize converts enry language names to lowercase fence tags.
func normalize(lang string) string {
	switch lang {
	case "Shell":
		return "bash"
	default:
		return strings.ToLower(strings.ReplaceAll(lang, " ", "-"))
	}
}
