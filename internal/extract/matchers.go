// Package extract turns one issue's raw markdown into ordered task drafts.
// Five independent strategies (checklist, heading, list-item, paragraph
// chunk, fallback) run line-by-line over the body; the selection policy in
// internal/selection decides which strategy's output wins.
package extract

import (
	"regexp"
	"strings"
)

// Line grammars. Each extractor matches whole lines after CRLF
// normalization; indentation is tolerated everywhere.
var (
	// checklist-line: <bullet> [<space|x|X>] <text>
	// bullet is -, *, or +; the bracket marker decides open vs done.
	checklistLineRe = regexp.MustCompile(`^\s*[-*+]\s*\[([ xX])\]\s+(.*)$`)

	// heading-line: a level-2..4 markdown heading (## .. ####) plus title.
	headingLineRe = regexp.MustCompile(`^(#{2,4})\s+(.+)$`)

	// anyHeadingLine bounds a heading's section: the section runs until the
	// next heading of any level (or end of body).
	anyHeadingLineRe = regexp.MustCompile(`^#{1,6}\s+`)

	// list-line: an unordered (-, *, +) or ordered (1. / 1)) list item.
	// Checklist syntax is excluded by checking checklistLineRe first.
	listLineRe = regexp.MustCompile(`^\s*(?:[-*+]|\d{1,4}[.)])\s+(.+)$`)

	// leadingListMarkerRe strips a leading list or checklist marker when
	// section lines are folded into a heading description.
	leadingListMarkerRe = regexp.MustCompile(`^\s*(?:[-*+]\s*\[[ xX]\]|[-*+]|\d{1,4}[.)])\s+`)

	// wordRuns maps non-alphanumeric runs to single spaces for the
	// metadata-prefix check on list items.
	wordRuns = regexp.MustCompile(`[^a-z0-9]+`)
)

// splitLines normalizes CRLF line endings and splits the body on newlines.
func splitLines(text string) []string {
	return strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
}

// normalizeWords lowercases text and collapses every non-alphanumeric run to
// a single space, so "https://x.dev" becomes "https x dev".
func normalizeWords(text string) string {
	return strings.TrimSpace(wordRuns.ReplaceAllString(strings.ToLower(text), " "))
}
