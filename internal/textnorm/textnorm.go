// Package textnorm normalizes markdown fragments for task titles, slugs,
// and identity comparison. All functions are pure and operate on runes, so
// length limits count characters rather than bytes.
package textnorm

import (
	"regexp"
	"strings"
)

var (
	// markdown link: [text](url) -> text
	linkRe = regexp.MustCompile(`\[([^\]]*)\]\(([^)]*)\)`)
	// runs of whitespace collapse to a single space
	spaceRe = regexp.MustCompile(`\s+`)
	// runs of non-alphanumerics map to a single hyphen in slugs
	nonAlnumRe = regexp.MustCompile(`[^a-z0-9]+`)
)

// markerStripper removes inline emphasis, code, and strike markers.
var markerStripper = strings.NewReplacer("`", "", "*", "", "_", "", "~", "")

// Clean strips markdown decoration from text: links are replaced with their
// label, emphasis/code/strike markers are removed, whitespace runs collapse
// to a single space, and trailing punctuation is trimmed. Empty input yields
// empty output.
func Clean(text string) string {
	if text == "" {
		return ""
	}
	s := linkRe.ReplaceAllString(text, "$1")
	s = markerStripper.Replace(s)
	s = spaceRe.ReplaceAllString(s, " ")
	s = strings.TrimSpace(s)
	return strings.TrimRight(s, "-:;., ")
}

// MaxSlugLen bounds slug length so stable keys stay readable.
const MaxSlugLen = 64

// Slug lowercases text and maps every run of non-alphanumeric characters to
// a single hyphen. An empty result becomes "task". Slugs are truncated to
// MaxSlugLen characters, re-trimming any hyphen the cut exposed.
func Slug(text string) string {
	s := strings.ToLower(text)
	s = nonAlnumRe.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if s == "" {
		return "task"
	}
	if r := []rune(s); len(r) > MaxSlugLen {
		s = strings.TrimRight(string(r[:MaxSlugLen]), "-")
	}
	return s
}

// Truncate hard-cuts text at maxLen characters, trimming trailing whitespace
// the cut exposed. No ellipsis is added. Text within the limit is returned
// unchanged.
func Truncate(text string, maxLen int) string {
	r := []rune(text)
	if len(r) <= maxLen {
		return text
	}
	return strings.TrimRight(string(r[:maxLen]), " \t\n\r")
}

// Length counts characters, not bytes. Extraction thresholds are defined in
// characters so multi-byte input does not shift policy decisions.
func Length(text string) int {
	return len([]rune(text))
}
