package extract

import (
	"strings"

	"github.com/loomhq/loom/internal/textnorm"
	"github.com/loomhq/loom/internal/types"
)

// genericHeadings are boilerplate section titles that never describe
// actionable work. Compared against the heading's alphanumeric-only,
// lowercased form, so "Non-Goals", "non goals", and "NonGoals" all hit the
// same entry.
var genericHeadings = map[string]bool{
	"overview":         true,
	"background":       true,
	"context":          true,
	"problem":          true,
	"problemstatement": true,
	"goals":            true,
	"goal":             true,
	"nongoals":         true,
	"scope":            true,
	"inscope":          true,
	"outofscope":       true,
	"successmetrics":   true,
	"metrics":          true,
	"dependencies":     true,
	"openquestions":    true,
	"risks":            true,
	"timeline":         true,
	"rollout":          true,
	"testing":          true,
	"qa":               true,
	"appendix":         true,
	"references":       true,
}

const (
	// maxSectionDescLines folds the first few lines of a section into the
	// draft description.
	maxSectionDescLines = 3

	maxDescriptionLen = 320

	defaultSectionDescription = "Implement this section end-to-end."
)

// Headings extracts a draft per level-2..4 markdown heading, skipping
// generic boilerplate sections. Each draft's description is built from the
// first non-empty lines of the section, which runs until the next heading of
// any level or the end of the body.
func Headings(body string) []types.TaskDraft {
	lines := splitLines(body)
	var drafts []types.TaskDraft
	for i, line := range lines {
		m := headingLineRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		title := m[2]
		if genericHeadings[alnumKey(textnorm.Clean(title))] {
			continue
		}
		drafts = append(drafts, types.TaskDraft{
			Title:       title,
			Description: sectionDescription(lines[i+1:]),
			Origin:      types.OriginHeading,
			Status:      types.StatusOpen,
		})
	}
	return drafts
}

// alnumKey reduces a heading title to its alphanumeric-only, lowercased form
// for stoplist comparison.
func alnumKey(title string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(title) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// sectionDescription joins the first non-empty lines of a section, with any
// leading list marker stripped, into a single cleaned description.
func sectionDescription(rest []string) string {
	var parts []string
	for _, line := range rest {
		if anyHeadingLineRe.MatchString(line) {
			break
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		cleaned := textnorm.Clean(leadingListMarkerRe.ReplaceAllString(line, ""))
		if cleaned == "" {
			continue
		}
		parts = append(parts, cleaned)
		if len(parts) == maxSectionDescLines {
			break
		}
	}
	if len(parts) == 0 {
		return defaultSectionDescription
	}
	return textnorm.Truncate(strings.Join(parts, " "), maxDescriptionLen)
}
