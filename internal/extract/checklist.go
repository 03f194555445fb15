package extract

import (
	"github.com/loomhq/loom/internal/textnorm"
	"github.com/loomhq/loom/internal/types"
)

// minChecklistTitleLen discards noise items like "- [ ] tbd".
const minChecklistTitleLen = 6

// Checklist extracts bracketed checklist items from markdown text. Items
// whose cleaned text is shorter than six characters are discarded. A lowered
// or uppered x marker yields a done draft; a space yields open.
//
// The same scan serves issue bodies (origin=checklist) and review comments
// (origin=comment); the caller picks the origin.
func Checklist(text string, origin types.Origin) []types.TaskDraft {
	var drafts []types.TaskDraft
	for _, line := range splitLines(text) {
		m := checklistLineRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		if textnorm.Length(textnorm.Clean(m[2])) < minChecklistTitleLen {
			continue
		}
		status := types.StatusOpen
		if m[1] == "x" || m[1] == "X" {
			status = types.StatusDone
		}
		drafts = append(drafts, types.TaskDraft{
			Title:  m[2],
			Origin: origin,
			Status: status,
		})
	}
	return drafts
}
