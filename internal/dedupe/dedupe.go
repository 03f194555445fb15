// Package dedupe normalizes extractor output: cleaning titles, removing
// same-slug duplicates in order, truncating fields, and capping list size.
package dedupe

import (
	"github.com/loomhq/loom/internal/textnorm"
	"github.com/loomhq/loom/internal/types"
)

// Field length limits for persisted tasks.
const (
	MaxTitleLen       = 140
	MaxDescriptionLen = 320
)

// Deduplicate walks drafts in order, dropping entries whose cleaned title is
// empty or whose slug was already seen within this sequence. Emitted drafts
// carry cleaned, truncated fields and a normalized status. At most
// types.MaxTasksPerIssue drafts are emitted.
func Deduplicate(drafts []types.TaskDraft) []types.TaskDraft {
	seen := make(map[string]struct{}, len(drafts))
	out := make([]types.TaskDraft, 0, len(drafts))
	for _, d := range drafts {
		title := textnorm.Clean(d.Title)
		if title == "" {
			continue
		}
		key := textnorm.Slug(title)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		description := d.Description
		if description == "" {
			description = d.Title
		}
		out = append(out, types.TaskDraft{
			Title:       textnorm.Truncate(title, MaxTitleLen),
			Description: textnorm.Truncate(textnorm.Clean(description), MaxDescriptionLen),
			Origin:      d.Origin,
			Status:      types.NormalizeStatus(string(d.Status)),
		})
		if len(out) == types.MaxTasksPerIssue {
			break
		}
	}
	return out
}
