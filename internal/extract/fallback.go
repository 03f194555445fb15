package extract

import (
	"fmt"

	"github.com/loomhq/loom/internal/textnorm"
	"github.com/loomhq/loom/internal/types"
)

const defaultFallbackDescription = "Implement this issue end-to-end."

// Fallback produces the single catch-all draft used when no content-bearing
// strategy found anything: the issue itself becomes the task. The title is
// guaranteed non-empty so every open issue contributes at least one task.
func Fallback(issue types.IssueRecord) types.TaskDraft {
	title := textnorm.Clean(issue.Title)
	if title == "" {
		title = fmt.Sprintf("Issue %d", issue.Number)
	}
	description := textnorm.Truncate(textnorm.Clean(issue.Body), maxDescriptionLen)
	if description == "" {
		description = defaultFallbackDescription
	}
	return types.TaskDraft{
		Title:       title,
		Description: description,
		Origin:      types.OriginFallback,
		Status:      types.StatusOpen,
	}
}
