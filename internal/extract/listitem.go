package extract

import (
	"strings"

	"github.com/loomhq/loom/internal/textnorm"
	"github.com/loomhq/loom/internal/types"
)

// List items outside this length band are either noise ("fix it") or prose
// that the paragraph extractor handles better.
const (
	minListItemLen = 12
	maxListItemLen = 200
)

// metadataPrefixes mark list items that are references rather than work:
// bare links, notes, and examples.
var metadataPrefixes = []string{"http ", "https ", "note ", "example "}

// ListItems extracts unordered and ordered list items from markdown text.
// Checklist syntax is excluded (the checklist extractor owns it), as are
// items that look like metadata. The same scan serves issue bodies
// (origin=list) and review comments (origin=comment).
func ListItems(text string, origin types.Origin) []types.TaskDraft {
	var drafts []types.TaskDraft
	for _, line := range splitLines(text) {
		if checklistLineRe.MatchString(line) {
			continue
		}
		m := listLineRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		cleaned := textnorm.Clean(m[1])
		if n := textnorm.Length(cleaned); n < minListItemLen || n > maxListItemLen {
			continue
		}
		if looksLikeMetadata(cleaned) {
			continue
		}
		drafts = append(drafts, types.TaskDraft{
			Title:  m[1],
			Origin: origin,
			Status: types.StatusOpen,
		})
	}
	return drafts
}

func looksLikeMetadata(cleaned string) bool {
	words := normalizeWords(cleaned) + " "
	for _, prefix := range metadataPrefixes {
		if strings.HasPrefix(words, prefix) {
			return true
		}
	}
	return false
}
