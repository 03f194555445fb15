// Package selection chooses or merges extractor outputs for one issue.
//
// The rules are evaluated in a fixed order and return on first match.
// Checklists are authoritative when present; lists and headings win only
// with corroborating signal (comment tasks, sibling headings, or a long
// body); paragraph chunks and the fallback close the ladder. Large bodies
// with thin checklists or lists are topped up by merging later sources.
package selection

import (
	"github.com/loomhq/loom/internal/textnorm"
	"github.com/loomhq/loom/internal/types"
)

// Policy thresholds. Pinned by tests downstream; changing any of them is a
// behavior change for every regenerated backlog.
const (
	// MinLarge is the minimum task count a large issue should yield before
	// merging in additional sources.
	MinLarge = 8

	// largeBodyLen marks an issue body big enough that thin extraction is
	// suspicious.
	largeBodyLen = 3000

	// structuredBodyLen is the lower bar at which a single heading or list
	// is trusted on its own.
	structuredBodyLen = 1500

	// minBareHeadings and minBareListItems admit headings/lists without any
	// body-length signal.
	minBareHeadings  = 2
	minBareListItems = 3
)

// Inputs carries the per-source deduplicated drafts plus the signals the
// policy keys on. Checklist and ListItems include both body- and
// comment-sourced items.
type Inputs struct {
	Checklist []types.TaskDraft
	Headings  []types.TaskDraft
	ListItems []types.TaskDraft
	Chunks    []types.TaskDraft
	Fallback  []types.TaskDraft

	// HasCommentTasks is true when any comment contributed a checklist or
	// list item, before deduplication.
	HasCommentTasks bool

	// BodyLen is the issue body length in characters.
	BodyLen int
}

// Select applies the policy and returns the final ordered draft list for
// one issue. The result is never empty: the fallback draft closes the
// ladder.
func Select(in Inputs) []types.TaskDraft {
	isLarge := in.BodyLen >= largeBodyLen
	structured := in.BodyLen >= structuredBodyLen

	if len(in.Checklist) > 0 && isLarge && len(in.Checklist) < MinLarge {
		return mergeBySlug(MinLarge, in.Checklist, in.Headings, in.ListItems, in.Chunks)
	}
	if len(in.Checklist) > 0 {
		return in.Checklist
	}
	if len(in.ListItems) > 0 && (in.HasCommentTasks || len(in.Headings) > 0 || structured) {
		if len(in.ListItems) < MinLarge && (len(in.Headings) > 0 || len(in.Chunks) > 0) {
			return mergeBySlug(MinLarge, in.ListItems, in.Headings, in.Chunks)
		}
		return in.ListItems
	}
	if len(in.Headings) >= minBareHeadings || (structured && len(in.Headings) > 0) {
		return in.Headings
	}
	if len(in.ListItems) >= minBareListItems || (structured && len(in.ListItems) > 0) {
		return in.ListItems
	}
	if len(in.Chunks) > 0 {
		return in.Chunks
	}
	return in.Fallback
}

// mergeBySlug concatenates sources in order, skipping drafts whose title
// slug was already emitted, and stops once the total reaches target or the
// per-issue cap. Insertion order is preserved; membership is checked by
// slug, so the same work item phrased identically across sources merges to
// its first occurrence.
func mergeBySlug(target int, sources ...[]types.TaskDraft) []types.TaskDraft {
	if target > types.MaxTasksPerIssue {
		target = types.MaxTasksPerIssue
	}
	seen := make(map[string]struct{})
	var out []types.TaskDraft
	for _, src := range sources {
		for _, d := range src {
			if len(out) >= target {
				return out
			}
			key := textnorm.Slug(d.Title)
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, d)
		}
	}
	return out
}
