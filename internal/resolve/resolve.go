// Package resolve assigns durable per-task identities and carries forward
// status from a previously persisted backlog.
package resolve

import (
	"fmt"

	"github.com/loomhq/loom/internal/textnorm"
	"github.com/loomhq/loom/internal/types"
)

// ResolvedTask is a draft with its durable identity and final status.
type ResolvedTask struct {
	types.TaskDraft
	StableKey string
}

// PriorStatuses indexes a previously persisted backlog by stable key so a
// regenerated task keeps the status it had in the prior snapshot.
type PriorStatuses map[string]types.Status

// IndexPrior builds the stable-key -> status map from a prior document.
// A nil document yields an empty map (no carry-forward).
func IndexPrior(doc *types.BacklogDocument) PriorStatuses {
	prior := make(PriorStatuses)
	if doc == nil {
		return prior
	}
	for _, task := range doc.Tasks {
		if task.StableKey == "" {
			continue
		}
		prior[task.StableKey] = types.NormalizeStatus(string(task.Status))
	}
	return prior
}

// Resolve computes each draft's stable key and final status for one issue.
//
// The base key is "{issueNumber}:{slug(title)}"; when several drafts in the
// same issue slugify to the same base, later ones get a numeric suffix
// (-2, -3, ...). The occurrence counter is local to this call: it never
// leaks across issues or across builds. A key present in the prior snapshot
// keeps its prior status even when the draft's own status differs; new keys
// keep the draft's status.
func Resolve(issueNumber int, drafts []types.TaskDraft, prior PriorStatuses) []ResolvedTask {
	occurrences := make(map[string]int, len(drafts))
	out := make([]ResolvedTask, 0, len(drafts))
	for _, d := range drafts {
		base := fmt.Sprintf("%d:%s", issueNumber, textnorm.Slug(d.Title))
		occurrences[base]++
		key := base
		if n := occurrences[base]; n > 1 {
			key = fmt.Sprintf("%s-%d", base, n)
		}

		status := d.Status
		if carried, ok := prior[key]; ok {
			status = carried
		}

		resolved := ResolvedTask{TaskDraft: d, StableKey: key}
		resolved.Status = status
		out = append(out, resolved)
	}
	return out
}
