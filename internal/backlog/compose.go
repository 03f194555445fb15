// Package backlog assembles, serializes, loads, and queries the versioned
// backlog document.
package backlog

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/loomhq/loom/internal/resolve"
	"github.com/loomhq/loom/internal/types"
)

// IssueTasks is one issue's resolved drafts in final order.
type IssueTasks struct {
	Issue types.IssueRecord
	Tasks []resolve.ResolvedTask
}

// Compose builds the backlog document from per-issue resolved tasks, in
// issue-processing order. Display ids and order are assigned here:
// order is 1-based and contiguous per issue, and the id is
// "{issueNumber}-{order:03d}", regenerated on every build.
//
// When the result is field-equivalent to prev (everything except the
// generation timestamp), prev's generatedAtUtc is kept so a rebuild with no
// real change does not appear to have changed.
func Compose(perIssue []IssueTasks, prev *types.BacklogDocument, now time.Time) *types.BacklogDocument {
	doc := &types.BacklogDocument{
		Version:          types.DocumentVersion,
		GeneratedAtUTC:   now.UTC().Format(time.RFC3339),
		SourceIssueCount: len(perIssue),
		Tasks:            []types.GeneratedTask{},
	}
	for _, it := range perIssue {
		for i, task := range it.Tasks {
			order := i + 1
			doc.Tasks = append(doc.Tasks, types.GeneratedTask{
				ID:          fmt.Sprintf("%d-%03d", it.Issue.Number, order),
				StableKey:   task.StableKey,
				IssueNumber: it.Issue.Number,
				IssueTitle:  it.Issue.Title,
				Title:       task.Title,
				Description: task.Description,
				Status:      task.Status,
				Origin:      task.Origin,
				Order:       order,
			})
		}
	}

	if prev != nil && equivalent(doc, prev) {
		doc.GeneratedAtUTC = prev.GeneratedAtUTC
	}
	return doc
}

// equivalent compares two documents field-by-field, ignoring the generation
// timestamp. Statuses are compared in normalized form so an externally
// edited alias ("completed") does not read as a change.
func equivalent(a, b *types.BacklogDocument) bool {
	if a.Version != b.Version || a.SourceIssueCount != b.SourceIssueCount || len(a.Tasks) != len(b.Tasks) {
		return false
	}
	for i := range a.Tasks {
		at, bt := &a.Tasks[i], &b.Tasks[i]
		if at.ID != bt.ID ||
			at.StableKey != bt.StableKey ||
			at.IssueNumber != bt.IssueNumber ||
			at.IssueTitle != bt.IssueTitle ||
			at.Title != bt.Title ||
			at.Description != bt.Description ||
			types.NormalizeStatus(string(at.Status)) != types.NormalizeStatus(string(bt.Status)) ||
			at.Origin != bt.Origin ||
			at.Order != bt.Order {
			return false
		}
	}
	return true
}

// Marshal serializes the document to the wire format: indented JSON with a
// trailing newline, suitable for committing next to the issues it came from.
func Marshal(doc *types.BacklogDocument) ([]byte, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal backlog: %w", err)
	}
	return append(data, '\n'), nil
}
