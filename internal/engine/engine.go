// Package engine wires the extraction pipeline end to end: issue ingestion,
// per-issue draft extraction, deduplication, selection, stable-key
// resolution, and document composition.
//
// The engine is a pure, synchronous function of its inputs plus a wall-clock
// read for the generation timestamp; it performs no I/O and holds no state
// between invocations. Concurrent calls over different issue sets are safe;
// callers sharing one backlog file must serialize read-modify-write cycles
// themselves.
package engine

import (
	"time"

	"github.com/loomhq/loom/internal/backlog"
	"github.com/loomhq/loom/internal/dedupe"
	"github.com/loomhq/loom/internal/extract"
	"github.com/loomhq/loom/internal/ingest"
	"github.com/loomhq/loom/internal/resolve"
	"github.com/loomhq/loom/internal/selection"
	"github.com/loomhq/loom/internal/textnorm"
	"github.com/loomhq/loom/internal/types"
)

// Build regenerates the backlog from an issue collection and an optional
// prior snapshot. prevBacklog may be nil or corrupt; either way carry-forward
// degrades to none. The only hard error is an issue collection that is not
// valid JSON.
func Build(issuesJSON, prevBacklog []byte, now time.Time) (*types.BacklogDocument, error) {
	issues, err := ingest.Parse(issuesJSON)
	if err != nil {
		return nil, err
	}

	prev := backlog.ParsePrevious(prevBacklog)
	prior := resolve.IndexPrior(prev)

	perIssue := make([]backlog.IssueTasks, 0, len(issues))
	for _, issue := range issues {
		drafts := selection.Select(extractInputs(issue))
		perIssue = append(perIssue, backlog.IssueTasks{
			Issue: issue,
			Tasks: resolve.Resolve(issue.Number, drafts, prior),
		})
	}

	return backlog.Compose(perIssue, prev, now), nil
}

// BuildText is Build with serialized output, matching the collaborator
// contract: (issue collection text, previous backlog text or nil) -> new
// backlog text.
func BuildText(issuesJSON, prevBacklog []byte, now time.Time) ([]byte, error) {
	doc, err := Build(issuesJSON, prevBacklog, now)
	if err != nil {
		return nil, err
	}
	return backlog.Marshal(doc)
}

// extractInputs runs the content-bearing extractors over one issue and
// gathers the signals the selection policy keys on.
func extractInputs(issue types.IssueRecord) selection.Inputs {
	checklist := extract.Checklist(issue.Body, types.OriginChecklist)
	listItems := extract.ListItems(issue.Body, types.OriginList)

	hasCommentTasks := false
	for _, comment := range issue.Comments {
		fromComment := extract.Checklist(comment, types.OriginComment)
		checklist = append(checklist, fromComment...)
		commentItems := extract.ListItems(comment, types.OriginComment)
		listItems = append(listItems, commentItems...)
		if len(fromComment) > 0 || len(commentItems) > 0 {
			hasCommentTasks = true
		}
	}

	return selection.Inputs{
		Checklist:       dedupe.Deduplicate(checklist),
		Headings:        dedupe.Deduplicate(extract.Headings(issue.Body)),
		ListItems:       dedupe.Deduplicate(listItems),
		Chunks:          dedupe.Deduplicate(extract.Chunks(issue.Body, issue.Title)),
		Fallback:        dedupe.Deduplicate([]types.TaskDraft{extract.Fallback(issue)}),
		HasCommentTasks: hasCommentTasks,
		BodyLen:         textnorm.Length(issue.Body),
	}
}
