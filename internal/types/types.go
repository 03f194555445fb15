// Package types defines core data structures for the loom backlog generator.
package types

// IssueRecord is one open issue from the input collection, normalized for
// extraction. Records are built fresh per engine invocation and discarded
// after one build.
type IssueRecord struct {
	Number   int      // positive; synthesized from collection position when absent
	Title    string   // never empty; defaults to "Issue {number}"
	Body     string   // raw markdown, possibly empty
	Comments []string // raw markdown comment bodies, in collection order
}

// TaskDraft is an ephemeral candidate task produced by one extraction
// strategy before dedup, selection, and stable-key resolution.
type TaskDraft struct {
	Title       string
	Description string
	Origin      Origin
	Status      Status
}

// GeneratedTask is a persisted task in the backlog document.
//
// ID is a display identifier regenerated on every build; StableKey is the
// only identity that survives across regenerations.
type GeneratedTask struct {
	ID          string `json:"id"`
	StableKey   string `json:"stableKey"`
	IssueNumber int    `json:"issueNumber"`
	IssueTitle  string `json:"issueTitle"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Status      Status `json:"status"`
	Origin      Origin `json:"origin"`
	Order       int    `json:"order"`
}

// BacklogDocument is the persisted, versioned snapshot of all current tasks
// across all open issues.
type BacklogDocument struct {
	Version          int             `json:"version"`
	GeneratedAtUTC   string          `json:"generatedAtUtc"`
	SourceIssueCount int             `json:"sourceIssueCount"`
	Tasks            []GeneratedTask `json:"tasks"`
}

// DocumentVersion is the current backlog document schema version.
const DocumentVersion = 1

// MaxTasksPerIssue caps how many tasks a single issue may contribute.
const MaxTasksPerIssue = 25

// Status represents the completion state of a task.
type Status string

// Task status constants. These string values are part of the wire format;
// collaborators filter on them.
const (
	StatusOpen       Status = "open"
	StatusDone       Status = "done"
	StatusInProgress Status = "in_progress"
	StatusBlocked    Status = "blocked"
)

// IsValid checks if the status value is one of the persisted statuses.
func (s Status) IsValid() bool {
	switch s {
	case StatusOpen, StatusDone, StatusInProgress, StatusBlocked:
		return true
	}
	return false
}

// Actionable reports whether a task in this status still represents work
// the outer loop should pick up.
func (s Status) Actionable() bool {
	return s == StatusOpen || s == StatusInProgress
}

// Origin records which extraction strategy produced a task.
type Origin string

// Origin constants. Like Status, these values are part of the wire format.
const (
	OriginChecklist Origin = "checklist"
	OriginHeading   Origin = "heading"
	OriginList      Origin = "list"
	OriginComment   Origin = "comment"
	OriginChunk     Origin = "chunk"
	OriginFallback  Origin = "fallback"
)
