package types

import "strings"

// NormalizeStatus maps a free-form status string onto the persisted Status
// set. Checklist markers and prior backlog snapshots are the usual sources;
// externally edited snapshots may carry aliases like "completed" or
// "in-progress". Anything unrecognized degrades to open.
func NormalizeStatus(raw string) Status {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "done", "completed", "complete":
		return StatusDone
	case "in_progress", "in-progress", "inprogress":
		return StatusInProgress
	case "blocked":
		return StatusBlocked
	default:
		return StatusOpen
	}
}
