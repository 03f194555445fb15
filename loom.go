// Package loom provides a minimal public API for the issue-to-task backlog
// engine.
//
// loom ingests a JSON collection of free-form issue descriptions and
// produces a bounded, deduplicated backlog of small actionable tasks,
// re-synchronizing it on every run so task completion status survives
// regeneration. The engine is pure: no I/O, no shared state, one wall-clock
// read for the generation timestamp. The loom CLI (cmd/loom) is the
// reference driver; programs embedding the engine should use this package
// rather than reaching into internal/.
package loom

import (
	"time"

	"github.com/loomhq/loom/internal/backlog"
	"github.com/loomhq/loom/internal/engine"
	"github.com/loomhq/loom/internal/types"
)

// Core types for working with backlog documents.
type (
	BacklogDocument = types.BacklogDocument
	GeneratedTask   = types.GeneratedTask
	Status          = types.Status
	Origin          = types.Origin
)

// Status constants.
const (
	StatusOpen       = types.StatusOpen
	StatusDone       = types.StatusDone
	StatusInProgress = types.StatusInProgress
	StatusBlocked    = types.StatusBlocked
)

// Origin constants.
const (
	OriginChecklist = types.OriginChecklist
	OriginHeading   = types.OriginHeading
	OriginList      = types.OriginList
	OriginComment   = types.OriginComment
	OriginChunk     = types.OriginChunk
	OriginFallback  = types.OriginFallback
)

// Build regenerates the backlog from an issue collection and an optional
// prior snapshot (nil for none). Tasks whose stable key already exists in
// the prior snapshot keep their prior status; when nothing meaningful
// changed, the prior generation timestamp is kept too.
func Build(issuesJSON, prevBacklog []byte, now time.Time) (*BacklogDocument, error) {
	return engine.Build(issuesJSON, prevBacklog, now)
}

// BuildText is Build with serialized JSON output.
func BuildText(issuesJSON, prevBacklog []byte, now time.Time) ([]byte, error) {
	return engine.BuildText(issuesJSON, prevBacklog, now)
}

// Marshal serializes a document to the backlog wire format.
func Marshal(doc *BacklogDocument) ([]byte, error) {
	return backlog.Marshal(doc)
}

// HasOpenWork reports whether a serialized backlog still contains actionable
// work. It never fails: malformed input answers false.
func HasOpenWork(data []byte) bool {
	return backlog.HasOpenWork(data)
}
