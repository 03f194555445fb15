package backlog

import (
	"encoding/json"

	"github.com/loomhq/loom/internal/types"
)

// ParsePrevious decodes a prior backlog snapshot for status carry-forward.
// Corruption is tolerated: text that fails to parse, or parses into an
// unexpected shape, is treated identically to "no previous backlog" and
// yields nil. No failure is ever surfaced from here.
func ParsePrevious(data []byte) *types.BacklogDocument {
	if len(data) == 0 {
		return nil
	}
	var doc types.BacklogDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil
	}
	if doc.Tasks == nil {
		return nil
	}
	return &doc
}
