// Package ingest parses the raw issue-collection JSON into issue records.
//
// The input shape follows forge issue exports: an array of objects with
// optional number, title, body, state, and comments fields. Parsing is
// tolerant of everything except a root that is not valid JSON at all.
package ingest

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/loomhq/loom/internal/types"
)

// Parse decodes an issue collection into open issue records.
//
// A root that fails to parse as JSON is a hard error. A root that parses but
// is not an array yields zero issues. Entries that are not objects, and
// closed issues, are skipped but still consume their collection position, so
// a synthetic number names the same entry even after an earlier issue is
// closed or corrupted.
func Parse(data []byte) ([]types.IssueRecord, error) {
	var entries []json.RawMessage
	if err := json.Unmarshal(data, &entries); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			// Parsed fine, just not an array. Empty backlog, not an error.
			return nil, nil
		}
		return nil, fmt.Errorf("parse issue collection: %w", err)
	}

	var issues []types.IssueRecord
	for position, entry := range entries {
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(entry, &fields); err != nil {
			continue // not an object; position still consumed
		}
		if strings.EqualFold(strings.TrimSpace(stringField(fields, "state")), "closed") {
			continue
		}
		issues = append(issues, toRecord(fields, position+1))
	}
	return issues, nil
}

// toRecord normalizes one open entry. Fields are decoded individually so a
// single malformed field degrades to its zero value instead of discarding
// the whole entry. position is the 1-based index in the collection, used
// when the entry carries no usable number.
func toRecord(fields map[string]json.RawMessage, position int) types.IssueRecord {
	number := intField(fields, "number")
	if number <= 0 {
		number = position
	}

	title := strings.TrimSpace(stringField(fields, "title"))
	if title == "" {
		title = fmt.Sprintf("Issue %d", number)
	}

	return types.IssueRecord{
		Number:   number,
		Title:    title,
		Body:     stringField(fields, "body"),
		Comments: commentBodies(fields["comments"]),
	}
}

func stringField(fields map[string]json.RawMessage, key string) string {
	raw, ok := fields[key]
	if !ok {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return ""
	}
	return s
}

func intField(fields map[string]json.RawMessage, key string) int {
	raw, ok := fields[key]
	if !ok {
		return 0
	}
	var n int
	if err := json.Unmarshal(raw, &n); err != nil {
		return 0
	}
	return n
}

// commentBodies accepts an array whose elements are either bare strings or
// objects with a string body field. Anything else is dropped.
func commentBodies(raw json.RawMessage) []string {
	if raw == nil {
		return nil
	}
	var entries []json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil
	}
	var bodies []string
	for _, entry := range entries {
		var s string
		if err := json.Unmarshal(entry, &s); err == nil {
			bodies = append(bodies, s)
			continue
		}
		var obj struct {
			Body *string `json:"body"`
		}
		if err := json.Unmarshal(entry, &obj); err == nil && obj.Body != nil {
			bodies = append(bodies, *obj.Body)
		}
	}
	return bodies
}
