package backlog

import (
	"encoding/json"
	"strings"
)

// HasOpenWork reports whether a serialized backlog still contains actionable
// work: any task whose status is open or in_progress, compared
// case-insensitively.
//
// This is the read path for the outer automation loop and it never fails:
// nil, empty, or malformed input, and documents without a tasks array, all
// answer false.
func HasOpenWork(data []byte) bool {
	var doc struct {
		Tasks []struct {
			Status string `json:"status"`
		} `json:"tasks"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return false
	}
	for _, task := range doc.Tasks {
		switch strings.ToLower(task.Status) {
		case "open", "in_progress":
			return true
		}
	}
	return false
}
