package backlog

import "testing"

func TestHasOpenWork(t *testing.T) {
	tests := []struct {
		name string
		data string
		want bool
	}{
		{"nil input", "", false},
		{"json null", "null", false},
		{"malformed", "{not json", false},
		{"non-object root", "[1,2,3]", false},
		{"missing tasks", `{"version":1}`, false},
		{"tasks wrong type", `{"tasks":"oops"}`, false},
		{"empty tasks", `{"tasks":[]}`, false},
		{"only done", `{"tasks":[{"status":"done"},{"status":"blocked"}]}`, false},
		{"open task", `{"tasks":[{"status":"done"},{"status":"open"}]}`, true},
		{"in_progress task", `{"tasks":[{"status":"in_progress"}]}`, true},
		{"case insensitive", `{"tasks":[{"status":"OPEN"}]}`, true},
		{"unknown status", `{"tasks":[{"status":"weird"}]}`, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var data []byte
			if tt.data != "" {
				data = []byte(tt.data)
			}
			if got := HasOpenWork(data); got != tt.want {
				t.Errorf("HasOpenWork(%q) = %v, want %v", tt.data, got, tt.want)
			}
		})
	}
}

func TestParsePrevious(t *testing.T) {
	if doc := ParsePrevious(nil); doc != nil {
		t.Error("nil input must yield nil document")
	}
	if doc := ParsePrevious([]byte("{broken")); doc != nil {
		t.Error("malformed input must yield nil document")
	}
	if doc := ParsePrevious([]byte(`{"version":1}`)); doc != nil {
		t.Error("document without tasks must yield nil")
	}
	if doc := ParsePrevious([]byte(`[]`)); doc != nil {
		t.Error("array root must yield nil")
	}

	valid := []byte(`{"version":1,"generatedAtUtc":"2026-08-01T12:00:00Z","sourceIssueCount":1,"tasks":[{"stableKey":"7:x","status":"done"}]}`)
	doc := ParsePrevious(valid)
	if doc == nil {
		t.Fatal("valid document must parse")
	}
	if len(doc.Tasks) != 1 || doc.Tasks[0].StableKey != "7:x" {
		t.Errorf("parsed tasks = %+v", doc.Tasks)
	}
}
