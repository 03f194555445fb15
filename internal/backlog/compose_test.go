package backlog

import (
	"strings"
	"testing"
	"time"

	"github.com/loomhq/loom/internal/resolve"
	"github.com/loomhq/loom/internal/types"
)

func sampleIssueTasks() []IssueTasks {
	issue := types.IssueRecord{Number: 7, Title: "Support CSV export"}
	return []IssueTasks{{
		Issue: issue,
		Tasks: []resolve.ResolvedTask{
			{
				TaskDraft: types.TaskDraft{Title: "Add export endpoint", Description: "d1", Origin: types.OriginChecklist, Status: types.StatusOpen},
				StableKey: "7:add-export-endpoint",
			},
			{
				TaskDraft: types.TaskDraft{Title: "Escape commas", Description: "d2", Origin: types.OriginChecklist, Status: types.StatusDone},
				StableKey: "7:escape-commas",
			},
		},
	}}
}

func TestComposeAssignsIDsAndOrder(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	doc := Compose(sampleIssueTasks(), nil, now)

	if doc.Version != types.DocumentVersion {
		t.Errorf("Version = %d, want %d", doc.Version, types.DocumentVersion)
	}
	if doc.SourceIssueCount != 1 {
		t.Errorf("SourceIssueCount = %d, want 1", doc.SourceIssueCount)
	}
	if doc.GeneratedAtUTC != "2026-08-01T12:00:00Z" {
		t.Errorf("GeneratedAtUTC = %q", doc.GeneratedAtUTC)
	}
	if len(doc.Tasks) != 2 {
		t.Fatalf("got %d tasks, want 2", len(doc.Tasks))
	}
	if doc.Tasks[0].ID != "7-001" || doc.Tasks[0].Order != 1 {
		t.Errorf("tasks[0] id/order = %s/%d, want 7-001/1", doc.Tasks[0].ID, doc.Tasks[0].Order)
	}
	if doc.Tasks[1].ID != "7-002" || doc.Tasks[1].Order != 2 {
		t.Errorf("tasks[1] id/order = %s/%d, want 7-002/2", doc.Tasks[1].ID, doc.Tasks[1].Order)
	}
	if doc.Tasks[0].IssueTitle != "Support CSV export" || doc.Tasks[0].IssueNumber != 7 {
		t.Errorf("issue fields not carried: %+v", doc.Tasks[0])
	}
}

func TestComposeKeepsPreviousTimestampWhenEquivalent(t *testing.T) {
	t1 := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	t2 := t1.Add(90 * time.Minute)

	first := Compose(sampleIssueTasks(), nil, t1)
	second := Compose(sampleIssueTasks(), first, t2)

	if second.GeneratedAtUTC != first.GeneratedAtUTC {
		t.Errorf("equivalent rebuild changed timestamp: %q -> %q", first.GeneratedAtUTC, second.GeneratedAtUTC)
	}
}

func TestComposeUpdatesTimestampOnChange(t *testing.T) {
	t1 := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Hour)

	first := Compose(sampleIssueTasks(), nil, t1)
	changed := sampleIssueTasks()
	changed[0].Tasks = changed[0].Tasks[:1]
	second := Compose(changed, first, t2)

	if second.GeneratedAtUTC != "2026-08-01T13:00:00Z" {
		t.Errorf("changed rebuild kept stale timestamp: %q", second.GeneratedAtUTC)
	}
}

func TestComposeEquivalenceNormalizesStatus(t *testing.T) {
	t1 := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	first := Compose(sampleIssueTasks(), nil, t1)

	// An externally edited snapshot may carry a status alias; that must not
	// read as a content change.
	prev := *first
	prev.Tasks = append([]types.GeneratedTask(nil), first.Tasks...)
	prev.Tasks[1].Status = "completed"

	second := Compose(sampleIssueTasks(), &prev, t1.Add(time.Hour))
	if second.GeneratedAtUTC != first.GeneratedAtUTC {
		t.Errorf("status alias must compare equal: %q -> %q", first.GeneratedAtUTC, second.GeneratedAtUTC)
	}
}

func TestComposeEmpty(t *testing.T) {
	doc := Compose(nil, nil, time.Now())
	if doc.Tasks == nil {
		t.Error("Tasks must serialize as [], not null")
	}
	if doc.SourceIssueCount != 0 {
		t.Errorf("SourceIssueCount = %d, want 0", doc.SourceIssueCount)
	}
}

func TestMarshalWireFormat(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	data, err := Marshal(Compose(sampleIssueTasks(), nil, now))
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	for _, field := range []string{
		`"version": 1`,
		`"generatedAtUtc": "2026-08-01T12:00:00Z"`,
		`"sourceIssueCount": 1`,
		`"id": "7-001"`,
		`"stableKey": "7:add-export-endpoint"`,
		`"issueNumber": 7`,
		`"issueTitle": "Support CSV export"`,
		`"status": "open"`,
		`"origin": "checklist"`,
		`"order": 1`,
	} {
		if !strings.Contains(string(data), field) {
			t.Errorf("serialized document missing %s", field)
		}
	}
}
