package resolve

import (
	"testing"

	"github.com/loomhq/loom/internal/types"
)

func TestResolveStableKeys(t *testing.T) {
	drafts := []types.TaskDraft{
		{Title: "Fix the parser", Status: types.StatusOpen},
		{Title: "Add CSV export", Status: types.StatusOpen},
	}
	out := Resolve(7, drafts, PriorStatuses{})
	if out[0].StableKey != "7:fix-the-parser" {
		t.Errorf("StableKey = %q, want 7:fix-the-parser", out[0].StableKey)
	}
	if out[1].StableKey != "7:add-csv-export" {
		t.Errorf("StableKey = %q, want 7:add-csv-export", out[1].StableKey)
	}
}

func TestResolveDuplicateBaseKeysSuffixed(t *testing.T) {
	// Same-slug titles inside one issue get -2, -3, ... suffixes.
	drafts := []types.TaskDraft{
		{Title: "Fix the parser", Status: types.StatusOpen},
		{Title: "Fix the parser", Status: types.StatusOpen},
		{Title: "Fix the parser", Status: types.StatusOpen},
	}
	out := Resolve(3, drafts, PriorStatuses{})
	want := []string{"3:fix-the-parser", "3:fix-the-parser-2", "3:fix-the-parser-3"}
	for i, w := range want {
		if out[i].StableKey != w {
			t.Errorf("out[%d].StableKey = %q, want %q", i, out[i].StableKey, w)
		}
	}
}

func TestResolveCounterIsPerCall(t *testing.T) {
	drafts := []types.TaskDraft{{Title: "Fix the parser", Status: types.StatusOpen}}
	first := Resolve(3, drafts, PriorStatuses{})
	second := Resolve(3, drafts, PriorStatuses{})
	if first[0].StableKey != second[0].StableKey {
		t.Errorf("occurrence counter leaked across calls: %q vs %q", first[0].StableKey, second[0].StableKey)
	}
}

func TestResolveCarryForward(t *testing.T) {
	prior := PriorStatuses{"7:fix-the-parser": types.StatusDone}
	drafts := []types.TaskDraft{
		{Title: "Fix the parser", Status: types.StatusOpen},
		{Title: "Add CSV export", Status: types.StatusOpen},
	}
	out := Resolve(7, drafts, prior)
	if out[0].Status != types.StatusDone {
		t.Errorf("prior status must win: got %s, want done", out[0].Status)
	}
	if out[1].Status != types.StatusOpen {
		t.Errorf("new key keeps draft status: got %s, want open", out[1].Status)
	}
}

func TestIndexPrior(t *testing.T) {
	doc := &types.BacklogDocument{
		Tasks: []types.GeneratedTask{
			{StableKey: "1:a-task", Status: "completed"},
			{StableKey: "1:b-task", Status: types.StatusOpen},
			{StableKey: "", Status: types.StatusDone},
		},
	}
	prior := IndexPrior(doc)
	if len(prior) != 2 {
		t.Fatalf("got %d entries, want 2 (keyless task dropped)", len(prior))
	}
	if prior["1:a-task"] != types.StatusDone {
		t.Errorf("alias status normalized: got %s, want done", prior["1:a-task"])
	}
}

func TestIndexPriorNilDocument(t *testing.T) {
	prior := IndexPrior(nil)
	if len(prior) != 0 {
		t.Errorf("nil document yields empty map, got %v", prior)
	}
}
