package extract

import (
	"testing"

	"github.com/loomhq/loom/internal/types"
)

func TestHeadings(t *testing.T) {
	body := "# Top Level\n" +
		"## Overview\n" +
		"Some context here.\n" +
		"## API Contract\n" +
		"Build the totals endpoint.\n" +
		"Validate inputs.\n" +
		"\n" +
		"Return JSON.\n" +
		"Extra line past the limit.\n" +
		"### Frontend Rendering\n" +
		"##### Too Deep"

	drafts := Headings(body)
	if len(drafts) != 2 {
		t.Fatalf("got %d drafts, want 2 (Overview stoplisted, levels 1 and 5 ignored): %+v", len(drafts), drafts)
	}

	if drafts[0].Title != "API Contract" {
		t.Errorf("drafts[0].Title = %q, want API Contract", drafts[0].Title)
	}
	// First three non-empty section lines, cleaned and joined.
	wantDesc := "Build the totals endpoint Validate inputs Return JSON"
	if drafts[0].Description != wantDesc {
		t.Errorf("drafts[0].Description = %q, want %q", drafts[0].Description, wantDesc)
	}

	if drafts[1].Title != "Frontend Rendering" {
		t.Errorf("drafts[1].Title = %q, want Frontend Rendering", drafts[1].Title)
	}
	if drafts[1].Description != defaultSectionDescription {
		t.Errorf("empty section description = %q, want default", drafts[1].Description)
	}

	for _, d := range drafts {
		if d.Origin != types.OriginHeading || d.Status != types.StatusOpen {
			t.Errorf("draft %q: origin/status = %s/%s", d.Title, d.Origin, d.Status)
		}
	}
}

func TestHeadingsStoplist(t *testing.T) {
	// The stoplist compares alphanumeric-only lowercased titles, so
	// hyphenation and spacing variants all match.
	body := "## Non-Goals\n## non goals\n## Problem Statement\n## Success Metrics\n## Open Questions\n## Ship The Feature"
	drafts := Headings(body)
	if len(drafts) != 1 || drafts[0].Title != "Ship The Feature" {
		t.Fatalf("got %+v, want only Ship The Feature", drafts)
	}
}

func TestHeadingsListLinesInDescription(t *testing.T) {
	body := "## Rollout Plan\n- [ ] enable the flag\n* second step\n1. third step"
	drafts := Headings(body)
	if len(drafts) != 1 {
		t.Fatalf("got %d drafts, want 1", len(drafts))
	}
	want := "enable the flag second step third step"
	if drafts[0].Description != want {
		t.Errorf("Description = %q, want leading markers stripped: %q", drafts[0].Description, want)
	}
}
