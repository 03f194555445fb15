package extract

import (
	"strings"
	"testing"

	"github.com/loomhq/loom/internal/textnorm"
	"github.com/loomhq/loom/internal/types"
)

func TestFallback(t *testing.T) {
	issue := types.IssueRecord{
		Number: 7,
		Title:  "Support CSV export",
		Body:   "Users keep asking for *CSV export* of the totals page.",
	}
	d := Fallback(issue)
	if d.Title != "Support CSV export" {
		t.Errorf("Title = %q, want issue title", d.Title)
	}
	if d.Description != "Users keep asking for CSV export of the totals page" {
		t.Errorf("Description = %q, want cleaned body", d.Description)
	}
	if d.Origin != types.OriginFallback || d.Status != types.StatusOpen {
		t.Errorf("origin/status = %s/%s", d.Origin, d.Status)
	}
}

func TestFallbackEmptyBody(t *testing.T) {
	d := Fallback(types.IssueRecord{Number: 3, Title: "Do the thing"})
	if d.Description != defaultFallbackDescription {
		t.Errorf("Description = %q, want default", d.Description)
	}
}

func TestFallbackUnusableTitle(t *testing.T) {
	d := Fallback(types.IssueRecord{Number: 9, Title: "***"})
	if d.Title != "Issue 9" {
		t.Errorf("Title = %q, want synthesized Issue 9", d.Title)
	}
}

func TestFallbackLongBodyTruncated(t *testing.T) {
	d := Fallback(types.IssueRecord{Number: 1, Title: "Big", Body: strings.Repeat("w", 400)})
	if textnorm.Length(d.Description) != 320 {
		t.Errorf("Description length = %d, want 320", textnorm.Length(d.Description))
	}
}
