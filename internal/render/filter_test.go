package render

import (
	"testing"

	"github.com/roelven/another-planka-mcp/internal/planka"
)

func TestMatchesLabel(t *testing.T) {
	ctx := Context{
		Labels: map[string]string{"l1": "Bug", "l2": "High Priority"},
		CardLabels: map[string][]string{
			"c1": {"l1"},
			"c2": {"l2"},
			"c3": {"l1", "l2"},
		},
	}

	tests := []struct {
		name   string
		cardID string
		filter string
		want   bool
	}{
		{"exact name", "c1", "Bug", true},
		{"case-insensitive", "c1", "BUG", true},
		{"substring", "c2", "priority", true},
		{"no match", "c1", "priority", false},
		{"matches any label", "c3", "bug", true},
		{"card without labels", "c9", "bug", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MatchesLabel(tt.cardID, tt.filter, ctx); got != tt.want {
				t.Errorf("MatchesLabel(%q, %q) = %v, want %v", tt.cardID, tt.filter, got, tt.want)
			}
		})
	}
}

func TestMatchesLabel_UnresolvableLabelID(t *testing.T) {
	// A membership row pointing at a label missing from the name map
	// is skipped, not matched on its raw id.
	ctx := Context{
		Labels:     map[string]string{},
		CardLabels: map[string][]string{"c1": {"l-ghost"}},
	}
	if MatchesLabel("c1", "ghost", ctx) {
		t.Error("filter should not match raw label ids")
	}
}

func TestMatchesQuery(t *testing.T) {
	desc := "Crashes when the OAuth token expires"
	tests := []struct {
		name  string
		card  planka.Card
		query string
		want  bool
	}{
		{"name match", planka.Card{Name: "Fix login bug"}, "Login", true},
		{"description match", planka.Card{Name: "x", Description: &desc}, "oauth", true},
		{"no match", planka.Card{Name: "Fix login bug", Description: &desc}, "billing", false},
		{"nil description", planka.Card{Name: "Fix login bug"}, "oauth", false},
		{"empty query matches everything", planka.Card{Name: "anything"}, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MatchesQuery(tt.card, tt.query); got != tt.want {
				t.Errorf("MatchesQuery = %v, want %v", got, tt.want)
			}
		})
	}
}
