package render

import (
	"strings"
	"testing"

	"github.com/roelven/another-planka-mcp/internal/workspace"
)

func testSnapshot() *workspace.Snapshot {
	return &workspace.Snapshot{
		Projects: []workspace.ProjectSummary{{ID: "p1", Name: "Platform"}},
		Boards: map[string]workspace.BoardSummary{
			"b2": {ID: "b2", Name: "Roadmap", ProjectID: "p1", ProjectName: "Platform"},
			"b1": {ID: "b1", Name: "Sprint", ProjectID: "p1", ProjectName: "Platform"},
		},
		Lists: map[string]workspace.ListSummary{
			"l1": {ID: "l1", Name: "To Do", BoardID: "b1", BoardName: "Sprint"},
		},
		Labels: map[string]workspace.LabelSummary{
			"lb1": {ID: "lb1", Name: "Bug", Color: "berry-red", BoardID: "b1", BoardName: "Sprint"},
		},
		Users: map[string]workspace.UserSummary{
			"u1": {ID: "u1", Name: "Alice"},
		},
	}
}

func TestWorkspaceMarkdown(t *testing.T) {
	got := WorkspaceMarkdown(testSnapshot())

	for _, want := range []string{
		"# Planka Workspace",
		"## Projects",
		"- **Platform** (ID: `p1`)",
		"## Boards",
		"- **Sprint** (Project: Platform, ID: `b1`)",
		"## Lists",
		"- **To Do** (Board: Sprint, ID: `l1`)",
		"## Labels",
		"- **Bug** (Color: berry-red, ID: `lb1`)",
		"## Users",
		"- **Alice** (ID: `u1`)",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("workspace markdown missing %q in:\n%s", want, got)
		}
	}
}

func TestWorkspaceMarkdown_StableOrdering(t *testing.T) {
	first := WorkspaceMarkdown(testSnapshot())
	for range 10 {
		if got := WorkspaceMarkdown(testSnapshot()); got != first {
			t.Fatal("workspace markdown should be identical across renders")
		}
	}

	// Boards sort by name: Roadmap before Sprint.
	if strings.Index(first, "Roadmap") > strings.Index(first, "Sprint") {
		t.Error("boards should be sorted by name")
	}
}
