package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/roelven/another-planka-mcp/internal/workspace"
)

// WorkspaceMarkdown renders the full snapshot as sectioned bullets.
// Map-backed sections are sorted by name (then id) for stable output —
// agents diff responses across calls, so ordering must not jitter.
func WorkspaceMarkdown(snap *workspace.Snapshot) string {
	var b strings.Builder
	b.WriteString("# Planka Workspace\n\n")

	b.WriteString("## Projects\n")
	for _, p := range snap.Projects {
		fmt.Fprintf(&b, "- **%s** (ID: `%s`)\n", p.Name, p.ID)
	}

	b.WriteString("\n## Boards\n")
	for _, board := range sortedByName(snap.Boards, func(v workspace.BoardSummary) (string, string) { return v.Name, v.ID }) {
		fmt.Fprintf(&b, "- **%s** (Project: %s, ID: `%s`)\n", board.Name, board.ProjectName, board.ID)
	}

	b.WriteString("\n## Lists\n")
	for _, lst := range sortedByName(snap.Lists, func(v workspace.ListSummary) (string, string) { return v.Name, v.ID }) {
		fmt.Fprintf(&b, "- **%s** (Board: %s, ID: `%s`)\n", lst.Name, lst.BoardName, lst.ID)
	}

	b.WriteString("\n## Labels\n")
	for _, label := range sortedByName(snap.Labels, func(v workspace.LabelSummary) (string, string) { return v.Name, v.ID }) {
		fmt.Fprintf(&b, "- **%s** (Color: %s, ID: `%s`)\n", label.Name, label.Color, label.ID)
	}

	b.WriteString("\n## Users\n")
	for _, user := range sortedByName(snap.Users, func(v workspace.UserSummary) (string, string) { return v.Name, v.ID }) {
		fmt.Fprintf(&b, "- **%s** (ID: `%s`)\n", user.Name, user.ID)
	}

	return b.String()
}

// sortedByName collects map values ordered by (name, id).
func sortedByName[V any](m map[string]V, key func(V) (name, id string)) []V {
	out := make([]V, 0, len(m))
	for _, v := range m {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool {
		ni, ii := key(out[i])
		nj, ij := key(out[j])
		if ni != nj {
			return ni < nj
		}
		return ii < ij
	})
	return out
}
