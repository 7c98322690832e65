// Package workspace assembles denormalized views of the Planka data
// model. The remote API exposes projects, boards, lists, labels, and
// the card↔label join table as separate normalized resources; the
// aggregators here compose them into the shapes the tools consume: a
// global Snapshot, a per-board BoardOverview, and a per-card
// CardDetail.
package workspace

import (
	"context"

	"github.com/roelven/another-planka-mcp/internal/planka"
)

// ProjectSummary is a project entry in the snapshot.
type ProjectSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// BoardSummary is a board tagged with its owning project's name.
type BoardSummary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	ProjectID   string `json:"projectId"`
	ProjectName string `json:"project_name"`
}

// ListSummary is a list tagged with its owning board's name.
type ListSummary struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	BoardID   string  `json:"boardId"`
	BoardName string  `json:"board_name"`
	Position  float64 `json:"position"`
}

// LabelSummary is a label tagged with its owning board's name.
type LabelSummary struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Color     string `json:"color"`
	BoardID   string `json:"boardId"`
	BoardName string `json:"board_name"`
}

// UserSummary is a workspace member.
type UserSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Snapshot is the denormalized workspace structure: every board, list,
// label, and user reachable from the project tree, plus the card→label
// membership map. Every entry in the maps was produced by traversing
// Projects — there are no orphaned references.
type Snapshot struct {
	Projects   []ProjectSummary        `json:"projects"`
	Boards     map[string]BoardSummary `json:"boards"`
	Lists      map[string]ListSummary  `json:"lists"`
	Labels     map[string]LabelSummary `json:"labels"`
	Users      map[string]UserSummary  `json:"users"`
	CardLabels map[string][]string     `json:"card_labels"`
}

// FetchSnapshot walks the full project tree: all projects, all users,
// then per project its boards and per board the board detail that
// sideloads lists, labels, and card-label links. O(projects × boards)
// remote calls — acceptable because the result is cached for minutes.
// Any remote failure aborts the aggregation; no partial snapshot is
// ever returned.
func FetchSnapshot(ctx context.Context, client *planka.Client) (*Snapshot, error) {
	projects, err := client.FetchProjects(ctx)
	if err != nil {
		return nil, err
	}

	users, err := client.FetchUsers(ctx)
	if err != nil {
		return nil, err
	}

	snap := &Snapshot{
		Projects:   make([]ProjectSummary, 0, len(projects)),
		Boards:     make(map[string]BoardSummary),
		Lists:      make(map[string]ListSummary),
		Labels:     make(map[string]LabelSummary),
		Users:      make(map[string]UserSummary, len(users)),
		CardLabels: make(map[string][]string),
	}

	for _, u := range users {
		snap.Users[u.ID] = UserSummary{ID: u.ID, Name: u.Name}
	}

	for _, project := range projects {
		snap.Projects = append(snap.Projects, ProjectSummary{ID: project.ID, Name: project.Name})

		boards, err := client.FetchProjectBoards(ctx, project.ID)
		if err != nil {
			return nil, err
		}

		for _, summary := range boards {
			board, included, err := client.FetchBoard(ctx, summary.ID)
			if err != nil {
				return nil, err
			}

			snap.Boards[board.ID] = BoardSummary{
				ID:          board.ID,
				Name:        board.Name,
				ProjectID:   project.ID,
				ProjectName: project.Name,
			}

			for _, lst := range included.Lists {
				snap.Lists[lst.ID] = ListSummary{
					ID:        lst.ID,
					Name:      lst.Name,
					BoardID:   board.ID,
					BoardName: board.Name,
					Position:  lst.Position,
				}
			}

			for _, label := range included.Labels {
				snap.Labels[label.ID] = LabelSummary{
					ID:        label.ID,
					Name:      label.Name,
					Color:     label.Color,
					BoardID:   board.ID,
					BoardName: board.Name,
				}
			}

			mergeCardLabels(snap.CardLabels, included.CardLabels)
		}
	}

	return snap, nil
}

// mergeCardLabels materializes join-table rows into the card→labels map.
func mergeCardLabels(dst map[string][]string, rows []planka.CardLabel) {
	for _, row := range rows {
		if row.CardID == "" || row.LabelID == "" {
			continue
		}
		dst[row.CardID] = append(dst[row.CardID], row.LabelID)
	}
}
