package workspace

import (
	"context"

	"github.com/roelven/another-planka-mcp/internal/planka"
)

// BoardOverview is one board denormalized from a single board-detail
// call: the board record, lookup maps for its lists/labels/users, the
// full card slice, and the card→labels membership map.
type BoardOverview struct {
	Board      planka.Board            `json:"board"`
	Lists      map[string]planka.List  `json:"lists"`
	Labels     map[string]planka.Label `json:"labels"`
	Users      map[string]planka.User  `json:"users"`
	Cards      []planka.Card           `json:"cards"`
	CardLabels map[string][]string     `json:"card_labels"`
}

// FetchBoardOverview fetches one board and materializes its sideloaded
// records into lookup maps.
func FetchBoardOverview(ctx context.Context, client *planka.Client, boardID string) (*BoardOverview, error) {
	board, included, err := client.FetchBoard(ctx, boardID)
	if err != nil {
		return nil, err
	}

	overview := &BoardOverview{
		Board:      board,
		Lists:      make(map[string]planka.List, len(included.Lists)),
		Labels:     make(map[string]planka.Label, len(included.Labels)),
		Users:      make(map[string]planka.User, len(included.Users)),
		Cards:      included.Cards,
		CardLabels: make(map[string][]string),
	}
	if overview.Cards == nil {
		overview.Cards = []planka.Card{}
	}

	for _, lst := range included.Lists {
		overview.Lists[lst.ID] = lst
	}
	for _, label := range included.Labels {
		overview.Labels[label.ID] = label
	}
	for _, user := range included.Users {
		overview.Users[user.ID] = user
	}
	mergeCardLabels(overview.CardLabels, included.CardLabels)

	return overview, nil
}
