package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/roelven/another-planka-mcp/internal/planka"
	"github.com/roelven/another-planka-mcp/internal/render"
	"github.com/roelven/another-planka-mcp/internal/workspace"
)

// FindAndGetCardTool handles planka_find_and_get_card: search cards by
// name or description and return full details when exactly one matches.
type FindAndGetCardTool struct {
	deps *Deps
}

// NewFindAndGetCardTool creates a FindAndGetCardTool.
func NewFindAndGetCardTool(deps *Deps) *FindAndGetCardTool {
	return &FindAndGetCardTool{deps: deps}
}

// Definition returns the MCP tool definition for planka_find_and_get_card.
func (t *FindAndGetCardTool) Definition() mcp.Tool {
	return mcp.NewTool("planka_find_and_get_card",
		mcp.WithDescription(
			"Search for cards by name or description text. Returns full details when exactly "+
				"one card matches, otherwise a list of matches to choose from.",
		),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Search text matched against card names and descriptions (case-insensitive)"),
		),
		mcp.WithString("board_id",
			mcp.Description("Restrict the search to one board (searches all boards when omitted)"),
		),
		mcp.WithString("response_format",
			mcp.Description("Output format: 'markdown' or 'json'"),
			mcp.DefaultString(render.FormatMarkdown),
			mcp.Enum(render.FormatValues()...),
		),
	)
}

type cardMatch struct {
	card    planka.Card
	boardID string
}

// Handle processes the planka_find_and_get_card tool call.
func (t *FindAndGetCardTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if res := t.deps.checkReady(); res != nil {
		return res, nil
	}
	if err := rejectUnknownArgs(req, "query", "board_id", "response_format"); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	query, err := requireString(req, "query", maxQueryLen)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	boardID, err := optionalString(req, "board_id", maxIDLen)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	format, err := argEnum(req, "response_format", render.FormatMarkdown, render.FormatValues()...)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	snap, err := t.deps.snapshot(ctx)
	if err != nil {
		return mcp.NewToolResultText(apiErrorText(err)), nil
	}

	boardIDs := make([]string, 0, len(snap.Boards))
	if boardID != "" {
		boardIDs = append(boardIDs, boardID)
	} else {
		for id := range snap.Boards {
			boardIDs = append(boardIDs, id)
		}
	}

	var matches []cardMatch
	for _, id := range boardIDs {
		overview, err := t.deps.boardOverview(ctx, id)
		if err != nil {
			return mcp.NewToolResultText(apiErrorText(err)), nil
		}
		for _, card := range overview.Cards {
			if render.MatchesQuery(card, query) {
				matches = append(matches, cardMatch{card: card, boardID: id})
			}
		}
	}

	switch len(matches) {
	case 0:
		return mcp.NewToolResultText(fmt.Sprintf("No cards found matching query: '%s'", query)), nil
	case 1:
		detail, err := t.deps.cardDetail(ctx, matches[0].card.ID)
		if err != nil {
			return mcp.NewToolResultText(apiErrorText(err)), nil
		}
		content, err := t.renderSingle(detail, snap, format)
		if err != nil {
			return nil, err
		}
		return mcp.NewToolResultText(render.Truncate(content, render.DefaultResponseLimit)), nil
	default:
		return mcp.NewToolResultText(render.Truncate(t.renderMatches(matches, snap), render.DefaultResponseLimit)), nil
	}
}

func (t *FindAndGetCardTool) renderSingle(detail *workspace.CardDetail, snap *workspace.Snapshot, format string) (string, error) {
	if format == render.FormatJSON {
		data, err := json.MarshalIndent(detail, "", "  ")
		if err != nil {
			return "", fmt.Errorf("encoding card: %w", err)
		}
		return string(data), nil
	}
	return render.CardDetailed(detail, cardContext(detail, snap)), nil
}

// renderMatches lists up to 10 matches so the caller can pick one.
func (t *FindAndGetCardTool) renderMatches(matches []cardMatch, snap *workspace.Snapshot) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Found %d matching cards\n\n", len(matches))

	shown := matches
	if len(shown) > 10 {
		shown = shown[:10]
	}
	for _, m := range shown {
		boardName := "Unknown Board"
		if board, ok := snap.Boards[m.boardID]; ok {
			boardName = board.Name
		}
		listName := "Unknown List"
		if list, ok := snap.Lists[m.card.ListID]; ok {
			listName = list.Name
		}
		fmt.Fprintf(&b, "- **%s** (ID: `%s`) - Board: %s, List: %s\n", m.card.Name, m.card.ID, boardName, listName)
	}
	if len(matches) > 10 {
		fmt.Fprintf(&b, "\n... and %d more cards.\n", len(matches)-10)
	}
	b.WriteString("\n**Use planka_get_card with a specific card ID to see full details.**\n")
	return b.String()
}
