package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/roelven/another-planka-mcp/internal/planka"
	"github.com/roelven/another-planka-mcp/internal/render"
	"github.com/roelven/another-planka-mcp/internal/workspace"
)

// ListCardsTool handles planka_list_cards: board-wide or per-list card
// listings with label filtering, pagination, and detail levels.
type ListCardsTool struct {
	deps *Deps
}

// NewListCardsTool creates a ListCardsTool.
func NewListCardsTool(deps *Deps) *ListCardsTool {
	return &ListCardsTool{deps: deps}
}

// Definition returns the MCP tool definition for planka_list_cards.
func (t *ListCardsTool) Definition() mcp.Tool {
	return mcp.NewTool("planka_list_cards",
		mcp.WithDescription(
			"List cards from a board with filtering and detail levels. Omit list_id to get "+
				"cards from ALL lists. Use detail_level='preview' when browsing — it is the "+
				"cheapest rendering by far.",
		),
		mcp.WithString("board_id",
			mcp.Required(),
			mcp.Description("Board ID to list cards from"),
		),
		mcp.WithString("list_id",
			mcp.Description("Optional: filter to a specific list ID"),
		),
		mcp.WithString("label_filter",
			mcp.Description("Optional: filter cards by label name (case-insensitive partial match)"),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of cards to return (1-100, default 50)"),
		),
		mcp.WithNumber("offset",
			mcp.Description("Number of cards to skip for pagination (default 0)"),
		),
		mcp.WithString("response_format",
			mcp.Description("Output format: 'markdown' or 'json'"),
			mcp.DefaultString(render.FormatMarkdown),
			mcp.Enum(render.FormatValues()...),
		),
		mcp.WithString("detail_level",
			mcp.Description("Detail level per card: 'preview' (minimal), 'summary' (standard), 'detailed' (complete)"),
			mcp.DefaultString(render.DetailPreview),
			mcp.Enum(render.DetailLevelValues()...),
		),
		mcp.WithString("context_level",
			mcp.Description("Context level: 'minimal', 'standard', or 'full'"),
			mcp.DefaultString(render.ContextStandard),
			mcp.Enum(render.ContextLevelValues()...),
		),
	)
}

// Handle processes the planka_list_cards tool call.
func (t *ListCardsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if res := t.deps.checkReady(); res != nil {
		return res, nil
	}
	if err := rejectUnknownArgs(req,
		"board_id", "list_id", "label_filter", "limit", "offset",
		"response_format", "detail_level", "context_level"); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	boardID, err := requireString(req, "board_id", maxIDLen)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	listID, err := optionalString(req, "list_id", maxIDLen)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	labelFilter, err := optionalString(req, "label_filter", maxShortNameLen)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	limit, err := argLimit(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	offset, err := argOffset(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	format, err := argEnum(req, "response_format", render.FormatMarkdown, render.FormatValues()...)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	detailLevel, err := argEnum(req, "detail_level", render.DetailPreview, render.DetailLevelValues()...)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if _, err := argEnum(req, "context_level", render.ContextStandard, render.ContextLevelValues()...); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	overview, err := t.deps.boardOverview(ctx, boardID)
	if err != nil {
		return mcp.NewToolResultText(apiErrorText(err)), nil
	}
	renderCtx := boardContext(overview)

	cards := overview.Cards
	if listID != "" {
		filtered := make([]planka.Card, 0, len(cards))
		for _, c := range cards {
			if c.ListID == listID {
				filtered = append(filtered, c)
			}
		}
		cards = filtered
	}
	if labelFilter != "" {
		filtered := make([]planka.Card, 0, len(cards))
		for _, c := range cards {
			if render.MatchesLabel(c.ID, labelFilter, renderCtx) {
				filtered = append(filtered, c)
			}
		}
		cards = filtered
	}

	page := render.Paginate(cards, offset, limit)

	var content string
	if format == render.FormatJSON {
		payload := struct {
			Board      planka.Board             `json:"board"`
			Cards      []planka.Card            `json:"cards"`
			Pagination render.Page[planka.Card] `json:"pagination"`
		}{Board: overview.Board, Cards: page.Items, Pagination: page}
		data, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encoding card list: %w", err)
		}
		content = string(data)
	} else {
		wrapped := make([]*workspace.CardDetail, len(page.Items))
		for i, c := range page.Items {
			wrapped[i] = render.WrapCard(c)
		}
		content = render.CardList(wrapped, renderCtx, detailLevel, page.Total)
		if page.HasMore {
			content += fmt.Sprintf(
				"\n\n---\n**Pagination**: Showing %d of %d cards. Use offset=%d to see more.\n",
				page.Count, page.Total, *page.NextOffset)
		}
	}

	return mcp.NewToolResultText(render.Truncate(content, render.DefaultResponseLimit)), nil
}
