package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/roelven/another-planka-mcp/internal/render"
)

// GetCardTool handles planka_get_card: one card with its tasks,
// comments, attachments, members, and labels.
type GetCardTool struct {
	deps *Deps
}

// NewGetCardTool creates a GetCardTool.
func NewGetCardTool(deps *Deps) *GetCardTool {
	return &GetCardTool{deps: deps}
}

// Definition returns the MCP tool definition for planka_get_card.
func (t *GetCardTool) Definition() mcp.Tool {
	return mcp.NewTool("planka_get_card",
		mcp.WithDescription(
			"Get complete details for one card: tasks, comments, attachments, members, and "+
				"labels. Cached for 1 minute.",
		),
		mcp.WithString("card_id",
			mcp.Required(),
			mcp.Description("Card ID to retrieve"),
		),
		mcp.WithString("response_format",
			mcp.Description("Output format: 'markdown' or 'json'"),
			mcp.DefaultString(render.FormatMarkdown),
			mcp.Enum(render.FormatValues()...),
		),
		mcp.WithString("context_level",
			mcp.Description("Context level: 'minimal', 'standard', or 'full'"),
			mcp.DefaultString(render.ContextStandard),
			mcp.Enum(render.ContextLevelValues()...),
		),
	)
}

// Handle processes the planka_get_card tool call.
func (t *GetCardTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if res := t.deps.checkReady(); res != nil {
		return res, nil
	}
	if err := rejectUnknownArgs(req, "card_id", "response_format", "context_level"); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	cardID, err := requireString(req, "card_id", maxIDLen)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	format, err := argEnum(req, "response_format", render.FormatMarkdown, render.FormatValues()...)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if _, err := argEnum(req, "context_level", render.ContextStandard, render.ContextLevelValues()...); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	card, err := t.deps.cardDetail(ctx, cardID)
	if err != nil {
		return mcp.NewToolResultText(apiErrorText(err)), nil
	}

	var content string
	if format == render.FormatJSON {
		data, err := json.MarshalIndent(card, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encoding card: %w", err)
		}
		content = string(data)
	} else {
		snap, err := t.deps.snapshot(ctx)
		if err != nil {
			return mcp.NewToolResultText(apiErrorText(err)), nil
		}
		content = render.CardDetailed(card, cardContext(card, snap))
	}

	return mcp.NewToolResultText(render.Truncate(content, render.DefaultResponseLimit)), nil
}
