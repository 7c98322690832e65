package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/roelven/another-planka-mcp/internal/planka"
	"github.com/roelven/another-planka-mcp/internal/render"
)

// defaultPosition places new cards and moved cards at the bottom of a
// list. Planka positions are sparse floats spaced by 65535.
const defaultPosition = 65535

// CreateCardTool handles planka_create_card.
type CreateCardTool struct {
	deps *Deps
}

// NewCreateCardTool creates a CreateCardTool.
func NewCreateCardTool(deps *Deps) *CreateCardTool {
	return &CreateCardTool{deps: deps}
}

// Definition returns the MCP tool definition for planka_create_card.
func (t *CreateCardTool) Definition() mcp.Tool {
	return mcp.NewTool("planka_create_card",
		mcp.WithDescription(
			"Create a new card in a list. Use planka_get_workspace to find list IDs.",
		),
		mcp.WithString("list_id",
			mcp.Required(),
			mcp.Description("List to create the card in"),
		),
		mcp.WithString("name",
			mcp.Required(),
			mcp.Description("Card name"),
		),
		mcp.WithString("description",
			mcp.Description("Card description (markdown)"),
		),
		mcp.WithString("due_date",
			mcp.Description("Due date in ISO 8601 format, e.g. 2026-09-15T12:00:00Z"),
		),
		mcp.WithNumber("position",
			mcp.Description("Position within the list (defaults to the bottom)"),
		),
	)
}

// Handle processes the planka_create_card tool call.
func (t *CreateCardTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if res := t.deps.checkReady(); res != nil {
		return res, nil
	}
	if err := rejectUnknownArgs(req, "list_id", "name", "description", "due_date", "position"); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	listID, err := requireString(req, "list_id", maxIDLen)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	name, err := requireString(req, "name", maxNameLen)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	description, err := optionalString(req, "description", maxDescriptionLen)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	dueDate, err := optionalString(req, "due_date", maxShortNameLen)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	position := float64(defaultPosition)
	if p, ok := argFloat(req, "position"); ok {
		position = p
	}

	snap, err := t.deps.snapshot(ctx)
	if err != nil {
		return mcp.NewToolResultText(apiErrorText(err)), nil
	}
	list, ok := snap.Lists[listID]
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf(
			"List ID '%s' not found. Use planka_get_workspace to see valid list IDs.", listID)), nil
	}

	card, err := t.deps.Client.CreateCard(ctx, listID, planka.CreateCardRequest{
		Type:        "project",
		Name:        name,
		Position:    position,
		Description: description,
		DueDate:     dueDate,
	})
	if err != nil {
		return mcp.NewToolResultText(apiErrorText(err)), nil
	}

	t.deps.Cache.InvalidateBoard(list.BoardID)
	t.deps.logger().Info("card created", "card_id", card.ID, "list_id", listID)

	msg := fmt.Sprintf("✓ Created card: **%s** (ID: `%s`)", card.Name, card.ID)
	return mcp.NewToolResultText(render.Truncate(msg, render.DefaultResponseLimit)), nil
}
