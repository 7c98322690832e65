package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/roelven/another-planka-mcp/internal/render"
)

// UpdateCardTool handles planka_update_card: patch one or more card
// fields, including moving the card between lists.
type UpdateCardTool struct {
	deps *Deps
}

// NewUpdateCardTool creates an UpdateCardTool.
func NewUpdateCardTool(deps *Deps) *UpdateCardTool {
	return &UpdateCardTool{deps: deps}
}

// Definition returns the MCP tool definition for planka_update_card.
func (t *UpdateCardTool) Definition() mcp.Tool {
	return mcp.NewTool("planka_update_card",
		mcp.WithDescription(
			"Update a card's name, description, due date, position, or move it to another "+
				"list. Only the fields you pass are changed.",
		),
		mcp.WithString("card_id",
			mcp.Required(),
			mcp.Description("Card to update"),
		),
		mcp.WithString("name",
			mcp.Description("New card name"),
		),
		mcp.WithString("description",
			mcp.Description("New card description (markdown)"),
		),
		mcp.WithString("due_date",
			mcp.Description("New due date in ISO 8601 format, or empty string to clear"),
		),
		mcp.WithString("list_id",
			mcp.Description("Move the card to this list"),
		),
		mcp.WithNumber("position",
			mcp.Description("New position within the list"),
		),
	)
}

// Handle processes the planka_update_card tool call.
func (t *UpdateCardTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if res := t.deps.checkReady(); res != nil {
		return res, nil
	}
	if err := rejectUnknownArgs(req, "card_id", "name", "description", "due_date", "list_id", "position"); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	cardID, err := requireString(req, "card_id", maxIDLen)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	patch := map[string]any{}
	var updated []string

	args := req.GetArguments()
	if _, ok := args["name"]; ok {
		name, err := requireString(req, "name", maxNameLen)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		patch["name"] = name
		updated = append(updated, "name")
	}
	if _, ok := args["description"]; ok {
		description, err := optionalString(req, "description", maxDescriptionLen)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		patch["description"] = description
		updated = append(updated, "description")
	}
	if _, ok := args["due_date"]; ok {
		dueDate, err := optionalString(req, "due_date", maxShortNameLen)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		if dueDate == "" {
			patch["dueDate"] = nil
		} else {
			patch["dueDate"] = dueDate
		}
		updated = append(updated, "due date")
	}
	if _, ok := args["list_id"]; ok {
		listID, err := requireString(req, "list_id", maxIDLen)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		patch["listId"] = listID
		// Moves without an explicit position land at the bottom of
		// the destination list.
		if _, hasPos := args["position"]; !hasPos {
			patch["position"] = float64(defaultPosition)
		}
		updated = append(updated, "list (moved)")
	}
	if p, ok := argFloat(req, "position"); ok {
		patch["position"] = p
		updated = append(updated, "position")
	}

	if len(patch) == 0 {
		return mcp.NewToolResultError(
			"No fields to update. Pass at least one of: name, description, due_date, list_id, position."), nil
	}

	card, err := t.deps.Client.UpdateCard(ctx, cardID, patch)
	if err != nil {
		return mcp.NewToolResultText(apiErrorText(err)), nil
	}

	t.deps.Cache.InvalidateCard(cardID)
	if card.BoardID != "" {
		t.deps.Cache.InvalidateBoard(card.BoardID)
	}
	t.deps.logger().Info("card updated", "card_id", cardID, "fields", updated)

	msg := fmt.Sprintf("✓ Updated card: **%s** (ID: `%s`)\nChanged: %s",
		card.Name, card.ID, strings.Join(updated, ", "))
	return mcp.NewToolResultText(render.Truncate(msg, render.DefaultResponseLimit)), nil
}
