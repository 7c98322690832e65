package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/roelven/another-planka-mcp/internal/render"
	"github.com/roelven/another-planka-mcp/internal/workspace"
)

// AddCardLabelTool handles planka_add_card_label.
type AddCardLabelTool struct {
	deps *Deps
}

// NewAddCardLabelTool creates an AddCardLabelTool.
func NewAddCardLabelTool(deps *Deps) *AddCardLabelTool {
	return &AddCardLabelTool{deps: deps}
}

// Definition returns the MCP tool definition for planka_add_card_label.
func (t *AddCardLabelTool) Definition() mcp.Tool {
	return mcp.NewTool("planka_add_card_label",
		mcp.WithDescription(
			"Assign an existing board label to a card. Use planka_get_workspace to find "+
				"label IDs.",
		),
		mcp.WithString("card_id",
			mcp.Required(),
			mcp.Description("Card to label"),
		),
		mcp.WithString("label_id",
			mcp.Required(),
			mcp.Description("Label to assign"),
		),
	)
}

// Handle processes the planka_add_card_label tool call.
func (t *AddCardLabelTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if res := t.deps.checkReady(); res != nil {
		return res, nil
	}
	if err := rejectUnknownArgs(req, "card_id", "label_id"); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	cardID, err := requireString(req, "card_id", maxIDLen)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	labelID, err := requireString(req, "label_id", maxIDLen)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if err := t.deps.Client.AddCardLabel(ctx, cardID, labelID); err != nil {
		return mcp.NewToolResultText(apiErrorText(err)), nil
	}

	label := invalidateForLabel(ctx, t.deps, cardID, labelID)
	t.deps.logger().Info("label added", "card_id", cardID, "label_id", labelID)

	msg := fmt.Sprintf("✓ Added label **%s** to card (Label ID: `%s`)", label, labelID)
	return mcp.NewToolResultText(render.Truncate(msg, render.DefaultResponseLimit)), nil
}

// invalidateForLabel drops the card entry and, when the label's board is
// known from the snapshot, that board's overview. Returns the label's
// display name, falling back to the ID.
func invalidateForLabel(ctx context.Context, deps *Deps, cardID, labelID string) string {
	deps.Cache.InvalidateCard(cardID)

	name := labelID
	var snap *workspace.Snapshot
	if s, err := deps.snapshot(ctx); err == nil {
		snap = s
	}
	if snap != nil {
		if label, ok := snap.Labels[labelID]; ok {
			name = label.Name
			deps.Cache.InvalidateBoard(label.BoardID)
		}
	}
	return name
}

// RemoveCardLabelTool handles planka_remove_card_label.
type RemoveCardLabelTool struct {
	deps *Deps
}

// NewRemoveCardLabelTool creates a RemoveCardLabelTool.
func NewRemoveCardLabelTool(deps *Deps) *RemoveCardLabelTool {
	return &RemoveCardLabelTool{deps: deps}
}

// Definition returns the MCP tool definition for planka_remove_card_label.
func (t *RemoveCardLabelTool) Definition() mcp.Tool {
	return mcp.NewTool("planka_remove_card_label",
		mcp.WithDescription(
			"Remove a label assignment from a card.",
		),
		mcp.WithString("card_id",
			mcp.Required(),
			mcp.Description("Card to remove the label from"),
		),
		mcp.WithString("label_id",
			mcp.Required(),
			mcp.Description("Label to remove"),
		),
	)
}

// Handle processes the planka_remove_card_label tool call.
func (t *RemoveCardLabelTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if res := t.deps.checkReady(); res != nil {
		return res, nil
	}
	if err := rejectUnknownArgs(req, "card_id", "label_id"); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	cardID, err := requireString(req, "card_id", maxIDLen)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	labelID, err := requireString(req, "label_id", maxIDLen)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if err := t.deps.Client.RemoveCardLabel(ctx, cardID, labelID); err != nil {
		return mcp.NewToolResultText(apiErrorText(err)), nil
	}

	label := invalidateForLabel(ctx, t.deps, cardID, labelID)
	t.deps.logger().Info("label removed", "card_id", cardID, "label_id", labelID)

	msg := fmt.Sprintf("✓ Removed label **%s** from card (Label ID: `%s`)", label, labelID)
	return mcp.NewToolResultText(render.Truncate(msg, render.DefaultResponseLimit)), nil
}
