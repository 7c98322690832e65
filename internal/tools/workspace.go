package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/roelven/another-planka-mcp/internal/render"
)

// WorkspaceTool handles planka_get_workspace: the full denormalized
// workspace structure in one call, cached for five minutes.
type WorkspaceTool struct {
	deps *Deps
}

// NewWorkspaceTool creates a WorkspaceTool.
func NewWorkspaceTool(deps *Deps) *WorkspaceTool {
	return &WorkspaceTool{deps: deps}
}

// Definition returns the MCP tool definition for planka_get_workspace.
func (t *WorkspaceTool) Definition() mcp.Tool {
	return mcp.NewTool("planka_get_workspace",
		mcp.WithDescription(
			"Get the complete workspace structure in one call: all projects, boards, lists, "+
				"labels, and users with their IDs. Call this FIRST — it provides every ID needed "+
				"for subsequent operations and is cached for 5 minutes.",
		),
		mcp.WithString("response_format",
			mcp.Description("Output format: 'markdown' (human-readable) or 'json' (machine-readable)"),
			mcp.DefaultString(render.FormatMarkdown),
			mcp.Enum(render.FormatValues()...),
		),
	)
}

// Handle processes the planka_get_workspace tool call.
func (t *WorkspaceTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if res := t.deps.checkReady(); res != nil {
		return res, nil
	}
	if err := rejectUnknownArgs(req, "response_format"); err != nil {
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

	var content string
	if format == render.FormatJSON {
		data, err := json.MarshalIndent(snap, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encoding workspace snapshot: %w", err)
		}
		content = string(data)
	} else {
		content = render.WorkspaceMarkdown(snap)
	}

	return mcp.NewToolResultText(render.Truncate(content, render.DefaultResponseLimit)), nil
}
