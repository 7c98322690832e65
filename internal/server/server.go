// Package server wires the Planka client, cache, and tools into an MCP
// server instance.
//
// This is the composition root: it creates concrete implementations and
// injects them into the tools that depend on them. No business logic
// lives here, only wiring.
package server

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mark3labs/mcp-go/server"

	"github.com/roelven/another-planka-mcp/internal/cache"
	"github.com/roelven/another-planka-mcp/internal/config"
	"github.com/roelven/another-planka-mcp/internal/planka"
	"github.com/roelven/another-planka-mcp/internal/tools"
)

// Version is set at build time via ldflags.
var Version = "dev"

// New authenticates against the Planka instance and returns a fully
// configured MCP server with all tools registered.
func New(ctx context.Context, cfg config.Config, log *slog.Logger) (*server.MCPServer, error) {
	token, err := planka.Authenticate(ctx, cfg.BaseURL, cfg.Credentials, cfg.Timeout)
	if err != nil {
		return nil, fmt.Errorf("authenticating: %w", err)
	}

	client := planka.NewClient(cfg.BaseURL, token, cfg.Timeout)
	deps := &tools.Deps{
		Client: client,
		Cache:  cache.New(cache.DefaultConfig()),
		Log:    log,
	}

	s := server.NewMCPServer(
		"planka-mcp",
		Version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(serverInstructions()),
	)

	// --- Read tools ---

	workspaceTool := tools.NewWorkspaceTool(deps)
	s.AddTool(workspaceTool.Definition(), workspaceTool.Handle)

	listCardsTool := tools.NewListCardsTool(deps)
	s.AddTool(listCardsTool.Definition(), listCardsTool.Handle)

	getCardTool := tools.NewGetCardTool(deps)
	s.AddTool(getCardTool.Definition(), getCardTool.Handle)

	findCardTool := tools.NewFindAndGetCardTool(deps)
	s.AddTool(findCardTool.Definition(), findCardTool.Handle)

	// --- Mutation tools ---

	createCardTool := tools.NewCreateCardTool(deps)
	s.AddTool(createCardTool.Definition(), createCardTool.Handle)

	updateCardTool := tools.NewUpdateCardTool(deps)
	s.AddTool(updateCardTool.Definition(), updateCardTool.Handle)

	addTaskTool := tools.NewAddTaskTool(deps)
	s.AddTool(addTaskTool.Definition(), addTaskTool.Handle)

	updateTaskTool := tools.NewUpdateTaskTool(deps)
	s.AddTool(updateTaskTool.Definition(), updateTaskTool.Handle)

	addLabelTool := tools.NewAddCardLabelTool(deps)
	s.AddTool(addLabelTool.Definition(), addLabelTool.Handle)

	removeLabelTool := tools.NewRemoveCardLabelTool(deps)
	s.AddTool(removeLabelTool.Definition(), removeLabelTool.Handle)

	log.Info("server configured", "base_url", cfg.BaseURL, "tools", 10)
	return s, nil
}

// serverInstructions returns the system instructions that tell the AI
// how to use the Planka tools without wasting context.
func serverInstructions() string {
	return `You have access to a Planka kanban board via MCP tools.

## Workflow
1. Call planka_get_workspace FIRST to learn the board, list, label, and
   user IDs. All other tools take these IDs as parameters.
2. Use planka_list_cards to browse a board. Start with the default
   detail_level (preview) and only switch to summary or detailed when
   you need more per-card information.
3. Use planka_get_card for one card's full details (tasks, comments,
   attachments).
4. Use planka_find_and_get_card when you know a card's name but not its
   ID.

## Token efficiency
- Responses are capped at 25000 characters. When a response is
  truncated, narrow it: filter by list_id or label_filter, paginate
  with offset, or drop to detail_level=preview.
- Reads are cached (workspace 5 min, boards 3 min, cards 1 min).
  Mutations through these tools invalidate the affected entries, so a
  read right after a write reflects the change.

## Mutations
- planka_create_card needs a list_id from the workspace overview.
- planka_update_card changes only the fields you pass; pass list_id to
  move a card between lists.
- planka_add_task creates the card's task list when none exists.
- Labels must already exist on the board; these tools assign and
  remove them, they do not create labels.`
}
