// Package tools implements the MCP tool handlers for the Planka
// server.
//
// Each tool is a struct holding the shared Deps, with Definition()
// returning the mcp.Tool schema and Handle() processing the request.
// One file per tool. Validation failures come back as structured tool
// errors; remote failures are converted to user-facing text by
// apiErrorText, the single conversion point.
package tools

import (
	"context"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/roelven/another-planka-mcp/internal/cache"
	"github.com/roelven/another-planka-mcp/internal/planka"
	"github.com/roelven/another-planka-mcp/internal/render"
	"github.com/roelven/another-planka-mcp/internal/workspace"
)

// Deps bundles the collaborators every tool shares: the remote client,
// the tiered cache, and the stderr logger. Constructed once in the
// composition root and injected into each tool.
type Deps struct {
	Client *planka.Client
	Cache  *cache.Cache
	Log    *slog.Logger
}

// checkReady guards against a partially constructed Deps. Returns a
// tool error naming the missing dependency, or nil when ready.
func (d *Deps) checkReady() *mcp.CallToolResult {
	if d == nil || d.Client == nil {
		return mcp.NewToolResultError("Error: Planka API client not initialized.")
	}
	if d.Cache == nil {
		return mcp.NewToolResultError("Error: cache not initialized.")
	}
	return nil
}

// logger returns the configured logger or a discarding fallback.
func (d *Deps) logger() *slog.Logger {
	if d.Log != nil {
		return d.Log
	}
	return slog.New(slog.DiscardHandler)
}

// snapshot returns the workspace snapshot through its cache tier.
func (d *Deps) snapshot(ctx context.Context) (*workspace.Snapshot, error) {
	return d.Cache.Workspace(ctx, func(ctx context.Context) (*workspace.Snapshot, error) {
		return workspace.FetchSnapshot(ctx, d.Client)
	})
}

// boardOverview returns one board overview through its cache tier.
func (d *Deps) boardOverview(ctx context.Context, boardID string) (*workspace.BoardOverview, error) {
	return d.Cache.Board(ctx, boardID, func(ctx context.Context) (*workspace.BoardOverview, error) {
		return workspace.FetchBoardOverview(ctx, d.Client, boardID)
	})
}

// cardDetail returns one enriched card through its cache tier.
func (d *Deps) cardDetail(ctx context.Context, cardID string) (*workspace.CardDetail, error) {
	return d.Cache.Card(ctx, cardID, func(ctx context.Context) (*workspace.CardDetail, error) {
		return workspace.FetchCardDetail(ctx, d.Client, cardID)
	})
}

// boardContext builds the formatter context from a board overview.
func boardContext(o *workspace.BoardOverview) render.Context {
	ctx := render.Context{
		Lists:      make(map[string]string, len(o.Lists)),
		Labels:     make(map[string]string, len(o.Labels)),
		Users:      make(map[string]string, len(o.Users)),
		CardLabels: o.CardLabels,
		BoardName:  o.Board.Name,
	}
	for id, lst := range o.Lists {
		ctx.Lists[id] = lst.Name
	}
	for id, label := range o.Labels {
		ctx.Labels[id] = label.Name
	}
	for id, user := range o.Users {
		ctx.Users[id] = user.Name
	}
	return ctx
}

// snapshotContext builds the formatter context from the snapshot,
// optionally scoped to a board for the board-name header.
func snapshotContext(snap *workspace.Snapshot, boardID string) render.Context {
	ctx := render.Context{
		Lists:      make(map[string]string, len(snap.Lists)),
		Labels:     make(map[string]string, len(snap.Labels)),
		Users:      make(map[string]string, len(snap.Users)),
		CardLabels: snap.CardLabels,
	}
	for id, lst := range snap.Lists {
		ctx.Lists[id] = lst.Name
	}
	for id, label := range snap.Labels {
		ctx.Labels[id] = label.Name
	}
	for id, user := range snap.Users {
		ctx.Users[id] = user.Name
	}
	if board, ok := snap.Boards[boardID]; ok {
		ctx.BoardName = board.Name
	}
	return ctx
}

// cardContext builds the detailed-card context: lists and board name
// from the snapshot, labels/users/membership from the card's own
// sideloaded records when present, snapshot otherwise.
func cardContext(card *workspace.CardDetail, snap *workspace.Snapshot) render.Context {
	ctx := snapshotContext(snap, card.BoardID)

	if len(card.Labels) > 0 {
		ctx.Labels = make(map[string]string, len(card.Labels))
		for _, label := range card.Labels {
			ctx.Labels[label.ID] = label.Name
		}
	}
	if len(card.Users) > 0 {
		ctx.Users = make(map[string]string, len(card.Users))
		for _, user := range card.Users {
			ctx.Users[user.ID] = user.Name
		}
	}
	ctx.CardLabels = card.Membership(snap.CardLabels)
	return ctx
}
