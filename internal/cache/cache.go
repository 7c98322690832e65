// Package cache implements the three-tier TTL cache that decides how
// much remote state is reused between tool calls: one singleton
// workspace snapshot, per-board overviews, and per-card details, each
// with its own TTL and hit/miss counters.
//
// Expiry is checked lazily on read — there is no background sweeper.
// A failed fetch stores nothing, so the next call retries the fetch
// rather than serving a stale value. Fetches run outside the lock:
// concurrent misses for the same key may fetch redundantly, which is
// an accepted tradeoff at the expected single-digit concurrency.
package cache

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/roelven/another-planka-mcp/internal/workspace"
)

// Config holds the per-tier TTLs and the card-tier size cap.
type Config struct {
	// WorkspaceTTL bounds the singleton snapshot's age.
	WorkspaceTTL time.Duration

	// BoardTTL bounds each board overview's age.
	BoardTTL time.Duration

	// CardTTL bounds each card detail's age.
	CardTTL time.Duration

	// MaxCardEntries triggers card-tier eviction when exceeded.
	MaxCardEntries int

	// KeepCardEntries is how many most-recently-fetched card entries
	// survive an eviction pass.
	KeepCardEntries int
}

// DefaultConfig returns the production tier parameters.
func DefaultConfig() Config {
	return Config{
		WorkspaceTTL:    5 * time.Minute,
		BoardTTL:        3 * time.Minute,
		CardTTL:         1 * time.Minute,
		MaxCardEntries:  300,
		KeepCardEntries: 100,
	}
}

// entry is a single cached payload with its fetch time and TTL.
type entry[T any] struct {
	data      T
	fetchedAt time.Time
	ttl       time.Duration
}

// valid reports whether the entry is still within its TTL. The bound
// is strict: an entry exactly ttl old is expired.
func (e *entry[T]) valid(now time.Time) bool {
	return now.Sub(e.fetchedAt) < e.ttl
}

// Stats holds the per-tier hit/miss counters.
type Stats struct {
	WorkspaceHits   int `json:"workspace_hits"`
	WorkspaceMisses int `json:"workspace_misses"`
	BoardHits       int `json:"board_overview_hits"`
	BoardMisses     int `json:"board_overview_misses"`
	CardHits        int `json:"card_hits"`
	CardMisses      int `json:"card_misses"`
}

// Cache is the three-tier store. A single mutex guards each tier's
// read-modify-write; the fetch functions run unlocked.
type Cache struct {
	mu  sync.Mutex
	cfg Config

	workspace *entry[*workspace.Snapshot]
	boards    map[string]*entry[*workspace.BoardOverview]
	cards     map[string]*entry[*workspace.CardDetail]

	stats Stats

	// now is swapped out by tests to control entry age.
	now func() time.Time
}

// New creates an empty cache with the given tier parameters.
func New(cfg Config) *Cache {
	return &Cache{
		cfg:    cfg,
		boards: make(map[string]*entry[*workspace.BoardOverview]),
		cards:  make(map[string]*entry[*workspace.CardDetail]),
		now:    time.Now,
	}
}

// Workspace returns the cached snapshot when valid, otherwise calls
// fetch and stores the result. Fetch failures propagate unchanged and
// leave the tier untouched.
func (c *Cache) Workspace(ctx context.Context, fetch func(context.Context) (*workspace.Snapshot, error)) (*workspace.Snapshot, error) {
	c.mu.Lock()
	if c.workspace != nil && c.workspace.valid(c.now()) {
		c.stats.WorkspaceHits++
		data := c.workspace.data
		c.mu.Unlock()
		return data, nil
	}
	c.stats.WorkspaceMisses++
	c.mu.Unlock()

	data, err := fetch(ctx)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.workspace = &entry[*workspace.Snapshot]{data: data, fetchedAt: c.now(), ttl: c.cfg.WorkspaceTTL}
	c.mu.Unlock()
	return data, nil
}

// Board returns the cached overview for boardID when valid, otherwise
// calls fetch and stores the result.
func (c *Cache) Board(ctx context.Context, boardID string, fetch func(context.Context) (*workspace.BoardOverview, error)) (*workspace.BoardOverview, error) {
	c.mu.Lock()
	if e, ok := c.boards[boardID]; ok && e.valid(c.now()) {
		c.stats.BoardHits++
		data := e.data
		c.mu.Unlock()
		return data, nil
	}
	c.stats.BoardMisses++
	c.mu.Unlock()

	data, err := fetch(ctx)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.boards[boardID] = &entry[*workspace.BoardOverview]{data: data, fetchedAt: c.now(), ttl: c.cfg.BoardTTL}
	c.mu.Unlock()
	return data, nil
}

// Card returns the cached detail for cardID when valid, otherwise
// calls fetch and stores the result. Storing may trigger an eviction
// pass on the card tier.
func (c *Cache) Card(ctx context.Context, cardID string, fetch func(context.Context) (*workspace.CardDetail, error)) (*workspace.CardDetail, error) {
	c.mu.Lock()
	if e, ok := c.cards[cardID]; ok && e.valid(c.now()) {
		c.stats.CardHits++
		data := e.data
		c.mu.Unlock()
		return data, nil
	}
	c.stats.CardMisses++
	c.mu.Unlock()

	data, err := fetch(ctx)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.cards[cardID] = &entry[*workspace.CardDetail]{data: data, fetchedAt: c.now(), ttl: c.cfg.CardTTL}
	c.evictCardsLocked()
	c.mu.Unlock()
	return data, nil
}

// evictCardsLocked trims the card tier to KeepCardEntries entries,
// keeping the most recently fetched, once the count exceeds
// MaxCardEntries. Caller holds c.mu.
func (c *Cache) evictCardsLocked() {
	if c.cfg.MaxCardEntries <= 0 || len(c.cards) <= c.cfg.MaxCardEntries {
		return
	}

	type aged struct {
		id        string
		fetchedAt time.Time
	}
	all := make([]aged, 0, len(c.cards))
	for id, e := range c.cards {
		all = append(all, aged{id: id, fetchedAt: e.fetchedAt})
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].fetchedAt.After(all[j].fetchedAt)
	})

	keep := c.cfg.KeepCardEntries
	if keep < 0 {
		keep = 0
	}
	for _, a := range all[min(keep, len(all)):] {
		delete(c.cards, a.id)
	}
}

// InvalidateWorkspace drops the snapshot entry. Called after mutations
// that change workspace structure.
func (c *Cache) InvalidateWorkspace() {
	c.mu.Lock()
	c.workspace = nil
	c.mu.Unlock()
}

// InvalidateBoard drops one board overview entry.
func (c *Cache) InvalidateBoard(boardID string) {
	c.mu.Lock()
	delete(c.boards, boardID)
	c.mu.Unlock()
}

// InvalidateCard drops one card detail entry.
func (c *Cache) InvalidateCard(cardID string) {
	c.mu.Lock()
	delete(c.cards, cardID)
	c.mu.Unlock()
}

// Stats returns a copy of the hit/miss counters.
func (c *Cache) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stats
}
