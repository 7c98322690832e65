package cache

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/roelven/another-planka-mcp/internal/planka"
	"github.com/roelven/another-planka-mcp/internal/workspace"
)

// fakeClock returns a controllable now func plus an advance helper.
func fakeClock(start time.Time) (func() time.Time, func(time.Duration)) {
	current := start
	return func() time.Time { return current },
		func(d time.Duration) { current = current.Add(d) }
}

func testConfig() Config {
	return Config{
		WorkspaceTTL:    5 * time.Minute,
		BoardTTL:        3 * time.Minute,
		CardTTL:         1 * time.Minute,
		MaxCardEntries:  5,
		KeepCardEntries: 2,
	}
}

func snapshotFetcher(calls *int) func(context.Context) (*workspace.Snapshot, error) {
	return func(context.Context) (*workspace.Snapshot, error) {
		*calls++
		return &workspace.Snapshot{}, nil
	}
}

func cardFetcher(calls *int, id string) func(context.Context) (*workspace.CardDetail, error) {
	return func(context.Context) (*workspace.CardDetail, error) {
		*calls++
		return &workspace.CardDetail{Card: planka.Card{ID: id}}, nil
	}
}

func TestWorkspace_HitWithinTTL(t *testing.T) {
	c := New(testConfig())
	now, advance := fakeClock(time.Unix(1000, 0))
	c.now = now

	calls := 0
	fetch := snapshotFetcher(&calls)

	if _, err := c.Workspace(context.Background(), fetch); err != nil {
		t.Fatalf("first call: %v", err)
	}
	advance(4 * time.Minute)
	if _, err := c.Workspace(context.Background(), fetch); err != nil {
		t.Fatalf("second call: %v", err)
	}

	if calls != 1 {
		t.Errorf("fetch calls = %d, want 1", calls)
	}
	stats := c.Stats()
	if stats.WorkspaceHits != 1 || stats.WorkspaceMisses != 1 {
		t.Errorf("stats = %+v, want 1 hit / 1 miss", stats)
	}
}

func TestWorkspace_ExpiryIsStrict(t *testing.T) {
	tests := []struct {
		name      string
		age       time.Duration
		wantCalls int
	}{
		{"just under TTL", 5*time.Minute - time.Nanosecond, 1},
		{"exactly TTL", 5 * time.Minute, 2},
		{"past TTL", 5*time.Minute + time.Second, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(testConfig())
			now, advance := fakeClock(time.Unix(1000, 0))
			c.now = now

			calls := 0
			fetch := snapshotFetcher(&calls)

			if _, err := c.Workspace(context.Background(), fetch); err != nil {
				t.Fatalf("first call: %v", err)
			}
			advance(tt.age)
			if _, err := c.Workspace(context.Background(), fetch); err != nil {
				t.Fatalf("second call: %v", err)
			}
			if calls != tt.wantCalls {
				t.Errorf("fetch calls = %d, want %d", calls, tt.wantCalls)
			}
		})
	}
}

func TestWorkspace_FetchFailureStoresNothing(t *testing.T) {
	c := New(testConfig())

	boom := errors.New("boom")
	calls := 0
	failing := func(context.Context) (*workspace.Snapshot, error) {
		calls++
		return nil, boom
	}

	if _, err := c.Workspace(context.Background(), failing); !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}

	// The failed fetch must not have been cached: the next call
	// fetches again.
	if _, err := c.Workspace(context.Background(), failing); !errors.Is(err, boom) {
		t.Fatalf("err = %v, want boom", err)
	}
	if calls != 2 {
		t.Errorf("fetch calls = %d, want 2", calls)
	}
	if got := c.Stats().WorkspaceMisses; got != 2 {
		t.Errorf("misses = %d, want 2", got)
	}
}

func TestInvalidateWorkspace_ForcesRefetch(t *testing.T) {
	c := New(testConfig())

	calls := 0
	fetch := snapshotFetcher(&calls)

	if _, err := c.Workspace(context.Background(), fetch); err != nil {
		t.Fatal(err)
	}
	c.InvalidateWorkspace()
	if _, err := c.Workspace(context.Background(), fetch); err != nil {
		t.Fatal(err)
	}

	if calls != 2 {
		t.Errorf("fetch calls = %d, want 2", calls)
	}
}

func TestBoard_KeysAreIndependent(t *testing.T) {
	c := New(testConfig())

	calls := 0
	fetch := func(context.Context) (*workspace.BoardOverview, error) {
		calls++
		return &workspace.BoardOverview{}, nil
	}

	if _, err := c.Board(context.Background(), "b1", fetch); err != nil {
		t.Fatal(err)
	}
	if _, err := c.Board(context.Background(), "b2", fetch); err != nil {
		t.Fatal(err)
	}
	if _, err := c.Board(context.Background(), "b1", fetch); err != nil {
		t.Fatal(err)
	}

	if calls != 2 {
		t.Errorf("fetch calls = %d, want 2 (one per board)", calls)
	}
	stats := c.Stats()
	if stats.BoardHits != 1 || stats.BoardMisses != 2 {
		t.Errorf("stats = %+v, want 1 hit / 2 misses", stats)
	}
}

func TestInvalidateBoard_OnlyDropsThatBoard(t *testing.T) {
	c := New(testConfig())

	calls := map[string]int{}
	fetchFor := func(id string) func(context.Context) (*workspace.BoardOverview, error) {
		return func(context.Context) (*workspace.BoardOverview, error) {
			calls[id]++
			return &workspace.BoardOverview{}, nil
		}
	}

	for _, id := range []string{"b1", "b2"} {
		if _, err := c.Board(context.Background(), id, fetchFor(id)); err != nil {
			t.Fatal(err)
		}
	}
	c.InvalidateBoard("b1")
	for _, id := range []string{"b1", "b2"} {
		if _, err := c.Board(context.Background(), id, fetchFor(id)); err != nil {
			t.Fatal(err)
		}
	}

	if calls["b1"] != 2 {
		t.Errorf("b1 fetches = %d, want 2", calls["b1"])
	}
	if calls["b2"] != 1 {
		t.Errorf("b2 fetches = %d, want 1", calls["b2"])
	}
}

func TestCard_EvictionKeepsMostRecent(t *testing.T) {
	c := New(testConfig())
	now, advance := fakeClock(time.Unix(1000, 0))
	c.now = now

	// Fill past MaxCardEntries (5); each entry is a minute newer than
	// the last so recency order is unambiguous.
	for i := range 6 {
		id := fmt.Sprintf("card-%d", i)
		calls := 0
		if _, err := c.Card(context.Background(), id, cardFetcher(&calls, id)); err != nil {
			t.Fatal(err)
		}
		advance(time.Minute)
	}

	c.mu.Lock()
	n := len(c.cards)
	_, hasNewest := c.cards["card-5"]
	_, hasSecondNewest := c.cards["card-4"]
	_, hasOldest := c.cards["card-0"]
	c.mu.Unlock()

	if n != 2 {
		t.Fatalf("cards after eviction = %d, want KeepCardEntries (2)", n)
	}
	if !hasNewest || !hasSecondNewest {
		t.Error("eviction should keep the two most recently fetched entries")
	}
	if hasOldest {
		t.Error("oldest entry should have been evicted")
	}
}

func TestCard_NoEvictionBelowCap(t *testing.T) {
	c := New(testConfig())

	for i := range 5 {
		id := fmt.Sprintf("card-%d", i)
		calls := 0
		if _, err := c.Card(context.Background(), id, cardFetcher(&calls, id)); err != nil {
			t.Fatal(err)
		}
	}

	c.mu.Lock()
	n := len(c.cards)
	c.mu.Unlock()
	if n != 5 {
		t.Errorf("cards = %d, want all 5 retained at the cap", n)
	}
}

func TestCard_InvalidateThenRefetch(t *testing.T) {
	c := New(testConfig())

	calls := 0
	fetch := cardFetcher(&calls, "c1")

	if _, err := c.Card(context.Background(), "c1", fetch); err != nil {
		t.Fatal(err)
	}
	if _, err := c.Card(context.Background(), "c1", fetch); err != nil {
		t.Fatal(err)
	}
	c.InvalidateCard("c1")
	if _, err := c.Card(context.Background(), "c1", fetch); err != nil {
		t.Fatal(err)
	}

	if calls != 2 {
		t.Errorf("fetch calls = %d, want 2", calls)
	}
	stats := c.Stats()
	if stats.CardHits != 1 || stats.CardMisses != 2 {
		t.Errorf("stats = %+v, want 1 hit / 2 misses", stats)
	}
}

func TestStats_StartsZeroed(t *testing.T) {
	c := New(DefaultConfig())
	if got := c.Stats(); got != (Stats{}) {
		t.Errorf("fresh cache stats = %+v, want all zero", got)
	}
}
