package workspace

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/roelven/another-planka-mcp/internal/planka"
)

// fakePlanka serves a two-board workspace: Sprint and Roadmap under one
// project, with lists, labels, cards, and card-label links on Sprint.
func fakePlanka(t *testing.T) *planka.Client {
	t.Helper()
	mux := http.NewServeMux()
	respond := func(body string) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(body))
		}
	}

	mux.HandleFunc("/api/projects", respond(`{"items": [{"id": "p1", "name": "Platform"}]}`))
	mux.HandleFunc("/api/users", respond(`{"items": [{"id": "u1", "name": "Alice"}, {"id": "u2", "name": "Bob"}]}`))
	mux.HandleFunc("/api/projects/p1", respond(`{
		"item": {"id": "p1", "name": "Platform"},
		"included": {"boards": [{"id": "b1", "name": "Sprint"}, {"id": "b2", "name": "Roadmap"}]}
	}`))
	mux.HandleFunc("/api/boards/b1", respond(`{
		"item": {"id": "b1", "name": "Sprint", "projectId": "p1"},
		"included": {
			"lists": [
				{"id": "l1", "name": "To Do", "boardId": "b1", "position": 65535},
				{"id": "l2", "name": "Done", "boardId": "b1", "position": 131070}
			],
			"labels": [{"id": "lb1", "name": "Bug", "color": "berry-red", "boardId": "b1"}],
			"cards": [
				{"id": "c1", "name": "Fix login", "listId": "l1", "boardId": "b1"},
				{"id": "c2", "name": "Ship release", "listId": "l2", "boardId": "b1"}
			],
			"cardLabels": [{"cardId": "c1", "labelId": "lb1"}],
			"users": [{"id": "u1", "name": "Alice"}]
		}
	}`))
	mux.HandleFunc("/api/boards/b2", respond(`{
		"item": {"id": "b2", "name": "Roadmap", "projectId": "p1"},
		"included": {
			"lists": [{"id": "l3", "name": "Later", "boardId": "b2", "position": 65535}],
			"labels": [],
			"cards": [],
			"cardLabels": [],
			"users": []
		}
	}`))

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return planka.NewClient(srv.URL, "tok", 5*time.Second)
}

func TestFetchSnapshot_AggregatesProjectTree(t *testing.T) {
	client := fakePlanka(t)

	snap, err := FetchSnapshot(context.Background(), client)
	if err != nil {
		t.Fatalf("FetchSnapshot: %v", err)
	}

	if len(snap.Projects) != 1 || snap.Projects[0].Name != "Platform" {
		t.Errorf("projects = %+v", snap.Projects)
	}
	if len(snap.Boards) != 2 {
		t.Errorf("boards = %d, want 2", len(snap.Boards))
	}
	if snap.Boards["b1"].ProjectName != "Platform" {
		t.Errorf("board b1 should carry its project name, got %+v", snap.Boards["b1"])
	}
	if len(snap.Lists) != 3 {
		t.Errorf("lists = %d, want 3 across both boards", len(snap.Lists))
	}
	if snap.Lists["l1"].BoardName != "Sprint" {
		t.Errorf("list l1 should carry its board name, got %+v", snap.Lists["l1"])
	}
	if snap.Labels["lb1"].Color != "berry-red" {
		t.Errorf("label lb1 = %+v", snap.Labels["lb1"])
	}
	if len(snap.Users) != 2 {
		t.Errorf("users = %d, want 2", len(snap.Users))
	}
	if got := snap.CardLabels["c1"]; len(got) != 1 || got[0] != "lb1" {
		t.Errorf("card c1 labels = %v, want [lb1]", got)
	}
	if _, ok := snap.CardLabels["c2"]; ok {
		t.Error("unlabeled card should have no membership entry")
	}
}

func TestFetchSnapshot_AbortsOnBoardFailure(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/projects", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"items": [{"id": "p1", "name": "Platform"}]}`))
	})
	mux.HandleFunc("/api/users", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"items": []}`))
	})
	mux.HandleFunc("/api/projects/p1", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"item": {"id": "p1"}, "included": {"boards": [{"id": "b1"}]}}`))
	})
	mux.HandleFunc("/api/boards/b1", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	client := planka.NewClient(srv.URL, "tok", 5*time.Second)
	snap, err := FetchSnapshot(context.Background(), client)

	if snap != nil {
		t.Error("no partial snapshot on failure")
	}
	var statusErr *planka.StatusError
	if !errors.As(err, &statusErr) {
		t.Errorf("err = %v, want StatusError", err)
	}
}

func TestFetchBoardOverview(t *testing.T) {
	client := fakePlanka(t)

	overview, err := FetchBoardOverview(context.Background(), client, "b1")
	if err != nil {
		t.Fatalf("FetchBoardOverview: %v", err)
	}

	if overview.Board.Name != "Sprint" {
		t.Errorf("board = %+v", overview.Board)
	}
	if len(overview.Cards) != 2 {
		t.Errorf("cards = %d, want 2", len(overview.Cards))
	}
	if overview.Lists["l2"].Name != "Done" {
		t.Errorf("lists = %+v", overview.Lists)
	}
	if got := overview.CardLabels["c1"]; len(got) != 1 || got[0] != "lb1" {
		t.Errorf("card c1 labels = %v", got)
	}
}

func TestFetchBoardOverview_EmptyBoardHasNonNilCards(t *testing.T) {
	client := fakePlanka(t)

	overview, err := FetchBoardOverview(context.Background(), client, "b2")
	if err != nil {
		t.Fatalf("FetchBoardOverview: %v", err)
	}
	if overview.Cards == nil {
		t.Error("cards should be an empty slice, not nil")
	}
	if len(overview.Cards) != 0 {
		t.Errorf("cards = %d, want 0", len(overview.Cards))
	}
}

func TestGroupTasks(t *testing.T) {
	lists := []planka.TaskList{
		{ID: "tl1", Name: "Checklist"},
		{ID: "tl2", Name: "QA", Tasks: []planka.Task{{ID: "t9", Name: "embedded"}}},
	}
	flat := []planka.Task{
		{ID: "t1", Name: "first", TaskListID: "tl1"},
		{ID: "t2", Name: "second", TaskListID: "tl1"},
		{ID: "t3", Name: "orphan", TaskListID: "tl-unknown"},
	}

	out := groupTasks(lists, flat)

	if len(out[0].Tasks) != 2 {
		t.Errorf("tl1 tasks = %d, want 2 attached from the flat slice", len(out[0].Tasks))
	}
	// Lists that already carry embedded tasks keep them.
	if len(out[1].Tasks) != 1 || out[1].Tasks[0].ID != "t9" {
		t.Errorf("tl2 tasks = %+v, want the embedded task preserved", out[1].Tasks)
	}
	// Input is not mutated.
	if len(lists[0].Tasks) != 0 {
		t.Error("groupTasks should not mutate its input")
	}
}

func TestCardDetail_Membership(t *testing.T) {
	fallback := map[string][]string{"c1": {"lb-fallback"}}

	t.Run("uses own rows when present", func(t *testing.T) {
		d := &CardDetail{CardLabels: []planka.CardLabel{{CardID: "c1", LabelID: "lb1"}}}
		got := d.Membership(fallback)
		if len(got["c1"]) != 1 || got["c1"][0] != "lb1" {
			t.Errorf("membership = %v", got)
		}
	})

	t.Run("falls back when detail carried none", func(t *testing.T) {
		d := &CardDetail{}
		got := d.Membership(fallback)
		if got["c1"][0] != "lb-fallback" {
			t.Errorf("membership = %v", got)
		}
	})
}
