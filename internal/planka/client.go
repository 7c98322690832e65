// Package planka is the remote client for the Planka REST API.
//
// It exposes the four raw verbs (Get, Post, Patch, Delete) plus typed
// helpers for every endpoint the tools call. All JSON decoding happens
// here — the rest of the server works with the typed records from
// types.go, never with raw maps. Failures are classified into
// StatusError / ErrTimeout / ErrConnect so the tool layer can map them
// to user-facing messages in one place.
package planka

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultTimeout is the per-request timeout when the configuration
// doesn't override it.
const DefaultTimeout = 30 * time.Second

// Client issues authenticated requests against a Planka server.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// NewClient creates a client for the given base URL and access token.
// A non-positive timeout falls back to DefaultTimeout.
func NewClient(baseURL, token string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		http:    &http.Client{Timeout: timeout},
	}
}

// do performs one request and decodes the response into out (skipped
// when out is nil or the body is empty, e.g. 204 on DELETE).
func (c *Client) do(ctx context.Context, method, endpoint string, body, out any) error {
	reqURL := c.baseURL + "/api/" + strings.TrimLeft(endpoint, "/")

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding %s %s body: %w", method, endpoint, err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reader)
	if err != nil {
		return fmt.Errorf("building %s %s request: %w", method, endpoint, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return classifyTransportError(err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return &StatusError{Status: resp.StatusCode, Endpoint: endpoint}
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading %s %s response: %w", method, endpoint, err)
	}
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decoding %s %s response: %w", method, endpoint, err)
	}
	return nil
}

// classifyTransportError maps a failed round trip onto the timeout or
// connectivity sentinel.
func classifyTransportError(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Timeout() {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}
	return fmt.Errorf("%w: %v", ErrConnect, err)
}

// --- Raw verbs ---

// Get issues a GET request and decodes the response into out.
func (c *Client) Get(ctx context.Context, endpoint string, out any) error {
	return c.do(ctx, http.MethodGet, endpoint, nil, out)
}

// Post issues a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, endpoint string, body, out any) error {
	return c.do(ctx, http.MethodPost, endpoint, body, out)
}

// Patch issues a PATCH request with a JSON body.
func (c *Client) Patch(ctx context.Context, endpoint string, body, out any) error {
	return c.do(ctx, http.MethodPatch, endpoint, body, out)
}

// Delete issues a DELETE request. Empty and 204 responses are success.
func (c *Client) Delete(ctx context.Context, endpoint string) error {
	return c.do(ctx, http.MethodDelete, endpoint, nil, nil)
}

// --- Typed endpoint helpers ---

// FetchProjects returns every project visible to the token.
func (c *Client) FetchProjects(ctx context.Context) ([]Project, error) {
	var env projectsEnvelope
	if err := c.Get(ctx, "projects", &env); err != nil {
		return nil, err
	}
	return env.Items, nil
}

// FetchUsers returns every workspace user.
func (c *Client) FetchUsers(ctx context.Context) ([]User, error) {
	var env usersEnvelope
	if err := c.Get(ctx, "users", &env); err != nil {
		return nil, err
	}
	return env.Items, nil
}

// FetchProjectBoards returns the boards sideloaded on a project's
// detail response.
func (c *Client) FetchProjectBoards(ctx context.Context, projectID string) ([]Board, error) {
	var env projectEnvelope
	if err := c.Get(ctx, "projects/"+projectID, &env); err != nil {
		return nil, err
	}
	return env.Included.Boards, nil
}

// FetchBoard returns a board with its sideloaded lists, labels, cards,
// card-label links, and users.
func (c *Client) FetchBoard(ctx context.Context, boardID string) (Board, Included, error) {
	var env boardEnvelope
	if err := c.Get(ctx, "boards/"+boardID, &env); err != nil {
		return Board{}, Included{}, err
	}
	return env.Item, env.Included, nil
}

// FetchCard returns a card with its sideloaded task lists, tasks,
// comments, attachments, and card-scoped labels/users.
func (c *Client) FetchCard(ctx context.Context, cardID string) (Card, Included, error) {
	var env cardEnvelope
	if err := c.Get(ctx, "cards/"+cardID, &env); err != nil {
		return Card{}, Included{}, err
	}
	return env.Item, env.Included, nil
}

// CreateCardRequest is the body for card creation. Type is required by
// the API; "project" is the plain kanban card type.
type CreateCardRequest struct {
	Type        string  `json:"type"`
	Name        string  `json:"name"`
	Position    float64 `json:"position"`
	Description string  `json:"description,omitempty"`
	DueDate     string  `json:"dueDate,omitempty"`
}

// CreateCard creates a card at the bottom of the given list unless a
// position is supplied.
func (c *Client) CreateCard(ctx context.Context, listID string, req CreateCardRequest) (Card, error) {
	var env cardEnvelope
	if err := c.Post(ctx, "lists/"+listID+"/cards", req, &env); err != nil {
		return Card{}, err
	}
	return env.Item, nil
}

// UpdateCard patches the given card fields. The patch carries only the
// fields the caller set, so untouched fields keep their values.
func (c *Client) UpdateCard(ctx context.Context, cardID string, patch map[string]any) (Card, error) {
	var env cardEnvelope
	if err := c.Patch(ctx, "cards/"+cardID, patch, &env); err != nil {
		return Card{}, err
	}
	return env.Item, nil
}

// CreateTaskList creates a checklist group on a card.
func (c *Client) CreateTaskList(ctx context.Context, cardID, name string) (TaskList, error) {
	var env taskListEnvelope
	body := map[string]any{"name": name}
	if err := c.Post(ctx, "cards/"+cardID+"/task-lists", body, &env); err != nil {
		return TaskList{}, err
	}
	return env.Item, nil
}

// CreateTask adds a task to a task list.
func (c *Client) CreateTask(ctx context.Context, taskListID, name string) (Task, error) {
	var env taskEnvelope
	body := map[string]any{"name": name}
	if err := c.Post(ctx, "task-lists/"+taskListID+"/tasks", body, &env); err != nil {
		return Task{}, err
	}
	return env.Item, nil
}

// UpdateTask sets a task's completion state.
func (c *Client) UpdateTask(ctx context.Context, taskID string, isCompleted bool) (Task, error) {
	var env taskEnvelope
	body := map[string]any{"isCompleted": isCompleted}
	if err := c.Patch(ctx, "tasks/"+taskID, body, &env); err != nil {
		return Task{}, err
	}
	return env.Item, nil
}

// AddCardLabel assigns an existing label to a card.
func (c *Client) AddCardLabel(ctx context.Context, cardID, labelID string) error {
	body := map[string]any{"labelId": labelID}
	return c.Post(ctx, "cards/"+cardID+"/labels", body, nil)
}

// RemoveCardLabel removes a label assignment from a card.
func (c *Client) RemoveCardLabel(ctx context.Context, cardID, labelID string) error {
	return c.Delete(ctx, "cards/"+cardID+"/labels/"+labelID)
}
