package workspace

import (
	"context"

	"github.com/roelven/another-planka-mcp/internal/planka"
)

// CardDetail is a card enriched with everything its detail endpoint
// sideloads: task lists (with their tasks), comments, attachments, and
// the card-scoped labels/users/card-label links when the API provides
// them. The embedded slices are what the detailed formatter and the
// JSON response mode render.
type CardDetail struct {
	planka.Card
	TaskLists   []planka.TaskList   `json:"taskLists"`
	Comments    []planka.Comment    `json:"comments"`
	Attachments []planka.Attachment `json:"attachments"`
	Labels      []planka.Label      `json:"labels,omitempty"`
	Users       []planka.User       `json:"users,omitempty"`
	CardLabels  []planka.CardLabel  `json:"cardLabels,omitempty"`
}

// FetchCardDetail fetches one card and merges its sideloaded records.
func FetchCardDetail(ctx context.Context, client *planka.Client, cardID string) (*CardDetail, error) {
	card, included, err := client.FetchCard(ctx, cardID)
	if err != nil {
		return nil, err
	}
	return newCardDetail(card, included), nil
}

func newCardDetail(card planka.Card, included planka.Included) *CardDetail {
	detail := &CardDetail{
		Card:        card,
		TaskLists:   groupTasks(included.TaskLists, included.Tasks),
		Comments:    included.Comments,
		Attachments: included.Attachments,
		Labels:      included.Labels,
		Users:       included.Users,
		CardLabels:  included.CardLabels,
	}
	if detail.TaskLists == nil {
		detail.TaskLists = []planka.TaskList{}
	}
	if detail.Comments == nil {
		detail.Comments = []planka.Comment{}
	}
	if detail.Attachments == nil {
		detail.Attachments = []planka.Attachment{}
	}
	return detail
}

// groupTasks attaches flat-delivered tasks to their task lists. Some
// Planka versions embed tasks on each task list, others sideload them
// as a separate flat slice keyed by taskListId; both shapes end up
// with populated TaskList.Tasks.
func groupTasks(lists []planka.TaskList, flat []planka.Task) []planka.TaskList {
	if len(lists) == 0 {
		return lists
	}
	if len(flat) == 0 {
		return lists
	}

	byList := make(map[string][]planka.Task, len(lists))
	for _, task := range flat {
		byList[task.TaskListID] = append(byList[task.TaskListID], task)
	}

	out := make([]planka.TaskList, len(lists))
	for i, lst := range lists {
		out[i] = lst
		if len(out[i].Tasks) == 0 {
			out[i].Tasks = byList[lst.ID]
		}
	}
	return out
}

// Membership resolves the card→labels map for a single card from its
// own card-label rows, falling back to an already-aggregated map (from
// a Snapshot or BoardOverview) when the detail response carried none.
func (d *CardDetail) Membership(fallback map[string][]string) map[string][]string {
	if len(d.CardLabels) == 0 {
		return fallback
	}
	m := make(map[string][]string)
	for _, row := range d.CardLabels {
		if row.CardID == "" || row.LabelID == "" {
			continue
		}
		m[row.CardID] = append(m[row.CardID], row.LabelID)
	}
	return m
}
