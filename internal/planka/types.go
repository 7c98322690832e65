package planka

// Domain records decoded once at the client boundary. Field presence
// varies by endpoint, so fields the API may omit or null are pointers;
// everything downstream works with these records instead of raw JSON.

// Project is a top-level container of boards.
type Project struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Board belongs to a project and owns lists, labels, and cards.
type Board struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	ProjectID string `json:"projectId"`
}

// List is a column on a board.
type List struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	BoardID  string  `json:"boardId"`
	Position float64 `json:"position"`
}

// Label is a board-scoped tag assignable to cards.
type Label struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Color   string `json:"color"`
	BoardID string `json:"boardId"`
}

// User is a workspace member.
type User struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Username string `json:"username,omitempty"`
	Email    string `json:"email,omitempty"`
}

// Card is the central record. Timestamps and the due date stay as the
// API's ISO strings — they are only ever displayed, never computed on.
type Card struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description *string  `json:"description,omitempty"`
	ListID      string   `json:"listId"`
	BoardID     string   `json:"boardId"`
	Position    *float64 `json:"position,omitempty"`
	DueDate     *string  `json:"dueDate,omitempty"`
	CreatedAt   *string  `json:"createdAt,omitempty"`
	UpdatedAt   *string  `json:"updatedAt,omitempty"`
	MemberIDs   []string `json:"memberIds,omitempty"`
}

// TaskList groups checklist tasks within a card.
type TaskList struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	CardID string `json:"cardId"`
	Tasks  []Task `json:"tasks,omitempty"`
}

// Task is a single checklist item.
type Task struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	TaskListID  string `json:"taskListId,omitempty"`
	IsCompleted bool   `json:"isCompleted"`
}

// Comment is a user comment on a card.
type Comment struct {
	ID        string  `json:"id"`
	CardID    string  `json:"cardId"`
	UserID    string  `json:"userId"`
	Text      string  `json:"text"`
	CreatedAt *string `json:"createdAt,omitempty"`
}

// Attachment is a file attached to a card.
type Attachment struct {
	ID     string `json:"id"`
	CardID string `json:"cardId"`
	Name   string `json:"name"`
}

// CardLabel is one row of the card↔label join table. Planka does not
// embed label ids on the card record itself; this flat relation is the
// only source of label membership.
type CardLabel struct {
	ID      string `json:"id"`
	CardID  string `json:"cardId"`
	LabelID string `json:"labelId"`
}

// Included carries the sideloaded records the API attaches to item
// responses. Only the slices a given endpoint populates are non-nil.
type Included struct {
	Boards      []Board      `json:"boards,omitempty"`
	Lists       []List       `json:"lists,omitempty"`
	Labels      []Label      `json:"labels,omitempty"`
	Cards       []Card       `json:"cards,omitempty"`
	CardLabels  []CardLabel  `json:"cardLabels,omitempty"`
	Users       []User       `json:"users,omitempty"`
	TaskLists   []TaskList   `json:"taskLists,omitempty"`
	Tasks       []Task       `json:"tasks,omitempty"`
	Comments    []Comment    `json:"comments,omitempty"`
	Attachments []Attachment `json:"attachments,omitempty"`
}

// Response envelopes. Planka wraps single records as {"item": ...,
// "included": {...}} and collections as {"items": [...]}.

type projectsEnvelope struct {
	Items []Project `json:"items"`
}

type usersEnvelope struct {
	Items []User `json:"items"`
}

type projectEnvelope struct {
	Item     Project  `json:"item"`
	Included Included `json:"included"`
}

type boardEnvelope struct {
	Item     Board    `json:"item"`
	Included Included `json:"included"`
}

type cardEnvelope struct {
	Item     Card     `json:"item"`
	Included Included `json:"included"`
}

type taskListEnvelope struct {
	Item TaskList `json:"item"`
}

type taskEnvelope struct {
	Item Task `json:"item"`
}
