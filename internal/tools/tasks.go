package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/roelven/another-planka-mcp/internal/render"
)

// defaultTaskListName is used when a card has no task list to attach a
// new task to.
const defaultTaskListName = "Tasks"

// AddTaskTool handles planka_add_task: add a checklist item to a card,
// creating a task list on the card when none exists.
type AddTaskTool struct {
	deps *Deps
}

// NewAddTaskTool creates an AddTaskTool.
func NewAddTaskTool(deps *Deps) *AddTaskTool {
	return &AddTaskTool{deps: deps}
}

// Definition returns the MCP tool definition for planka_add_task.
func (t *AddTaskTool) Definition() mcp.Tool {
	return mcp.NewTool("planka_add_task",
		mcp.WithDescription(
			"Add a checklist task to a card. Creates a task list on the card when it has "+
				"none yet.",
		),
		mcp.WithString("card_id",
			mcp.Required(),
			mcp.Description("Card to add the task to"),
		),
		mcp.WithString("task_name",
			mcp.Required(),
			mcp.Description("Task text"),
		),
		mcp.WithString("task_list_name",
			mcp.Description("Task list to add to (matched case-insensitively, created if missing; defaults to 'Tasks')"),
		),
	)
}

// Handle processes the planka_add_task tool call.
func (t *AddTaskTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if res := t.deps.checkReady(); res != nil {
		return res, nil
	}
	if err := rejectUnknownArgs(req, "card_id", "task_name", "task_list_name"); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	cardID, err := requireString(req, "card_id", maxIDLen)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	name, err := requireString(req, "task_name", maxNameLen)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	listName, err := optionalString(req, "task_list_name", maxShortNameLen)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if listName == "" {
		listName = defaultTaskListName
	}

	// Fetch live so a task list created by a concurrent client is
	// found instead of duplicated.
	_, included, err := t.deps.Client.FetchCard(ctx, cardID)
	if err != nil {
		return mcp.NewToolResultText(apiErrorText(err)), nil
	}

	taskListID := ""
	for _, tl := range included.TaskLists {
		if strings.EqualFold(tl.Name, listName) {
			taskListID = tl.ID
			listName = tl.Name
			break
		}
	}
	if taskListID == "" {
		created, err := t.deps.Client.CreateTaskList(ctx, cardID, listName)
		if err != nil {
			return mcp.NewToolResultText(apiErrorText(err)), nil
		}
		taskListID = created.ID
	}

	task, err := t.deps.Client.CreateTask(ctx, taskListID, name)
	if err != nil {
		return mcp.NewToolResultText(apiErrorText(err)), nil
	}

	t.deps.Cache.InvalidateCard(cardID)
	t.deps.logger().Info("task added", "card_id", cardID, "task_id", task.ID)

	msg := fmt.Sprintf("✓ Added task: **%s** to list '%s' (Task ID: `%s`)", task.Name, listName, task.ID)
	return mcp.NewToolResultText(render.Truncate(msg, render.DefaultResponseLimit)), nil
}

// UpdateTaskTool handles planka_update_task: mark a checklist item
// complete or incomplete.
type UpdateTaskTool struct {
	deps *Deps
}

// NewUpdateTaskTool creates an UpdateTaskTool.
func NewUpdateTaskTool(deps *Deps) *UpdateTaskTool {
	return &UpdateTaskTool{deps: deps}
}

// Definition returns the MCP tool definition for planka_update_task.
func (t *UpdateTaskTool) Definition() mcp.Tool {
	return mcp.NewTool("planka_update_task",
		mcp.WithDescription(
			"Mark a checklist task as complete or incomplete.",
		),
		mcp.WithString("task_id",
			mcp.Required(),
			mcp.Description("Task to update"),
		),
		mcp.WithBoolean("is_completed",
			mcp.Required(),
			mcp.Description("true to mark complete, false to mark incomplete"),
		),
	)
}

// Handle processes the planka_update_task tool call.
func (t *UpdateTaskTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if res := t.deps.checkReady(); res != nil {
		return res, nil
	}
	if err := rejectUnknownArgs(req, "task_id", "is_completed"); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	taskID, err := requireString(req, "task_id", maxIDLen)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	isCompleted, ok := argBool(req, "is_completed")
	if !ok {
		return mcp.NewToolResultError("Missing required parameter: 'is_completed'"), nil
	}

	task, err := t.deps.Client.UpdateTask(ctx, taskID, isCompleted)
	if err != nil {
		return mcp.NewToolResultText(apiErrorText(err)), nil
	}

	t.deps.logger().Info("task updated", "task_id", taskID, "is_completed", isCompleted)

	state, box := "incomplete", "[ ]"
	if task.IsCompleted {
		state, box = "complete", "[x]"
	}
	msg := fmt.Sprintf("✓ Marked task as %s: %s **%s** (ID: `%s`)", state, box, task.Name, task.ID)
	return mcp.NewToolResultText(render.Truncate(msg, render.DefaultResponseLimit)), nil
}
