package render

import (
	"fmt"
	"strings"

	"github.com/roelven/another-planka-mcp/internal/planka"
	"github.com/roelven/another-planka-mcp/internal/workspace"
)

// Context is the lookup bundle the formatter resolves foreign keys
// against: id→name maps plus the card→labels membership map. Every
// lookup is total — a missing id renders a literal placeholder, never
// an error — so the formatter works over arbitrarily partial context.
type Context struct {
	Lists      map[string]string
	Labels     map[string]string
	Users      map[string]string
	CardLabels map[string][]string
	BoardName  string
}

// ListName resolves a list id, defaulting to "Unknown List".
func (c Context) ListName(listID string) string {
	if name, ok := c.Lists[listID]; ok && name != "" {
		return name
	}
	return "Unknown List"
}

// LabelNames resolves a card's label names via the membership map.
// Unresolvable label ids are skipped.
func (c Context) LabelNames(cardID string) []string {
	var names []string
	for _, labelID := range c.CardLabels[cardID] {
		if name, ok := c.Labels[labelID]; ok && name != "" {
			names = append(names, name)
		}
	}
	return names
}

// UserName resolves a user id, defaulting to "Unknown User".
func (c Context) UserName(userID string) string {
	if name, ok := c.Users[userID]; ok && name != "" {
		return name
	}
	return "Unknown User"
}

// memberNames resolves the card's member ids, skipping unknowns.
func (c Context) memberNames(ids []string) []string {
	var names []string
	for _, id := range ids {
		if name, ok := c.Users[id]; ok && name != "" {
			names = append(names, name)
		}
	}
	return names
}

// boardName defaults to "Unknown Board".
func (c Context) boardName() string {
	if c.BoardName != "" {
		return c.BoardName
	}
	return "Unknown Board"
}

// TaskProgress renders "completed/total" over all tasks in all task
// lists, "0/0" when there are none.
func TaskProgress(taskLists []planka.TaskList) string {
	total, completed := 0, 0
	for _, tl := range taskLists {
		for _, task := range tl.Tasks {
			total++
			if task.IsCompleted {
				completed++
			}
		}
	}
	return fmt.Sprintf("%d/%d", completed, total)
}

// joinOr joins names with ", ", substituting empty for the fallback.
func joinOr(names []string, fallback string) string {
	if len(names) == 0 {
		return fallback
	}
	return strings.Join(names, ", ")
}

// strOr dereferences an optional string, substituting fallback for
// nil or empty.
func strOr(s *string, fallback string) string {
	if s == nil || *s == "" {
		return fallback
	}
	return *s
}

// CardPreview renders the minimal card block: identity, resolved list
// and labels, due date, and the task/comment/attachment tallies.
func CardPreview(card *workspace.CardDetail, ctx Context) string {
	var b strings.Builder
	fmt.Fprintf(&b, "- **%s** (ID: `%s`)\n", card.Name, card.ID)
	fmt.Fprintf(&b, "  - List: %s\n", ctx.ListName(card.ListID))
	fmt.Fprintf(&b, "  - Labels: %s\n", joinOr(ctx.LabelNames(card.ID), "None"))
	fmt.Fprintf(&b, "  - Due: %s\n", strOr(card.DueDate, "No due date"))
	fmt.Fprintf(&b, "  - Tasks: %s\n", TaskProgress(card.TaskLists))
	fmt.Fprintf(&b, "  - Comments: %d\n", len(card.Comments))
	fmt.Fprintf(&b, "  - Attachments: %d", len(card.Attachments))
	return b.String()
}

// CardSummary renders the preview fields plus members, creation time,
// and a description snippet capped at 100 characters.
func CardSummary(card *workspace.CardDetail, ctx Context) string {
	description := strOr(card.Description, "")
	snippet := description
	if len(snippet) > 100 {
		snippet = snippet[:runeBoundaryBefore(snippet, 100)] + "..."
	}
	if snippet == "" {
		snippet = "(No description)"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "### %s\n", card.Name)
	fmt.Fprintf(&b, "**ID**: `%s`\n", card.ID)
	fmt.Fprintf(&b, "**List**: %s\n", ctx.ListName(card.ListID))
	fmt.Fprintf(&b, "**Labels**: %s\n", joinOr(ctx.LabelNames(card.ID), "None"))
	fmt.Fprintf(&b, "**Members**: %s\n", joinOr(ctx.memberNames(card.MemberIDs), "None"))
	fmt.Fprintf(&b, "**Due Date**: %s\n", strOr(card.DueDate, "No due date"))
	fmt.Fprintf(&b, "**Created**: %s\n", strOr(card.CreatedAt, "Unknown"))
	fmt.Fprintf(&b, "**Tasks**: %s\n", TaskProgress(card.TaskLists))
	fmt.Fprintf(&b, "**Comments**: %d\n", len(card.Comments))
	fmt.Fprintf(&b, "**Attachments**: %d\n\n", len(card.Attachments))
	fmt.Fprintf(&b, "**Description**: %s\n", snippet)
	return b.String()
}

// CardDetailed renders the complete card: full description, enumerated
// task lists with checkbox state, comments with resolved authors, and
// attachments.
func CardDetailed(card *workspace.CardDetail, ctx Context) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", card.Name)
	fmt.Fprintf(&b, "**ID**: `%s`\n", card.ID)
	fmt.Fprintf(&b, "**List**: %s (ID: `%s`)\n", ctx.ListName(card.ListID), card.ListID)
	fmt.Fprintf(&b, "**Board**: %s\n\n", ctx.boardName())

	b.WriteString("## Details\n")
	fmt.Fprintf(&b, "- **Due Date**: %s\n", strOr(card.DueDate, "No due date"))
	fmt.Fprintf(&b, "- **Created**: %s\n", strOr(card.CreatedAt, "Unknown"))
	fmt.Fprintf(&b, "- **Updated**: %s\n", strOr(card.UpdatedAt, "Unknown"))
	if card.Position != nil {
		fmt.Fprintf(&b, "- **Position**: %g\n", *card.Position)
	} else {
		b.WriteString("- **Position**: N/A\n")
	}

	b.WriteString("\n## Members\n")
	b.WriteString(joinOr(ctx.memberNames(card.MemberIDs), "(No members assigned)"))
	b.WriteString("\n")

	b.WriteString("\n## Labels\n")
	b.WriteString(joinOr(ctx.LabelNames(card.ID), "(No labels)"))
	b.WriteString("\n")

	b.WriteString("\n## Description\n")
	b.WriteString(strOr(card.Description, "(No description)"))
	b.WriteString("\n")

	b.WriteString("\n## Tasks\n")
	if len(card.TaskLists) == 0 {
		b.WriteString("(No tasks)\n")
	} else {
		for _, tl := range card.TaskLists {
			fmt.Fprintf(&b, "\n**%s**:\n", tl.Name)
			for _, task := range tl.Tasks {
				check := "[ ]"
				if task.IsCompleted {
					check = "[x]"
				}
				fmt.Fprintf(&b, "- %s %s (ID: `%s`)\n", check, task.Name, task.ID)
			}
		}
	}

	b.WriteString("\n## Comments\n")
	if len(card.Comments) == 0 {
		b.WriteString("(No comments)\n")
	} else {
		for _, comment := range card.Comments {
			fmt.Fprintf(&b, "- **%s** (%s): %s\n",
				ctx.UserName(comment.UserID), strOr(comment.CreatedAt, "Unknown"), comment.Text)
		}
	}

	b.WriteString("\n## Attachments\n")
	if len(card.Attachments) == 0 {
		b.WriteString("(No attachments)\n")
	} else {
		for _, att := range card.Attachments {
			fmt.Fprintf(&b, "- %s (ID: `%s`)\n", att.Name, att.ID)
		}
	}

	return b.String()
}

// CardList renders per-card blocks at the given detail level under a
// header stating the post-filter total. Preview and summary blocks are
// separated by blank lines, detailed blocks by a horizontal rule.
func CardList(cards []*workspace.CardDetail, ctx Context, level string, total int) string {
	if len(cards) == 0 {
		return "No cards found matching the criteria."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# Cards (%d found)\n\n", total)

	for _, card := range cards {
		switch level {
		case DetailSummary:
			b.WriteString(CardSummary(card, ctx))
			b.WriteString("\n")
		case DetailDetailed:
			b.WriteString(CardDetailed(card, ctx))
			b.WriteString("\n---\n\n")
		default:
			b.WriteString(CardPreview(card, ctx))
			b.WriteString("\n\n")
		}
	}

	return strings.TrimSpace(b.String())
}

// WrapCard lifts a bare board-listing card into a CardDetail with
// empty enrichments, for preview/summary rendering of list results.
func WrapCard(card planka.Card) *workspace.CardDetail {
	return &workspace.CardDetail{
		Card:        card,
		TaskLists:   []planka.TaskList{},
		Comments:    []planka.Comment{},
		Attachments: []planka.Attachment{},
	}
}
