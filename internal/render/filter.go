package render

import (
	"strings"

	"github.com/roelven/another-planka-mcp/internal/planka"
)

// MatchesLabel reports whether any of the card's resolved label names
// contains the filter, case-insensitively. Cards without labels never
// match.
func MatchesLabel(cardID, filter string, ctx Context) bool {
	needle := strings.ToLower(filter)
	for _, name := range ctx.LabelNames(cardID) {
		if strings.Contains(strings.ToLower(name), needle) {
			return true
		}
	}
	return false
}

// MatchesQuery reports whether the query appears in the card's name or
// description, case-insensitively. A missing description is treated as
// empty, never an error.
func MatchesQuery(card planka.Card, query string) bool {
	needle := strings.ToLower(query)
	if strings.Contains(strings.ToLower(card.Name), needle) {
		return true
	}
	description := ""
	if card.Description != nil {
		description = *card.Description
	}
	return strings.Contains(strings.ToLower(description), needle)
}
