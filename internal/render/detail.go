// Package render turns enriched Planka records into token-efficient
// output: a card formatter with three detail levels, a workspace
// renderer, a pure paginator, a size-capping truncator, and the
// filter/search predicates the list and find tools share.
package render

// Detail levels for card rendering, strictly increasing in fields.
const (
	DetailPreview  = "preview"
	DetailSummary  = "summary"
	DetailDetailed = "detailed"
)

// DetailLevelValues returns the enum values for MCP tool definitions.
func DetailLevelValues() []string {
	return []string{DetailPreview, DetailSummary, DetailDetailed}
}

// Output formats.
const (
	FormatMarkdown = "markdown"
	FormatJSON     = "json"
)

// FormatValues returns the enum values for MCP tool definitions.
func FormatValues() []string {
	return []string{FormatMarkdown, FormatJSON}
}

// Context levels. Accepted and validated on the tools that declare
// them; reserved for future response-shaping.
const (
	ContextMinimal  = "minimal"
	ContextStandard = "standard"
	ContextFull     = "full"
)

// ContextLevelValues returns the enum values for MCP tool definitions.
func ContextLevelValues() []string {
	return []string{ContextMinimal, ContextStandard, ContextFull}
}
