package render

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// DefaultResponseLimit is the output size cap applied as the final
// step of every read-tool response.
const DefaultResponseLimit = 25000

// Truncate caps text at limit characters. Oversized text is cut at 60%
// of the limit — backing off to the nearest preceding newline when that
// newline falls within the last 20% of the cut window, to avoid
// splitting mid-line — and a warning block reporting the original size
// and remediation hints is appended.
func Truncate(text string, limit int) string {
	if len(text) <= limit {
		return text
	}

	cutPoint := runeBoundaryBefore(text, int(float64(limit)*0.6))
	truncated := text[:cutPoint]

	if lastNewline := strings.LastIndexByte(truncated, '\n'); float64(lastNewline) > float64(cutPoint)*0.8 {
		truncated = truncated[:lastNewline]
	}

	warning := fmt.Sprintf(`
---
⚠️ **RESPONSE TRUNCATED**: Output was %s characters (limit: %s)

**To see more results:**
- Use pagination: increase the `+"`offset`"+` parameter
- Add filters: use `+"`list_id`"+` or `+"`label_filter`"+` to narrow results
- Reduce detail: use detail_level="preview" instead of "summary" or "detailed"
---
`, formatNumber(len(text)), formatNumber(limit))

	return truncated + warning
}

// runeBoundaryBefore returns the largest index <= i that starts a
// UTF-8 rune in s, so a slice at that index never splits a rune.
func runeBoundaryBefore(s string, i int) int {
	for i > 0 && !utf8.RuneStart(s[i]) {
		i--
	}
	return i
}

// formatNumber formats an integer with comma separators.
func formatNumber(n int) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	var result []byte
	for i := 0; i < len(s); i++ {
		if i > 0 && (len(s)-i)%3 == 0 {
			result = append(result, ',')
		}
		result = append(result, s[i])
	}
	return string(result)
}
