package render

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestTruncate_UnderLimitIsUntouched(t *testing.T) {
	text := strings.Repeat("a", 100)
	if got := Truncate(text, 100); got != text {
		t.Error("text at the limit should pass through unchanged")
	}
}

func TestTruncate_OversizedOutputStaysUnderLimit(t *testing.T) {
	text := strings.Repeat("line of board content\n", 5000)
	got := Truncate(text, DefaultResponseLimit)

	if len(got) > DefaultResponseLimit {
		t.Errorf("truncated length = %d, exceeds limit %d", len(got), DefaultResponseLimit)
	}
	if !strings.Contains(got, "RESPONSE TRUNCATED") {
		t.Error("truncated output should carry the warning block")
	}
	if !strings.Contains(got, "Output was 110,000 characters (limit: 25,000)") {
		t.Errorf("warning should report original and limit sizes, got: %s", got[len(got)-300:])
	}
}

func TestTruncate_WarningIncludesRemediationHints(t *testing.T) {
	got := Truncate(strings.Repeat("x", 200), 50)

	for _, hint := range []string{"offset", "list_id", "label_filter", `detail_level="preview"`} {
		if !strings.Contains(got, hint) {
			t.Errorf("warning should mention %q", hint)
		}
	}
}

func TestTruncate_NeverSplitsRunes(t *testing.T) {
	// 3-byte runes with no newlines: most cut points land mid-rune
	// unless the cut backs off to a boundary first.
	text := strings.Repeat("✓", 2000)

	for _, limit := range []int{1000, 1001, 1002, 1003} {
		got := Truncate(text, limit)
		if !utf8.ValidString(got) {
			t.Errorf("limit %d: truncated output is not valid UTF-8", limit)
		}
	}
}

func TestTruncate_CutsAtNewlineWhenClose(t *testing.T) {
	// Lines long enough that the last newline before the cut point
	// falls within the backoff window.
	text := strings.Repeat(strings.Repeat("y", 99)+"\n", 100)
	got := Truncate(text, 1000)

	body := got[:strings.Index(got, "\n---")]
	if !strings.HasSuffix(body, strings.Repeat("y", 99)) {
		t.Error("cut should land at a line boundary")
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{25000, "25,000"},
		{1234567, "1,234,567"},
	}
	for _, tt := range tests {
		if got := formatNumber(tt.in); got != tt.want {
			t.Errorf("formatNumber(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
