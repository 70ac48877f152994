package utils

import (
	"strings"
	"testing"
)

func TestTruncateString(t *testing.T) {
	short := "short"
	if got := TruncateString(short, 100); got != short {
		t.Errorf("short strings must pass through, got %q", got)
	}

	long := strings.Repeat("x", 600)
	truncated := TruncateString(long, 10)
	if !strings.HasPrefix(truncated, "xxxxxxxxxx") || !strings.Contains(truncated, "600 chars") {
		t.Errorf("unexpected truncation result: %q", truncated)
	}
}

func TestJSONToString(t *testing.T) {
	got := JSONToString(map[string]int{"a": 1})
	if got != `{"a":1}` {
		t.Errorf("expected compact JSON, got %q", got)
	}

	indented := JSONToString(map[string]int{"a": 1}, true)
	if !strings.Contains(indented, "\n") {
		t.Errorf("expected indented output, got %q", indented)
	}
}
