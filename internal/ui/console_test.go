// Where: internal/ui/console_test.go
// What: Tests for console helpers.
// Why: Keep output prefixes stable for scripts that grep CLI output.
package ui

import (
	"bytes"
	"strings"
	"testing"
)

func TestConsoleWarnf(t *testing.T) {
	var out bytes.Buffer
	New(&out).Warnf("unsupported mode %q", "staging")

	got := out.String()
	if !strings.Contains(got, `unsupported mode "staging"`) {
		t.Fatalf("unexpected output: %q", got)
	}
	if !strings.HasSuffix(got, "\n") {
		t.Fatalf("output not newline-terminated: %q", got)
	}
}

func TestConsoleErrorf(t *testing.T) {
	var out bytes.Buffer
	New(&out).Errorf("launch webpack: %v", "not found")

	if !strings.Contains(out.String(), "launch webpack: not found") {
		t.Fatalf("unexpected output: %q", out.String())
	}
}
