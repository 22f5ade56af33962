// Where: internal/ui/console.go
// What: Console output helpers for consistent CLI UX.
// Why: Standardize warning and error formatting across the launcher.
package ui

import (
	"fmt"
	"io"
)

// Console provides helper methods for formatted output.
type Console struct {
	Out io.Writer
}

// New creates a new Console writing to the provided writer.
func New(out io.Writer) *Console {
	return &Console{Out: out}
}

// Warnf prints a non-fatal warning.
// Example: ⚠️ unsupported mode "staging"
func (c *Console) Warnf(format string, args ...any) {
	fmt.Fprintf(c.Out, "⚠️ %s\n", fmt.Sprintf(format, args...))
}

// Errorf prints a failure diagnostic.
// Example: ❌ launch webpack: executable not found
func (c *Console) Errorf(format string, args ...any) {
	fmt.Fprintf(c.Out, "❌ %s\n", fmt.Sprintf(format, args...))
}

// Usagef prints a usage hint after an argument error.
func (c *Console) Usagef(format string, args ...any) {
	fmt.Fprintf(c.Out, "%s\n", fmt.Sprintf(format, args...))
}
