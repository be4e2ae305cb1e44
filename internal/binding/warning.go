package binding

import (
	"fmt"
	"strings"

	"github.com/dshills/railcab/internal/catalog"
)

// Warning describes a non-fatal problem found while resolving or
// validating bindings. Warnings are collected and surfaced, never
// raised as errors.
type Warning struct {
	// Commands lists the involved commands in catalogue order.
	Commands []catalog.Command

	// Input is the shared trigger surface for conflict warnings.
	Input string

	// Message describes the problem.
	Message string
}

func (w Warning) String() string {
	switch {
	case len(w.Commands) == 2 && w.Input != "":
		return fmt.Sprintf("%s and %s both respond to %s", w.Commands[0], w.Commands[1], w.Input)
	case len(w.Commands) == 1:
		return fmt.Sprintf("%s: %s", w.Commands[0], w.Message)
	default:
		return w.Message
	}
}

// FormatWarnings renders warnings one per line for display.
func FormatWarnings(warnings []Warning) string {
	lines := make([]string, len(warnings))
	for i, w := range warnings {
		lines[i] = w.String()
	}
	return strings.Join(lines, "\n")
}
