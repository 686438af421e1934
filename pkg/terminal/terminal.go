// Package terminal decides how output should be rendered on the current
// terminal.
package terminal

import (
	"os"

	"golang.org/x/term"
)

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// ColorEnabled reports whether colored output should be written to f.
// Color is off when the user opted out or f is not a terminal.
func ColorEnabled(f *os.File, noColor bool) bool {
	if noColor {
		return false
	}
	return IsTerminal(f)
}
