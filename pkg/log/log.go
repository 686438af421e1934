// Package log prints colored status lines to stderr.
package log

import (
	"os"
	"sync/atomic"

	"github.com/fatih/color"
)

var red = color.New(color.FgRed).FprintfFunc()
var blue = color.New(color.FgBlue).FprintfFunc()
var gray = color.New(color.FgHiBlack).FprintfFunc()

var verbose atomic.Bool

// SetVerbose turns VerboseMsg output on or off.
func SetVerbose(v bool) {
	verbose.Store(v)
}

// SetColor enables or disables colored output for the whole process.
func SetColor(enabled bool) {
	color.NoColor = !enabled
}

// ErrorMsg prints an error message to stderr in red color.
func ErrorMsg(format string, a ...interface{}) {
	red(os.Stderr, "[!] Error: "+format, a...)
}

// InfoMsg prints an informational message to stderr in blue color.
func InfoMsg(format string, a ...interface{}) {
	blue(os.Stderr, "[+] "+format, a...)
}

// VerboseMsg prints a message only after SetVerbose(true).
func VerboseMsg(format string, a ...interface{}) {
	if !verbose.Load() {
		return
	}
	gray(os.Stderr, "[*] "+format, a...)
}
