// Package debug provides env-gated diagnostic output for the loom CLI.
// The engine itself never logs; everything here is CLI-side chrome.
package debug

import (
	"fmt"
	"os"
)

var (
	enabled     = os.Getenv("LOOM_DEBUG") != ""
	verboseMode = false
	quietMode   = false
)

// Enabled reports whether diagnostic output is active (LOOM_DEBUG env var
// or --verbose).
func Enabled() bool {
	return enabled || verboseMode
}

// SetVerbose enables verbose/debug output.
func SetVerbose(verbose bool) {
	verboseMode = verbose
}

// SetQuiet enables quiet mode (suppress non-essential output).
func SetQuiet(quiet bool) {
	quietMode = quiet
}

// IsQuiet returns true if quiet mode is enabled.
func IsQuiet() bool {
	return quietMode
}

// Logf writes diagnostic output to stderr when enabled.
func Logf(format string, args ...interface{}) {
	if Enabled() {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}

// PrintNormal prints informational output unless quiet mode is enabled.
func PrintNormal(format string, args ...interface{}) {
	if !quietMode {
		fmt.Printf(format, args...)
	}
}
