// Package ui provides terminal styling for loom CLI output.
// Uses the Ayu color theme with adaptive light/dark mode support.
package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/loomhq/loom/internal/types"
)

// Ayu theme color palette (adaptive light/dark).
var (
	ColorOpen = lipgloss.AdaptiveColor{
		Light: "#399ee6", // ayu light bright blue
		Dark:  "#59c2ff", // ayu dark bright blue
	}
	ColorDone = lipgloss.AdaptiveColor{
		Light: "#86b300", // ayu light bright green
		Dark:  "#c2d94c", // ayu dark bright green
	}
	ColorInProgress = lipgloss.AdaptiveColor{
		Light: "#f2ae49", // ayu light bright yellow
		Dark:  "#ffb454", // ayu dark bright yellow
	}
	ColorBlocked = lipgloss.AdaptiveColor{
		Light: "#f07171", // ayu light bright red
		Dark:  "#f07178", // ayu dark bright red
	}
	ColorMuted = lipgloss.AdaptiveColor{
		Light: "#828c99", // ayu light muted
		Dark:  "#6c7680", // ayu dark muted
	}
)

// Status styles - consistent across all commands.
var (
	OpenStyle       = lipgloss.NewStyle().Foreground(ColorOpen)
	DoneStyle       = lipgloss.NewStyle().Foreground(ColorDone)
	InProgressStyle = lipgloss.NewStyle().Foreground(ColorInProgress)
	BlockedStyle    = lipgloss.NewStyle().Foreground(ColorBlocked)
	MutedStyle      = lipgloss.NewStyle().Foreground(ColorMuted)
)

// HeaderStyle for per-issue group headers.
var HeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorOpen)

// Status icons.
const (
	IconOpen       = "○"
	IconDone       = "✓"
	IconInProgress = "◐"
	IconBlocked    = "✗"
)

// StatusStyle returns the style for a task status.
func StatusStyle(s types.Status) lipgloss.Style {
	switch s {
	case types.StatusDone:
		return DoneStyle
	case types.StatusInProgress:
		return InProgressStyle
	case types.StatusBlocked:
		return BlockedStyle
	default:
		return OpenStyle
	}
}

// StatusIcon returns the icon for a task status.
func StatusIcon(s types.Status) string {
	switch s {
	case types.StatusDone:
		return IconDone
	case types.StatusInProgress:
		return IconInProgress
	case types.StatusBlocked:
		return IconBlocked
	default:
		return IconOpen
	}
}

// ColorEnabled reports whether styled output should be emitted: stdout must
// be a terminal and NO_COLOR must not be set.
func ColorEnabled() bool {
	if termenv.EnvNoColor() {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// TerminalWidth returns the stdout width, or the fallback when stdout is not
// a terminal.
func TerminalWidth(fallback int) int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return fallback
}
