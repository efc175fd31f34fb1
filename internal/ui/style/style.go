// Package style defines the shared colors, icons and lipgloss styles used by
// CLI output and the log handler.
package style

import "github.com/charmbracelet/lipgloss"

// Palette.
var (
	Violet = lipgloss.Color("#7C6AEF")
	Slate  = lipgloss.Color("#64748B")
	Green  = lipgloss.Color("#16A34A")
	Red    = lipgloss.Color("#DC2626")
	Amber  = lipgloss.Color("#D97706")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Arrow   = "→"
	Dot     = "•"
)

// Shared styles.
var (
	Success = lipgloss.NewStyle().Foreground(Green)
	Error   = lipgloss.NewStyle().Foreground(Red)
	Warn    = lipgloss.NewStyle().Foreground(Amber)
	Muted   = lipgloss.NewStyle().Foreground(Slate)
	Accent  = lipgloss.NewStyle().Foreground(Violet)
	Header  = lipgloss.NewStyle().Bold(true)
)
