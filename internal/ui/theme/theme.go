package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette — clinical, calm, readable on dark terminals
var (
	Primary   = lipgloss.Color("#0EA5E9") // Sky Blue
	Secondary = lipgloss.Color("#14B8A6") // Teal
	Accent    = lipgloss.Color("#F59E0B") // Amber
	Success   = lipgloss.Color("#22C55E") // Green
	Warning   = lipgloss.Color("#EAB308") // Yellow
	Error     = lipgloss.Color("#EF4444") // Red
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	Border    = lipgloss.Color("#334155") // Slate
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	Label = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)
)

// Decision quality
var (
	Optimal = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Suboptimal = lipgloss.NewStyle().
			Foreground(Warning)

	Poor = lipgloss.NewStyle().
		Foreground(Error).
		Bold(true)
)

// Problem priority
var (
	PriorityHigh = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	PriorityMedium = lipgloss.NewStyle().
			Foreground(Warning)

	PriorityLow = lipgloss.NewStyle().
			Foreground(TextDim)
)

// Layout
var (
	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)

	ProgressFilled = lipgloss.NewStyle().
			Foreground(Secondary)

	ProgressEmpty = lipgloss.NewStyle().
			Foreground(Border)
)

// ProgressBar renders a fixed-width bar at the given percentage.
func ProgressBar(percent, width int) string {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	filled := width * percent / 100
	bar := ""
	for i := 0; i < width; i++ {
		if i < filled {
			bar += ProgressFilled.Render("█")
		} else {
			bar += ProgressEmpty.Render("░")
		}
	}
	return bar
}
