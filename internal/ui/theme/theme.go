package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette — warm desert tones after the book's watercolors.
var (
	Primary   = lipgloss.Color("#D97706") // Amber
	Secondary = lipgloss.Color("#0D9488") // Teal
	Success   = lipgloss.Color("#16A34A") // Green
	Warning   = lipgloss.Color("#EAB308") // Yellow
	Danger    = lipgloss.Color("#DC2626") // Red
	Text      = lipgloss.Color("#FAFAF9") // Off-white
	TextDim   = lipgloss.Color("#78716C") // Stone
	Border    = lipgloss.Color("#44403C") // Dark stone
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
)

// Health bands
var (
	Critical = lipgloss.NewStyle().
			Foreground(Danger).
			Bold(true)

	Low = lipgloss.NewStyle().
		Foreground(Warning)

	Healthy = lipgloss.NewStyle().
		Foreground(Success)
)

// Layout
var (
	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 2)

	Active = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)
)
