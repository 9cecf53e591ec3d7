package output

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette. Never use inline lipgloss.Color literals elsewhere.
var (
	// ColorCyan is used for identifiable nouns: paths and scaffolded names.
	ColorCyan = lipgloss.Color("14")

	// ColorGreen is used for the "created" status.
	ColorGreen = lipgloss.Color("82")

	// ColorYellow is used for the "patched" status.
	ColorYellow = lipgloss.Color("220")

	// ColorBoldRed is used for the "failed" status (matches ERROR level).
	ColorBoldRed = lipgloss.Color("204")

	// ColorGreenCheck is used for the completion checkmark.
	ColorGreenCheck = lipgloss.Color("10")

	// ColorDim is used for table borders.
	ColorDim = lipgloss.Color("240")
)

// Semantic styles.
var (
	// StyleNoun styles paths and scaffolded names.
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleDim styles structural chrome.
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleBold styles headings and tree roots.
	StyleBold = lipgloss.NewStyle().Bold(true)
)

// File status words shown next to scaffolded files.
const (
	StatusCreated = "created"
	StatusPatched = "patched"
	StatusFailed  = "failed"
)

// StatusStyle returns the lipgloss style for a file status.
// Unknown statuses return an unstyled default.
func StatusStyle(status string) lipgloss.Style {
	switch status {
	case StatusCreated:
		return lipgloss.NewStyle().Foreground(ColorGreen)
	case StatusPatched:
		return lipgloss.NewStyle().Foreground(ColorYellow)
	case StatusFailed:
		return lipgloss.NewStyle().Bold(true).Foreground(ColorBoldRed)
	default:
		return lipgloss.NewStyle()
	}
}

// minFileColumnWidth keeps status words aligned.
const minFileColumnWidth = 40

// FormatFileLine renders a path with a right-aligned, color-coded status.
func FormatFileLine(path, status string) string {
	padding := minFileColumnWidth - len(path)
	if padding < 2 {
		padding = 2
	}

	return StyleDim.Render("f:") + StyleNoun.Render(path) +
		strings.Repeat(" ", padding) + StatusStyle(status).Render(status)
}

// FormatCheckmark renders a green checkmark with a message.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
	return check + " " + msg
}
