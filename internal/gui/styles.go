package gui

import "github.com/charmbracelet/lipgloss"

// Color palette - lime accent on dark gray borders
const (
	ColorLime     = "154" // Title and spinner
	ColorWhite    = "255" // Label text
	ColorGray     = "245" // Secondary text
	ColorDarkGray = "238" // Window border
)

// Styles holds the window styles.
type Styles struct {
	Title   lipgloss.Style
	Spinner lipgloss.Style
	Label   lipgloss.Style
	Window  lipgloss.Style
}

// DefaultStyles returns colored window styles.
func DefaultStyles() Styles {
	return Styles{
		Title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorLime)),
		Spinner: lipgloss.NewStyle().Foreground(lipgloss.Color(ColorLime)),
		Label:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorWhite)).Align(lipgloss.Center),
		Window: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(ColorDarkGray)).
			Padding(0, 1),
	}
}

// NoColorStyles returns the same layout without color or emphasis.
func NoColorStyles() Styles {
	return Styles{
		Title:   lipgloss.NewStyle(),
		Spinner: lipgloss.NewStyle(),
		Label:   lipgloss.NewStyle().Align(lipgloss.Center),
		Window: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1),
	}
}

// GetStyles returns the appropriate styles based on color preference.
func GetStyles(noColor bool) Styles {
	if noColor {
		return NoColorStyles()
	}
	return DefaultStyles()
}
