package tui

import "github.com/charmbracelet/lipgloss"

// Color palette - keeping it minimal and accessible.
var (
	ColorPrimary   = lipgloss.Color("39")  // Blue
	ColorSecondary = lipgloss.Color("245") // Gray
	ColorSuccess   = lipgloss.Color("34")  // Green
	ColorWarning   = lipgloss.Color("214") // Orange
	ColorError     = lipgloss.Color("196") // Red
	ColorMuted     = lipgloss.Color("240") // Dark gray
)

// Styles for report rendering and progress display.
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary)

	// BoxStyle frames the statistics report.
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorSecondary).
			Padding(1, 2)

	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	CountStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary)

	PercentStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError)

	ProgressLabelStyle = lipgloss.NewStyle().
				Foreground(ColorMuted)
)

// priorityColors maps priority levels to display colors, most urgent
// first.
var priorityColors = map[int]lipgloss.Color{
	1: ColorError,
	2: ColorWarning,
	3: ColorPrimary,
	4: ColorSecondary,
	5: ColorMuted,
}

// PriorityStyle returns the style for a priority level.
func PriorityStyle(priority int) lipgloss.Style {
	c, ok := priorityColors[priority]
	if !ok {
		c = ColorMuted
	}
	return lipgloss.NewStyle().Foreground(c)
}

// Symbols for visual feedback.
const (
	SymbolCheck  = "✓"
	SymbolCross  = "✗"
	SymbolBullet = "•"
)
