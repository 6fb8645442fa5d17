package output

import "github.com/charmbracelet/lipgloss"

const descriptionWidth = 72

var (
	colorError   = lipgloss.Color("#FF5252")
	colorWarning = lipgloss.Color("#FFD700")
	colorOK      = lipgloss.Color("#00E676")
	colorHeading = lipgloss.Color("#00BFFF")
	colorMuted   = lipgloss.Color("#8C8C8C")
)

var (
	styleHeading = lipgloss.NewStyle().Bold(true).Foreground(colorHeading)
	styleError   = lipgloss.NewStyle().Bold(true).Foreground(colorError)
	styleWarning = lipgloss.NewStyle().Bold(true).Foreground(colorWarning)
	styleOK      = lipgloss.NewStyle().Bold(true).Foreground(colorOK)
	styleMuted   = lipgloss.NewStyle().Foreground(colorMuted)
	styleAdded   = lipgloss.NewStyle().Foreground(colorError)
	styleRemoved = lipgloss.NewStyle().Foreground(colorOK)
	styleChanged = lipgloss.NewStyle().Foreground(colorWarning)

	styleParagraph = lipgloss.NewStyle().Width(descriptionWidth)
)
