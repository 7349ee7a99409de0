package preview

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00F5FF"))

	onStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#34C759"))

	offStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF3B30"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)
