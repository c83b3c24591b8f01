package common

import "github.com/charmbracelet/lipgloss"

const (
	COLOR_GREY      = "241"
	COLOR_MAGENTA   = "170"
	COLOR_LIGHTBLUE = "69"
	COLOR_PURPLE    = "#7D56F4"
	COLOR_YELLOW    = "220"
)

var (
	HelpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color(COLOR_GREY)).Padding(0, 2)
	CaptionStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color(COLOR_MAGENTA)).Padding(2)
	StatusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color(COLOR_YELLOW)).Padding(0, 2)
	SelectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(COLOR_LIGHTBLUE)).Bold(true)
	DimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color(COLOR_GREY))
)

func DefaultWindowWidth(width int) int {
	return width - 10
}

func DefaultWindowHeight(heigth int) int {
	return heigth - 10
}

func DefaultEditorWidth(width int) int {
	return width / 2
}

func DefaultListWidth(width int) int {
	return width - DefaultEditorWidth(width)
}
