package header

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nvoss/quill/store"
	"github.com/nvoss/quill/ui/common"
	"github.com/nvoss/quill/util"
)

type Model struct {
	Width  int
	Store  *store.Store
	Status string
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(tea.Msg) (Model, tea.Cmd) {
	return m, nil
}

func (m Model) View() string {
	active := m.Store.ActiveNote()

	overhead := 12
	availableWidth := m.Width - overhead
	if availableWidth < 40 {
		availableWidth = 40
	}

	nameWidth := availableWidth / 4
	countsWidth := availableWidth / 4
	titleWidth := availableWidth - nameWidth - countsWidth

	name := lipgloss.
		NewStyle().
		SetString(util.GetNameAndVersion()).
		Align(lipgloss.Left).
		Background(lipgloss.Color(common.COLOR_PURPLE)).
		Padding(1).
		Height(2).
		Width(nameWidth).
		Border(lipgloss.NormalBorder(), true, false, true, false).
		BorderForeground(lipgloss.Color(common.COLOR_MAGENTA)).
		String()

	title := lipgloss.
		NewStyle().
		SetString(active.Title()).
		Background(lipgloss.Color(common.COLOR_GREY)).
		Padding(1).
		Height(2).
		Width(titleWidth).
		Border(lipgloss.NormalBorder(), true, false, true, false).
		BorderForeground(lipgloss.Color(common.COLOR_MAGENTA)).
		String()

	counts := lipgloss.
		NewStyle().
		SetString(fmt.Sprintf("%d words / %d chars", active.WordCount(), active.CharCount())).
		Background(lipgloss.Color(common.COLOR_MAGENTA)).
		Padding(1).
		Align(lipgloss.Left).
		Height(2).
		Width(countsWidth).
		Border(lipgloss.NormalBorder(), true, false, true, false).
		BorderForeground(lipgloss.Color(common.COLOR_MAGENTA)).
		String()

	bar := lipgloss.JoinHorizontal(lipgloss.Left, name, title, counts)

	if m.Status != "" {
		return bar + "\n" + common.StatusStyle.Render(m.Status)
	}
	return bar
}
