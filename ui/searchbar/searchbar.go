package searchbar

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nvoss/quill/store"
	"github.com/nvoss/quill/ui/common"
)

type Model struct {
	TextInput textinput.Model
	store     *store.Store
}

func InitialModel(s *store.Store) Model {
	ti := textinput.New()
	ti.Placeholder = "type to filter notes"
	ti.CharLimit = 100
	ti.Width = 40
	ti.Focus()

	return Model{
		TextInput: ti,
		store:     s,
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "esc" {
		m.TextInput.SetValue("")
		m.store.SetSearchQuery("")
		return m, nil
	}

	m.TextInput, cmd = m.TextInput.Update(msg)
	m.store.SetSearchQuery(m.TextInput.Value())
	return m, cmd
}

func (m Model) View() string {
	caption := common.CaptionStyle.Render("search")
	help := common.HelpStyle.Render("matches title and content, case-insensitive • esc: clear")
	return fmt.Sprintf("%s\n\n  %s\n\n%s", caption, m.TextInput.View(), help)
}
