package unlock

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nvoss/quill/store"
	"github.com/nvoss/quill/ui/common"
)

var Style = lipgloss.NewStyle().
	Align(lipgloss.Center, lipgloss.Center).
	BorderStyle(lipgloss.ThickBorder()).
	Padding(1, 3).
	Margin(0, 3)

// Purpose selects what the entered password is used for.
type Purpose uint

const (
	// Activate passes the lock gate so the note may become active.
	Activate Purpose = iota
	// ToggleLock locks an unlocked note or unlocks a locked one.
	ToggleLock
)

type Model struct {
	TextInput textinput.Model
	store     *store.Store
	noteId    string
	noteTitle string
	purpose   Purpose
}

func InitialModel(s *store.Store, noteId, noteTitle string, purpose Purpose) Model {
	ti := textinput.New()
	ti.Placeholder = "password"
	ti.EchoMode = textinput.EchoPassword
	ti.CharLimit = 50
	ti.Width = 30
	ti.Focus()

	return Model{
		TextInput: ti,
		store:     s,
		noteId:    noteId,
		noteTitle: noteTitle,
		purpose:   purpose,
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			return m, m.submit()
		case "esc":
			return m, func() tea.Msg { return common.PromptDoneMsg{} }
		}
	}

	m.TextInput, cmd = m.TextInput.Update(msg)
	return m, cmd
}

func (m Model) submit() tea.Cmd {
	password := m.TextInput.Value()
	done := func() tea.Msg { return common.PromptDoneMsg{} }

	switch m.purpose {
	case ToggleLock:
		if err := m.store.ToggleLock(m.noteId, password); err != nil {
			return tea.Batch(done, common.Status("lock toggle rejected: %v", err))
		}
		return tea.Batch(done, common.NotesChanged, common.Status("lock toggled on %q", m.noteTitle))
	default: // Activate
		if err := m.store.SetActive(m.noteId, password); err != nil {
			return tea.Batch(done, common.Status("note stays closed: %v", err))
		}
		return tea.Batch(done, common.NotesChanged, common.ActiveChanged, common.Status("opened %q", m.noteTitle))
	}
}

func (m Model) View() string {
	var prompt string
	switch m.purpose {
	case ToggleLock:
		prompt = fmt.Sprintf("Password to lock or unlock %q:", m.noteTitle)
	default:
		prompt = fmt.Sprintf("%q is locked. Password:", m.noteTitle)
	}

	body := fmt.Sprintf("%s\n\n%s\n\n%s", prompt, m.TextInput.View(),
		"(enter to confirm, esc to cancel)")
	return Style.Render(body)
}
