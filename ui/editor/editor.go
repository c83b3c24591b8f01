package editor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nvoss/quill/domain"
	"github.com/nvoss/quill/store"
	"github.com/nvoss/quill/ui/common"
)

type Model struct {
	Textarea textarea.Model
	store    *store.Store
	noteId   string
	width    int
}

func InitialModel(s *store.Store, contentWidth int) Model {
	ti := textarea.New()
	ti.Placeholder = "start typing"
	ti.ShowLineNumbers = false
	ti.CharLimit = 0
	ti.SetWidth(common.DefaultEditorWidth(contentWidth))

	m := Model{
		Textarea: ti,
		store:    s,
		width:    contentWidth,
	}
	m.loadActive()
	return m
}

// loadActive pulls the active note's content into the textarea buffer.
func (m *Model) loadActive() {
	note := m.store.ActiveNote()
	m.noteId = note.Id
	m.Textarea.SetValue(note.Content)
}

func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case common.ActiveChangedMsg:
		m.loadActive()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+s":
			if err := m.store.Edit(m.Textarea.Value()); err != nil {
				return m, common.Status("save failed: %v", err)
			}
			return m, tea.Batch(common.NotesChanged, common.Status("note saved"))
		case "ctrl+z":
			if !m.store.CanUndo() {
				return m, nil
			}
			if err := m.store.Undo(); err != nil {
				return m, common.Status("undo failed: %v", err)
			}
			m.loadActive()
			return m, tea.Batch(common.NotesChanged, common.Status("undid last edit"))
		case "ctrl+r":
			if !m.store.CanRedo() {
				return m, nil
			}
			if err := m.store.Redo(); err != nil {
				return m, common.Status("redo failed: %v", err)
			}
			m.loadActive()
			return m, tea.Batch(common.NotesChanged, common.Status("redid edit"))
		case "alt+b":
			return m, m.toggleFormat(domain.FormatBold)
		case "alt+i":
			return m, m.toggleFormat(domain.FormatItalic)
		case "alt+u":
			return m, m.toggleFormat(domain.FormatUnderline)
		default:
			if !m.Textarea.Focused() {
				cmd = m.Textarea.Focus()
				cmds = append(cmds, cmd)
			}
		}
	}

	m.Textarea, cmd = m.Textarea.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m Model) toggleFormat(kind domain.FormatKind) tea.Cmd {
	if err := m.store.ToggleFormat(m.noteId, kind); err != nil {
		return common.Status("format toggle failed: %v", err)
	}
	return common.NotesChanged
}

// formatFlags renders the whole-note style indicator, e.g. "[B] [I]".
func formatFlags(n *domain.Note) string {
	var flags []string
	if n.Bold {
		flags = append(flags, "[B]")
	}
	if n.Italic {
		flags = append(flags, "[I]")
	}
	if n.Underline {
		flags = append(flags, "[U]")
	}
	if len(flags) == 0 {
		return ""
	}
	return " " + strings.Join(flags, " ")
}

func (m Model) View() string {
	note := m.store.ActiveNote()

	caption := common.CaptionStyle.PaddingLeft(7).Render(
		fmt.Sprintf("editing: %s%s", note.Title(), formatFlags(note)))
	styledTextarea := lipgloss.NewStyle().PaddingLeft(5).PaddingRight(5).Margin(2).Render(m.Textarea.View())
	help := common.HelpStyle.PaddingLeft(7).Render(
		fmt.Sprintf("%d words, %d chars\n\nsave: ctrl+s • undo: ctrl+z • redo: ctrl+r • style: alt+b/i/u",
			note.WordCount(), note.CharCount()))

	return fmt.Sprintf("%s\n\n%s\n\n%s", caption, styledTextarea, help)
}
