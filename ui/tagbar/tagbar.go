package tagbar

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nvoss/quill/store"
	"github.com/nvoss/quill/ui/common"
)

// Model drives the tag facet filter and tag edits on the active note.
type Model struct {
	store  *store.Store
	Cursor int
	adding bool
	input  textinput.Model
}

func InitialModel(s *store.Store) Model {
	ti := textinput.New()
	ti.Placeholder = "new tag"
	ti.CharLimit = 30
	ti.Width = 20

	return Model{
		store: s,
		input: ti,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	tags := m.store.AllTags()
	m.clamp(len(tags))

	key, isKey := msg.(tea.KeyMsg)

	if m.adding {
		if isKey {
			switch key.String() {
			case "enter":
				m.adding = false
				value := m.input.Value()
				m.input.SetValue("")
				active := m.store.ActiveNote()
				if err := m.store.AddTag(active.Id, value); err != nil {
					return m, common.Status("tag rejected: %v", err)
				}
				return m, tea.Batch(common.NotesChanged, common.Status("tagged %q", active.Title()))
			case "esc":
				m.adding = false
				m.input.SetValue("")
				return m, nil
			}
		}
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	if !isKey {
		return m, nil
	}

	switch key.String() {
	case "left", "h":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "right", "l":
		if len(tags) > 0 && m.Cursor < len(tags)-1 {
			m.Cursor++
		}
	case "enter", " ":
		if len(tags) == 0 {
			return m, nil
		}
		m.store.ToggleSelectedTag(tags[m.Cursor])
		return m, common.NotesChanged
	case "c":
		m.store.SetSelectedTags(nil)
		return m, tea.Batch(common.NotesChanged, common.Status("tag filter cleared"))
	case "a":
		m.adding = true
		return m, m.input.Focus()
	case "x":
		if len(tags) == 0 {
			return m, nil
		}
		active := m.store.ActiveNote()
		tag := tags[m.Cursor]
		if !active.HasTag(tag) {
			return m, common.Status("%q does not carry #%s", active.Title(), tag)
		}
		if err := m.store.RemoveTag(active.Id, tag); err != nil {
			return m, common.Status("untag failed: %v", err)
		}
		return m, tea.Batch(common.NotesChanged, common.Status("removed #%s from %q", tag, active.Title()))
	}

	return m, nil
}

func (m *Model) clamp(n int) {
	if m.Cursor >= n {
		m.Cursor = n - 1
	}
	if m.Cursor < 0 {
		m.Cursor = 0
	}
}

func (m Model) View() string {
	var s strings.Builder

	tags := m.store.AllTags()
	selected := m.store.SelectedTags()
	active := m.store.ActiveNote()

	s.WriteString(common.CaptionStyle.Render(fmt.Sprintf("tags (%d)", len(tags))))
	s.WriteString("\n\n  ")

	if len(tags) == 0 {
		s.WriteString(common.DimStyle.Render("no tags yet, press a to tag the active note"))
	}

	isSelected := map[string]bool{}
	for _, t := range selected {
		isSelected[t] = true
	}

	for i, tag := range tags {
		chip := "#" + tag
		if isSelected[tag] {
			chip = "[" + chip + "]"
		}
		if i == m.Cursor {
			chip = common.SelectedStyle.Render(chip)
		} else {
			chip = common.DimStyle.Render(chip)
		}
		s.WriteString(chip)
		s.WriteString("  ")
	}

	s.WriteString("\n\n")
	s.WriteString(common.HelpStyle.Render(fmt.Sprintf("active note: %s", strings.Join(active.Tags, ", "))))
	s.WriteString("\n\n")

	if m.adding {
		s.WriteString("  " + m.input.View() + "\n\n")
		s.WriteString(common.HelpStyle.Render("enter: add tag to active note • esc: cancel"))
	} else {
		s.WriteString(common.HelpStyle.Render("←/→: move • enter: toggle filter • a: add • x: remove • c: clear filter"))
	}

	return s.String()
}
