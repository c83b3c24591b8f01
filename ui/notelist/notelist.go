package notelist

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nvoss/quill/domain"
	"github.com/nvoss/quill/store"
	"github.com/nvoss/quill/ui/common"
)

var (
	timeStyle = lipgloss.NewStyle().
			Align(lipgloss.Left).
			Foreground(lipgloss.Color(common.COLOR_PURPLE))

	titleStyle = lipgloss.NewStyle().
			Align(lipgloss.Left).
			Foreground(lipgloss.Color(common.COLOR_LIGHTBLUE)).
			Bold(true)

	tagStyle = lipgloss.NewStyle().
			Align(lipgloss.Left).
			Foreground(lipgloss.Color(common.COLOR_MAGENTA))

	emptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true)
)

type Model struct {
	store  *store.Store
	Cursor int
	width  int
	height int
}

func NewPager(s *store.Store, width int, height int) Model {
	return Model{
		store:  s,
		Cursor: 0,
		width:  width,
		height: height,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	notes := m.store.VisibleNotes()
	m.clamp(len(notes))

	switch msg := msg.(type) {
	case common.NotesChangedMsg:
		m.clamp(len(m.store.VisibleNotes()))
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j":
			if len(notes) > 0 && m.Cursor < len(notes)-1 {
				m.Cursor++
			}
		case "enter":
			note, ok := m.selected(notes)
			if !ok {
				return m, nil
			}
			if note.Locked {
				return m, func() tea.Msg {
					return common.UnlockRequestMsg{NoteId: note.Id, NoteTitle: note.Title()}
				}
			}
			if err := m.store.SetActive(note.Id, ""); err != nil {
				return m, common.Status("could not open note: %v", err)
			}
			return m, tea.Batch(common.ActiveChanged, common.Status("opened %q", note.Title()))
		case "n":
			if _, err := m.store.Create(); err != nil {
				return m, common.Status("create failed: %v", err)
			}
			return m, tea.Batch(common.NotesChanged, common.ActiveChanged, common.Status("created a new note"))
		case "d":
			note, ok := m.selected(notes)
			if !ok {
				return m, nil
			}
			if err := m.store.Delete(note.Id); err != nil {
				return m, common.Status("delete refused: %v", err)
			}
			return m, tea.Batch(common.NotesChanged, common.ActiveChanged, common.Status("deleted %q", note.Title()))
		case "f":
			note, ok := m.selected(notes)
			if !ok {
				return m, nil
			}
			if err := m.store.ToggleFavorite(note.Id); err != nil {
				return m, common.Status("favorite toggle failed: %v", err)
			}
			return m, common.NotesChanged
		case "a":
			note, ok := m.selected(notes)
			if !ok {
				return m, nil
			}
			if err := m.store.ToggleArchive(note.Id); err != nil {
				return m, common.Status("archive toggle failed: %v", err)
			}
			return m, common.NotesChanged
		case "L":
			note, ok := m.selected(notes)
			if !ok {
				return m, nil
			}
			return m, func() tea.Msg {
				return common.LockRequestMsg{NoteId: note.Id, NoteTitle: note.Title(), Locked: note.Locked}
			}
		case "s":
			next := store.SortKey((uint(m.store.SortOption()) + 1) % 4)
			m.store.SetSortOption(next)
			return m, common.Status("sorting by %s", next)
		case "S":
			m.store.ToggleSortDirection()
			if m.store.SortAscending() {
				return m, common.Status("sort direction: ascending")
			}
			return m, common.Status("sort direction: descending")
		}
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

func (m Model) selected(notes []domain.Note) (*domain.Note, bool) {
	if len(notes) == 0 || m.Cursor >= len(notes) {
		return nil, false
	}
	return &notes[m.Cursor], true
}

func (m Model) View() string {
	var s strings.Builder

	notes := m.store.VisibleNotes()
	active := m.store.ActiveNote()

	s.WriteString(common.CaptionStyle.Render(fmt.Sprintf("notes (%d of %d shown, sort: %s)",
		len(notes), m.store.Len(), m.store.SortOption())))
	s.WriteString("\n\n")

	if len(notes) == 0 {
		s.WriteString(emptyStyle.Render("No notes match.\nAdjust the search or the tag filter."))
		return s.String()
	}

	itemsPerPage := 8
	start := 0
	if m.Cursor >= itemsPerPage {
		start = m.Cursor - itemsPerPage + 1
	}
	end := start + itemsPerPage
	if end > len(notes) {
		end = len(notes)
	}

	for i := start; i < end; i++ {
		note := notes[i]

		cursor := "  "
		if i == m.Cursor {
			cursor = "> "
		}

		title := note.Title()
		if note.Locked {
			title = title + " [locked]"
		}
		if note.Archived {
			title = title + " [archived]"
		}
		if note.Favorite {
			title = "* " + title
		}
		if note.Id == active.Id {
			title = title + " (active)"
		}

		timeStr := timeStyle.Render(formatTime(note.LastModified))
		titleStr := titleStyle.Render(cursor + title)
		var detail string
		if len(note.Tags) > 0 {
			detail = tagStyle.Render("#" + strings.Join(note.Tags, " #"))
		}

		noteContent := lipgloss.JoinVertical(lipgloss.Left, titleStr, timeStr, detail)
		s.WriteString(noteContent)
		s.WriteString("\n\n")
	}

	return s.String()
}

func formatTime(t time.Time) string {
	duration := time.Since(t)

	if duration < time.Minute {
		return "just now"
	} else if duration < time.Hour {
		mins := int(duration.Minutes())
		return fmt.Sprintf("%dm ago", mins)
	} else if duration < 24*time.Hour {
		hours := int(duration.Hours())
		return fmt.Sprintf("%dh ago", hours)
	} else {
		days := int(duration.Hours() / 24)
		return fmt.Sprintf("%dd ago", days)
	}
}
