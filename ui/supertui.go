package ui

import (
	"fmt"
	"os"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nvoss/quill/domain"
	"github.com/nvoss/quill/store"
	"github.com/nvoss/quill/ui/common"
	"github.com/nvoss/quill/ui/editor"
	"github.com/nvoss/quill/ui/header"
	"github.com/nvoss/quill/ui/notelist"
	"github.com/nvoss/quill/ui/searchbar"
	"github.com/nvoss/quill/ui/tagbar"
	"github.com/nvoss/quill/ui/unlock"
	"github.com/nvoss/quill/util"
)

const statusTimeout = 3 * time.Second

var (
	modelStyle = lipgloss.NewStyle().
			Align(lipgloss.Top, lipgloss.Top).
			BorderStyle(lipgloss.HiddenBorder()).MarginLeft(1)
	focusedModelStyle = lipgloss.NewStyle().
				Align(lipgloss.Top, lipgloss.Top).
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(lipgloss.Color(common.COLOR_LIGHTBLUE)).MarginLeft(1)
)

type MainModel struct {
	width  int
	height int
	store  *store.Store
	state  common.SessionState

	headerModel header.Model
	editorModel editor.Model
	listModel   notelist.Model
	searchModel searchbar.Model
	tagsModel   tagbar.Model
	unlockModel unlock.Model

	status string
}

func NewModel(s *store.Store, width int, height int, initialStatus string) MainModel {
	width = common.DefaultWindowWidth(width)
	height = common.DefaultWindowHeight(height)

	m := MainModel{
		width:  width,
		height: height,
		store:  s,
		state:  common.ListNotesView,
		status: initialStatus,
	}
	m.headerModel = header.Model{Width: width, Store: s, Status: initialStatus}
	m.editorModel = editor.InitialModel(s, width)
	m.listModel = notelist.NewPager(s, width, height)
	m.searchModel = searchbar.InitialModel(s)
	m.tagsModel = tagbar.InitialModel(s)
	return m
}

func (m MainModel) Init() tea.Cmd {
	cmds := []tea.Cmd{m.editorModel.Init()}
	if m.status != "" {
		cmds = append(cmds, clearStatusLater())
	}
	return tea.Batch(cmds...)
}

func clearStatusLater() tea.Cmd {
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg {
		return common.ClearStatusMsg{}
	})
}

// copyNoteCmd puts the note's content on the system clipboard. Failures
// are caught locally and reported as a status.
func copyNoteCmd(note *domain.Note) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(note.Content); err != nil {
			return common.StatusMsg(fmt.Sprintf("clipboard copy failed: %v", err))
		}
		return common.StatusMsg(fmt.Sprintf("copied %q to clipboard", note.Title()))
	}
}

// exportNoteCmd writes the note's content to a text file named after the
// sanitized title and the current date.
func exportNoteCmd(note *domain.Note) tea.Cmd {
	return func() tea.Msg {
		filename := util.ExportFilename(note.Title(), time.Now())
		if err := os.WriteFile(filename, []byte(note.Content), 0644); err != nil {
			return common.StatusMsg(fmt.Sprintf("export failed: %v", err))
		}
		return common.StatusMsg(fmt.Sprintf("exported to %s", filename))
	}
}

func (m MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.headerModel.Width = msg.Width
		return m, nil

	case common.StatusMsg:
		m.status = string(msg)
		m.headerModel.Status = m.status
		return m, clearStatusLater()

	case common.ClearStatusMsg:
		m.status = ""
		m.headerModel.Status = ""
		return m, nil

	case common.UnlockRequestMsg:
		m.unlockModel = unlock.InitialModel(m.store, msg.NoteId, msg.NoteTitle, unlock.Activate)
		m.state = common.UnlockView
		return m, m.unlockModel.Init()

	case common.LockRequestMsg:
		m.unlockModel = unlock.InitialModel(m.store, msg.NoteId, msg.NoteTitle, unlock.ToggleLock)
		m.state = common.UnlockView
		return m, m.unlockModel.Init()

	case common.PromptDoneMsg:
		m.state = common.ListNotesView
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "tab":
			if m.state != common.UnlockView {
				switch m.state {
				case common.EditorView:
					m.state = common.ListNotesView
				case common.ListNotesView:
					m.state = common.SearchView
				case common.SearchView:
					m.state = common.TagsView
				case common.TagsView:
					m.state = common.EditorView
				}
				return m, nil
			}
		case "shift+tab":
			if m.state != common.UnlockView {
				switch m.state {
				case common.EditorView:
					m.state = common.TagsView
				case common.ListNotesView:
					m.state = common.EditorView
				case common.SearchView:
					m.state = common.ListNotesView
				case common.TagsView:
					m.state = common.SearchView
				}
				return m, nil
			}
		case "ctrl+n":
			if _, err := m.store.Create(); err != nil {
				return m, common.Status("create failed: %v", err)
			}
			m.state = common.EditorView
			return m, tea.Batch(common.NotesChanged, common.ActiveChanged, common.Status("created a new note"))
		case "ctrl+y":
			return m, copyNoteCmd(m.store.ActiveNote())
		case "ctrl+x":
			return m, exportNoteCmd(m.store.ActiveNote())
		}
	}

	// Route non-keyboard messages to all sub-models so reload messages
	// reach their destination; keyboard input goes to the focused view
	// only.
	if _, isKey := msg.(tea.KeyMsg); !isKey {
		m.editorModel, cmd = m.editorModel.Update(msg)
		cmds = append(cmds, cmd)
		m.listModel, cmd = m.listModel.Update(msg)
		cmds = append(cmds, cmd)
		m.tagsModel, cmd = m.tagsModel.Update(msg)
		cmds = append(cmds, cmd)
		m.searchModel, cmd = m.searchModel.Update(msg)
		cmds = append(cmds, cmd)
		if m.state == common.UnlockView {
			m.unlockModel, cmd = m.unlockModel.Update(msg)
			cmds = append(cmds, cmd)
		}
	} else {
		switch m.state {
		case common.EditorView:
			m.editorModel, cmd = m.editorModel.Update(msg)
		case common.ListNotesView:
			m.listModel, cmd = m.listModel.Update(msg)
		case common.SearchView:
			m.searchModel, cmd = m.searchModel.Update(msg)
		case common.TagsView:
			m.tagsModel, cmd = m.tagsModel.Update(msg)
		case common.UnlockView:
			m.unlockModel, cmd = m.unlockModel.Update(msg)
		}
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m MainModel) View() string {
	if m.state == common.UnlockView {
		prompt := m.unlockModel.View()
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, prompt)
	}

	availableHeight := m.height - 10
	leftPanelWidth := m.width / 2
	rightPanelWidth := m.width - leftPanelWidth - 6

	editorStr := lipgloss.NewStyle().
		MaxHeight(availableHeight).
		Height(availableHeight).
		Width(leftPanelWidth).
		MaxWidth(leftPanelWidth).
		Render(m.editorModel.View())

	var rightView string
	switch m.state {
	case common.SearchView:
		rightView = m.searchModel.View()
	case common.TagsView:
		rightView = m.tagsModel.View()
	default:
		rightView = m.listModel.View()
	}

	rightStr := lipgloss.NewStyle().
		MaxHeight(availableHeight).
		Height(availableHeight).
		Width(rightPanelWidth).
		MaxWidth(rightPanelWidth).
		Margin(1).
		Render(rightView)

	s := m.headerModel.View() + "\n"

	if m.state == common.EditorView {
		s += lipgloss.JoinHorizontal(lipgloss.Top,
			focusedModelStyle.Render(editorStr),
			modelStyle.Render(rightStr))
	} else {
		s += lipgloss.JoinHorizontal(lipgloss.Top,
			modelStyle.Render(editorStr),
			focusedModelStyle.Render(rightStr))
	}

	var viewCommands string
	switch m.state {
	case common.EditorView:
		viewCommands = "ctrl+s: save • ctrl+z/ctrl+r: undo/redo • alt+b/i/u: style"
	case common.ListNotesView:
		viewCommands = "↑/↓: select • enter: open • n: new • d: delete • f: favorite • a: archive • L: lock • s/S: sort"
	case common.SearchView:
		viewCommands = "type to filter • esc: clear"
	case common.TagsView:
		viewCommands = "←/→: move • enter: filter • a: add • x: remove"
	}

	s += common.HelpStyle.Render(fmt.Sprintf(
		"focused > %s\t\tkeys > tab: next • shift+tab: prev • ctrl+n: new • ctrl+y: copy • ctrl+x: export • %s • ctrl-c: exit",
		m.currentFocusedModel(), viewCommands))
	return s
}

func (m MainModel) currentFocusedModel() string {
	switch m.state {
	case common.EditorView:
		return "editor"
	case common.ListNotesView:
		return "notes list"
	case common.SearchView:
		return "search"
	case common.TagsView:
		return "tags"
	default:
		return "unlock"
	}
}
