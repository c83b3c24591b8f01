package common

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

type SessionState uint

const (
	EditorView SessionState = iota
	ListNotesView
	SearchView
	TagsView
	UnlockView
)

// NotesChangedMsg tells widgets the collection changed and derived
// views need a re-read.
type NotesChangedMsg struct{}

// ActiveChangedMsg tells the editor to reload the active note into its
// textarea buffer.
type ActiveChangedMsg struct{}

// StatusMsg is a transient status line; the main model auto-dismisses it.
type StatusMsg string

// ClearStatusMsg removes the current status line.
type ClearStatusMsg struct{}

// UnlockRequestMsg asks the main model for a password prompt before a
// locked note may become active.
type UnlockRequestMsg struct {
	NoteId    string
	NoteTitle string
}

// LockRequestMsg asks the main model for a password prompt to lock or
// unlock a note.
type LockRequestMsg struct {
	NoteId    string
	NoteTitle string
	Locked    bool
}

// PromptDoneMsg closes the password prompt and returns to the list.
type PromptDoneMsg struct{}

// Status wraps a formatted status message into a command.
func Status(format string, a ...interface{}) tea.Cmd {
	return func() tea.Msg {
		return StatusMsg(fmt.Sprintf(format, a...))
	}
}

func NotesChanged() tea.Msg  { return NotesChangedMsg{} }
func ActiveChanged() tea.Msg { return ActiveChangedMsg{} }
