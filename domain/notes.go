package domain

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

const (
	// TitleMaxLen caps the derived title length in runes.
	TitleMaxLen = 50

	UntitledTitle = "Untitled"
	FreshTitle    = "New Note"
)

// FormatKind selects one of the whole-note style flags.
type FormatKind uint

const (
	FormatBold FormatKind = iota
	FormatItalic
	FormatUnderline
)

// Note is a single text note. Title is derived from Content, never stored.
type Note struct {
	Id           string    `json:"id"`
	Content      string    `json:"content"`
	LastModified time.Time `json:"lastModified"`
	Favorite     bool      `json:"favorite"`
	Tags         []string  `json:"tags"`
	Bold         bool      `json:"bold"`
	Italic       bool      `json:"italic"`
	Underline    bool      `json:"underline"`
	Locked       bool      `json:"isLocked"`
	Password     string    `json:"password,omitempty"`
	Archived     bool      `json:"isArchived"`
	Version      int       `json:"version"`
	History      []string  `json:"history"`
}

// Collection is the serialization unit for persistence: all notes plus
// the active pointer.
type Collection struct {
	Notes    []Note `json:"notes"`
	ActiveId string `json:"activeId"`
}

// NewId returns a fresh note id. The zero-padded unix-milli prefix makes
// lexicographic id order equal creation order; the uuid suffix keeps ids
// unique within the same millisecond.
func NewId() string {
	return fmt.Sprintf("%016d-%s", time.Now().UnixMilli(), uuid.NewString()[:8])
}

// NewNote returns an empty note with a fresh id, version 1 and no history.
func NewNote() Note {
	return Note{
		Id:           NewId(),
		Content:      "",
		LastModified: time.Now(),
		Tags:         []string{},
		Version:      1,
		History:      []string{},
	}
}

// Title derives the display title from the first content line, capped at
// TitleMaxLen runes. A blank first line yields "New Note" for a note that
// was never edited and "Untitled" otherwise.
func (n *Note) Title() string {
	line := n.Content
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	}
	if strings.TrimSpace(line) == "" {
		if n.Version == 1 {
			return FreshTitle
		}
		return UntitledTitle
	}
	if utf8.RuneCountInString(line) > TitleMaxLen {
		return string([]rune(line)[:TitleMaxLen])
	}
	return line
}

// WordCount returns the number of whitespace-separated words in Content.
func (n *Note) WordCount() int {
	return len(strings.Fields(n.Content))
}

// CharCount returns the number of runes in Content.
func (n *Note) CharCount() int {
	return utf8.RuneCountInString(n.Content)
}

func (n *Note) HasTag(tag string) bool {
	for _, t := range n.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// MatchesTags reports whether the note carries every selected tag.
// An empty selection matches all notes.
func (n *Note) MatchesTags(selected []string) bool {
	for _, tag := range selected {
		if !n.HasTag(tag) {
			return false
		}
	}
	return true
}

// MatchesSearch reports whether the search text appears in the title or
// content, case-insensitively. Empty search matches all notes.
func (n *Note) MatchesSearch(search string) bool {
	if search == "" {
		return true
	}
	q := strings.ToLower(search)
	return strings.Contains(strings.ToLower(n.Title()), q) ||
		strings.Contains(strings.ToLower(n.Content), q)
}

func (n *Note) Format(kind FormatKind) bool {
	switch kind {
	case FormatBold:
		return n.Bold
	case FormatItalic:
		return n.Italic
	case FormatUnderline:
		return n.Underline
	}
	return false
}

func (n *Note) SetFormat(kind FormatKind, on bool) {
	switch kind {
	case FormatBold:
		n.Bold = on
	case FormatItalic:
		n.Italic = on
	case FormatUnderline:
		n.Underline = on
	}
}

// Clone returns a deep copy of the note.
func (n *Note) Clone() Note {
	c := *n
	c.Tags = append([]string{}, n.Tags...)
	c.History = append([]string{}, n.History...)
	return c
}

// Clone returns a deep copy of the collection.
func (c *Collection) Clone() *Collection {
	notes := make([]Note, len(c.Notes))
	for i := range c.Notes {
		notes[i] = c.Notes[i].Clone()
	}
	return &Collection{Notes: notes, ActiveId: c.ActiveId}
}

func (n *Note) ToString() string {
	return fmt.Sprintf("\n\tId: %s \n\tTitle: %s \n\tTags: %s \n\tLastModified: %s",
		n.Id, n.Title(), strings.Join(n.Tags, ", "), n.LastModified)
}
