package domain

const welcomeContent = `Welcome to Quill
This is your first note. A few things to try:
- press n in the notes list to create a new note
- edit here and save with ctrl+s
- tag notes and filter by tag
- lock a note with a password to keep it away from curious eyes`

// Seed returns the initial collection used when no stored state exists:
// a single welcome note, set active.
func Seed() *Collection {
	note := NewNote()
	note.Content = welcomeContent
	return &Collection{
		Notes:    []Note{note},
		ActiveId: note.Id,
	}
}
