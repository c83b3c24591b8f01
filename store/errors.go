package store

import "errors"

// Rejected mutations. Every one of these leaves the store untouched;
// the presentation layer turns them into transient status messages.
var (
	ErrLastNote         = errors.New("cannot delete the last remaining note")
	ErrNoteNotFound     = errors.New("note not found")
	ErrPasswordRequired = errors.New("a non-empty password is required")
	ErrWrongPassword    = errors.New("wrong password")
	ErrEmptyTag         = errors.New("tag must not be empty")
)
