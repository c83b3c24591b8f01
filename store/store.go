package store

import (
	"fmt"
	"strings"
	"time"

	"github.com/nvoss/quill/domain"
)

// Persister is called with a fresh collection snapshot after every
// mutation. Persistence is best-effort: a failing save never rolls the
// mutation back.
type Persister interface {
	Save(c *domain.Collection) error
}

// Store owns the note collection, the active-note pointer and all
// mutation and query operations. Every mutation replaces the collection
// with a new snapshot, so retained notes are never modified in place.
// All methods are meant to be driven from a single event loop.
type Store struct {
	notes    []domain.Note
	activeId string

	search       string
	selectedTags []string
	sortKey      SortKey
	sortAsc      bool

	history  *historyArena
	persist  Persister
	revision uint64
	cache    queryCache
}

// New builds a store over the given collection. The persister may be nil
// (nothing is saved then). An empty collection gets a fresh note so the
// never-empty invariant holds from the start.
func New(col *domain.Collection, persist Persister) *Store {
	s := &Store{
		sortKey: SortModified,
		history: newHistoryArena(),
		persist: persist,
	}
	if col != nil {
		snapshot := col.Clone()
		s.notes = snapshot.Notes
		s.activeId = snapshot.ActiveId
	}
	if len(s.notes) == 0 {
		s.notes = []domain.Note{domain.NewNote()}
	}
	if s.findIdx(s.activeId) < 0 {
		s.activeId = s.notes[0].Id
	}
	return s
}

// Create appends a new empty note and makes it active.
func (s *Store) Create() (string, error) {
	notes := cloneNotes(s.notes)
	note := domain.NewNote()
	notes = append(notes, note)
	s.notes = notes
	s.activeId = note.Id
	return note.Id, s.commit()
}

// Delete removes the note. Deleting the last remaining note is refused.
// If the deleted note was active, the first remaining note becomes active.
func (s *Store) Delete(id string) error {
	if len(s.notes) == 1 {
		return ErrLastNote
	}
	idx := s.findIdx(id)
	if idx < 0 {
		return ErrNoteNotFound
	}
	notes := cloneNotes(s.notes)
	notes = append(notes[:idx], notes[idx+1:]...)
	s.notes = notes
	if s.activeId == id {
		s.activeId = s.notes[0].Id
	}
	s.history.drop(id)
	return s.commit()
}

func (s *Store) ToggleFavorite(id string) error {
	return s.update(id, func(n *domain.Note) error {
		n.Favorite = !n.Favorite
		return nil
	})
}

func (s *Store) ToggleArchive(id string) error {
	return s.update(id, func(n *domain.Note) error {
		n.Archived = !n.Archived
		return nil
	})
}

// ToggleLock locks the note with the supplied password, or unlocks it
// when the password matches the stored one. An empty password rejects
// the toggle in both directions.
func (s *Store) ToggleLock(id string, password string) error {
	if strings.TrimSpace(password) == "" {
		return ErrPasswordRequired
	}
	return s.update(id, func(n *domain.Note) error {
		if n.Locked {
			if n.Password != password {
				return ErrWrongPassword
			}
			n.Locked = false
			n.Password = ""
			return nil
		}
		n.Locked = true
		n.Password = password
		return nil
	})
}

// SetActive switches the active note. A locked note requires the
// matching password; on a wrong or missing password the previously
// active note stays active.
func (s *Store) SetActive(id string, password string) error {
	idx := s.findIdx(id)
	if idx < 0 {
		return ErrNoteNotFound
	}
	note := &s.notes[idx]
	if note.Locked && note.Password != password {
		return ErrWrongPassword
	}
	if s.activeId == id {
		return nil
	}
	s.activeId = id
	return s.commit()
}

// AddTag attaches a tag to the note. Tags are trimmed and deduplicated;
// display order is insertion order.
func (s *Store) AddTag(id string, tag string) error {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return ErrEmptyTag
	}
	return s.update(id, func(n *domain.Note) error {
		if n.HasTag(tag) {
			return nil
		}
		n.Tags = append(n.Tags, tag)
		return nil
	})
}

func (s *Store) RemoveTag(id string, tag string) error {
	return s.update(id, func(n *domain.Note) error {
		for i, t := range n.Tags {
			if t == tag {
				n.Tags = append(n.Tags[:i], n.Tags[i+1:]...)
				return nil
			}
		}
		return nil
	})
}

func (s *Store) ToggleFormat(id string, kind domain.FormatKind) error {
	return s.update(id, func(n *domain.Note) error {
		n.SetFormat(kind, !n.Format(kind))
		return nil
	})
}

// Edit replaces the active note's content. The pre-edit content goes on
// the note's undo stack and into its permanent history log, the redo
// stack is cleared and the version counter bumped. This is the only
// operation that touches Version and History.
func (s *Store) Edit(newContent string) error {
	idx := s.activeIdx()
	return s.update(s.notes[idx].Id, func(n *domain.Note) error {
		prev := n.Content
		s.history.of(n.Id).recordEdit(prev)
		n.Content = newContent
		n.Version++
		n.History = append(n.History, prev)
		n.LastModified = time.Now()
		return nil
	})
}

// Undo steps the active note's content one edit back. No-op when there
// is nothing to undo. Version and History are left untouched.
func (s *Store) Undo() error {
	idx := s.activeIdx()
	h := s.history.of(s.notes[idx].Id)
	return s.update(s.notes[idx].Id, func(n *domain.Note) error {
		prev, ok := h.stepBack(n.Content)
		if !ok {
			return nil
		}
		n.Content = prev
		n.LastModified = time.Now()
		return nil
	})
}

// Redo steps the active note's content one undone edit forward.
func (s *Store) Redo() error {
	idx := s.activeIdx()
	h := s.history.of(s.notes[idx].Id)
	return s.update(s.notes[idx].Id, func(n *domain.Note) error {
		next, ok := h.stepForward(n.Content)
		if !ok {
			return nil
		}
		n.Content = next
		n.LastModified = time.Now()
		return nil
	})
}

func (s *Store) CanUndo() bool {
	return s.history.of(s.activeId).canUndo()
}

func (s *Store) CanRedo() bool {
	return s.history.of(s.activeId).canRedo()
}

// Query state. These only steer the derived view, so nothing is
// persisted; the memo cache keys on their values.

func (s *Store) SetSearchQuery(q string) { s.search = q }
func (s *Store) SearchQuery() string     { return s.search }

func (s *Store) SetSelectedTags(tags []string) {
	s.selectedTags = append([]string{}, tags...)
}

func (s *Store) SelectedTags() []string {
	return append([]string{}, s.selectedTags...)
}

// ToggleSelectedTag adds the tag to the facet selection, or removes it
// when already selected.
func (s *Store) ToggleSelectedTag(tag string) {
	for i, t := range s.selectedTags {
		if t == tag {
			s.selectedTags = append(s.selectedTags[:i], s.selectedTags[i+1:]...)
			return
		}
	}
	s.selectedTags = append(s.selectedTags, tag)
}

func (s *Store) SetSortOption(key SortKey) { s.sortKey = key }
func (s *Store) SortOption() SortKey       { return s.sortKey }

func (s *Store) SetSortDirection(asc bool) { s.sortAsc = asc }
func (s *Store) SortAscending() bool       { return s.sortAsc }

func (s *Store) ToggleSortDirection() { s.sortAsc = !s.sortAsc }

// Derived views.

// ActiveNote returns a copy of the active note. The active pointer
// always resolves; it falls back to the first note if it went stale.
func (s *Store) ActiveNote() *domain.Note {
	note := s.notes[s.activeIdx()].Clone()
	return &note
}

// AllTags returns the lexicographically sorted set of all distinct tags
// across all notes.
func (s *Store) AllTags() []string {
	return tagUniverse(s.notes)
}

// VisibleNotes runs the filter+sort pipeline. The result is memoized and
// recomputed only when the collection, search text, selected tags, sort
// key or sort direction changed.
func (s *Store) VisibleNotes() []domain.Note {
	key := queryKey{
		revision: s.revision,
		search:   s.search,
		tags:     strings.Join(s.selectedTags, "\x1f"),
		sortKey:  s.sortKey,
		sortAsc:  s.sortAsc,
	}
	if s.cache.valid && s.cache.key == key {
		s.cache.hits++
		return s.cache.result
	}
	result := filterNotes(s.notes, s.search, s.selectedTags)
	sortNotes(result, s.sortKey, s.sortAsc)
	s.cache = queryCache{valid: true, key: key, result: result, hits: s.cache.hits}
	return result
}

// Collection returns a snapshot of the full collection.
func (s *Store) Collection() *domain.Collection {
	col := domain.Collection{Notes: s.notes, ActiveId: s.activeId}
	return col.Clone()
}

func (s *Store) Revision() uint64 { return s.revision }

func (s *Store) Len() int { return len(s.notes) }

// update applies f to a clone of the note and swaps the cloned
// collection in, keeping retained snapshots untouched. A non-nil error
// from f discards the clone.
func (s *Store) update(id string, f func(n *domain.Note) error) error {
	idx := s.findIdx(id)
	if idx < 0 {
		return ErrNoteNotFound
	}
	notes := cloneNotes(s.notes)
	if err := f(&notes[idx]); err != nil {
		return err
	}
	s.notes = notes
	return s.commit()
}

// commit bumps the revision and pushes a snapshot to the persister.
// Persistence failures are surfaced but never undo the mutation.
func (s *Store) commit() error {
	s.revision++
	if s.persist == nil {
		return nil
	}
	if err := s.persist.Save(s.Collection()); err != nil {
		return fmt.Errorf("saving notes: %w", err)
	}
	return nil
}

func (s *Store) findIdx(id string) int {
	for i := range s.notes {
		if s.notes[i].Id == id {
			return i
		}
	}
	return -1
}

func (s *Store) activeIdx() int {
	if idx := s.findIdx(s.activeId); idx >= 0 {
		return idx
	}
	s.activeId = s.notes[0].Id
	return 0
}

func cloneNotes(notes []domain.Note) []domain.Note {
	out := make([]domain.Note, len(notes))
	for i := range notes {
		out[i] = notes[i].Clone()
	}
	return out
}
