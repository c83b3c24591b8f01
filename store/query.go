package store

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/nvoss/quill/domain"
)

// SortKey selects the ordering of the visible notes.
type SortKey uint

const (
	// SortModified orders by last modification time, newest first unless
	// the direction is flipped.
	SortModified SortKey = iota
	// SortTitle orders by derived title using Unicode collation,
	// case-insensitive.
	SortTitle
	// SortCreated orders by creation time, derived from id ordering.
	SortCreated
	// SortArchived groups unarchived notes before archived ones.
	SortArchived
)

func (k SortKey) String() string {
	switch k {
	case SortModified:
		return "modified"
	case SortTitle:
		return "title"
	case SortCreated:
		return "created"
	case SortArchived:
		return "archived"
	}
	return "unknown"
}

// ParseSortKey maps a config string to a SortKey, defaulting to
// SortModified for anything unrecognized.
func ParseSortKey(s string) SortKey {
	switch s {
	case "title":
		return SortTitle
	case "created":
		return SortCreated
	case "archived":
		return SortArchived
	default:
		return SortModified
	}
}

// titleCollator compares titles locale-aware so that "cherry" sorts
// after "Banana". Collators are stateful, but the store runs on a single
// event loop.
var titleCollator = collate.New(language.Und, collate.IgnoreCase)

type queryKey struct {
	revision uint64
	search   string
	tags     string
	sortKey  SortKey
	sortAsc  bool
}

type queryCache struct {
	valid  bool
	key    queryKey
	result []domain.Note
	hits   uint64
}

// filterNotes keeps the notes matching the search text (title or
// content, case-insensitive) and carrying every selected tag.
func filterNotes(notes []domain.Note, search string, selectedTags []string) []domain.Note {
	out := make([]domain.Note, 0, len(notes))
	for i := range notes {
		if notes[i].MatchesSearch(search) && notes[i].MatchesTags(selectedTags) {
			out = append(out, notes[i])
		}
	}
	return out
}

// sortNotes orders notes in place by the given key. The sort is stable,
// so equal keys keep their insertion order. Each key defines its
// ascending order; the global direction toggle reverses whichever key is
// active.
func sortNotes(notes []domain.Note, key SortKey, asc bool) {
	var less func(a, b *domain.Note) bool

	switch key {
	case SortTitle:
		less = func(a, b *domain.Note) bool {
			return titleCollator.CompareString(a.Title(), b.Title()) < 0
		}
	case SortCreated:
		less = func(a, b *domain.Note) bool {
			return a.Id < b.Id
		}
	case SortArchived:
		// Ascending puts unarchived notes first.
		less = func(a, b *domain.Note) bool {
			return !a.Archived && b.Archived
		}
	default: // SortModified
		less = func(a, b *domain.Note) bool {
			return a.LastModified.Before(b.LastModified)
		}
	}

	sort.SliceStable(notes, func(i, j int) bool {
		if asc {
			return less(&notes[i], &notes[j])
		}
		return less(&notes[j], &notes[i])
	})
}

// tagUniverse collects the distinct tags across all notes,
// lexicographically sorted.
func tagUniverse(notes []domain.Note) []string {
	seen := map[string]bool{}
	var tags []string
	for i := range notes {
		for _, t := range notes[i].Tags {
			if !seen[t] {
				seen[t] = true
				tags = append(tags, t)
			}
		}
	}
	sort.Strings(tags)
	return tags
}
