package store

// editHistory holds the undo/redo stacks for a single note. Pushing an
// edit clears the redo stack; undo/redo move snapshots between the two
// stacks (LIFO), so undo followed by redo restores the exact content
// present before the undo.
type editHistory struct {
	undo []string
	redo []string
}

// historyArena scopes undo/redo stacks per note id. Stacks live for the
// session only; they are not persisted and are dropped when the note is
// deleted.
type historyArena struct {
	byNote map[string]*editHistory
}

func newHistoryArena() *historyArena {
	return &historyArena{byNote: map[string]*editHistory{}}
}

func (a *historyArena) of(id string) *editHistory {
	h, ok := a.byNote[id]
	if !ok {
		h = &editHistory{}
		a.byNote[id] = h
	}
	return h
}

func (a *historyArena) drop(id string) {
	delete(a.byNote, id)
}

// recordEdit pushes the pre-edit snapshot and invalidates the redo stack.
func (h *editHistory) recordEdit(snapshot string) {
	h.undo = append(h.undo, snapshot)
	h.redo = nil
}

// stepBack pops the undo stack, parking current on the redo stack.
// The second return is false when there is nothing to undo.
func (h *editHistory) stepBack(current string) (string, bool) {
	if len(h.undo) == 0 {
		return "", false
	}
	top := h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]
	h.redo = append(h.redo, current)
	return top, true
}

// stepForward pops the redo stack, parking current on the undo stack.
func (h *editHistory) stepForward(current string) (string, bool) {
	if len(h.redo) == 0 {
		return "", false
	}
	top := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]
	h.undo = append(h.undo, current)
	return top, true
}

func (h *editHistory) canUndo() bool { return len(h.undo) > 0 }
func (h *editHistory) canRedo() bool { return len(h.redo) > 0 }
