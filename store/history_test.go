package store

import (
	"testing"
)

func TestUndoRedoRoundTrip(t *testing.T) {
	s := newTestStore(t, "v1")

	s.Edit("v2")
	s.Edit("v3")

	if err := s.Undo(); err != nil {
		t.Fatalf("Undo failed: %v", err)
	}
	if got := s.ActiveNote().Content; got != "v2" {
		t.Errorf("Expected 'v2' after undo, got '%s'", got)
	}

	if err := s.Redo(); err != nil {
		t.Fatalf("Redo failed: %v", err)
	}
	if got := s.ActiveNote().Content; got != "v3" {
		t.Errorf("Expected 'v3' after redo, got '%s'", got)
	}
}

func TestMultiStepUndoRedo(t *testing.T) {
	s := newTestStore(t, "a")

	s.Edit("b")
	s.Edit("c")
	s.Edit("d")

	s.Undo()
	s.Undo()
	s.Undo()

	if got := s.ActiveNote().Content; got != "a" {
		t.Errorf("Expected 'a' after three undos, got '%s'", got)
	}

	s.Redo()
	s.Redo()
	s.Redo()

	if got := s.ActiveNote().Content; got != "d" {
		t.Errorf("Expected 'd' after three redos, got '%s'", got)
	}
}

func TestUndoEmptyStackIsNoop(t *testing.T) {
	s := newTestStore(t, "untouched")
	before := s.ActiveNote().Content

	if err := s.Undo(); err != nil {
		t.Fatalf("Undo on empty stack should be a silent no-op, got %v", err)
	}

	if got := s.ActiveNote().Content; got != before {
		t.Errorf("Expected content unchanged, got '%s'", got)
	}

	if err := s.Redo(); err != nil {
		t.Fatalf("Redo on empty stack should be a silent no-op, got %v", err)
	}
}

func TestEditClearsRedoStack(t *testing.T) {
	s := newTestStore(t, "a")

	s.Edit("b")
	s.Undo()

	if !s.CanRedo() {
		t.Fatal("Expected a redo step after undo")
	}

	s.Edit("c")

	if s.CanRedo() {
		t.Error("Expected redo stack cleared by a new edit")
	}
}

func TestVersionAndHistoryGrowth(t *testing.T) {
	s := newTestStore(t, "")

	contents := []string{"one", "two", "three", "four"}
	for _, c := range contents {
		if err := s.Edit(c); err != nil {
			t.Fatalf("Edit failed: %v", err)
		}
	}

	n := s.ActiveNote()
	if n.Version != 1+len(contents) {
		t.Errorf("Expected version %d after %d edits, got %d", 1+len(contents), len(contents), n.Version)
	}

	if len(n.History) != len(contents) {
		t.Errorf("Expected %d history entries, got %d", len(contents), len(n.History))
	}

	// History stores pre-edit snapshots in order
	expected := []string{"", "one", "two", "three"}
	for i, want := range expected {
		if n.History[i] != want {
			t.Errorf("Expected history[%d] '%s', got '%s'", i, want, n.History[i])
		}
	}
}

func TestUndoDoesNotTouchVersionOrHistory(t *testing.T) {
	s := newTestStore(t, "a")
	s.Edit("b")

	before := s.ActiveNote()
	s.Undo()
	s.Redo()
	after := s.ActiveNote()

	if after.Version != before.Version {
		t.Errorf("Expected version unchanged, got %d -> %d", before.Version, after.Version)
	}

	if len(after.History) != len(before.History) {
		t.Errorf("Expected history unchanged, got %d -> %d entries",
			len(before.History), len(after.History))
	}
}

func TestHistoryScopedPerNote(t *testing.T) {
	s := newTestStore(t, "first")
	firstId := s.ActiveNote().Id

	s.Edit("first edited")

	if _, err := s.Create(); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	s.Edit("second edited")

	// Undo on the second note must not pull the first note's snapshots
	s.Undo()
	if got := s.ActiveNote().Content; got != "" {
		t.Errorf("Expected second note back to empty, got '%s'", got)
	}

	if s.CanUndo() {
		t.Error("Expected second note's undo stack exhausted")
	}

	if err := s.SetActive(firstId, ""); err != nil {
		t.Fatalf("SetActive failed: %v", err)
	}

	if !s.CanUndo() {
		t.Error("Expected first note's undo stack to survive the switch")
	}

	s.Undo()
	if got := s.ActiveNote().Content; got != "first" {
		t.Errorf("Expected 'first' after undo, got '%s'", got)
	}
}

func TestDeleteDropsNoteHistory(t *testing.T) {
	s := newTestStore(t, "one", "two")
	col := s.Collection()

	s.Edit("one edited")
	if err := s.Delete(col.Notes[0].Id); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	if h, ok := s.history.byNote[col.Notes[0].Id]; ok {
		t.Errorf("Expected deleted note's stacks dropped, got %+v", h)
	}
}

func TestHistoryStacksLIFO(t *testing.T) {
	h := &editHistory{}

	h.recordEdit("a")
	h.recordEdit("b")

	top, ok := h.stepBack("current")
	if !ok || top != "b" {
		t.Errorf("Expected 'b' popped first, got '%s' (%v)", top, ok)
	}

	top, ok = h.stepBack("b")
	if !ok || top != "a" {
		t.Errorf("Expected 'a' popped second, got '%s' (%v)", top, ok)
	}

	if _, ok := h.stepBack("a"); ok {
		t.Error("Expected empty undo stack")
	}

	top, ok = h.stepForward("a")
	if !ok || top != "b" {
		t.Errorf("Expected 'b' redone first, got '%s' (%v)", top, ok)
	}
}
