package db

import (
	"database/sql"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"github.com/nvoss/quill/domain"
)

// setupTestDB creates an in-memory SQLite database for testing
func setupTestDB(t *testing.T) *DB {
	sqlDB, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open in-memory database: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	d := &DB{db: sqlDB}
	if err := d.createSchema(); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	t.Cleanup(func() { d.Close() })
	return d
}

func TestLoadEmptySlot(t *testing.T) {
	d := setupTestDB(t)

	col, err := d.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if col != nil {
		t.Errorf("Expected nil collection for empty slot, got %+v", col)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	d := setupTestDB(t)

	note := domain.NewNote()
	note.Content = "Hello\nWorld"
	note.Version = 2
	note.History = []string{""}
	note.Tags = []string{"work", "urgent"}
	note.LastModified = time.Date(2026, 8, 30, 10, 30, 0, 0, time.UTC)

	col := &domain.Collection{Notes: []domain.Note{note}, ActiveId: note.Id}

	if err := d.Save(col); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := d.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded == nil || len(loaded.Notes) != 1 {
		t.Fatalf("Expected 1 note, got %+v", loaded)
	}

	got := loaded.Notes[0]
	if got.Id != note.Id || got.Content != note.Content || got.Version != note.Version {
		t.Errorf("Round trip mismatch: %+v", got)
	}

	if !got.LastModified.Equal(note.LastModified) {
		t.Errorf("Expected timestamp %v, got %v", note.LastModified, got.LastModified)
	}

	if len(got.Tags) != 2 || got.Tags[0] != "work" {
		t.Errorf("Expected tags to round trip, got %v", got.Tags)
	}

	if loaded.ActiveId != note.Id {
		t.Errorf("Expected active id %s, got %s", note.Id, loaded.ActiveId)
	}
}

func TestSaveOverwritesSlot(t *testing.T) {
	d := setupTestDB(t)

	first := domain.Seed()
	if err := d.Save(first); err != nil {
		t.Fatalf("first Save failed: %v", err)
	}

	second := domain.Seed()
	note := domain.NewNote()
	second.Notes = append(second.Notes, note)
	if err := d.Save(second); err != nil {
		t.Fatalf("second Save failed: %v", err)
	}

	loaded, err := d.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if len(loaded.Notes) != 2 {
		t.Errorf("Expected the slot to hold the latest snapshot, got %d notes", len(loaded.Notes))
	}
}

func TestLoadCorruptPayload(t *testing.T) {
	d := setupTestDB(t)

	_, err := d.db.Exec(sqlUpsertCollection, SlotName, "{not json", time.Now())
	if err != nil {
		t.Fatalf("Failed to plant corrupt payload: %v", err)
	}

	if _, err := d.Load(); err == nil {
		t.Error("Expected an error for corrupt payload")
	}
}
