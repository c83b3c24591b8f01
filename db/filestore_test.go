package db

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nvoss/quill/domain"
)

func TestFileStoreMissingFile(t *testing.T) {
	fs := NewFileStore(filepath.Join(t.TempDir(), "notes.json"))

	col, err := fs.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if col != nil {
		t.Errorf("Expected nil collection for missing file, got %+v", col)
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.json")
	fs := NewFileStore(path)

	col := domain.Seed()
	col.Notes[0].Tags = []string{"welcome"}

	if err := fs.Save(col); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := fs.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if len(loaded.Notes) != 1 {
		t.Fatalf("Expected 1 note, got %d", len(loaded.Notes))
	}

	if loaded.Notes[0].Content != col.Notes[0].Content {
		t.Error("Expected content to round trip")
	}

	if loaded.ActiveId != col.ActiveId {
		t.Errorf("Expected active id %s, got %s", col.ActiveId, loaded.ActiveId)
	}
}

func TestFileStoreCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.json")
	if err := os.WriteFile(path, []byte("{broken"), 0644); err != nil {
		t.Fatalf("Failed to plant corrupt file: %v", err)
	}

	fs := NewFileStore(path)
	if _, err := fs.Load(); err == nil {
		t.Error("Expected an error for corrupt file")
	}
}

func TestFileStoreLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	fs := NewFileStore(filepath.Join(dir, "notes.json"))

	if err := fs.Save(domain.Seed()); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}

	if len(entries) != 1 || entries[0].Name() != "notes.json" {
		t.Errorf("Expected only notes.json in the directory, got %v", entries)
	}
}

func TestLoadOrSeedMissingState(t *testing.T) {
	fs := NewFileStore(filepath.Join(t.TempDir(), "notes.json"))

	col, recovered, err := LoadOrSeed(fs)
	if err != nil {
		t.Fatalf("LoadOrSeed failed: %v", err)
	}

	if recovered {
		t.Error("Expected missing state not to count as recovery")
	}

	if len(col.Notes) != 1 {
		t.Fatalf("Expected 1 seeded note, got %d", len(col.Notes))
	}

	// The seed must have been written back
	again, err := fs.Load()
	if err != nil {
		t.Fatalf("Load after seed failed: %v", err)
	}
	if again == nil || len(again.Notes) != 1 {
		t.Error("Expected the seed to be persisted immediately")
	}
}

func TestLoadOrSeedCorruptState(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.json")
	if err := os.WriteFile(path, []byte("garbage"), 0644); err != nil {
		t.Fatalf("Failed to plant corrupt file: %v", err)
	}

	col, recovered, err := LoadOrSeed(NewFileStore(path))
	if err != nil {
		t.Fatalf("LoadOrSeed failed: %v", err)
	}

	if !recovered {
		t.Error("Expected corrupt state to be reported as recovered")
	}

	if len(col.Notes) != 1 {
		t.Errorf("Expected the fallback seed, got %d notes", len(col.Notes))
	}
}

func TestLoadOrSeedExistingState(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.json")
	fs := NewFileStore(path)

	existing := domain.Seed()
	note := domain.NewNote()
	existing.Notes = append(existing.Notes, note)
	if err := fs.Save(existing); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	col, recovered, err := LoadOrSeed(fs)
	if err != nil {
		t.Fatalf("LoadOrSeed failed: %v", err)
	}

	if recovered {
		t.Error("Expected no recovery for healthy state")
	}

	if len(col.Notes) != 2 {
		t.Errorf("Expected the stored 2 notes, got %d", len(col.Notes))
	}
}
