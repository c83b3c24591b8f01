package util

import (
	"os"
	"testing"
)

func TestConfigConstants(t *testing.T) {
	if Name != "quill" {
		t.Errorf("Expected Name 'quill', got '%s'", Name)
	}

	if ConfigFileName != "config.yaml" {
		t.Errorf("Expected ConfigFileName 'config.yaml', got '%s'", ConfigFileName)
	}
}

func TestReadConfWithYaml(t *testing.T) {
	// Create a test config file
	yamlContent := `
conf:
  storage: file
  dataFile: mynotes.json
  sortKey: title
  sortAsc: true
`
	err := os.WriteFile("config.yaml", []byte(yamlContent), 0644)
	if err != nil {
		t.Fatalf("Failed to create test config: %v", err)
	}
	defer os.Remove("config.yaml")

	config, err := ReadConf()
	if err != nil {
		t.Fatalf("ReadConf failed: %v", err)
	}

	if config.Conf.Storage != "file" {
		t.Errorf("Expected Storage 'file', got '%s'", config.Conf.Storage)
	}

	if config.Conf.DataFile != "mynotes.json" {
		t.Errorf("Expected DataFile 'mynotes.json', got '%s'", config.Conf.DataFile)
	}

	if config.Conf.SortKey != "title" {
		t.Errorf("Expected SortKey 'title', got '%s'", config.Conf.SortKey)
	}

	if !config.Conf.SortAsc {
		t.Error("Expected SortAsc to be true")
	}
}

func TestReadConfWithEnvOverrides(t *testing.T) {
	yamlContent := `
conf:
  storage: sqlite
  sortKey: modified
`
	err := os.WriteFile("config.yaml", []byte(yamlContent), 0644)
	if err != nil {
		t.Fatalf("Failed to create test config: %v", err)
	}
	defer os.Remove("config.yaml")

	os.Setenv("QUILL_STORAGE", "file")
	os.Setenv("QUILL_SORTKEY", "created")
	os.Setenv("QUILL_SORTASC", "true")
	defer func() {
		os.Unsetenv("QUILL_STORAGE")
		os.Unsetenv("QUILL_SORTKEY")
		os.Unsetenv("QUILL_SORTASC")
	}()

	config, err := ReadConf()
	if err != nil {
		t.Fatalf("ReadConf failed: %v", err)
	}

	if config.Conf.Storage != "file" {
		t.Errorf("Expected env override Storage 'file', got '%s'", config.Conf.Storage)
	}

	if config.Conf.SortKey != "created" {
		t.Errorf("Expected env override SortKey 'created', got '%s'", config.Conf.SortKey)
	}

	if !config.Conf.SortAsc {
		t.Error("Expected env override SortAsc to be true")
	}
}

func TestReadConfDefaultsDataFile(t *testing.T) {
	yamlContent := `
conf:
  storage: sqlite
`
	err := os.WriteFile("config.yaml", []byte(yamlContent), 0644)
	if err != nil {
		t.Fatalf("Failed to create test config: %v", err)
	}
	defer os.Remove("config.yaml")

	config, err := ReadConf()
	if err != nil {
		t.Fatalf("ReadConf failed: %v", err)
	}

	if config.Conf.DataFile != "notes.db" {
		t.Errorf("Expected default DataFile 'notes.db', got '%s'", config.Conf.DataFile)
	}
}

func TestReadConfUnknownStorageFallsBack(t *testing.T) {
	yamlContent := `
conf:
  storage: carrier-pigeon
`
	err := os.WriteFile("config.yaml", []byte(yamlContent), 0644)
	if err != nil {
		t.Fatalf("Failed to create test config: %v", err)
	}
	defer os.Remove("config.yaml")

	config, err := ReadConf()
	if err != nil {
		t.Fatalf("ReadConf failed: %v", err)
	}

	if config.Conf.Storage != "sqlite" {
		t.Errorf("Expected fallback Storage 'sqlite', got '%s'", config.Conf.Storage)
	}
}
