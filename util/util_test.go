package util

import (
	"testing"
	"time"
)

func TestGetVersion(t *testing.T) {
	v := GetVersion()
	if v == "" {
		t.Error("Expected a non-empty version")
	}
}

func TestGetNameAndVersion(t *testing.T) {
	nv := GetNameAndVersion()
	if nv != "quill / "+GetVersion() {
		t.Errorf("Expected 'quill / <version>', got '%s'", nv)
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("short", 10); got != "short" {
		t.Errorf("Expected 'short', got '%s'", got)
	}

	if got := Truncate("a longer string here", 10); got != "a longe..." {
		t.Errorf("Expected 'a longe...', got '%s'", got)
	}

	if got := Truncate("ab", 2); got != "ab" {
		t.Errorf("Expected 'ab', got '%s'", got)
	}
}

func TestSanitizeFilename(t *testing.T) {
	cases := map[string]string{
		"Shopping List":       "shopping-list",
		"Hello, World!":       "hello-world",
		"  already-clean  ":   "already-clean",
		"???":                 "note",
		"Füße & Hände":        "f-e-h-nde",
		"CAPS and 123 digits": "caps-and-123-digits",
	}

	for in, want := range cases {
		if got := SanitizeFilename(in); got != want {
			t.Errorf("SanitizeFilename(%q): expected '%s', got '%s'", in, want, got)
		}
	}
}

func TestExportFilename(t *testing.T) {
	now := time.Date(2026, 8, 30, 15, 4, 5, 0, time.UTC)

	got := ExportFilename("Shopping List", now)
	want := "shopping-list-2026-08-30.txt"

	if got != want {
		t.Errorf("Expected '%s', got '%s'", want, got)
	}
}

func TestPrettyPrint(t *testing.T) {
	out := PrettyPrint(map[string]int{"a": 1})
	if out == "" {
		t.Error("Expected non-empty output")
	}
}
