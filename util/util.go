package util

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"
)

//go:embed version.txt
var embeddedVersion string

func GetVersion() string {
	return strings.TrimSpace(embeddedVersion)
}

func GetNameAndVersion() string {
	return fmt.Sprintf("%s / %s", Name, GetVersion())
}

func DateTimeFormat() string {
	return "2006-01-02 15:04:05"
}

func PrettyPrint(i interface{}) string {
	s, _ := json.MarshalIndent(i, "", " ")
	return string(s)
}

// Truncate shortens s to maxLen runes, appending an ellipsis when
// something was cut.
func Truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}

var unsafeFilenameChars = regexp.MustCompile(`[^a-z0-9]+`)

// SanitizeFilename lowercases the title and squashes anything that is
// not a letter or digit into single dashes.
func SanitizeFilename(title string) string {
	name := strings.ToLower(title)
	name = unsafeFilenameChars.ReplaceAllString(name, "-")
	name = strings.Trim(name, "-")
	if name == "" {
		name = "note"
	}
	return name
}

// ExportFilename builds the export file name from a note title and the
// current date, e.g. "shopping-list-2026-08-30.txt".
func ExportFilename(title string, now time.Time) string {
	return fmt.Sprintf("%s-%s.txt", SanitizeFilename(title), now.Format("2006-01-02"))
}
