// Package util provides filename helpers shared across zenrename.
package util

import (
	"regexp"
	"strings"
)

var (
	invalidChars = regexp.MustCompile(`[<>:"/\\|?*]`)
	whitespace   = regexp.MustCompile(`\s+`)
)

// StripInvalid removes every character that cannot appear in a filename on
// common filesystems.
func StripInvalid(s string) string {
	return invalidChars.ReplaceAllString(s, "")
}

// SanitizeFilename turns an arbitrary string into a safe filename:
// invalid characters become underscores and whitespace is normalized.
func SanitizeFilename(s string) string {
	s = invalidChars.ReplaceAllString(s, "_")
	return strings.TrimSpace(whitespace.ReplaceAllString(s, " "))
}

// CleanName rewrites a release-style name stem for human readability.
// Invalid characters are dropped, dot and underscore separators become
// spaces, and runs of whitespace collapse to single spaces.
func CleanName(s string) string {
	s = StripInvalid(s)
	s = strings.ReplaceAll(s, ".", " ")
	s = strings.ReplaceAll(s, "_", " ")
	return strings.Join(strings.Fields(s), " ")
}
