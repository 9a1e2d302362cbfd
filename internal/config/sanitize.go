package config

import (
	"regexp"
	"strings"
)

var (
	whitespaceRun   = regexp.MustCompile(`\s+`)
	invalidFileChar = regexp.MustCompile(`[^a-z0-9-]`)
)

// SanitizeFilename normalizes an icon name into a safe target filename:
// lowercase, whitespace runs collapsed to a single hyphen, and any
// remaining character outside [a-z0-9-] replaced by a hyphen. There is
// no length limit and no collision resolution; two names that sanitize
// to the same value write to the same file.
func SanitizeFilename(name string) string {
	s := strings.ToLower(name)
	s = whitespaceRun.ReplaceAllString(s, "-")
	return invalidFileChar.ReplaceAllString(s, "-")
}
