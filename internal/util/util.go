package util

import (
	"regexp"
	"strings"
)

// slugPattern matches every run of characters that is not a word
// character or a digit. Underscores survive, everything else is dropped.
var slugPattern = regexp.MustCompile(`[^a-zA-Z0-9_]+`)

// Slugify turns a display name into a filename-safe identifier.
// For example, "Form Elements" becomes "formelements".
func Slugify(name string) string {
	return strings.ToLower(slugPattern.ReplaceAllString(name, ""))
}

// JoinLines flattens a template payload that may arrive as a single
// string or as a list of content lines.
func JoinLines(lines []string) string {
	return strings.Join(lines, "\n")
}
