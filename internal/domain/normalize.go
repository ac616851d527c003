package domain

import (
	"strings"
)

// CleanText prepares user-supplied vocabulary text for storage and comparison:
//   - trims leading/trailing whitespace
//   - compresses runs of whitespace into a single space
//
// Case is preserved: German capitalisation distinguishes nouns ("Essen")
// from verbs ("essen").
func CleanText(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
