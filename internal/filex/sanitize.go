// Package filex contains filename helpers shared by the upload pipeline.
package filex

import (
	"regexp"

	"github.com/mozillazg/go-unidecode"
)

var (
	unsafeChars    = regexp.MustCompile(`[^A-Za-z0-9_.-]`)
	underscoreRuns = regexp.MustCompile(`_{2,}`)
)

// fallbackName is returned when sanitization leaves nothing usable.
const fallbackName = "file"

// SanitizeName converts an arbitrary user-supplied filename into a token that
// is safe to embed in a storage key. Non-Latin scripts (cyrillic included)
// are transliterated to an ASCII approximation instead of being dropped,
// everything outside [A-Za-z0-9_.-] becomes an underscore, and runs of
// underscores collapse to one. The result is never empty.
func SanitizeName(name string) string {
	s := unidecode.Unidecode(name)
	s = unsafeChars.ReplaceAllString(s, "_")
	s = underscoreRuns.ReplaceAllString(s, "_")
	if s == "" {
		return fallbackName
	}
	return s
}
