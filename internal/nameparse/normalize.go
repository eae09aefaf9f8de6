package nameparse

import (
	"strings"
	"unicode"
)

// Normalize strips characters the listing renderer leaks into company text
// (icons, stray punctuation; bullets are handled by the parser) and
// collapses whitespace. Keeps letters, digits, spaces and . , & ' - so
// legitimate brand punctuation and accented names survive. Total: never
// fails, empty in yields empty out.
func Normalize(s string) string {
	if s == "" {
		return ""
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteByte(' ')
		case r == '.' || r == ',' || r == '&' || r == '\'' || r == '-':
			b.WriteRune(r)
		}
	}
	return CleanText(b.String())
}

// CleanText collapses whitespace runs and trims.
func CleanText(s string) string {
	s = strings.ReplaceAll(s, "\u00a0", " ")
	return strings.Join(strings.Fields(s), " ")
}
