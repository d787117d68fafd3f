// Package slug derives URL-safe identifiers from titles and names.
package slug

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const maxLen = 100

// Make converts a name or title into a lowercase, hyphen-separated slug.
// The function is deterministic and idempotent: Make(Make(s)) == Make(s).
// It does not guarantee uniqueness; the storage layer enforces that with a
// unique constraint, and a collision surfaces as a Conflict error.
func Make(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	pendingHyphen := false
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			// Non-ASCII letters and digits pass through unchanged; slugs stay
			// readable for non-Latin titles.
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
		default:
			// Whitespace, punctuation and symbols collapse into one hyphen.
			pendingHyphen = true
		}
	}

	out := b.String()
	if len(out) > maxLen {
		// Cut on a rune boundary so multibyte slugs stay valid UTF-8.
		cut := maxLen
		for cut > 0 && !utf8.RuneStart(out[cut]) {
			cut--
		}
		out = strings.TrimRight(out[:cut], "-")
	}
	return out
}
