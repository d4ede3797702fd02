package sanitizer

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize canonicalizes free text for comparison: NFKC fold, internal
// whitespace runs collapsed to single spaces, edges trimmed, case folded.
func Normalize(s string) string {
	s = norm.NFKC.String(s)
	s = collapseWhitespace(s)
	return cases.Fold().String(s)
}

// StripDiacritics removes combining marks (Unicode category Mn) after NFD
// decomposition and recomposes the rest. "María" becomes "maria" when
// combined with Normalize.
func StripDiacritics(s string) string {
	// Transformers carry state, so the chain is built per call.
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

// NormalizeIdentity is the identity-field path: Normalize followed by
// StripDiacritics. Used for emails and attendee names only.
func NormalizeIdentity(s string) string {
	return StripDiacritics(Normalize(s))
}

func collapseWhitespace(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}

	var b strings.Builder
	var lastWasSpace bool

	for _, r := range s {
		if unicode.IsSpace(r) {
			if !lastWasSpace {
				b.WriteRune(' ')
				lastWasSpace = true
			}
		} else {
			b.WriteRune(r)
			lastWasSpace = false
		}
	}

	return b.String()
}
