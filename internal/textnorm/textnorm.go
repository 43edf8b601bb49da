// Package textnorm canonicalizes user utterances and keyword tables so they
// can be compared regardless of case, accents or separator style.
package textnorm

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var separators = strings.NewReplacer("_", " ", "-", " ")

// Normalize lowercases s, turns underscores and hyphens into spaces, strips
// combining diacritical marks and collapses whitespace.
// "Quiero_Ahorrar  en   inversión" -> "quiero ahorrar en inversion".
func Normalize(s string) string {
	if s == "" {
		return ""
	}
	s = separators.Replace(strings.ToLower(s))

	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.Join(strings.Fields(out), " ")
}

// Tokens returns the whitespace separated words of the normalized text.
func Tokens(s string) []string {
	return strings.Fields(Normalize(s))
}

// HasTerm reports whether term occurs in t starting at a word start, i.e.
// at the beginning of t or right after a character that is not a letter or
// digit. Both arguments are expected to be normalized already.
// HasTerm("compro oro", "oro") is true, HasTerm("tesoro", "oro") is false.
func HasTerm(t, term string) bool {
	if term == "" {
		return false
	}
	for off := 0; off <= len(t)-len(term); {
		i := strings.Index(t[off:], term)
		if i < 0 {
			return false
		}
		i += off
		if i == 0 || !isWordRune(lastRune(t[:i])) {
			return true
		}
		off = i + 1
	}
	return false
}

// HasPhrase is HasTerm with a word end required after phrase as well, so
// "que es" matches "¿que es el cer?" but not "que estas haciendo".
func HasPhrase(t, phrase string) bool {
	if phrase == "" {
		return false
	}
	for off := 0; off <= len(t)-len(phrase); {
		i := strings.Index(t[off:], phrase)
		if i < 0 {
			return false
		}
		i += off
		end := i + len(phrase)
		startOK := i == 0 || !isWordRune(lastRune(t[:i]))
		endOK := end == len(t) || !isWordRune(firstRune(t[end:]))
		if startOK && endOK {
			return true
		}
		off = i + 1
	}
	return false
}

// HasAnyPhrase reports whether any of phrases satisfies HasPhrase.
func HasAnyPhrase(t string, phrases []string) bool {
	for _, p := range phrases {
		if HasPhrase(t, p) {
			return true
		}
	}
	return false
}

// HasAnyTerm reports whether any of terms satisfies HasTerm.
func HasAnyTerm(t string, terms []string) bool {
	for _, term := range terms {
		if HasTerm(t, term) {
			return true
		}
	}
	return false
}

func lastRune(s string) rune {
	r, _ := utf8.DecodeLastRuneInString(s)
	return r
}

func firstRune(s string) rune {
	r, _ := utf8.DecodeRuneInString(s)
	return r
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
