// Package normalize folds display names into a comparable form.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Normalize upper-cases s and strips diacritical marks, so "José" and
// "JOSE" compare equal. It is total and idempotent.
func Normalize(s string) string {
	if s == "" {
		return ""
	}
	upper := cases.Upper(language.Und).String(s)
	// Transformers are stateful, so the chain is built per call.
	stripAccents := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, err := transform.String(stripAccents, upper)
	if err != nil {
		return upper
	}
	return result
}

// Words returns the normalized, whitespace-separated words of s.
func Words(s string) []string {
	return strings.Fields(Normalize(s))
}
