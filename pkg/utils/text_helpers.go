package utils

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var accentFolder = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// StripAccents removes combining marks, so "Descrição" becomes "Descricao".
func StripAccents(s string) string {
	out, _, err := transform.String(accentFolder, s)
	if err != nil {
		return s
	}
	return out
}

// NormalizeName is the single normalization applied to entity names on both
// sides of a lookup: stored names and spreadsheet references must go through
// the same function or resolution falls apart.
func NormalizeName(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// FoldHeader canonicalizes a spreadsheet column header for matching:
// trimmed, lower-cased, accents stripped, inner whitespace collapsed.
func FoldHeader(s string) string {
	folded := StripAccents(strings.ToLower(strings.TrimSpace(s)))
	return strings.Join(strings.Fields(folded), " ")
}

// DigitsOnly strips every non-digit rune, normalizing phone numbers like
// "(11) 98888-7766" to "11988887766".
func DigitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
