package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold lowercases s and strips combining diacritical marks
// (e.g. "Depósito em Reais" -> "deposito em reais") so keyword
// matching is case- and accent-insensitive.
func Fold(s string) string {
	result, _, _ := transform.String(stripAccents, strings.ToLower(s))
	return result
}
