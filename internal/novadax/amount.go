package novadax

import (
	"regexp"
	"strings"
)

var (
	// approxAnnotation matches the "(≈R$ 1.300,00)" approximate-value note
	// NovaDAX appends to crypto amounts. It must never win the number scan.
	approxAnnotation = regexp.MustCompile(`\(≈R\$[^)]*\)`)
	// firstNumber matches an optionally signed digit run with separators.
	firstNumber = regexp.MustCompile(`[+-]?\s*\d[\d.,]*`)
	innerSpace  = regexp.MustCompile(`\s+`)
)

// ExtractAmount pulls the first numeric quantity out of a NovaDAX value
// string and normalizes it to a plain decimal string: sign kept, comma
// decimal separator replaced with a period, thousands separators dropped.
// The digits are kept verbatim, never parsed into a float, so the source
// precision survives. Returns "" when the text holds no number.
func ExtractAmount(text string) string {
	raw := firstNumber.FindString(approxAnnotation.ReplaceAllString(text, ""))
	if raw == "" {
		return ""
	}

	// "- 1,234" -> "-1,234"
	raw = innerSpace.ReplaceAllString(raw, "")
	raw = strings.ReplaceAll(raw, ",", ".")

	// More than one period means the leading ones were thousands
	// separators: "1.234.56" -> "1234.56".
	if parts := strings.Split(raw, "."); len(parts) > 2 {
		raw = strings.Join(parts[:len(parts)-1], "") + "." + parts[len(parts)-1]
	}
	return raw
}
