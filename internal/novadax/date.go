package novadax

import "time"

const (
	// statementTimeFormat is the timestamp layout in NovaDAX exports.
	statementTimeFormat = "02/01/2006 15:04:05"
	// koinlyTimeFormat is the layout Koinly expects, minus the UTC suffix.
	koinlyTimeFormat = "2006-01-02 15:04"

	invalidDate = "Invalid Date"
)

// ConvertDate rewrites a NovaDAX timestamp ("15/03/2023 14:05:30") as a
// Koinly timestamp ("2023-03-15 14:05 UTC"). NovaDAX exports carry UTC
// times already, so no zone conversion happens. Anything that does not
// parse, including impossible calendar dates, becomes "Invalid Date".
func ConvertDate(s string) string {
	t, err := time.Parse(statementTimeFormat, s)
	if err != nil {
		return invalidDate
	}
	return t.Format(koinlyTimeFormat) + " UTC"
}
