package novadax

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConvertDate(t *testing.T) {
	assert.Equal(t, "2023-03-15 14:05 UTC", ConvertDate("15/03/2023 14:05:30"))
	assert.Equal(t, "2022-12-31 23:59 UTC", ConvertDate("31/12/2022 23:59:59"))
}

func TestConvertDate_DropsSeconds(t *testing.T) {
	assert.Equal(t, "2023-01-02 08:30 UTC", ConvertDate("02/01/2023 08:30:45"))
}

func TestConvertDate_ImpossibleCalendarDate(t *testing.T) {
	assert.Equal(t, "Invalid Date", ConvertDate("31/02/2023 10:00:00"))
}

func TestConvertDate_Malformed(t *testing.T) {
	for _, s := range []string{
		"",
		"2023-03-15 14:05:30",
		"15/03/2023",
		"not a date",
		"15/13/2023 10:00:00",
	} {
		assert.Equal(t, "Invalid Date", ConvertDate(s), "input %q", s)
	}
}
