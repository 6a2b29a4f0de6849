package extraction

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestExtractDate_DayFirstSlashes(t *testing.T) {
	got := extractDate("ACME Mart\nDate: 15/03/2024 14:32\nTotal: 45.67")
	assert.Equal(t, "2024-03-15", got)
}

func TestExtractDate_Formats(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"iso", "issued 2024-03-15", "2024-03-15"},
		{"day first dashes", "15-03-2024", "2024-03-15"},
		{"month first when day invalid", "03/15/2024", "2024-03-15"},
		{"full month name", "15 March 2024", "2024-03-15"},
		{"short month name", "15 Mar 2024", "2024-03-15"},
		{"single digit day and month", "5/3/2024", "2024-03-05"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractDate(tt.text))
		})
	}
}

func TestExtractDate_DayFirstWinsWhenAmbiguous(t *testing.T) {
	// 01/02 could be Feb 1 or Jan 2. Day-first layouts sit earlier in the
	// list, so Feb 1 it is.
	got := extractDate("01/02/2024")
	assert.Equal(t, "2024-02-01", got)
}

func TestExtractDate_FirstMatchWins(t *testing.T) {
	got := extractDate("Printed 01/02/2024\nDue 15/03/2024")
	assert.Equal(t, "2024-02-01", got)
}

func TestExtractDate_FallsToLaterPattern(t *testing.T) {
	// The numeric shape matches 99-99-9999 but no layout parses it, so
	// the month-name pattern supplies the value.
	got := extractDate("ref 99-99-9999 paid 15 Mar 2024")
	assert.Equal(t, "2024-03-15", got)
}

func TestExtractDate_DefaultsToToday(t *testing.T) {
	before := time.Now().Format("2006-01-02")
	got := extractDate("no dates in this receipt at all")
	after := time.Now().Format("2006-01-02")

	assert.Contains(t, []string{before, after}, got)
}

func TestExtractDate_TwoDigitYearDefaultsToToday(t *testing.T) {
	// Layouts all want four-digit years, so 15/03/24 parses nowhere.
	before := time.Now().Format("2006-01-02")
	got := extractDate("15/03/24")
	after := time.Now().Format("2006-01-02")

	assert.Contains(t, []string{before, after}, got)
}
