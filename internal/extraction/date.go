// date.go - Transaction date extraction

package extraction

import (
	"regexp"
	"time"
)

// Numeric day-month-year shapes first, then ISO year-first, then spelled
// month names.
var datePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\d{1,2}[-/]\d{1,2}[-/]\d{2,4}`),
	regexp.MustCompile(`\d{4}[-/]\d{1,2}[-/]\d{1,2}`),
	regexp.MustCompile(`(?i)\d{1,2}\s+(?:jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)[a-z]*\s+\d{2,4}`),
}

// dateLayouts are tried in order against a structural match. Day-first
// comes before month-first, receipts from most locales print day first.
var dateLayouts = []string{
	"2-1-2006",
	"1-2-2006",
	"2006-1-2",
	"2/1/2006",
	"1/2/2006",
	"2 January 2006",
	"2 Jan 2006",
}

// extractDate finds a transaction date and normalizes it to YYYY-MM-DD.
// It never comes back empty: when nothing matches or parses, the current
// date is used.
func extractDate(text string) string {
	for _, pattern := range datePatterns {
		matched := pattern.FindString(text)
		if matched == "" {
			continue
		}
		for _, layout := range dateLayouts {
			if parsed, err := time.Parse(layout, matched); err == nil {
				return parsed.Format("2006-01-02")
			}
		}
	}
	return time.Now().Format("2006-01-02")
}
