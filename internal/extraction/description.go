// description.go - Merchant description extraction

package extraction

import (
	"regexp"
	"strings"
)

const maxDescriptionRunes = 100

var (
	// Lines of digits, separators and punctuation carry no merchant name,
	// nor do bare date lines.
	numericLine = regexp.MustCompile(`^[\d\s\-/:.]+$`)
	dateLine    = regexp.MustCompile(`^\d{1,2}[-/]\d{1,2}[-/]\d{2,4}$`)

	// descCharset keeps letters, digits, spaces, ampersands, apostrophes
	// and hyphens; everything else is stripped from the accepted line.
	descCharset = regexp.MustCompile(`[^a-zA-Z0-9\s&'-]`)
)

// extractDescription guesses the merchant name, assumed to sit near the top
// of the receipt. Only the first five lines are considered.
func extractDescription(text string) (string, bool) {
	lines := strings.Split(text, "\n")
	if len(lines) > 5 {
		lines = lines[:5]
	}

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || runeLen(line) <= 3 {
			continue
		}
		if numericLine.MatchString(line) || dateLine.MatchString(line) {
			continue
		}

		clean := strings.TrimSpace(descCharset.ReplaceAllString(line, ""))
		if runeLen(clean) > 3 {
			return truncateRunes(clean, maxDescriptionRunes), true
		}
	}

	return "", false
}
