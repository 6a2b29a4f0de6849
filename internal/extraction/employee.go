// employee.go - Employee name extraction

package extraction

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// A labeled name first, a courtesy title second.
var employeePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:name|employee|customer)[:\s]+([a-z\s]+)`),
	regexp.MustCompile(`(?i)(?:mr|ms|mrs)[.\s]+([a-z\s]+)`),
}

// extractEmployee looks for a person name on the receipt. Accepted captures
// are letter-and-space runs between 3 and 49 characters with no digits,
// returned title-cased.
func extractEmployee(text string) (string, bool) {
	for _, pattern := range employeePatterns {
		m := pattern.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		name := strings.TrimSpace(m[1])
		n := runeLen(name)
		if n > 2 && n < 50 && !strings.ContainsAny(name, "0123456789") {
			// A fresh caser per call, cases.Caser is not safe for
			// concurrent use.
			return cases.Title(language.English).String(name), true
		}
	}
	return "", false
}
