// remark.go - Remark and note extraction

package extraction

import (
	"regexp"
	"strings"
)

const maxRemarkRunes = 200

var remarkLabel = regexp.MustCompile(`(?i)note|remark|comment|memo`)

// extractRemark returns the line following the first note/remark label.
// The remark is legitimately empty when that following line is blank. A
// label on the last line yields nothing.
func extractRemark(text string) (string, bool) {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if remarkLabel.MatchString(line) && i+1 < len(lines) {
			return truncateRunes(strings.TrimSpace(lines[i+1]), maxRemarkRunes), true
		}
	}
	return "", false
}
