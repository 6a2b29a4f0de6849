// amount.go - Monetary amount extraction

package extraction

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// Labeled totals are tried before bare currency symbols. Each pattern gets
// one search; an unparseable or out-of-range hit moves on to the next.
var amountPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)total[:\s]*[$₹€£]?\s*(\d+[,.]?\d*\.?\d*)`),
	regexp.MustCompile(`(?i)amount[:\s]*[$₹€£]?\s*(\d+[,.]?\d*\.?\d*)`),
	regexp.MustCompile(`(?i)grand\s*total[:\s]*[$₹€£]?\s*(\d+[,.]?\d*\.?\d*)`),
	regexp.MustCompile(`(?i)balance[:\s]*[$₹€£]?\s*(\d+[,.]?\d*\.?\d*)`),
	regexp.MustCompile(`(?i)[$₹€£]\s*(\d+[,.]?\d*\.?\d*)`),
}

// moneyToken matches standalone two-decimal tokens like 45.67
var moneyToken = regexp.MustCompile(`\b(\d+\.\d{2})\b`)

var amountUpperBound = decimal.NewFromInt(1_000_000)

// extractAmount finds the most likely monetary total. The returned value
// keeps the decimal form printed on the receipt, thousands separators
// stripped. Accepted values are strictly positive and below one million.
func extractAmount(text string) (decimal.Decimal, bool) {
	for _, pattern := range amountPatterns {
		m := pattern.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		value, err := decimal.NewFromString(strings.ReplaceAll(m[1], ",", ""))
		if err != nil {
			continue
		}
		if value.GreaterThan(decimal.Zero) && value.LessThan(amountUpperBound) {
			return value, true
		}
	}

	// No labeled amount found: fall back to the largest standalone
	// two-decimal token. This can latch onto unrelated numbers that happen
	// to look like money, an accepted heuristic tradeoff.
	var best decimal.Decimal
	found := false
	for _, m := range moneyToken.FindAllStringSubmatch(text, -1) {
		value, err := decimal.NewFromString(m[1])
		if err != nil {
			continue
		}
		if !value.GreaterThan(decimal.Zero) || !value.LessThan(amountUpperBound) {
			continue
		}
		if !found || value.GreaterThan(best) {
			best = value
			found = true
		}
	}
	return best, found
}
