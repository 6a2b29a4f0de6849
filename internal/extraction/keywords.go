// keywords.go - Keyword-table classifiers for category and payment method

package extraction

import (
	"fmt"
	"sort"
	"strings"

	goahocorasick "github.com/anknown/ahocorasick"
)

// categoryTable maps each category to its trigger keywords. Table order is
// part of the contract: the first entry with any keyword present in the
// text wins, not the entry with the most hits.
var categoryTable = []struct {
	category Category
	keywords []string
}{
	{CategoryFood, []string{
		"restaurant", "cafe", "coffee", "food", "dining", "meal", "breakfast",
		"lunch", "dinner", "pizza", "burger", "kitchen", "grill", "bistro",
	}},
	{CategoryTransportation, []string{
		"taxi", "uber", "lyft", "ola", "fuel", "gas", "petrol",
		"parking", "toll", "metro", "train", "flight", "bus",
	}},
	{CategoryAccommodation, []string{
		"hotel", "motel", "accommodation", "lodging", "airbnb", "resort",
	}},
	{CategoryOfficeSupplies, []string{
		"office", "supplies", "stationery", "printer", "paper",
	}},
	{CategoryEntertainment, []string{
		"movie", "cinema", "theater", "entertainment", "show",
	}},
	{CategoryMedical, []string{
		"pharmacy", "medical", "hospital", "clinic", "doctor", "medicine",
	}},
	{CategoryUtilities, []string{
		"electric", "water", "internet", "phone", "utility",
	}},
}

// paymentTable works the same way. Cash is also the default, so its
// keyword only matters for readability of the table.
var paymentTable = []struct {
	method   PaymentMethod
	keywords []string
}{
	{PaymentCreditCard, []string{"credit", "visa", "mastercard", "amex"}},
	{PaymentDebitCard, []string{"debit"}},
	{PaymentUPI, []string{"upi", "paytm", "gpay", "phonepe", "bhim"}},
	{PaymentCash, []string{"cash"}},
}

// One Aho-Corasick machine per classifier, built once. The tables are
// static, so a build failure is a programming error.
var (
	categoryMachine = mustMachine(categoryKeywordList())
	paymentMachine  = mustMachine(paymentKeywordList())
)

func categoryKeywordList() []string {
	var words []string
	for _, entry := range categoryTable {
		words = append(words, entry.keywords...)
	}
	return words
}

func paymentKeywordList() []string {
	var words []string
	for _, entry := range paymentTable {
		words = append(words, entry.keywords...)
	}
	return words
}

// mustMachine builds a matching automaton from the keyword list. The
// underlying trie wants its dictionary sorted.
func mustMachine(words []string) *goahocorasick.Machine {
	sort.Strings(words)
	dict := make([][]rune, len(words))
	for i, w := range words {
		dict[i] = []rune(w)
	}
	m := new(goahocorasick.Machine)
	if err := m.Build(dict); err != nil {
		panic(fmt.Sprintf("building keyword machine: %v", err))
	}
	return m
}

// findKeywords scans the lower-cased text once and reports every dictionary
// keyword occurring as a substring.
func findKeywords(m *goahocorasick.Machine, text string) map[string]bool {
	found := make(map[string]bool)
	for _, term := range m.MultiPatternSearch([]rune(strings.ToLower(text)), false) {
		found[string(term.Word)] = true
	}
	return found
}

// extractCategory classifies the expense by keyword lookup, Other when no
// keyword appears anywhere in the text.
func extractCategory(text string) Category {
	found := findKeywords(categoryMachine, text)
	for _, entry := range categoryTable {
		for _, keyword := range entry.keywords {
			if found[keyword] {
				return entry.category
			}
		}
	}
	return CategoryOther
}

// extractPaymentMethod classifies how the expense was paid, Cash when no
// keyword appears.
func extractPaymentMethod(text string) PaymentMethod {
	found := findKeywords(paymentMachine, text)
	for _, entry := range paymentTable {
		for _, keyword := range entry.keywords {
			if found[keyword] {
				return entry.method
			}
		}
	}
	return PaymentCash
}
