package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractCategory_Keywords(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Category
	}{
		{"uber ride", "Uber Trip Receipt\nTotal: 24.50", CategoryTransportation},
		{"restaurant", "Thanks for dining at Luigi's Restaurant", CategoryFood},
		{"hotel stay", "Grand Hotel\nRoom 204\n2 nights", CategoryAccommodation},
		{"pharmacy", "City Pharmacy\nParacetamol x2", CategoryMedical},
		{"cinema", "CINEMA CITY ticket", CategoryEntertainment},
		{"stationery", "stationery and printer ink", CategoryOfficeSupplies},
		{"internet bill", "internet service monthly bill", CategoryUtilities},
		{"case insensitive", "COFFEE HOUSE", CategoryFood},
		{"substring hit", "gasoline refill", CategoryTransportation},
		{"no keyword", "zzz qqq 123", CategoryOther},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractCategory(tt.text)
			assert.Equal(t, tt.want, got)
			assert.True(t, got.IsValid())
		})
	}
}

func TestExtractCategory_TableOrderWins(t *testing.T) {
	// Both a Food and a Transportation keyword appear. Food sits earlier
	// in the table, so it wins regardless of position in the text.
	assert.Equal(t, CategoryFood, extractCategory("taxi to the cafe"))

	// "business" hides a "bus", but the lunch still makes it Food.
	assert.Equal(t, CategoryFood, extractCategory("Business lunch at noon"))
}

func TestExtractPaymentMethod_Keywords(t *testing.T) {
	tests := []struct {
		name string
		text string
		want PaymentMethod
	}{
		{"upi reference", "UPI Ref: 123, paid via gpay", PaymentUPI},
		{"visa", "Paid by VISA ****1234", PaymentCreditCard},
		{"debit", "debit card payment", PaymentDebitCard},
		{"explicit cash", "paid in cash", PaymentCash},
		{"default", "no payment words here", PaymentCash},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractPaymentMethod(tt.text)
			assert.Equal(t, tt.want, got)
			assert.True(t, got.IsValid())
		})
	}
}

func TestExtractPaymentMethod_TableOrderWins(t *testing.T) {
	got := extractPaymentMethod("debit declined, charged to credit instead")
	assert.Equal(t, PaymentCreditCard, got)
}

func TestExtractCategoryAndPayment_Independent(t *testing.T) {
	text := "Pizza Palace\nTotal: 18.00\nPaid by visa"
	assert.Equal(t, CategoryFood, extractCategory(text))
	assert.Equal(t, PaymentCreditCard, extractPaymentMethod(text))
}

func TestFindKeywords_SingleScan(t *testing.T) {
	found := findKeywords(categoryMachine, "Coffee and PIZZA to go")
	assert.True(t, found["coffee"])
	assert.True(t, found["pizza"])
	assert.False(t, found["taxi"])
}

func TestKeywordTables_ValidTargets(t *testing.T) {
	for _, entry := range categoryTable {
		assert.True(t, entry.category.IsValid(), "category %q", entry.category)
	}
	for _, entry := range paymentTable {
		assert.True(t, entry.method.IsValid(), "method %q", entry.method)
	}
}
