// details.go - Structured expense fields produced by the extraction engine

package extraction

import (
	"github.com/shopspring/decimal"
)

// Category classifies an expense. The set is closed: extraction never
// produces a value outside it, with Other as the default.
type Category string

const (
	CategoryFood           Category = "Food"
	CategoryTransportation Category = "Transportation"
	CategoryAccommodation  Category = "Accommodation"
	CategoryOfficeSupplies Category = "Office Supplies"
	CategoryEntertainment  Category = "Entertainment"
	CategoryMedical        Category = "Medical"
	CategoryUtilities      Category = "Utilities"
	CategoryOther          Category = "Other"
)

// IsValid reports membership in the closed category set
func (c Category) IsValid() bool {
	switch c {
	case CategoryFood, CategoryTransportation, CategoryAccommodation,
		CategoryOfficeSupplies, CategoryEntertainment, CategoryMedical,
		CategoryUtilities, CategoryOther:
		return true
	}
	return false
}

// PaymentMethod is the closed set of recognized payment methods, with Cash
// as the default.
type PaymentMethod string

const (
	PaymentCreditCard PaymentMethod = "Credit Card"
	PaymentDebitCard  PaymentMethod = "Debit Card"
	PaymentUPI        PaymentMethod = "UPI"
	PaymentCash       PaymentMethod = "Cash"
)

// IsValid reports membership in the closed payment-method set
func (p PaymentMethod) IsValid() bool {
	switch p {
	case PaymentCreditCard, PaymentDebitCard, PaymentUPI, PaymentCash:
		return true
	}
	return false
}

// Details is the extraction output record. Optional fields are pointers so
// absent values marshal as missing keys instead of empty strings. Date,
// Category and PaidBy always carry a value. Amount keeps the decimal form
// printed on the receipt and marshals as a decimal string.
type Details struct {
	Employee    *string          `json:"employee,omitempty"`
	Description *string          `json:"description,omitempty"`
	Date        string           `json:"date"`
	Category    Category         `json:"category"`
	PaidBy      PaymentMethod    `json:"paid_by"`
	Remark      *string          `json:"remark,omitempty"`
	Amount      *decimal.Decimal `json:"amount,omitempty"`
}
