// Package policy maps a ledger section to the vocabulary used to present it.
// It never changes stored data; categories listed here are suggestions only.
package policy

import (
	"github.com/Veraticus/neo-finance/internal/model"
)

// Labels are the captions of the three summary figures.
type Labels struct {
	Income   string
	Expenses string
	Balance  string
}

// Vocabulary describes how a section is presented and which categories are offered.
type Vocabulary struct {
	DescriptionLabel string
	Placeholder      string
	Title            string
	Labels           Labels
	categories       []string
}

// Categories returns the suggested categories in display order.
func (v Vocabulary) Categories() []string {
	return append([]string(nil), v.categories...)
}

// Suggests reports whether category is on the suggested list.
func (v Vocabulary) Suggests(category string) bool {
	for _, c := range v.categories {
		if c == category {
			return true
		}
	}
	return false
}

var vocabularies = map[model.Section]Vocabulary{
	model.SectionIndividual: {
		DescriptionLabel: "Description",
		Placeholder:      "e.g., Grocery, Coffee, Salary",
		Title:            "Add Personal Transaction",
		Labels:           Labels{Income: "Income", Expenses: "Expenses", Balance: "Balance"},
		categories: []string{
			"Income", "Salary", "Food", "Transport", "Shopping",
			"Bills", "Entertainment", "Health", "Education", "Other",
		},
	},
	model.SectionVendor: {
		DescriptionLabel: "Vendor/Client Name",
		Placeholder:      "e.g., ABC Corp, John Doe Client",
		Title:            "Add Vendor Transaction",
		Labels:           Labels{Income: "Revenue", Expenses: "Expenses", Balance: "Net Profit"},
		categories: []string{
			"Payment Received", "Service Fee", "Project Payment", "Consultation",
			"Product Sale", "Refund Issued", "Commission", "Other",
		},
	},
}

// For returns the vocabulary of section. Unknown sections get the individual
// vocabulary.
func For(section model.Section) Vocabulary {
	if v, ok := vocabularies[section]; ok {
		return v
	}
	return vocabularies[model.DefaultSection]
}
