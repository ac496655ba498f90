// Package analytics derives summaries, category breakdowns, monthly series and
// insights from a set of transactions. Every function is pure.
package analytics

import (
	"strings"

	"github.com/Veraticus/neo-finance/internal/model"
	"github.com/shopspring/decimal"
)

// OtherCategory is the bucket for transactions without a category.
const OtherCategory = "Other"

// Summary holds the headline figures of a transaction set.
// Expenses is kept negative so Balance == Income + Expenses.
type Summary struct {
	Balance  decimal.Decimal
	Income   decimal.Decimal
	Expenses decimal.Decimal
	Count    int
}

// Summarize totals txns. An empty set yields zeros.
func Summarize(txns []model.Transaction) Summary {
	s := Summary{
		Balance:  decimal.Zero,
		Income:   decimal.Zero,
		Expenses: decimal.Zero,
		Count:    len(txns),
	}
	for _, t := range txns {
		s.Balance = s.Balance.Add(t.Amount)
		switch {
		case t.IsIncome():
			s.Income = s.Income.Add(t.Amount)
		case t.IsExpense():
			s.Expenses = s.Expenses.Add(t.Amount)
		}
	}
	return s
}

// CategoryTotal is the sum of absolute amounts recorded under one category.
type CategoryTotal struct {
	Name   string
	Amount decimal.Decimal
}

// CategoryTotals groups txns by category in first-seen order.
func CategoryTotals(txns []model.Transaction) []CategoryTotal {
	index := make(map[string]int)
	var out []CategoryTotal
	for _, t := range txns {
		name := categoryName(t.Category)
		i, ok := index[name]
		if !ok {
			i = len(out)
			index[name] = i
			out = append(out, CategoryTotal{Name: name, Amount: decimal.Zero})
		}
		out[i].Amount = out[i].Amount.Add(t.Amount.Abs())
	}
	return out
}

func categoryName(category string) string {
	if strings.TrimSpace(category) == "" {
		return OtherCategory
	}
	return category
}
