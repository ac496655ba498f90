package analytics

import (
	"github.com/Veraticus/neo-finance/internal/model"
	"github.com/shopspring/decimal"
)

// Insight is one titled line of commentary.
type Insight struct {
	Title string
	Text  string
}

// Formatter renders an amount for display.
type Formatter interface {
	Format(amount decimal.Decimal) string
}

// InsightStats are the numbers behind Insights.
type InsightStats struct {
	TopCategory    *CategoryTotal
	TotalIncome    decimal.Decimal
	TotalExpenses  decimal.Decimal
	AverageExpense decimal.Decimal
	ExpenseCount   int
}

// ComputeInsightStats gathers income, expense and top-category figures.
// TotalExpenses is positive. The average divides by at least one.
func ComputeInsightStats(txns []model.Transaction) InsightStats {
	stats := InsightStats{
		TotalIncome:    decimal.Zero,
		TotalExpenses:  decimal.Zero,
		AverageExpense: decimal.Zero,
	}
	for _, t := range txns {
		switch {
		case t.IsIncome():
			stats.TotalIncome = stats.TotalIncome.Add(t.Amount)
		case t.IsExpense():
			stats.TotalExpenses = stats.TotalExpenses.Add(t.Amount.Abs())
			stats.ExpenseCount++
		}
	}

	denom := stats.ExpenseCount
	if denom < 1 {
		denom = 1
	}
	stats.AverageExpense = stats.TotalExpenses.Div(decimal.NewFromInt(int64(denom))).Round(2)

	for _, ct := range CategoryTotals(txns) {
		if stats.TopCategory == nil || ct.Amount.GreaterThan(stats.TopCategory.Amount) {
			top := ct
			stats.TopCategory = &top
		}
	}
	return stats
}

// Insights describes txns in two or three entries: net position, average
// expense and, when any category exists, the top category. An empty set
// yields a single advisory.
func Insights(txns []model.Transaction, f Formatter) []Insight {
	if len(txns) == 0 {
		return []Insight{{Title: "No data", Text: "Add transactions to see insights."}}
	}

	stats := ComputeInsightStats(txns)
	out := []Insight{
		{
			Title: "Net",
			Text:  "Income " + f.Format(stats.TotalIncome) + " • Expenses " + f.Format(stats.TotalExpenses.Neg()),
		},
		{
			Title: "Avg expense",
			Text:  "Average expense " + f.Format(stats.AverageExpense),
		},
	}
	if stats.TopCategory != nil {
		out = append(out, Insight{
			Title: "Top: " + stats.TopCategory.Name,
			Text:  f.Format(stats.TopCategory.Amount) + " spent",
		})
	}
	return out
}
