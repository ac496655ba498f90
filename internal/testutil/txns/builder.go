// Package txns builds ledger test data with a fluent API.
//
// Example usage:
//
//	drafts := txns.NewBuilder(t).
//		Income("ACME", "Salary", "5000").On("2025-03-01").
//		Expense("Coffee", "Food", "150").WithNote("with Priya").
//		Drafts()
package txns

import (
	"testing"

	"github.com/Veraticus/neo-finance/internal/model"
	"github.com/shopspring/decimal"
)

// Builder accumulates drafts. Modifiers such as On and WithNote apply to the
// most recently added draft.
type Builder struct {
	t      *testing.T
	drafts []model.Draft
}

// NewBuilder creates an empty builder.
func NewBuilder(t *testing.T) *Builder {
	t.Helper()
	return &Builder{t: t}
}

// Income adds a draft with a positive amount.
func (b *Builder) Income(description, category, amount string) *Builder {
	b.t.Helper()
	return b.add(description, category, b.parse(amount).Abs())
}

// Expense adds a draft with a negative amount. amount may be given with or
// without a sign.
func (b *Builder) Expense(description, category, amount string) *Builder {
	b.t.Helper()
	return b.add(description, category, b.parse(amount).Abs().Neg())
}

// Raw adds a draft with the amount exactly as given, including zero.
func (b *Builder) Raw(description, category, amount string) *Builder {
	b.t.Helper()
	return b.add(description, category, b.parse(amount))
}

// On dates the last draft. date is YYYY-MM-DD in local time.
func (b *Builder) On(date string) *Builder {
	b.t.Helper()
	d, err := model.ParseDate(date)
	if err != nil {
		b.t.Fatalf("invalid fixture date %q: %v", date, err)
	}
	b.last().Date = &d
	return b
}

// WithNote attaches a note to the last draft.
func (b *Builder) WithNote(note string) *Builder {
	b.t.Helper()
	b.last().Note = model.NormalizeNote(note)
	return b
}

// WithFixture appends the drafts of a predefined fixture.
func (b *Builder) WithFixture(f Fixture) *Builder {
	b.t.Helper()
	return f(b)
}

// Drafts returns copies of the accumulated drafts.
func (b *Builder) Drafts() []model.Draft {
	return append([]model.Draft(nil), b.drafts...)
}

// Transactions turns the drafts into stored-form transactions with ids
// 1, 2, 3... in insertion order. Undated drafts stay undated.
func (b *Builder) Transactions() []model.Transaction {
	out := make([]model.Transaction, len(b.drafts))
	for i, d := range b.drafts {
		out[i] = model.Transaction{
			ID:          int64(i + 1),
			Description: d.Description,
			Category:    d.Category,
			Amount:      d.Amount,
			Date:        d.Date,
			Note:        d.Note,
		}
	}
	return out
}

func (b *Builder) add(description, category string, amount decimal.Decimal) *Builder {
	b.drafts = append(b.drafts, model.Draft{
		Description: description,
		Category:    category,
		Amount:      amount,
	})
	return b
}

func (b *Builder) parse(amount string) decimal.Decimal {
	b.t.Helper()
	d, err := decimal.NewFromString(amount)
	if err != nil {
		b.t.Fatalf("invalid fixture amount %q: %v", amount, err)
	}
	return d
}

func (b *Builder) last() *model.Draft {
	b.t.Helper()
	if len(b.drafts) == 0 {
		b.t.Fatal("no draft to modify; add one first")
	}
	return &b.drafts[len(b.drafts)-1]
}
