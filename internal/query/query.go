// Package query filters and orders a section's transactions for display.
package query

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/Veraticus/neo-finance/internal/model"
)

// Sign selects transactions by amount polarity.
type Sign string

// Supported sign filters.
const (
	SignAll     Sign = "all"
	SignIncome  Sign = "income"
	SignExpense Sign = "expense"
)

// AllCategories is the category value that disables category filtering.
const AllCategories = "all"

// ErrUnknownSign is returned by ParseSign for unrecognised values.
var ErrUnknownSign = errors.New("unknown sign filter")

// ParseSign parses a sign filter; empty input means SignAll.
func ParseSign(s string) (Sign, error) {
	switch Sign(strings.ToLower(strings.TrimSpace(s))) {
	case "", SignAll:
		return SignAll, nil
	case SignIncome:
		return SignIncome, nil
	case SignExpense:
		return SignExpense, nil
	default:
		return "", fmt.Errorf("%w: %q (want all, income or expense)", ErrUnknownSign, s)
	}
}

// Next cycles all → income → expense → all.
func (s Sign) Next() Sign {
	switch s {
	case SignIncome:
		return SignExpense
	case SignExpense:
		return SignAll
	default:
		return SignIncome
	}
}

// Filter holds the criteria applied by Apply. The zero value matches everything.
type Filter struct {
	Text     string
	Sign     Sign
	Category string
}

// Apply returns the transactions matching f, newest id first. The input slice
// is left untouched.
func Apply(txns []model.Transaction, f Filter) []model.Transaction {
	sorted := make([]model.Transaction, len(txns))
	copy(sorted, txns)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ID > sorted[j].ID
	})

	text := strings.ToLower(strings.TrimSpace(f.Text))
	category := f.Category
	if category == AllCategories {
		category = ""
	}

	out := make([]model.Transaction, 0, len(sorted))
	for _, t := range sorted {
		if !f.matchesSign(t) {
			continue
		}
		if category != "" && t.Category != category {
			continue
		}
		if text != "" && !matchesText(t, text) {
			continue
		}
		out = append(out, t)
	}
	return out
}

func (f Filter) matchesSign(t model.Transaction) bool {
	switch f.Sign {
	case SignIncome:
		return t.IsIncome()
	case SignExpense:
		return t.IsExpense()
	default:
		return true
	}
}

func matchesText(t model.Transaction, needle string) bool {
	return strings.Contains(strings.ToLower(t.Description), needle) ||
		strings.Contains(strings.ToLower(t.NoteText()), needle)
}
