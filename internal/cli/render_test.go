package cli

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/Veraticus/neo-finance/internal/analytics"
	"github.com/Veraticus/neo-finance/internal/model"
	"github.com/Veraticus/neo-finance/internal/money"
	"github.com/Veraticus/neo-finance/internal/policy"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderSummary(t *testing.T) {
	s := analytics.Summary{
		Balance:  decimal.NewFromInt(600),
		Income:   decimal.NewFromInt(1000),
		Expenses: decimal.NewFromInt(-400),
		Count:    2,
	}
	out := RenderSummary(s, policy.For(model.SectionVendor).Labels, money.Default())

	for _, want := range []string{"Net Profit", "Revenue", "Expenses", "₹600.00", "₹1,000.00", "-₹400.00", "2 transactions"} {
		assert.Contains(t, out, want)
	}
}

func TestWriteTransactionTable(t *testing.T) {
	date := time.Date(2025, 1, 5, 0, 0, 0, 0, time.Local)
	note := "beans"
	txns := []model.Transaction{
		{ID: 2, Description: "Coffee", Amount: decimal.NewFromInt(-150), Category: "Food", Date: &date, Note: &note},
		{ID: 1, Amount: decimal.NewFromInt(500), Category: "Income"},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteTransactionTable(&buf, txns, policy.For(model.SectionIndividual), money.Default()))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "Description")
	assert.Contains(t, lines[2], "2025-01-05")
	assert.Contains(t, lines[2], "-₹150.00")
	assert.Contains(t, lines[2], "beans")
	assert.Contains(t, lines[3], "(none)")
	assert.Contains(t, lines[3], "₹500.00")
	assert.Contains(t, lines[1], "─", "header is underlined")
}

func TestWriteTransactionTable_AlignsStyledCells(t *testing.T) {
	prev := lipgloss.ColorProfile()
	lipgloss.SetColorProfile(termenv.TrueColor)
	t.Cleanup(func() { lipgloss.SetColorProfile(prev) })

	date := time.Date(2025, 1, 5, 0, 0, 0, 0, time.Local)
	txns := []model.Transaction{
		{ID: 2, Description: "Coffee", Amount: decimal.NewFromInt(-150), Category: "Food", Date: &date, Note: new(string)},
		{ID: 1, Amount: decimal.NewFromInt(500), Category: "Income", Date: &date},
	}
	*txns[0].Note = "beans"

	var buf bytes.Buffer
	require.NoError(t, WriteTransactionTable(&buf, txns, policy.For(model.SectionIndividual), money.Default()))
	require.Contains(t, buf.String(), "\x1b[", "cells are coloured")

	lines := strings.Split(ansi.Strip(strings.TrimRight(buf.String(), "\n")), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, strings.Index(lines[2], "Food"), strings.Index(lines[3], "Income"))
	assert.Equal(t, strings.Index(lines[0], "Category"), strings.Index(lines[2], "Food"))
}

func TestRenderBars(t *testing.T) {
	f := money.Default()

	assert.Contains(t, RenderBars(nil, 10, f), "No data")

	bars := []Bar{
		{Label: "Food", Value: decimal.NewFromInt(100)},
		{Label: "Bills", Value: decimal.NewFromInt(-50)},
		{Label: "Tiny", Value: decimal.RequireFromString("0.01")},
		{Label: "None", Value: decimal.Zero},
	}
	out := RenderBars(bars, 10, f)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 4)

	assert.Equal(t, 10, strings.Count(lines[0], "█"))
	assert.Equal(t, 5, strings.Count(lines[1], "█"))
	assert.Equal(t, 1, strings.Count(lines[2], "█"), "non-zero values always get a cell")
	assert.Equal(t, 0, strings.Count(lines[3], "█"))
	assert.Contains(t, lines[1], "-₹50.00")

	// Labels are padded to a common width so bars line up.
	assert.True(t, strings.HasPrefix(lines[0], "Food   "))
	assert.True(t, strings.HasPrefix(lines[1], "Bills  "))
}

func TestMonthlyAndCategoryBars(t *testing.T) {
	series := []analytics.MonthNet{{Label: "Jan 2025", Net: decimal.NewFromInt(5)}}
	assert.Equal(t, []Bar{{Label: "Jan 2025", Value: decimal.NewFromInt(5)}}, MonthlyBars(series))

	totals := []analytics.CategoryTotal{{Name: "Food", Amount: decimal.NewFromInt(3)}}
	assert.Equal(t, []Bar{{Label: "Food", Value: decimal.NewFromInt(3)}}, CategoryBars(totals))
}

func TestRenderInsights(t *testing.T) {
	out := RenderInsights([]analytics.Insight{
		{Title: "Net", Text: "Income ₹1.00 • Expenses -₹0.00"},
		{Title: "Avg expense", Text: "Average expense ₹0.00"},
	})
	assert.Contains(t, out, "Insights")
	assert.Contains(t, out, "Net")
	assert.Contains(t, out, "Average expense ₹0.00")
}
