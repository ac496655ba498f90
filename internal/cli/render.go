package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/Veraticus/neo-finance/internal/analytics"
	"github.com/Veraticus/neo-finance/internal/model"
	"github.com/Veraticus/neo-finance/internal/money"
	"github.com/Veraticus/neo-finance/internal/policy"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
)

// DefaultBarWidth is the width of the longest chart bar.
const DefaultBarWidth = 30

// RenderSummary lays the balance, income and expense figures out as cards.
func RenderSummary(s analytics.Summary, labels policy.Labels, f *money.Formatter) string {
	card := func(label string, amount decimal.Decimal) string {
		value := StyleAmount(f.Format(amount), amount.IsNegative())
		return CardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, SubtleStyle.Render(label), BoldStyle.Render(value)))
	}

	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		card(labels.Balance, s.Balance),
		card(labels.Income, s.Income),
		card(labels.Expenses, s.Expenses),
	)
	return lipgloss.JoinVertical(lipgloss.Left, cards, SubtleStyle.Render(fmt.Sprintf("%d transactions", s.Count)))
}

// tableCell is one table cell: plain text for measuring and the style it is
// rendered with once padded.
type tableCell struct {
	text  string
	style *lipgloss.Style
}

// WriteTransactionTable writes txns as an aligned table. Cells are padded on
// their plain text and styled afterwards so colour codes never count as width.
func WriteTransactionTable(w io.Writer, txns []model.Transaction, vocab policy.Vocabulary, f *money.Formatter) error {
	header := []string{"ID", "Date", vocab.DescriptionLabel, "Category", "Amount", "Note"}

	rows := make([][]tableCell, 0, len(txns))
	for _, t := range txns {
		date := "-"
		if t.Date != nil {
			date = t.Date.Format(model.DateLayout)
		}
		desc := tableCell{text: t.Description}
		if desc.text == "" {
			desc = tableCell{text: "(none)", style: &SubtleStyle}
		}
		amountStyle := SuccessStyle
		if t.IsExpense() {
			amountStyle = ErrorStyle
		}
		rows = append(rows, []tableCell{
			{text: fmt.Sprintf("%d", t.ID)},
			{text: date},
			desc,
			{text: t.Category},
			{text: f.Format(t.Amount), style: &amountStyle},
			{text: t.NoteText()},
		})
	}

	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, c := range row {
			widths[i] = max(widths[i], lipgloss.Width(c.text))
		}
	}

	headerCells := make([]tableCell, len(header))
	for i, h := range header {
		headerCells[i] = tableCell{text: h}
	}
	if _, err := fmt.Fprintln(w, TableHeaderStyle.Render(joinCells(headerCells, widths))); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, row := range rows {
		if _, err := fmt.Fprintln(w, joinCells(row, widths)); err != nil {
			return fmt.Errorf("failed to write transaction %d: %w", txns[i].ID, err)
		}
	}
	return nil
}

func joinCells(cells []tableCell, widths []int) string {
	var b strings.Builder
	for i, c := range cells {
		text := c.text
		if i < len(cells)-1 {
			text += strings.Repeat(" ", widths[i]-lipgloss.Width(c.text)+2)
		}
		if c.style != nil {
			// Style the text only; padding stays outside the escape codes.
			text = c.style.Render(c.text) + text[len(c.text):]
		}
		b.WriteString(text)
	}
	return strings.TrimRight(b.String(), " ")
}

// Bar is one labelled row of a horizontal bar chart.
type Bar struct {
	Label string
	Value decimal.Decimal
}

// CategoryBars converts category totals into chart rows.
func CategoryBars(totals []analytics.CategoryTotal) []Bar {
	bars := make([]Bar, len(totals))
	for i, ct := range totals {
		bars[i] = Bar{Label: ct.Name, Value: ct.Amount}
	}
	return bars
}

// MonthlyBars converts a monthly series into chart rows.
func MonthlyBars(series []analytics.MonthNet) []Bar {
	bars := make([]Bar, len(series))
	for i, m := range series {
		bars[i] = Bar{Label: m.Label, Value: m.Net}
	}
	return bars
}

// RenderBars draws bars scaled so the largest magnitude spans width cells.
// Negative values are drawn in the expense colour.
func RenderBars(bars []Bar, width int, f *money.Formatter) string {
	if len(bars) == 0 {
		return SubtleStyle.Render("No data")
	}
	if width <= 0 {
		width = DefaultBarWidth
	}

	labelWidth := 0
	peak := decimal.Zero
	for _, b := range bars {
		labelWidth = max(labelWidth, lipgloss.Width(b.Label))
		if abs := b.Value.Abs(); abs.GreaterThan(peak) {
			peak = abs
		}
	}

	lines := make([]string, 0, len(bars))
	for _, b := range bars {
		cells := 0
		if peak.IsPositive() {
			cells = int(b.Value.Abs().Mul(decimal.NewFromInt(int64(width))).Div(peak).Round(0).IntPart())
		}
		if cells == 0 && !b.Value.IsZero() {
			cells = 1
		}

		style := BarStyle
		if b.Value.IsNegative() {
			style = ErrorStyle
		}
		bar := style.Render(strings.Repeat("█", cells))
		pad := strings.Repeat(" ", width-cells)
		label := b.Label + strings.Repeat(" ", labelWidth-lipgloss.Width(b.Label))
		lines = append(lines, fmt.Sprintf("%s  %s%s  %s", label, bar, pad, f.Format(b.Value)))
	}
	return strings.Join(lines, "\n")
}

// RenderInsights boxes each insight under its title.
func RenderInsights(insights []analytics.Insight) string {
	parts := make([]string, 0, len(insights))
	for _, in := range insights {
		parts = append(parts, BoldStyle.Render(in.Title)+"\n"+in.Text)
	}
	return RenderBox(IdeaIcon+" Insights", strings.Join(parts, "\n\n"))
}
