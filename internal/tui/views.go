package tui

import (
	"fmt"
	"strings"

	"github.com/Veraticus/neo-finance/internal/analytics"
	"github.com/Veraticus/neo-finance/internal/cli"
	"github.com/Veraticus/neo-finance/internal/model"
	"github.com/Veraticus/neo-finance/internal/policy"
	"github.com/charmbracelet/lipgloss"
)

const (
	defaultListRows = 10
	// Lines used by everything except the transaction list.
	chromeLines = 22
	chartWidth  = 24
)

// View renders the dashboard.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	vocab := policy.For(m.section)
	sections := []string{
		m.renderTabs(),
		cli.RenderSummary(analytics.Summarize(m.all), vocab.Labels, m.formatter),
		m.renderTrend(),
		m.renderFilters(),
		m.renderList(vocab),
	}
	if m.status != "" {
		style := m.theme.StatusSuccess
		if m.statusErr {
			style = m.theme.StatusError
		}
		sections = append(sections, style.Render(m.status))
	}
	sections = append(sections, m.help.View(m.keymap))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderTabs() string {
	tabs := make([]string, 0, 2)
	for _, s := range model.Sections() {
		label := strings.ToUpper(string(s[:1])) + string(s[1:])
		if s == m.section {
			tabs = append(tabs, m.theme.ActiveTab.Render(label))
		} else {
			tabs = append(tabs, m.theme.Tab.Render(label))
		}
	}
	return m.theme.Title.Render(cli.LedgerIcon+" nf") + "\n" + lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) renderTrend() string {
	series := analytics.MonthlySeries(m.all, m.months)
	return m.theme.Subtitle.Render("Monthly net") + "\n" +
		cli.RenderBars(cli.MonthlyBars(series), chartWidth, m.formatter)
}

func (m Model) renderFilters() string {
	search := m.search.View()
	if !m.searching && m.filter.Text == "" {
		search = m.theme.Subtitle.Render("/ to search")
	}
	return fmt.Sprintf("%s   type: %s   category: %s   %s",
		search,
		m.theme.Bold.Render(string(m.filter.Sign)),
		m.theme.Bold.Render(m.filter.Category),
		m.theme.Subtitle.Render(fmt.Sprintf("%d of %d", len(m.visible), len(m.all))))
}

func (m Model) listRows() int {
	if m.height <= 0 {
		return defaultListRows
	}
	return max(3, m.height-chromeLines)
}

func (m Model) renderList(vocab policy.Vocabulary) string {
	if len(m.all) == 0 {
		return m.theme.RoundedBox.Render(m.theme.Subtitle.Render("No transactions yet. " + vocab.Title + " with `nf add`."))
	}
	if len(m.visible) == 0 {
		return m.theme.RoundedBox.Render(m.theme.Subtitle.Render("No transactions match the current filters."))
	}

	rows := m.listRows()
	start := 0
	if m.cursor >= rows {
		start = m.cursor - rows + 1
	}
	end := min(len(m.visible), start+rows)

	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		lines = append(lines, m.renderRow(m.visible[i], i == m.cursor))
	}
	return m.theme.RoundedBox.Render(strings.Join(lines, "\n"))
}

func (m Model) renderRow(t model.Transaction, selected bool) string {
	date := "          "
	if t.Date != nil {
		date = t.Date.Format(model.DateLayout)
	}
	desc := t.Description
	if desc == "" {
		desc = "(none)"
	}
	if note := t.NoteText(); note != "" {
		desc += " · " + note
	}
	desc = truncate(desc, 36)

	amountStyle := m.theme.Income
	if t.IsExpense() {
		amountStyle = m.theme.Expense
	}

	line := fmt.Sprintf("%s  %-36s  %-16s %14s", date, desc, truncate(t.Category, 16), amountStyle.Render(m.formatter.Format(t.Amount)))
	if selected {
		return m.theme.Selected.Render("▸ " + line)
	}
	return "  " + line
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
