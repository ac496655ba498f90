// Package tui implements the interactive ledger dashboard.
package tui

import (
	"context"
	"fmt"

	"github.com/Veraticus/neo-finance/internal/model"
	"github.com/Veraticus/neo-finance/internal/money"
	"github.com/Veraticus/neo-finance/internal/query"
	"github.com/Veraticus/neo-finance/internal/tui/themes"
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Ledger is the part of the store the dashboard reads and changes.
type Ledger interface {
	Transactions(section model.Section) []model.Transaction
	Active() model.Section
	SetActive(ctx context.Context, section model.Section) error
	Remove(ctx context.Context, section model.Section, id int64) (bool, error)
	UsedCategories() []string
}

// Config configures the dashboard.
type Config struct {
	Ledger    Ledger
	Formatter *money.Formatter
	Theme     themes.Theme
	Months    int
	Width     int
	Height    int
}

// Model holds the dashboard state.
type Model struct {
	ctx        context.Context
	ledger     Ledger
	formatter  *money.Formatter
	theme      themes.Theme
	keymap     KeyMap
	help       help.Model
	search     textinput.Model
	filter     query.Filter
	section    model.Section
	status     string
	categories []string
	all        []model.Transaction
	visible    []model.Transaction
	pending    *model.Transaction
	months     int
	catIndex   int
	cursor     int
	width      int
	height     int
	statusErr  bool
	searching  bool
	quitting   bool
}

// NewModel creates a dashboard showing the ledger's active section.
func NewModel(ctx context.Context, cfg Config) Model {
	search := textinput.New()
	search.Prompt = "/ "
	search.Placeholder = "search description or note"
	search.CharLimit = 64
	search.Cursor.SetMode(cursor.CursorStatic)

	formatter := cfg.Formatter
	if formatter == nil {
		formatter = money.Default()
	}
	months := cfg.Months
	if months <= 0 {
		months = 6
	}

	m := Model{
		ctx:       ctx,
		ledger:    cfg.Ledger,
		formatter: formatter,
		theme:     cfg.Theme,
		keymap:    DefaultKeyMap(),
		help:      help.New(),
		search:    search,
		filter:    query.Filter{Sign: query.SignAll, Category: query.AllCategories},
		section:   cfg.Ledger.Active(),
		months:    months,
		width:     cfg.Width,
		height:    cfg.Height,
	}
	m.refresh()
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case sectionChangedMsg:
		m.section = msg.section
		m.cursor = 0
		m.setStatus(fmt.Sprintf("Switched to %s", msg.section), false)
		m.refresh()
		return m, nil

	case transactionDeletedMsg:
		if msg.removed {
			m.setStatus("Transaction deleted", false)
		} else {
			m.setStatus(fmt.Sprintf("Transaction %d was already gone", msg.id), false)
		}
		m.refresh()
		return m, nil

	case errorMsg:
		m.setStatus(msg.Error(), true)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keymap.ForceQuit) {
			m.quitting = true
			return m, tea.Quit
		}
		if m.pending != nil {
			return m.confirmDelete(msg)
		}
		if m.searching {
			return m.updateSearch(msg)
		}
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Confirm):
		m.searching = false
		m.search.Blur()
		return m, nil
	case key.Matches(msg, m.keymap.Cancel):
		m.searching = false
		m.search.Blur()
		m.search.SetValue("")
		m.filter.Text = ""
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.filter.Text = m.search.Value()
	m.cursor = 0
	m.refresh()
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keymap.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keymap.Down):
		if m.cursor < len(m.visible)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keymap.Home):
		m.cursor = 0

	case key.Matches(msg, m.keymap.End):
		m.cursor = max(0, len(m.visible)-1)

	case key.Matches(msg, m.keymap.NextSection):
		return m, m.switchSection(nextSection(m.section))

	case key.Matches(msg, m.keymap.Search):
		m.searching = true
		cmd := m.search.Focus()
		return m, cmd

	case key.Matches(msg, m.keymap.CycleSign):
		m.filter.Sign = m.filter.Sign.Next()
		m.cursor = 0
		m.refresh()

	case key.Matches(msg, m.keymap.CycleCategory):
		m.catIndex = (m.catIndex + 1) % len(m.categories)
		m.filter.Category = m.categories[m.catIndex]
		m.cursor = 0
		m.refresh()

	case key.Matches(msg, m.keymap.ResetFilters):
		m.filter = query.Filter{Sign: query.SignAll, Category: query.AllCategories}
		m.catIndex = 0
		m.search.SetValue("")
		m.cursor = 0
		m.refresh()

	case key.Matches(msg, m.keymap.Delete):
		if txn, ok := m.Selected(); ok {
			m.pending = &txn
			m.setStatus(fmt.Sprintf("Delete this transaction? %s %s (y/n)",
				describe(txn), m.formatter.Format(txn.Amount)), false)
			return m, nil
		}
		m.setStatus("Nothing to delete", false)
	}

	return m, nil
}

// confirmDelete answers the pending delete prompt. Any key other than Yes
// keeps the transaction.
func (m Model) confirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	txn := *m.pending
	m.pending = nil
	if key.Matches(msg, m.keymap.Yes) {
		return m, m.deleteTransaction(txn.ID)
	}
	m.setStatus("Delete canceled", false)
	return m, nil
}

func describe(txn model.Transaction) string {
	if txn.Description == "" {
		return txn.Category
	}
	return txn.Description
}

// refresh reloads the section from the ledger and reapplies the filters.
func (m *Model) refresh() {
	m.all = m.ledger.Transactions(m.section)
	m.visible = query.Apply(m.all, m.filter)

	m.categories = append([]string{query.AllCategories}, m.ledger.UsedCategories()...)
	m.catIndex = 0
	for i, c := range m.categories {
		if c == m.filter.Category {
			m.catIndex = i
		}
	}
	if m.categories[m.catIndex] != m.filter.Category {
		m.filter.Category = query.AllCategories
		m.visible = query.Apply(m.all, m.filter)
	}

	if m.cursor >= len(m.visible) {
		m.cursor = max(0, len(m.visible)-1)
	}
}

func (m *Model) setStatus(status string, isErr bool) {
	m.status = status
	m.statusErr = isErr
}

// Selected returns the transaction under the cursor.
func (m Model) Selected() (model.Transaction, bool) {
	if m.cursor < 0 || m.cursor >= len(m.visible) {
		return model.Transaction{}, false
	}
	return m.visible[m.cursor], true
}

// Section returns the section being shown.
func (m Model) Section() model.Section {
	return m.section
}

// Visible returns the filtered transactions in display order.
func (m Model) Visible() []model.Transaction {
	return m.visible
}

// Filter returns the filters in effect.
func (m Model) Filter() query.Filter {
	return m.filter
}
