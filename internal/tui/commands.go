package tui

import (
	"github.com/Veraticus/neo-finance/internal/model"
	tea "github.com/charmbracelet/bubbletea"
)

// switchSection persists the new active section.
func (m Model) switchSection(section model.Section) tea.Cmd {
	ctx, ledger := m.ctx, m.ledger
	return func() tea.Msg {
		if err := ledger.SetActive(ctx, section); err != nil {
			return errorMsg{err: err}
		}
		return sectionChangedMsg{section: section}
	}
}

// deleteTransaction removes id from the current section.
func (m Model) deleteTransaction(id int64) tea.Cmd {
	ctx, ledger, section := m.ctx, m.ledger, m.section
	return func() tea.Msg {
		removed, err := ledger.Remove(ctx, section, id)
		if err != nil {
			return errorMsg{err: err}
		}
		return transactionDeletedMsg{id: id, removed: removed}
	}
}

func nextSection(s model.Section) model.Section {
	sections := model.Sections()
	for i, candidate := range sections {
		if candidate == s {
			return sections[(i+1)%len(sections)]
		}
	}
	return model.DefaultSection
}
