package tui

import "github.com/Veraticus/neo-finance/internal/model"

type sectionChangedMsg struct {
	section model.Section
}

type transactionDeletedMsg struct {
	id      int64
	removed bool
}

type errorMsg struct {
	err error
}

func (e errorMsg) Error() string { return e.err.Error() }
