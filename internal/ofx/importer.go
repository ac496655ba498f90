package ofx

import (
	"context"
	"errors"
	"log/slog"

	"github.com/Veraticus/neo-finance/internal/common"
	"github.com/Veraticus/neo-finance/internal/model"
)

// Adder is the part of the ledger the importer writes to.
type Adder interface {
	Add(ctx context.Context, section model.Section, draft model.Draft) (model.Transaction, error)
}

// ImportResult counts what happened to each entry.
type ImportResult struct {
	Added      int
	Duplicates int
	Rejected   int
}

// Importer adds parsed entries to one section, skipping FITIDs it has already
// seen during its lifetime.
type Importer struct {
	ledger  Adder
	seen    map[string]struct{}
	section model.Section
}

// NewImporter creates an importer targeting section.
func NewImporter(ledger Adder, section model.Section) *Importer {
	return &Importer{
		ledger:  ledger,
		section: section,
		seen:    make(map[string]struct{}),
	}
}

// IsDuplicate reports whether entry's FITID was already handled and marks it
// as seen. Entries without a FITID are never duplicates.
func (i *Importer) IsDuplicate(entry Entry) bool {
	if entry.FITID == "" {
		return false
	}
	key := entry.AccountID + "/" + entry.FITID
	if _, ok := i.seen[key]; ok {
		return true
	}
	i.seen[key] = struct{}{}
	return false
}

// Import adds entries in order. Validation failures are counted and logged;
// any other error stops the import. progress, when non-nil, is called once per
// entry.
func (i *Importer) Import(ctx context.Context, entries []Entry, progress func()) (ImportResult, error) {
	var result ImportResult
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		switch {
		case i.IsDuplicate(entry):
			result.Duplicates++
		default:
			_, err := i.ledger.Add(ctx, i.section, entry.Draft)
			var userErr *common.UserError
			switch {
			case err == nil:
				result.Added++
			case errors.As(err, &userErr):
				result.Rejected++
				slog.Warn("Rejected imported transaction",
					"fitid", entry.FITID,
					"description", entry.Draft.Description,
					"reason", userErr.UserMessage)
			default:
				return result, err
			}
		}

		if progress != nil {
			progress()
		}
	}
	return result, nil
}
