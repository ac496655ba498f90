// Package export writes a section's transactions as CSV.
package export

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/Veraticus/neo-finance/internal/model"
)

// Header is the first row of every export.
var Header = []string{"Description", "Amount", "Category", "Date", "Note"}

// FileName returns the export file name for section on the given day. The
// date is taken in UTC.
func FileName(section model.Section, at time.Time) string {
	return fmt.Sprintf("%s_transactions_%s.csv", section, at.UTC().Format(model.DateLayout))
}

// Row renders the export fields of txn. Dates are written as the local
// calendar day, the same day the monthly series buckets them under.
func Row(txn model.Transaction) []string {
	date := ""
	if txn.Date != nil {
		date = txn.Date.Local().Format(model.DateLayout)
	}
	return []string{
		txn.Description,
		txn.Amount.String(),
		txn.Category,
		date,
		txn.NoteText(),
	}
}

// WriteCSV writes the header and one row per transaction, in the order given.
// Every field is quoted and rows are separated by a bare newline with no
// trailing newline.
func WriteCSV(w io.Writer, txns []model.Transaction) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(formatRow(Header)); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, t := range txns {
		if _, err := bw.WriteString("\n" + formatRow(Row(t))); err != nil {
			return fmt.Errorf("failed to write csv row for transaction %d: %w", t.ID, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to flush csv: %w", err)
	}
	return nil
}

func formatRow(fields []string) string {
	quoted := make([]string, len(fields))
	for i, f := range fields {
		quoted[i] = `"` + strings.ReplaceAll(f, `"`, `""`) + `"`
	}
	return strings.Join(quoted, ",")
}
