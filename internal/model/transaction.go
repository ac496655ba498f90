package model

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the calendar-date form used for input and export.
const DateLayout = "2006-01-02"

// Transaction is a single ledger record. The sign of Amount encodes direction:
// positive is income (revenue), negative is expense.
type Transaction struct {
	Date        *time.Time      `json:"date,omitempty"`
	Note        *string         `json:"note,omitempty"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	ID          int64           `json:"id"`
}

// IsIncome reports whether the transaction adds money.
func (t Transaction) IsIncome() bool {
	return t.Amount.IsPositive()
}

// IsExpense reports whether the transaction removes money.
func (t Transaction) IsExpense() bool {
	return t.Amount.IsNegative()
}

// NoteText returns the note or an empty string.
func (t Transaction) NoteText() string {
	if t.Note == nil {
		return ""
	}
	return *t.Note
}

// EffectiveDate returns the transaction date, falling back to the creation
// instant encoded in the id when no date was recorded.
func (t Transaction) EffectiveDate() time.Time {
	if t.Date != nil {
		return *t.Date
	}
	return time.UnixMilli(t.ID)
}

// Clone returns a deep copy so callers cannot mutate ledger-owned pointers.
func (t Transaction) Clone() Transaction {
	out := t
	if t.Date != nil {
		d := *t.Date
		out.Date = &d
	}
	if t.Note != nil {
		n := *t.Note
		out.Note = &n
	}
	return out
}

// UnmarshalJSON accepts RFC 3339 timestamps as well as bare YYYY-MM-DD dates,
// and numeric or string amounts, so older snapshots keep loading.
func (t *Transaction) UnmarshalJSON(data []byte) error {
	type alias Transaction
	aux := struct {
		*alias
		Date *string `json:"date,omitempty"`
	}{alias: (*alias)(t)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	if t.Note != nil {
		t.Note = NormalizeNote(*t.Note)
	}

	t.Date = nil
	if aux.Date != nil && strings.TrimSpace(*aux.Date) != "" {
		d, err := ParseDate(*aux.Date)
		if err != nil {
			return fmt.Errorf("transaction %d: %w", t.ID, err)
		}
		t.Date = &d
	}
	return nil
}

// Draft carries the caller-supplied fields of a new transaction.
type Draft struct {
	Date        *time.Time
	Note        *string
	Description string
	Category    string
	Amount      decimal.Decimal
}

// Patch lists the fields to replace on an existing transaction. Nil fields are
// left untouched.
type Patch struct {
	Description *string
	Amount      *decimal.Decimal
	Category    *string
	Date        *time.Time
	Note        *string
}

// Apply merges the patch into a copy of txn. The id is never changed.
func (p Patch) Apply(txn Transaction) Transaction {
	out := txn.Clone()
	if p.Description != nil {
		out.Description = strings.TrimSpace(*p.Description)
	}
	if p.Amount != nil {
		out.Amount = *p.Amount
	}
	if p.Category != nil {
		out.Category = strings.TrimSpace(*p.Category)
	}
	if p.Date != nil {
		d := *p.Date
		out.Date = &d
	}
	if p.Note != nil {
		out.Note = NormalizeNote(*p.Note)
	}
	return out
}

// NormalizeNote trims a note and maps blank input to nil.
func NormalizeNote(note string) *string {
	note = strings.TrimSpace(note)
	if note == "" {
		return nil
	}
	return &note
}

// ParseDate parses a YYYY-MM-DD date (local midnight) or an RFC 3339 timestamp.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if d, err := time.ParseInLocation(DateLayout, s, time.Local); err == nil {
		return d, nil
	}
	if d, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return d, nil
	}
	return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD or RFC 3339", s)
}
