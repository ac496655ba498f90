package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransaction_UnmarshalLegacySnapshot(t *testing.T) {
	tests := []struct {
		name       string
		payload    string
		wantAmount string
		wantDate   bool
		wantNote   string
	}{
		{
			name:       "numeric amount and bare date",
			payload:    `{"id":1700000000000,"description":"Coffee","amount":-150,"category":"Food","date":"2024-01-15","note":""}`,
			wantAmount: "-150",
			wantDate:   true,
		},
		{
			name:       "string amount and RFC 3339 date",
			payload:    `{"id":1700000000001,"description":"Salary","amount":"1000.50","category":"Salary","date":"2024-02-01T10:00:00.000Z","note":"feb"}`,
			wantAmount: "1000.5",
			wantDate:   true,
			wantNote:   "feb",
		},
		{
			name:       "missing date",
			payload:    `{"id":1700000000002,"description":"","amount":5,"category":"Other"}`,
			wantAmount: "5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var txn Transaction
			require.NoError(t, json.Unmarshal([]byte(tt.payload), &txn))
			assert.Equal(t, tt.wantAmount, txn.Amount.String())
			assert.Equal(t, tt.wantDate, txn.Date != nil)
			assert.Equal(t, tt.wantNote, txn.NoteText())
		})
	}
}

func TestTransaction_UnmarshalRejectsBadDate(t *testing.T) {
	var txn Transaction
	err := json.Unmarshal([]byte(`{"id":1,"amount":1,"category":"x","date":"not-a-date"}`), &txn)
	assert.Error(t, err)
}

func TestTransaction_JSONRoundTrip(t *testing.T) {
	date := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	note := "with \"quotes\""
	orig := Transaction{
		ID:          1710000000000,
		Description: "Rent",
		Amount:      decimal.RequireFromString("-1200.25"),
		Category:    "Bills",
		Date:        &date,
		Note:        &note,
	}

	data, err := json.Marshal(orig)
	require.NoError(t, err)

	var back Transaction
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, orig.ID, back.ID)
	assert.True(t, orig.Amount.Equal(back.Amount))
	assert.True(t, orig.Date.Equal(*back.Date))
	assert.Equal(t, note, back.NoteText())
}

func TestTransaction_EffectiveDateFallsBackToID(t *testing.T) {
	created := time.Date(2024, 5, 20, 8, 30, 0, 0, time.UTC)
	txn := Transaction{ID: created.UnixMilli()}
	assert.True(t, txn.EffectiveDate().Equal(created))

	date := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	txn.Date = &date
	assert.True(t, txn.EffectiveDate().Equal(date))
}

func TestPatch_ApplyKeepsID(t *testing.T) {
	orig := Transaction{ID: 42, Description: "old", Amount: decimal.NewFromInt(-5), Category: "Food"}
	desc := "  new  "
	amount := decimal.NewFromInt(10)
	blank := "   "

	got := Patch{Description: &desc, Amount: &amount, Note: &blank}.Apply(orig)

	assert.Equal(t, int64(42), got.ID)
	assert.Equal(t, "new", got.Description)
	assert.True(t, got.Amount.Equal(amount))
	assert.Equal(t, "Food", got.Category)
	assert.Nil(t, got.Note)
	assert.Equal(t, "old", orig.Description, "original must not change")
}

func TestClone_DetachesPointers(t *testing.T) {
	note := "a"
	date := time.Now()
	orig := Transaction{Note: &note, Date: &date}
	c := orig.Clone()
	*c.Note = "b"
	assert.Equal(t, "a", *orig.Note)
}

func TestParseSection(t *testing.T) {
	sec, err := ParseSection(" Vendor ")
	require.NoError(t, err)
	assert.Equal(t, SectionVendor, sec)

	_, err = ParseSection("business")
	assert.ErrorIs(t, err, ErrUnknownSection)
}
