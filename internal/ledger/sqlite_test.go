package ledger_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/Veraticus/neo-finance/internal/analytics"
	"github.com/Veraticus/neo-finance/internal/model"
	"github.com/Veraticus/neo-finance/internal/service"
	"github.com/Veraticus/neo-finance/internal/testutil"
	"github.com/Veraticus/neo-finance/internal/testutil/txns"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertSameTransactions compares by value; times and decimals lose their
// internal representation on a JSON round trip.
func assertSameTransactions(t *testing.T, want, got []model.Transaction) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		w, g := want[i], got[i]
		assert.Equal(t, w.ID, g.ID)
		assert.Equal(t, w.Description, g.Description)
		assert.Equal(t, w.Category, g.Category)
		assert.Equal(t, w.NoteText(), g.NoteText())
		assert.True(t, w.Amount.Equal(g.Amount), "id %d: %s != %s", w.ID, w.Amount, g.Amount)
		assert.True(t, w.EffectiveDate().Equal(g.EffectiveDate()), "id %d dates differ", w.ID)
	}
}

func TestLedger_SQLiteRoundTrip(t *testing.T) {
	tl := testutil.SetupTestLedger(t)
	ctx := context.Background()

	personal := tl.Seed(model.SectionIndividual, txns.NewBuilder(t).WithFixture(txns.Household).Drafts()...)
	vendor := tl.Seed(model.SectionVendor, txns.NewBuilder(t).WithFixture(txns.Agency).Drafts()...)
	require.NoError(t, tl.Store.SetActive(ctx, model.SectionVendor))

	reopened := tl.Reopen()
	assert.Equal(t, model.SectionVendor, reopened.Active())
	assertSameTransactions(t, personal, reopened.Transactions(model.SectionIndividual))
	assertSameTransactions(t, vendor, reopened.Transactions(model.SectionVendor))

	summary := analytics.Summarize(reopened.Transactions(model.SectionVendor))
	assert.True(t, decimal.NewFromInt(13500).Equal(summary.Balance), summary.Balance.String())
}

func TestLedger_SnapshotFormat(t *testing.T) {
	tl := testutil.SetupTestLedger(t)
	tl.Seed(model.SectionIndividual, txns.NewBuilder(t).
		Expense("Coffee", "Food", "150").On("2025-03-02").WithNote("with Priya").
		Income("Refund", "Other", "20").
		Drafts()...)

	var stored []map[string]any
	require.NoError(t, json.Unmarshal(tl.MustSnapshot(service.KeyIndividualTransactions), &stored))
	require.Len(t, stored, 2)

	assert.Equal(t, "Coffee", stored[0]["description"])
	assert.Equal(t, "-150", stored[0]["amount"])
	assert.Equal(t, "with Priya", stored[0]["note"])
	assert.NotContains(t, stored[1], "note", "blank notes are omitted")

	// Undated drafts are stamped with the ledger clock.
	reopened := tl.Reopen().Transactions(model.SectionIndividual)
	require.NotNil(t, reopened[1].Date)
	assert.True(t, testutil.DefaultNow.Equal(*reopened[1].Date))
}

func TestLedger_MutationsSurviveReopen(t *testing.T) {
	tl := testutil.SetupTestLedger(t)
	ctx := context.Background()

	seeded := tl.Seed(model.SectionIndividual, txns.NewBuilder(t).WithFixture(txns.Household).Drafts()...)

	amount := decimal.NewFromInt(-175)
	_, found, err := tl.Store.Update(ctx, model.SectionIndividual, seeded[1].ID, model.Patch{Amount: &amount})
	require.NoError(t, err)
	require.True(t, found)

	removed, err := tl.Store.Remove(ctx, model.SectionIndividual, seeded[3].ID)
	require.NoError(t, err)
	require.True(t, removed)

	got := tl.Reopen().Transactions(model.SectionIndividual)
	require.Len(t, got, 3)
	assert.True(t, amount.Equal(got[1].Amount))

	_, err = tl.Store.Clear(ctx, model.SectionIndividual)
	require.NoError(t, err)
	assert.Empty(t, tl.Reopen().Transactions(model.SectionIndividual))
}
