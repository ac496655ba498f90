package txns

import (
	"testing"

	"github.com/Veraticus/neo-finance/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder(t *testing.T) {
	b := NewBuilder(t).
		Income("ACME", "Salary", "-5000").On("2025-03-01").
		Expense("Coffee", "Food", "150").WithNote("  ").
		Raw("Broken", "Other", "0")

	got := b.Transactions()
	require.Len(t, got, 3)

	assert.Equal(t, int64(1), got[0].ID)
	assert.Equal(t, "5000", got[0].Amount.String(), "income is always positive")
	require.NotNil(t, got[0].Date)
	assert.Equal(t, "2025-03-01", got[0].Date.Format(model.DateLayout))

	assert.Equal(t, "-150", got[1].Amount.String())
	assert.Nil(t, got[1].Date)
	assert.Nil(t, got[1].Note, "blank notes normalize to nil")

	assert.True(t, got[2].Amount.IsZero())
}

func TestBuilder_DraftsAreCopies(t *testing.T) {
	b := NewBuilder(t).Expense("Coffee", "Food", "150")
	drafts := b.Drafts()
	drafts[0].Category = "Changed"
	assert.Equal(t, "Food", b.Drafts()[0].Category)
}

func TestFixtures(t *testing.T) {
	household := NewBuilder(t).WithFixture(Household).Transactions()
	require.Len(t, household, 4)
	assert.Equal(t, "team lunch", household[2].NoteText())

	agency := NewBuilder(t).WithFixture(Agency).Transactions()
	require.Len(t, agency, 3)
	assert.True(t, agency[2].IsExpense())
}
