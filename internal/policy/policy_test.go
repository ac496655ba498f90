package policy

import (
	"testing"

	"github.com/Veraticus/neo-finance/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestFor(t *testing.T) {
	tests := []struct {
		section       model.Section
		wantLabel     string
		wantIncome    string
		wantBalance   string
		wantFirstCat  string
		wantCatsCount int
	}{
		{model.SectionIndividual, "Description", "Income", "Balance", "Income", 10},
		{model.SectionVendor, "Vendor/Client Name", "Revenue", "Net Profit", "Payment Received", 8},
		{model.Section("bogus"), "Description", "Income", "Balance", "Income", 10},
	}

	for _, tt := range tests {
		t.Run(string(tt.section), func(t *testing.T) {
			v := For(tt.section)
			assert.Equal(t, tt.wantLabel, v.DescriptionLabel)
			assert.Equal(t, tt.wantIncome, v.Labels.Income)
			assert.Equal(t, "Expenses", v.Labels.Expenses)
			assert.Equal(t, tt.wantBalance, v.Labels.Balance)

			cats := v.Categories()
			assert.Len(t, cats, tt.wantCatsCount)
			assert.Equal(t, tt.wantFirstCat, cats[0])
			assert.Equal(t, "Other", cats[len(cats)-1])
		})
	}
}

func TestVocabulary_CategoriesIsACopy(t *testing.T) {
	cats := For(model.SectionVendor).Categories()
	cats[0] = "Changed"
	assert.Equal(t, "Payment Received", For(model.SectionVendor).Categories()[0])
}

func TestVocabulary_Suggests(t *testing.T) {
	v := For(model.SectionIndividual)
	assert.True(t, v.Suggests("Food"))
	assert.False(t, v.Suggests("Commission"))
	assert.False(t, v.Suggests("food"), "matching is exact")
}
