package txns

// Fixture appends a fixed set of drafts to a builder.
type Fixture func(*Builder) *Builder

// Household is a month of personal transactions: one salary and three
// expenses, one of them with a note.
func Household(b *Builder) *Builder {
	return b.
		Income("ACME Payroll", "Salary", "5000").On("2025-03-01").
		Expense("Coffee", "Food", "150").On("2025-03-02").
		Expense("Pizza", "Food", "600").On("2025-03-08").WithNote("team lunch").
		Expense("Electricity", "Bills", "900").On("2025-03-10")
}

// Agency is a vendor section with two client payments and a refund.
func Agency(b *Builder) *Builder {
	return b.
		Income("ABC Corp", "Project Payment", "12000").On("2025-02-14").
		Income("John Doe Client", "Consultation", "3500").On("2025-03-03").
		Expense("ABC Corp", "Refund Issued", "2000").On("2025-03-05").WithNote("scope cut")
}
