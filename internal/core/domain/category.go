package domain

// ExpenseCategory is the fixed taxonomy for expense entries.
type ExpenseCategory string

const (
	ExpenseFood          ExpenseCategory = "Food"
	ExpenseTravel        ExpenseCategory = "Travel"
	ExpenseShopping      ExpenseCategory = "Shopping"
	ExpenseEntertainment ExpenseCategory = "Entertainment"
	ExpenseBills         ExpenseCategory = "Bills"
	ExpenseHealth        ExpenseCategory = "Health"
	ExpenseEducation     ExpenseCategory = "Education"
	ExpenseOther         ExpenseCategory = "Other"
)

var expenseCategories = map[ExpenseCategory]struct{}{
	ExpenseFood:          {},
	ExpenseTravel:        {},
	ExpenseShopping:      {},
	ExpenseEntertainment: {},
	ExpenseBills:         {},
	ExpenseHealth:        {},
	ExpenseEducation:     {},
	ExpenseOther:         {},
}

// IsValid reports whether the category is part of the fixed taxonomy.
func (c ExpenseCategory) IsValid() bool {
	_, ok := expenseCategories[c]
	return ok
}

// IncomeCategory is the fixed taxonomy for income entries.
type IncomeCategory string

const (
	IncomeSalary     IncomeCategory = "Salary"
	IncomeFreelance  IncomeCategory = "Freelance"
	IncomeInvestment IncomeCategory = "Investment"
	IncomeBusiness   IncomeCategory = "Business"
	IncomeGift       IncomeCategory = "Gift"
	IncomeHomeMaker  IncomeCategory = "HomeMaker"
	IncomeOther      IncomeCategory = "Other"
)

var incomeCategories = map[IncomeCategory]struct{}{
	IncomeSalary:     {},
	IncomeFreelance:  {},
	IncomeInvestment: {},
	IncomeBusiness:   {},
	IncomeGift:       {},
	IncomeHomeMaker:  {},
	IncomeOther:      {},
}

// IsValid reports whether the category is part of the fixed taxonomy.
func (c IncomeCategory) IsValid() bool {
	_, ok := incomeCategories[c]
	return ok
}

// BorrowCategory tags who a borrowing loan was taken from.
type BorrowCategory string

const (
	BorrowBank       BorrowCategory = "Bank"
	BorrowFriends    BorrowCategory = "Friends"
	BorrowThirdParty BorrowCategory = "Third Party"
)

// IsValid reports whether the borrow category is a known value.
func (c BorrowCategory) IsValid() bool {
	switch c {
	case BorrowBank, BorrowFriends, BorrowThirdParty:
		return true
	}
	return false
}
