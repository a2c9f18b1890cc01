package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/pocket_finance_app/internal/core/domain"
)

// ExpenseReader defines read operations for expense entries
type ExpenseReader interface {
	// ListExpenses retrieves every expense entry for an account, newest first.
	// A single query supplies a consistent snapshot of the entry set.
	ListExpenses(ctx context.Context, accountID string) ([]domain.Expense, error)

	// ListExpensesInRange retrieves the entries dated within [from, to] inclusive.
	ListExpensesInRange(ctx context.Context, accountID string, from, to time.Time) ([]domain.Expense, error)
}

// ExpenseWriter defines write operations for expense entries
type ExpenseWriter interface {
	// SaveExpense persists a new expense entry.
	SaveExpense(ctx context.Context, expense domain.Expense) error

	// DeleteExpense removes an entry permanently. Returns apperrors.ErrNotFound
	// if the id is unknown within the account.
	DeleteExpense(ctx context.Context, accountID string, expenseID string) error
}

// IncomeReader defines read operations for income entries
type IncomeReader interface {
	ListIncomes(ctx context.Context, accountID string) ([]domain.Income, error)
	ListIncomesInRange(ctx context.Context, accountID string, from, to time.Time) ([]domain.Income, error)
}

// IncomeWriter defines write operations for income entries
type IncomeWriter interface {
	SaveIncome(ctx context.Context, income domain.Income) error
	DeleteIncome(ctx context.Context, accountID string, incomeID string) error
}

// LedgerRepositoryFacade combines the ledger-entry repository interfaces.
type LedgerRepositoryFacade interface {
	ExpenseReader
	ExpenseWriter
	IncomeReader
	IncomeWriter
}
