package services

import (
	"context"

	"github.com/SscSPs/pocket_finance_app/internal/core/domain"
	"github.com/SscSPs/pocket_finance_app/internal/dto"
)

// LedgerSvcFacade defines the ledger-store operations over expense and
// income entries. Every call is scoped to one authenticated account id.
type LedgerSvcFacade interface {
	// AddExpense validates and persists a new expense entry.
	AddExpense(ctx context.Context, accountID string, req dto.CreateExpenseRequest) (*domain.Expense, error)

	// ListExpenses returns all expense entries for the account, newest first.
	ListExpenses(ctx context.Context, accountID string) ([]domain.Expense, error)

	// DeleteExpense removes an entry; a repeated delete returns ErrNotFound.
	DeleteExpense(ctx context.Context, accountID string, expenseID string) error

	// AddIncome validates and persists a new income entry.
	AddIncome(ctx context.Context, accountID string, req dto.CreateIncomeRequest) (*domain.Income, error)

	// ListIncomes returns all income entries for the account, newest first.
	ListIncomes(ctx context.Context, accountID string) ([]domain.Income, error)

	// DeleteIncome removes an entry; a repeated delete returns ErrNotFound.
	DeleteIncome(ctx context.Context, accountID string, incomeID string) error
}
