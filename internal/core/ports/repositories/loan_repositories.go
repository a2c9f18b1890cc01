package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/pocket_finance_app/internal/core/domain"
)

// LoanListFilter narrows ListLoans. Nil fields mean no filtering; Status
// filters on the stored status, never the derived overdue flag.
type LoanListFilter struct {
	Direction *domain.LoanDirection
	Status    *domain.LoanStatus
}

// LoanReader defines read operations for loans
type LoanReader interface {
	// FindLoanByID retrieves a loan by id within the account scope.
	FindLoanByID(ctx context.Context, accountID string, loanID string) (*domain.Loan, error)

	// ListLoans retrieves loans for an account, optionally filtered, newest first.
	ListLoans(ctx context.Context, accountID string, filter LoanListFilter) ([]domain.Loan, error)
}

// LoanWriter defines write operations for loans
type LoanWriter interface {
	// SaveLoan persists a new loan.
	SaveLoan(ctx context.Context, loan domain.Loan) error

	// UpdateLoanStatus sets the stored status and paid date in one statement.
	// paidDate is nil when transitioning back to pending.
	UpdateLoanStatus(ctx context.Context, accountID string, loanID string, status domain.LoanStatus, paidDate *time.Time, now time.Time) error

	// DeleteLoan removes a loan permanently.
	DeleteLoan(ctx context.Context, accountID string, loanID string) error
}

// LoanRepositoryFacade combines all loan repository interfaces.
type LoanRepositoryFacade interface {
	LoanReader
	LoanWriter
}
