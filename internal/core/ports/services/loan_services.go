package services

import (
	"context"

	"github.com/SscSPs/pocket_finance_app/internal/core/domain"
	"github.com/SscSPs/pocket_finance_app/internal/dto"
)

// LoanSvcFacade owns loan entities, their interest derivation and lifecycle
// transitions. Listing also sweeps for due-date crossings and raises
// loan-due notifications; there is no background scheduler.
type LoanSvcFacade interface {
	// AddLoan validates direction-specific rules and persists a new loan.
	AddLoan(ctx context.Context, accountID string, req dto.CreateLoanRequest) (*domain.Loan, error)

	// GetLoan retrieves a single loan within the account scope.
	GetLoan(ctx context.Context, accountID string, loanID string) (*domain.Loan, error)

	// ListLoans retrieves loans, optionally filtered by direction and status.
	ListLoans(ctx context.Context, accountID string, params dto.ListLoansParams) ([]domain.Loan, error)

	// UpdateStatus transitions a loan to pending or paid. Paid stamps the
	// paid date; pending clears it. Any other target status is rejected.
	UpdateStatus(ctx context.Context, accountID string, loanID string, newStatus string) (*domain.Loan, error)

	// DeleteLoan removes a loan permanently.
	DeleteLoan(ctx context.Context, accountID string, loanID string) error

	// Stats aggregates the account's loan book.
	Stats(ctx context.Context, accountID string) (*domain.LoanStats, error)
}
