package services

import (
	portsrepo "github.com/SscSPs/pocket_finance_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/pocket_finance_app/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Ledger = NewLedgerService(repos.LedgerRepo)
	container.Notification = NewNotificationService(repos.NotificationRepo)

	// The loan engine raises loan-due notifications on read, so it needs the
	// notification repository alongside its own.
	container.Loan = NewLoanService(repos.LoanRepo, repos.NotificationRepo)

	// Analytics recomputes aggregates from the ledger and loan sets on read.
	container.Analytics = NewAnalyticsService(repos.LedgerRepo, repos.LoanRepo, repos.NotificationRepo)

	return container
}
