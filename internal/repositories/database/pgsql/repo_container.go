package pgsql

import (
	portsrepo "github.com/SscSPs/pocket_finance_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxLedgerRepository joins the expense and income repositories behind the
// single ledger facade the services consume.
type PgxLedgerRepository struct {
	*PgxExpenseRepository
	*PgxIncomeRepository
}

// Ensure PgxLedgerRepository implements portsrepo.LedgerRepositoryFacade
var _ portsrepo.LedgerRepositoryFacade = (*PgxLedgerRepository)(nil)

// newPgxLedgerRepository creates the combined ledger entry repository.
func newPgxLedgerRepository(pool *pgxpool.Pool) portsrepo.LedgerRepositoryFacade {
	return &PgxLedgerRepository{
		PgxExpenseRepository: newPgxExpenseRepository(pool),
		PgxIncomeRepository:  newPgxIncomeRepository(pool),
	}
}

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	ledgerRepo := newPgxLedgerRepository(dbPool)
	loanRepo := newPgxLoanRepository(dbPool)
	notificationRepo := newPgxNotificationRepository(dbPool)

	return portsrepo.RepositoryProvider{
		LedgerRepo:       ledgerRepo,
		LoanRepo:         loanRepo,
		NotificationRepo: notificationRepo,
	}
}
