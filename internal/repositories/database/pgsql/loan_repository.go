package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/pocket_finance_app/internal/apperrors"
	"github.com/SscSPs/pocket_finance_app/internal/core/domain"
	portsrepo "github.com/SscSPs/pocket_finance_app/internal/core/ports/repositories"
	"github.com/SscSPs/pocket_finance_app/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxLoanRepository struct {
	pool *pgxpool.Pool
}

// newPgxLoanRepository creates a new repository for loan records.
func newPgxLoanRepository(pool *pgxpool.Pool) portsrepo.LoanRepositoryFacade {
	return &PgxLoanRepository{pool: pool}
}

// Ensure PgxLoanRepository implements portsrepo.LoanRepositoryFacade
var _ portsrepo.LoanRepositoryFacade = (*PgxLoanRepository)(nil)

// Helper to convert domain.Loan to models.Loan for DB storage
func toModelLoan(d domain.Loan) models.Loan {
	m := models.Loan{
		ID:                 d.LoanID,
		AccountID:          d.AccountID,
		Direction:          string(d.Direction),
		CounterpartyName:   d.CounterpartyName,
		Amount:             d.Amount,
		InterestRate:       d.InterestRate,
		StartDate:          d.StartDate,
		DueDate:            d.DueDate,
		Status:             string(d.Status),
		PaidDate:           d.PaidDate,
		TotalPayableCached: d.TotalPayableCached,
		Notes:              d.Notes,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			LastUpdatedAt: d.LastUpdatedAt,
		},
	}
	if d.CounterpartyAddress != "" {
		addr := d.CounterpartyAddress
		m.CounterpartyAddress = &addr
	}
	if d.CounterpartyPhone != "" {
		phone := d.CounterpartyPhone
		m.CounterpartyPhone = &phone
	}
	if d.Category != "" {
		cat := string(d.Category)
		m.Category = &cat
	}
	return m
}

// Helper to convert models.Loan from DB to domain.Loan
func toDomainLoan(m models.Loan) domain.Loan {
	d := domain.Loan{
		LoanID:             m.ID,
		AccountID:          m.AccountID,
		Direction:          domain.LoanDirection(m.Direction),
		CounterpartyName:   m.CounterpartyName,
		Amount:             m.Amount,
		InterestRate:       m.InterestRate,
		StartDate:          m.StartDate,
		DueDate:            m.DueDate,
		Status:             domain.LoanStatus(m.Status),
		PaidDate:           m.PaidDate,
		TotalPayableCached: m.TotalPayableCached,
		Notes:              m.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
	if m.CounterpartyAddress != nil {
		d.CounterpartyAddress = *m.CounterpartyAddress
	}
	if m.CounterpartyPhone != nil {
		d.CounterpartyPhone = *m.CounterpartyPhone
	}
	if m.Category != nil {
		d.Category = domain.BorrowCategory(*m.Category)
	}
	return d
}

const loanColumns = `loan_id, account_id, direction, counterparty_name, counterparty_address, counterparty_phone, category, amount, interest_rate, start_date, due_date, status, paid_date, total_payable, notes, created_at, last_updated_at`

func scanLoan(row pgx.Row) (models.Loan, error) {
	var m models.Loan
	err := row.Scan(
		&m.ID,
		&m.AccountID,
		&m.Direction,
		&m.CounterpartyName,
		&m.CounterpartyAddress,
		&m.CounterpartyPhone,
		&m.Category,
		&m.Amount,
		&m.InterestRate,
		&m.StartDate,
		&m.DueDate,
		&m.Status,
		&m.PaidDate,
		&m.TotalPayableCached,
		&m.Notes,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	return m, err
}

// SaveLoan inserts a new loan record.
func (r *PgxLoanRepository) SaveLoan(ctx context.Context, loan domain.Loan) error {
	m := toModelLoan(loan)

	query := `
		INSERT INTO loans (` + loanColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17);
	`
	_, err := r.pool.Exec(ctx, query,
		m.ID,
		m.AccountID,
		m.Direction,
		m.CounterpartyName,
		m.CounterpartyAddress,
		m.CounterpartyPhone,
		m.Category,
		m.Amount,
		m.InterestRate,
		m.StartDate,
		m.DueDate,
		m.Status,
		m.PaidDate,
		m.TotalPayableCached,
		m.Notes,
		m.CreatedAt,
		m.LastUpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
			return fmt.Errorf("%w: loan with ID %s already exists", apperrors.ErrDuplicate, m.ID)
		}
		return fmt.Errorf("failed to save loan %s: %w", m.ID, err)
	}
	return nil
}

// FindLoanByID retrieves a loan by its ID within the account scope.
func (r *PgxLoanRepository) FindLoanByID(ctx context.Context, accountID string, loanID string) (*domain.Loan, error) {
	query := `
		SELECT ` + loanColumns + `
		FROM loans
		WHERE account_id = $1 AND loan_id = $2;
	`
	m, err := scanLoan(r.pool.QueryRow(ctx, query, accountID, loanID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find loan by ID %s: %w", loanID, err)
	}
	d := toDomainLoan(m)
	return &d, nil
}

// ListLoans retrieves loans for an account, optionally filtered, newest first.
// The status filter matches the stored status only; derived overdue is a
// read-time concern and never reaches SQL.
func (r *PgxLoanRepository) ListLoans(ctx context.Context, accountID string, filter portsrepo.LoanListFilter) ([]domain.Loan, error) {
	query := `
		SELECT ` + loanColumns + `
		FROM loans
		WHERE account_id = $1
	`
	args := []interface{}{accountID}
	if filter.Direction != nil {
		args = append(args, string(*filter.Direction))
		query += fmt.Sprintf(" AND direction = $%d", len(args))
	}
	if filter.Status != nil {
		args = append(args, string(*filter.Status))
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	query += " ORDER BY due_date ASC, created_at DESC;"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query loans: %w", err)
	}
	defer rows.Close()

	loans := make([]domain.Loan, 0)
	for rows.Next() {
		m, err := scanLoan(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan loan row: %w", err)
		}
		loans = append(loans, toDomainLoan(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating loan rows: %w", err)
	}
	return loans, nil
}

// UpdateLoanStatus sets the stored status and paid date in one statement.
func (r *PgxLoanRepository) UpdateLoanStatus(ctx context.Context, accountID string, loanID string, status domain.LoanStatus, paidDate *time.Time, now time.Time) error {
	query := `
		UPDATE loans
		SET status = $1, paid_date = $2, last_updated_at = $3
		WHERE account_id = $4 AND loan_id = $5;
	`
	tag, err := r.pool.Exec(ctx, query, string(status), paidDate, now, accountID, loanID)
	if err != nil {
		return fmt.Errorf("failed to update loan %s status: %w", loanID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteLoan removes a loan permanently. Notifications that reference the
// loan are kept; an orphaned reference still renders.
func (r *PgxLoanRepository) DeleteLoan(ctx context.Context, accountID string, loanID string) error {
	query := `DELETE FROM loans WHERE account_id = $1 AND loan_id = $2;`
	tag, err := r.pool.Exec(ctx, query, accountID, loanID)
	if err != nil {
		return fmt.Errorf("failed to delete loan %s: %w", loanID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
