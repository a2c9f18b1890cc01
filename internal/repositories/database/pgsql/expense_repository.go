package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/pocket_finance_app/internal/apperrors"
	"github.com/SscSPs/pocket_finance_app/internal/core/domain"
	"github.com/SscSPs/pocket_finance_app/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxExpenseRepository struct {
	pool *pgxpool.Pool
}

// newPgxExpenseRepository creates a new repository for expense entries.
func newPgxExpenseRepository(pool *pgxpool.Pool) *PgxExpenseRepository {
	return &PgxExpenseRepository{pool: pool}
}

// Helper to convert domain.Expense to models.Expense for DB storage
func toModelExpense(d domain.Expense) models.Expense {
	return models.Expense{
		ID:        d.ExpenseID,
		AccountID: d.AccountID,
		Name:      d.Name,
		Category:  string(d.Category),
		Amount:    d.Amount,
		Date:      d.Date,
		Notes:     d.Notes,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			LastUpdatedAt: d.LastUpdatedAt,
		},
	}
}

// Helper to convert models.Expense from DB to domain.Expense
func toDomainExpense(m models.Expense) domain.Expense {
	return domain.Expense{
		ExpenseID: m.ID,
		AccountID: m.AccountID,
		Name:      m.Name,
		Category:  domain.ExpenseCategory(m.Category),
		Amount:    m.Amount,
		Date:      m.Date,
		Notes:     m.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}

const expenseColumns = `expense_id, account_id, name, category, amount, date, notes, created_at, last_updated_at`

func scanExpense(row pgx.Row) (models.Expense, error) {
	var m models.Expense
	err := row.Scan(
		&m.ID,
		&m.AccountID,
		&m.Name,
		&m.Category,
		&m.Amount,
		&m.Date,
		&m.Notes,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	return m, err
}

// SaveExpense inserts a new expense entry.
func (r *PgxExpenseRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	m := toModelExpense(expense)

	query := `
		INSERT INTO expenses (` + expenseColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.pool.Exec(ctx, query,
		m.ID,
		m.AccountID,
		m.Name,
		m.Category,
		m.Amount,
		m.Date,
		m.Notes,
		m.CreatedAt,
		m.LastUpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
			return fmt.Errorf("%w: expense with ID %s already exists", apperrors.ErrDuplicate, m.ID)
		}
		return fmt.Errorf("failed to save expense %s: %w", m.ID, err)
	}
	return nil
}

// ListExpenses retrieves every expense entry for an account, newest first.
func (r *PgxExpenseRepository) ListExpenses(ctx context.Context, accountID string) ([]domain.Expense, error) {
	query := `
		SELECT ` + expenseColumns + `
		FROM expenses
		WHERE account_id = $1
		ORDER BY date DESC, created_at DESC;
	`
	rows, err := r.pool.Query(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses: %w", err)
	}
	defer rows.Close()

	expenses := make([]domain.Expense, 0)
	for rows.Next() {
		m, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan expense row: %w", err)
		}
		expenses = append(expenses, toDomainExpense(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating expense rows: %w", err)
	}
	return expenses, nil
}

// ListExpensesInRange retrieves expense entries dated within [from, to] inclusive.
func (r *PgxExpenseRepository) ListExpensesInRange(ctx context.Context, accountID string, from, to time.Time) ([]domain.Expense, error) {
	query := `
		SELECT ` + expenseColumns + `
		FROM expenses
		WHERE account_id = $1 AND date >= $2 AND date <= $3
		ORDER BY date DESC, created_at DESC;
	`
	rows, err := r.pool.Query(ctx, query, accountID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses in range: %w", err)
	}
	defer rows.Close()

	expenses := make([]domain.Expense, 0)
	for rows.Next() {
		m, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan expense row: %w", err)
		}
		expenses = append(expenses, toDomainExpense(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating expense rows: %w", err)
	}
	return expenses, nil
}

// DeleteExpense removes an expense entry permanently.
func (r *PgxExpenseRepository) DeleteExpense(ctx context.Context, accountID string, expenseID string) error {
	query := `DELETE FROM expenses WHERE account_id = $1 AND expense_id = $2;`
	tag, err := r.pool.Exec(ctx, query, accountID, expenseID)
	if err != nil {
		return fmt.Errorf("failed to delete expense %s: %w", expenseID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
