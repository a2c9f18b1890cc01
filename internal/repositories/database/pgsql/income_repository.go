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

type PgxIncomeRepository struct {
	pool *pgxpool.Pool
}

// newPgxIncomeRepository creates a new repository for income entries.
func newPgxIncomeRepository(pool *pgxpool.Pool) *PgxIncomeRepository {
	return &PgxIncomeRepository{pool: pool}
}

func toModelIncome(d domain.Income) models.Income {
	return models.Income{
		ID:        d.IncomeID,
		AccountID: d.AccountID,
		Source:    d.Source,
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

func toDomainIncome(m models.Income) domain.Income {
	return domain.Income{
		IncomeID:  m.ID,
		AccountID: m.AccountID,
		Source:    m.Source,
		Category:  domain.IncomeCategory(m.Category),
		Amount:    m.Amount,
		Date:      m.Date,
		Notes:     m.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}

const incomeColumns = `income_id, account_id, source, category, amount, date, notes, created_at, last_updated_at`

func scanIncome(row pgx.Row) (models.Income, error) {
	var m models.Income
	err := row.Scan(
		&m.ID,
		&m.AccountID,
		&m.Source,
		&m.Category,
		&m.Amount,
		&m.Date,
		&m.Notes,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	return m, err
}

// SaveIncome inserts a new income entry.
func (r *PgxIncomeRepository) SaveIncome(ctx context.Context, income domain.Income) error {
	m := toModelIncome(income)

	query := `
		INSERT INTO incomes (` + incomeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.pool.Exec(ctx, query,
		m.ID,
		m.AccountID,
		m.Source,
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
			return fmt.Errorf("%w: income with ID %s already exists", apperrors.ErrDuplicate, m.ID)
		}
		return fmt.Errorf("failed to save income %s: %w", m.ID, err)
	}
	return nil
}

// ListIncomes retrieves every income entry for an account, newest first.
func (r *PgxIncomeRepository) ListIncomes(ctx context.Context, accountID string) ([]domain.Income, error) {
	query := `
		SELECT ` + incomeColumns + `
		FROM incomes
		WHERE account_id = $1
		ORDER BY date DESC, created_at DESC;
	`
	rows, err := r.pool.Query(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to query incomes: %w", err)
	}
	defer rows.Close()

	incomes := make([]domain.Income, 0)
	for rows.Next() {
		m, err := scanIncome(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan income row: %w", err)
		}
		incomes = append(incomes, toDomainIncome(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating income rows: %w", err)
	}
	return incomes, nil
}

// ListIncomesInRange retrieves income entries dated within [from, to] inclusive.
func (r *PgxIncomeRepository) ListIncomesInRange(ctx context.Context, accountID string, from, to time.Time) ([]domain.Income, error) {
	query := `
		SELECT ` + incomeColumns + `
		FROM incomes
		WHERE account_id = $1 AND date >= $2 AND date <= $3
		ORDER BY date DESC, created_at DESC;
	`
	rows, err := r.pool.Query(ctx, query, accountID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query incomes in range: %w", err)
	}
	defer rows.Close()

	incomes := make([]domain.Income, 0)
	for rows.Next() {
		m, err := scanIncome(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan income row: %w", err)
		}
		incomes = append(incomes, toDomainIncome(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating income rows: %w", err)
	}
	return incomes, nil
}

// DeleteIncome removes an income entry permanently.
func (r *PgxIncomeRepository) DeleteIncome(ctx context.Context, accountID string, incomeID string) error {
	query := `DELETE FROM incomes WHERE account_id = $1 AND income_id = $2;`
	tag, err := r.pool.Exec(ctx, query, accountID, incomeID)
	if err != nil {
		return fmt.Errorf("failed to delete income %s: %w", incomeID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
