package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/SscSPs/pocket_finance_app/internal/apperrors"
	"github.com/SscSPs/pocket_finance_app/internal/core/domain"
	portsrepo "github.com/SscSPs/pocket_finance_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/pocket_finance_app/internal/core/ports/services"
	"github.com/SscSPs/pocket_finance_app/internal/dto"
	"github.com/SscSPs/pocket_finance_app/internal/middleware"
	"github.com/SscSPs/pocket_finance_app/internal/utils/dates"
	"github.com/SscSPs/pocket_finance_app/internal/utils/money"
)

// ledgerService provides the core expense and income ledger operations.
type ledgerService struct {
	ledgerRepo portsrepo.LedgerRepositoryFacade
}

// NewLedgerService creates a new LedgerService.
func NewLedgerService(ledgerRepo portsrepo.LedgerRepositoryFacade) portssvc.LedgerSvcFacade {
	return &ledgerService{ledgerRepo: ledgerRepo}
}

// Ensure ledgerService implements the portssvc.LedgerSvcFacade interface
var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// AddExpense validates and persists a new expense entry.
// Validation happens before any mutation is applied.
func (s *ledgerService) AddExpense(ctx context.Context, accountID string, req dto.CreateExpenseRequest) (*domain.Expense, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: expense name is required", apperrors.ErrValidation)
	}

	category := domain.ExpenseCategory(req.Category)
	if !category.IsValid() {
		return nil, fmt.Errorf("%w: unknown expense category %q", apperrors.ErrValidation, req.Category)
	}

	amount := money.Round(req.Amount)
	if !money.IsPositive(amount) {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}

	date, err := dates.Parse(req.Date)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	expense := domain.Expense{
		ExpenseID: uuid.NewString(),
		AccountID: accountID,
		Name:      strings.TrimSpace(req.Name),
		Category:  category,
		Amount:    amount,
		Date:      date,
		Notes:     req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.ledgerRepo.SaveExpense(ctx, expense); err != nil {
		logger.Error("Failed to save expense", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save expense: %w", err)
	}

	logger.Info("Expense added", slog.String("expense_id", expense.ExpenseID), slog.String("category", string(category)))
	return &expense, nil
}

// ListExpenses retrieves all expense entries for the account.
func (s *ledgerService) ListExpenses(ctx context.Context, accountID string) ([]domain.Expense, error) {
	expenses, err := s.ledgerRepo.ListExpenses(ctx, accountID)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to list expenses", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to retrieve expenses: %w", err)
	}
	return expenses, nil
}

// DeleteExpense removes an entry permanently. A repeated delete surfaces
// ErrNotFound; deletion is idempotent only from the first caller's view.
func (s *ledgerService) DeleteExpense(ctx context.Context, accountID string, expenseID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.ledgerRepo.DeleteExpense(ctx, accountID, expenseID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Expense not found for delete", slog.String("expense_id", expenseID))
			return err
		}
		logger.Error("Failed to delete expense", slog.String("error", err.Error()), slog.String("expense_id", expenseID))
		return fmt.Errorf("failed to delete expense: %w", err)
	}

	logger.Info("Expense deleted", slog.String("expense_id", expenseID))
	return nil
}

// AddIncome validates and persists a new income entry.
func (s *ledgerService) AddIncome(ctx context.Context, accountID string, req dto.CreateIncomeRequest) (*domain.Income, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if strings.TrimSpace(req.Source) == "" {
		return nil, fmt.Errorf("%w: income source is required", apperrors.ErrValidation)
	}

	category := domain.IncomeCategory(req.Category)
	if !category.IsValid() {
		return nil, fmt.Errorf("%w: unknown income category %q", apperrors.ErrValidation, req.Category)
	}

	amount := money.Round(req.Amount)
	if !money.IsPositive(amount) {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}

	date, err := dates.Parse(req.Date)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	income := domain.Income{
		IncomeID:  uuid.NewString(),
		AccountID: accountID,
		Source:    strings.TrimSpace(req.Source),
		Category:  category,
		Amount:    amount,
		Date:      date,
		Notes:     req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.ledgerRepo.SaveIncome(ctx, income); err != nil {
		logger.Error("Failed to save income", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save income: %w", err)
	}

	logger.Info("Income added", slog.String("income_id", income.IncomeID), slog.String("category", string(category)))
	return &income, nil
}

// ListIncomes retrieves all income entries for the account.
func (s *ledgerService) ListIncomes(ctx context.Context, accountID string) ([]domain.Income, error) {
	incomes, err := s.ledgerRepo.ListIncomes(ctx, accountID)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to list incomes", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to retrieve incomes: %w", err)
	}
	return incomes, nil
}

// DeleteIncome removes an entry permanently.
func (s *ledgerService) DeleteIncome(ctx context.Context, accountID string, incomeID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.ledgerRepo.DeleteIncome(ctx, accountID, incomeID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Income not found for delete", slog.String("income_id", incomeID))
			return err
		}
		logger.Error("Failed to delete income", slog.String("error", err.Error()), slog.String("income_id", incomeID))
		return fmt.Errorf("failed to delete income: %w", err)
	}

	logger.Info("Income deleted", slog.String("income_id", incomeID))
	return nil
}
