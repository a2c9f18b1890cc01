package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/SscSPs/pocket_finance_app/internal/apperrors"
	"github.com/SscSPs/pocket_finance_app/internal/core/domain"
	portsrepo "github.com/SscSPs/pocket_finance_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/pocket_finance_app/internal/core/ports/services"
	"github.com/SscSPs/pocket_finance_app/internal/dto"
	"github.com/SscSPs/pocket_finance_app/internal/middleware"
	"github.com/SscSPs/pocket_finance_app/internal/utils/dates"
	"github.com/SscSPs/pocket_finance_app/internal/utils/money"
)

// dueSoonWindowDays is how far ahead of the due date a loan-due
// notification is raised.
const dueSoonWindowDays = 3

// loanService owns loan entities, their interest derivation and lifecycle
// transitions.
type loanService struct {
	loanRepo         portsrepo.LoanRepositoryFacade
	notificationRepo portsrepo.NotificationRepositoryFacade
}

// NewLoanService creates a new LoanService.
func NewLoanService(loanRepo portsrepo.LoanRepositoryFacade, notificationRepo portsrepo.NotificationRepositoryFacade) portssvc.LoanSvcFacade {
	return &loanService{
		loanRepo:         loanRepo,
		notificationRepo: notificationRepo,
	}
}

// Ensure loanService implements the portssvc.LoanSvcFacade interface
var _ portssvc.LoanSvcFacade = (*loanService)(nil)

// AddLoan validates direction-specific rules in one place and persists the
// loan. The cached total payable is derived here for display; the derivation
// itself stays the source of truth.
func (s *loanService) AddLoan(ctx context.Context, accountID string, req dto.CreateLoanRequest) (*domain.Loan, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	direction := domain.LoanDirection(req.Direction)
	if !direction.IsValid() {
		return nil, fmt.Errorf("%w: unknown loan direction %q", apperrors.ErrValidation, req.Direction)
	}

	if strings.TrimSpace(req.CounterpartyName) == "" {
		return nil, fmt.Errorf("%w: counterparty name is required", apperrors.ErrValidation)
	}

	amount := money.Round(req.Amount)
	if !money.IsPositive(amount) {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}

	if req.InterestRate.IsNegative() {
		return nil, fmt.Errorf("%w: interest rate must not be negative", apperrors.ErrValidation)
	}

	startDate, err := dates.Parse(req.StartDate)
	if err != nil {
		return nil, err
	}
	dueDate, err := dates.Parse(req.DueDate)
	if err != nil {
		return nil, err
	}
	if dueDate.Before(startDate) {
		return nil, fmt.Errorf("%w: due date must not be before start date", apperrors.ErrValidation)
	}

	loan := domain.Loan{
		LoanID:           uuid.NewString(),
		AccountID:        accountID,
		Direction:        direction,
		CounterpartyName: strings.TrimSpace(req.CounterpartyName),
		Amount:           amount,
		InterestRate:     req.InterestRate,
		StartDate:        startDate,
		DueDate:          dueDate,
		Status:           domain.LoanPending,
		Notes:            req.Notes,
	}

	switch direction {
	case domain.Lending:
		if strings.TrimSpace(req.CounterpartyAddress) == "" || strings.TrimSpace(req.CounterpartyPhone) == "" {
			return nil, fmt.Errorf("%w: lending requires counterparty address and phone", apperrors.ErrValidation)
		}
		loan.CounterpartyAddress = strings.TrimSpace(req.CounterpartyAddress)
		loan.CounterpartyPhone = strings.TrimSpace(req.CounterpartyPhone)
	case domain.Borrowing:
		category := domain.BorrowCategory(req.Category)
		if !category.IsValid() {
			return nil, fmt.Errorf("%w: unknown borrowing category %q", apperrors.ErrValidation, req.Category)
		}
		loan.Category = category
	}

	now := time.Now().UTC()
	loan.CreatedAt = now
	loan.LastUpdatedAt = now
	loan.TotalPayableCached = loan.TotalPayable()

	if err := s.loanRepo.SaveLoan(ctx, loan); err != nil {
		logger.Error("Failed to save loan", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to save loan: %w", err)
	}

	logger.Info("Loan created", slog.String("loan_id", loan.LoanID), slog.String("direction", string(direction)))
	return &loan, nil
}

// GetLoan retrieves a single loan within the account scope.
func (s *loanService) GetLoan(ctx context.Context, accountID string, loanID string) (*domain.Loan, error) {
	loan, err := s.loanRepo.FindLoanByID(ctx, accountID, loanID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			middleware.GetLoggerFromCtx(ctx).Error("Failed to find loan", slog.String("error", err.Error()), slog.String("loan_id", loanID))
		}
		return nil, fmt.Errorf("failed to find loan %s: %w", loanID, err)
	}
	return loan, nil
}

// ListLoans retrieves loans with optional filters and sweeps for due-date
// crossings, raising loan-due notifications for pending loans that are due
// within the reminder window. The sweep replaces a background scheduler.
func (s *loanService) ListLoans(ctx context.Context, accountID string, params dto.ListLoansParams) ([]domain.Loan, error) {
	filter := portsrepo.LoanListFilter{}

	if params.Direction != nil {
		direction := domain.LoanDirection(*params.Direction)
		if !direction.IsValid() {
			return nil, fmt.Errorf("%w: unknown loan direction %q", apperrors.ErrValidation, *params.Direction)
		}
		filter.Direction = &direction
	}

	if params.Status != nil {
		status := domain.LoanStatus(*params.Status)
		if status != domain.LoanPending && status != domain.LoanPaid {
			return nil, fmt.Errorf("%w: unknown stored loan status %q", apperrors.ErrValidation, *params.Status)
		}
		filter.Status = &status
	}

	loans, err := s.loanRepo.ListLoans(ctx, accountID, filter)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to list loans", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to retrieve loans: %w", err)
	}

	s.raiseDueNotifications(ctx, accountID, loans)
	return loans, nil
}

// UpdateStatus transitions a loan between the stored statuses. Only pending
// and paid are accepted; the overdue flag is derived at read time and can
// never be stored.
func (s *loanService) UpdateStatus(ctx context.Context, accountID string, loanID string, newStatus string) (*domain.Loan, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	status := domain.LoanStatus(newStatus)
	if status != domain.LoanPending && status != domain.LoanPaid {
		return nil, fmt.Errorf("%w: status must be %q or %q", apperrors.ErrState, domain.LoanPending, domain.LoanPaid)
	}

	loan, err := s.loanRepo.FindLoanByID(ctx, accountID, loanID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find loan for status update", slog.String("error", err.Error()), slog.String("loan_id", loanID))
		}
		return nil, fmt.Errorf("failed to find loan %s: %w", loanID, err)
	}

	now := time.Now().UTC()
	var paidDate *time.Time
	if status == domain.LoanPaid {
		today := dates.Today()
		paidDate = &today
	}

	if err := s.loanRepo.UpdateLoanStatus(ctx, accountID, loanID, status, paidDate, now); err != nil {
		logger.Error("Failed to update loan status", slog.String("error", err.Error()), slog.String("loan_id", loanID))
		return nil, fmt.Errorf("failed to update loan status: %w", err)
	}

	loan.Status = status
	loan.PaidDate = paidDate
	loan.LastUpdatedAt = now

	logger.Info("Loan status updated", slog.String("loan_id", loanID), slog.String("status", string(status)))
	return loan, nil
}

// DeleteLoan removes a loan permanently. Any loan-due notification that
// references it becomes orphaned and still renders; no cleanup is cascaded.
func (s *loanService) DeleteLoan(ctx context.Context, accountID string, loanID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.loanRepo.DeleteLoan(ctx, accountID, loanID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Loan not found for delete", slog.String("loan_id", loanID))
			return err
		}
		logger.Error("Failed to delete loan", slog.String("error", err.Error()), slog.String("loan_id", loanID))
		return fmt.Errorf("failed to delete loan: %w", err)
	}

	logger.Info("Loan deleted", slog.String("loan_id", loanID))
	return nil
}

// Stats aggregates the loan book from a single snapshot of the loan set.
func (s *loanService) Stats(ctx context.Context, accountID string) (*domain.LoanStats, error) {
	loans, err := s.loanRepo.ListLoans(ctx, accountID, portsrepo.LoanListFilter{})
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to list loans for stats", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to retrieve loans: %w", err)
	}

	s.raiseDueNotifications(ctx, accountID, loans)

	today := dates.Today()
	stats := domain.LoanStats{
		TotalLent:       decimal.Zero,
		TotalBorrowed:   decimal.Zero,
		TotalReceivable: decimal.Zero,
		TotalRepayable:  decimal.Zero,
	}
	for i := range loans {
		loan := &loans[i]
		switch loan.Direction {
		case domain.Lending:
			stats.TotalLent = stats.TotalLent.Add(loan.Amount)
			if loan.Status == domain.LoanPending {
				stats.TotalReceivable = stats.TotalReceivable.Add(loan.TotalPayable())
			}
		case domain.Borrowing:
			stats.TotalBorrowed = stats.TotalBorrowed.Add(loan.Amount)
			if loan.Status == domain.LoanPending {
				stats.TotalRepayable = stats.TotalRepayable.Add(loan.TotalPayable())
			}
		}
		switch loan.EffectiveStatus(today) {
		case domain.LoanPending:
			stats.PendingCount++
		case domain.LoanPaid:
			stats.PaidCount++
		case domain.LoanOverdue:
			stats.OverdueCount++
		}
	}
	return &stats, nil
}

// raiseDueNotifications creates a loan-due notification for each pending
// loan inside the reminder window that does not have one yet. Failures are
// logged and swallowed so a notification hiccup never fails a read.
func (s *loanService) raiseDueNotifications(ctx context.Context, accountID string, loans []domain.Loan) {
	logger := middleware.GetLoggerFromCtx(ctx)
	today := dates.Today()

	for i := range loans {
		loan := &loans[i]
		if !loan.DueWithin(today, dueSoonWindowDays) {
			continue
		}

		exists, err := s.notificationRepo.HasLoanDueNotification(ctx, accountID, loan.LoanID)
		if err != nil {
			logger.Error("Failed to check for existing loan-due notification", slog.String("error", err.Error()), slog.String("loan_id", loan.LoanID))
			continue
		}
		if exists {
			continue
		}

		notification := domain.Notification{
			NotificationID: uuid.NewString(),
			AccountID:      accountID,
			Kind:           domain.NotificationLoanDue,
			LoanID:         loan.LoanID,
			CreatedAt:      time.Now().UTC(),
		}
		overdue := loan.EffectiveStatus(today) == domain.LoanOverdue
		if loan.Direction == domain.Lending {
			if overdue {
				notification.Title = "Loan overdue"
				notification.Message = fmt.Sprintf("%s was due to repay %s on %s", loan.CounterpartyName, money.Format(loan.TotalPayable()), dates.Format(loan.DueDate))
			} else {
				notification.Title = "Loan due soon"
				notification.Message = fmt.Sprintf("%s is due to repay %s by %s", loan.CounterpartyName, money.Format(loan.TotalPayable()), dates.Format(loan.DueDate))
			}
		} else {
			if overdue {
				notification.Title = "Repayment overdue"
				notification.Message = fmt.Sprintf("Your repayment of %s to %s was due on %s", money.Format(loan.TotalPayable()), loan.CounterpartyName, dates.Format(loan.DueDate))
			} else {
				notification.Title = "Repayment due soon"
				notification.Message = fmt.Sprintf("Your repayment of %s to %s is due by %s", money.Format(loan.TotalPayable()), loan.CounterpartyName, dates.Format(loan.DueDate))
			}
		}

		if err := s.notificationRepo.SaveNotification(ctx, notification); err != nil {
			logger.Error("Failed to save loan-due notification", slog.String("error", err.Error()), slog.String("loan_id", loan.LoanID))
			continue
		}
		logger.Info("Loan-due notification raised", slog.String("loan_id", loan.LoanID))
	}
}
