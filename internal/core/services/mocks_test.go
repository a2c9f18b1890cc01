package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/pocket_finance_app/internal/core/domain"
	portsrepo "github.com/SscSPs/pocket_finance_app/internal/core/ports/repositories"
	"github.com/stretchr/testify/mock"
)

// --- Mock LedgerRepository ---
type MockLedgerRepository struct {
	mock.Mock
}

// Ensure MockLedgerRepository implements portsrepo.LedgerRepositoryFacade
var _ portsrepo.LedgerRepositoryFacade = (*MockLedgerRepository)(nil)

func (m *MockLedgerRepository) ListExpenses(ctx context.Context, accountID string) ([]domain.Expense, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Expense), args.Error(1)
}

func (m *MockLedgerRepository) ListExpensesInRange(ctx context.Context, accountID string, from, to time.Time) ([]domain.Expense, error) {
	args := m.Called(ctx, accountID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Expense), args.Error(1)
}

func (m *MockLedgerRepository) SaveExpense(ctx context.Context, expense domain.Expense) error {
	args := m.Called(ctx, expense)
	return args.Error(0)
}

func (m *MockLedgerRepository) DeleteExpense(ctx context.Context, accountID string, expenseID string) error {
	args := m.Called(ctx, accountID, expenseID)
	return args.Error(0)
}

func (m *MockLedgerRepository) ListIncomes(ctx context.Context, accountID string) ([]domain.Income, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Income), args.Error(1)
}

func (m *MockLedgerRepository) ListIncomesInRange(ctx context.Context, accountID string, from, to time.Time) ([]domain.Income, error) {
	args := m.Called(ctx, accountID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Income), args.Error(1)
}

func (m *MockLedgerRepository) SaveIncome(ctx context.Context, income domain.Income) error {
	args := m.Called(ctx, income)
	return args.Error(0)
}

func (m *MockLedgerRepository) DeleteIncome(ctx context.Context, accountID string, incomeID string) error {
	args := m.Called(ctx, accountID, incomeID)
	return args.Error(0)
}

// --- Mock LoanRepository ---
type MockLoanRepository struct {
	mock.Mock
}

// Ensure MockLoanRepository implements portsrepo.LoanRepositoryFacade
var _ portsrepo.LoanRepositoryFacade = (*MockLoanRepository)(nil)

func (m *MockLoanRepository) FindLoanByID(ctx context.Context, accountID string, loanID string) (*domain.Loan, error) {
	args := m.Called(ctx, accountID, loanID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Loan), args.Error(1)
}

func (m *MockLoanRepository) ListLoans(ctx context.Context, accountID string, filter portsrepo.LoanListFilter) ([]domain.Loan, error) {
	args := m.Called(ctx, accountID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Loan), args.Error(1)
}

func (m *MockLoanRepository) SaveLoan(ctx context.Context, loan domain.Loan) error {
	args := m.Called(ctx, loan)
	return args.Error(0)
}

func (m *MockLoanRepository) UpdateLoanStatus(ctx context.Context, accountID string, loanID string, status domain.LoanStatus, paidDate *time.Time, now time.Time) error {
	args := m.Called(ctx, accountID, loanID, status, paidDate, now)
	return args.Error(0)
}

func (m *MockLoanRepository) DeleteLoan(ctx context.Context, accountID string, loanID string) error {
	args := m.Called(ctx, accountID, loanID)
	return args.Error(0)
}

// --- Mock NotificationRepository ---
type MockNotificationRepository struct {
	mock.Mock
}

// Ensure MockNotificationRepository implements portsrepo.NotificationRepositoryFacade
var _ portsrepo.NotificationRepositoryFacade = (*MockNotificationRepository)(nil)

func (m *MockNotificationRepository) ListNotifications(ctx context.Context, accountID string, unreadOnly bool) ([]domain.Notification, error) {
	args := m.Called(ctx, accountID, unreadOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Notification), args.Error(1)
}

func (m *MockNotificationRepository) CountUnread(ctx context.Context, accountID string) (int, error) {
	args := m.Called(ctx, accountID)
	return args.Int(0), args.Error(1)
}

func (m *MockNotificationRepository) HasLoanDueNotification(ctx context.Context, accountID string, loanID string) (bool, error) {
	args := m.Called(ctx, accountID, loanID)
	return args.Bool(0), args.Error(1)
}

func (m *MockNotificationRepository) HasSuggestionNotification(ctx context.Context, accountID string, message string) (bool, error) {
	args := m.Called(ctx, accountID, message)
	return args.Bool(0), args.Error(1)
}

func (m *MockNotificationRepository) SaveNotification(ctx context.Context, notification domain.Notification) error {
	args := m.Called(ctx, notification)
	return args.Error(0)
}

func (m *MockNotificationRepository) MarkRead(ctx context.Context, accountID string, notificationID string) error {
	args := m.Called(ctx, accountID, notificationID)
	return args.Error(0)
}

func (m *MockNotificationRepository) MarkAllRead(ctx context.Context, accountID string) error {
	args := m.Called(ctx, accountID)
	return args.Error(0)
}
