package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/pocket_finance_app/internal/apperrors"
	"github.com/SscSPs/pocket_finance_app/internal/core/domain"
	portsrepo "github.com/SscSPs/pocket_finance_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/pocket_finance_app/internal/core/ports/services"
	"github.com/SscSPs/pocket_finance_app/internal/core/services"
	"github.com/SscSPs/pocket_finance_app/internal/utils/dates"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite Setup ---
type AnalyticsServiceTestSuite struct {
	suite.Suite
	mockLedgerRepo       *MockLedgerRepository
	mockLoanRepo         *MockLoanRepository
	mockNotificationRepo *MockNotificationRepository
	service              portssvc.AnalyticsSvcFacade
	accountID            string
}

func (suite *AnalyticsServiceTestSuite) SetupTest() {
	suite.mockLedgerRepo = new(MockLedgerRepository)
	suite.mockLoanRepo = new(MockLoanRepository)
	suite.mockNotificationRepo = new(MockNotificationRepository)
	suite.service = services.NewAnalyticsService(suite.mockLedgerRepo, suite.mockLoanRepo, suite.mockNotificationRepo)
	suite.accountID = uuid.NewString()
}

func expense(accountID string, category domain.ExpenseCategory, amount string, date time.Time) domain.Expense {
	return domain.Expense{
		ExpenseID: uuid.NewString(),
		AccountID: accountID,
		Name:      string(category),
		Category:  category,
		Amount:    decimal.RequireFromString(amount),
		Date:      date,
	}
}

func income(accountID string, category domain.IncomeCategory, amount string, date time.Time) domain.Income {
	return domain.Income{
		IncomeID:  uuid.NewString(),
		AccountID: accountID,
		Source:    string(category),
		Category:  category,
		Amount:    decimal.RequireFromString(amount),
		Date:      date,
	}
}

// --- Test Cases ---

func (suite *AnalyticsServiceTestSuite) TestDashboard_BalanceAndTotals() {
	ctx := context.Background()
	today := dates.Today()

	incomes := []domain.Income{income(suite.accountID, domain.IncomeSalary, "30000", today)}
	expenses := []domain.Expense{expense(suite.accountID, domain.ExpenseFood, "250", today)}

	suite.mockLedgerRepo.On("ListIncomes", ctx, suite.accountID).Return(incomes, nil).Once()
	suite.mockLedgerRepo.On("ListExpenses", ctx, suite.accountID).Return(expenses, nil).Once()
	suite.mockNotificationRepo.On("CountUnread", ctx, suite.accountID).Return(2, nil).Once()

	summary, err := suite.service.Dashboard(ctx, suite.accountID)

	suite.Require().NoError(err)
	suite.Equal("29750.00", summary.Balance.StringFixed(2))
	suite.Equal("30000.00", summary.TotalIncome.StringFixed(2))
	suite.Equal("250.00", summary.TotalExpenses.StringFixed(2))
	suite.Equal(2, summary.UnreadNotificationCount)
	suite.Require().Len(summary.ExpensesByCategory, 1)
	suite.Equal(domain.ExpenseFood, summary.ExpensesByCategory[0].Category)

	suite.mockLedgerRepo.AssertExpectations(suite.T())
	suite.mockNotificationRepo.AssertExpectations(suite.T())
}

func (suite *AnalyticsServiceTestSuite) TestDashboard_EmptyAccount() {
	ctx := context.Background()

	suite.mockLedgerRepo.On("ListIncomes", ctx, suite.accountID).Return([]domain.Income{}, nil).Once()
	suite.mockLedgerRepo.On("ListExpenses", ctx, suite.accountID).Return([]domain.Expense{}, nil).Once()
	suite.mockNotificationRepo.On("CountUnread", ctx, suite.accountID).Return(0, nil).Once()

	summary, err := suite.service.Dashboard(ctx, suite.accountID)

	suite.Require().NoError(err)
	suite.True(summary.Balance.IsZero())
	suite.Empty(summary.ExpensesByCategory)
}

func (suite *AnalyticsServiceTestSuite) TestChartSeries_WeekHasSevenBuckets() {
	ctx := context.Background()
	today := dates.Today()

	incomes := []domain.Income{income(suite.accountID, domain.IncomeSalary, "100", today)}
	expenses := []domain.Expense{
		expense(suite.accountID, domain.ExpenseFood, "40", today),
		expense(suite.accountID, domain.ExpenseFood, "10", today.AddDate(0, 0, -6)),
	}

	suite.mockLedgerRepo.On("ListIncomesInRange", ctx, suite.accountID, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).Return(incomes, nil).Once()
	suite.mockLedgerRepo.On("ListExpensesInRange", ctx, suite.accountID, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).Return(expenses, nil).Once()

	series, err := suite.service.ChartSeries(ctx, suite.accountID, domain.PeriodWeek)

	suite.Require().NoError(err)
	suite.Equal(domain.PeriodWeek, series.Period)
	suite.Len(series.Labels, 7)
	suite.Len(series.Income, 7)
	suite.Len(series.Expenses, 7)
	// Oldest bucket holds the entry from six days ago, newest holds today's.
	suite.Equal("10.00", series.Expenses[0].StringFixed(2))
	suite.Equal("40.00", series.Expenses[6].StringFixed(2))
	suite.Equal("100.00", series.Income[6].StringFixed(2))
	suite.Equal(today.Format("Mon"), series.Labels[6])
}

func (suite *AnalyticsServiceTestSuite) TestChartSeries_YearHasTwelveBuckets() {
	ctx := context.Background()
	today := dates.Today()
	march := time.Date(today.Year(), time.March, 15, 0, 0, 0, 0, time.UTC)

	suite.mockLedgerRepo.On("ListIncomesInRange", ctx, suite.accountID, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).Return([]domain.Income{}, nil).Once()
	suite.mockLedgerRepo.On("ListExpensesInRange", ctx, suite.accountID, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).Return([]domain.Expense{
		expense(suite.accountID, domain.ExpenseTravel, "500", march),
	}, nil).Once()

	series, err := suite.service.ChartSeries(ctx, suite.accountID, domain.PeriodYear)

	suite.Require().NoError(err)
	suite.Len(series.Labels, 12)
	suite.Equal("Jan", series.Labels[0])
	suite.Equal("Dec", series.Labels[11])
	suite.Equal("500.00", series.Expenses[2].StringFixed(2))
	suite.True(series.Expenses[0].IsZero())
}

func (suite *AnalyticsServiceTestSuite) TestChartSeries_UnknownPeriod() {
	ctx := context.Background()

	_, err := suite.service.ChartSeries(ctx, suite.accountID, domain.ChartPeriod("quarter"))

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockLedgerRepo.AssertNotCalled(suite.T(), "ListIncomesInRange")
}

func (suite *AnalyticsServiceTestSuite) TestCategoryBreakdown_SortedDescending() {
	ctx := context.Background()
	today := dates.Today()

	expenses := []domain.Expense{
		expense(suite.accountID, domain.ExpenseFood, "100", today),
		expense(suite.accountID, domain.ExpenseBills, "300", today),
		expense(suite.accountID, domain.ExpenseFood, "50", today),
	}

	suite.mockLedgerRepo.On("ListExpensesInRange", ctx, suite.accountID, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).Return(expenses, nil).Once()

	breakdown, err := suite.service.CategoryBreakdown(ctx, suite.accountID, domain.PeriodMonth)

	suite.Require().NoError(err)
	suite.Require().Len(breakdown, 2)
	suite.Equal(domain.ExpenseBills, breakdown[0].Category)
	suite.Equal("300.00", breakdown[0].Amount.StringFixed(2))
	suite.Equal(domain.ExpenseFood, breakdown[1].Category)
	suite.Equal("150.00", breakdown[1].Amount.StringFixed(2))
}

func (suite *AnalyticsServiceTestSuite) TestSuggestions_RecordsNewAdvisories() {
	ctx := context.Background()
	today := dates.Today()

	// Full history: spent far more than earned, so the balance is negative.
	suite.mockLedgerRepo.On("ListIncomes", ctx, suite.accountID).Return([]domain.Income{
		income(suite.accountID, domain.IncomeSalary, "1000", today),
	}, nil).Once()
	suite.mockLedgerRepo.On("ListExpenses", ctx, suite.accountID).Return([]domain.Expense{
		expense(suite.accountID, domain.ExpenseShopping, "4000", today),
	}, nil).Once()
	suite.mockNotificationRepo.On("CountUnread", ctx, suite.accountID).Return(0, nil).Once()

	// Current month mirrors the same entries.
	suite.mockLedgerRepo.On("ListIncomesInRange", ctx, suite.accountID, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).Return([]domain.Income{
		income(suite.accountID, domain.IncomeSalary, "1000", today),
	}, nil).Once()
	suite.mockLedgerRepo.On("ListExpensesInRange", ctx, suite.accountID, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).Return([]domain.Expense{
		expense(suite.accountID, domain.ExpenseShopping, "4000", today),
	}, nil).Once()
	suite.mockLoanRepo.On("ListLoans", ctx, suite.accountID, portsrepo.LoanListFilter{}).Return([]domain.Loan{}, nil).Once()

	suite.mockNotificationRepo.On("HasSuggestionNotification", ctx, suite.accountID, mock.AnythingOfType("string")).Return(false, nil)
	suite.mockNotificationRepo.On("SaveNotification", ctx, mock.MatchedBy(func(n domain.Notification) bool {
		return n.Kind == domain.NotificationSuggestion
	})).Return(nil)

	advisories, err := suite.service.Suggestions(ctx, suite.accountID)

	suite.Require().NoError(err)
	suite.Require().NotEmpty(advisories)
	// Negative balance fires first, then the overspend warning.
	suite.Equal(domain.SeverityWarning, advisories[0].Severity)
	suite.mockNotificationRepo.AssertNumberOfCalls(suite.T(), "SaveNotification", len(advisories))
}

func (suite *AnalyticsServiceTestSuite) TestSuggestions_DedupedByMessage() {
	ctx := context.Background()
	today := dates.Today()

	suite.mockLedgerRepo.On("ListIncomes", ctx, suite.accountID).Return([]domain.Income{}, nil).Once()
	suite.mockLedgerRepo.On("ListExpenses", ctx, suite.accountID).Return([]domain.Expense{
		expense(suite.accountID, domain.ExpenseFood, "100", today),
	}, nil).Once()
	suite.mockNotificationRepo.On("CountUnread", ctx, suite.accountID).Return(0, nil).Once()

	suite.mockLedgerRepo.On("ListIncomesInRange", ctx, suite.accountID, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).Return([]domain.Income{}, nil).Once()
	suite.mockLedgerRepo.On("ListExpensesInRange", ctx, suite.accountID, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).Return([]domain.Expense{
		expense(suite.accountID, domain.ExpenseFood, "100", today),
	}, nil).Once()
	suite.mockLoanRepo.On("ListLoans", ctx, suite.accountID, portsrepo.LoanListFilter{}).Return([]domain.Loan{}, nil).Once()

	suite.mockNotificationRepo.On("HasSuggestionNotification", ctx, suite.accountID, mock.AnythingOfType("string")).Return(true, nil)

	advisories, err := suite.service.Suggestions(ctx, suite.accountID)

	suite.Require().NoError(err)
	suite.Require().NotEmpty(advisories)
	suite.mockNotificationRepo.AssertNotCalled(suite.T(), "SaveNotification")
}

func TestAnalyticsService(t *testing.T) {
	suite.Run(t, new(AnalyticsServiceTestSuite))
}
