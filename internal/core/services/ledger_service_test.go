package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/pocket_finance_app/internal/apperrors"
	"github.com/SscSPs/pocket_finance_app/internal/core/domain"
	portssvc "github.com/SscSPs/pocket_finance_app/internal/core/ports/services"
	"github.com/SscSPs/pocket_finance_app/internal/core/services"
	"github.com/SscSPs/pocket_finance_app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite Setup ---
type LedgerServiceTestSuite struct {
	suite.Suite
	mockLedgerRepo *MockLedgerRepository
	service        portssvc.LedgerSvcFacade
	accountID      string
}

func (suite *LedgerServiceTestSuite) SetupTest() {
	suite.mockLedgerRepo = new(MockLedgerRepository)
	suite.service = services.NewLedgerService(suite.mockLedgerRepo)
	suite.accountID = uuid.NewString()
}

// --- Test Cases ---

func (suite *LedgerServiceTestSuite) TestAddExpense_Success() {
	ctx := context.Background()
	req := dto.CreateExpenseRequest{
		Name:     "Groceries",
		Category: "Food",
		Amount:   decimal.RequireFromString("250"),
		Date:     "2026-09-01",
	}

	suite.mockLedgerRepo.On("SaveExpense", ctx, mock.AnythingOfType("domain.Expense")).Return(nil).Once()

	expense, err := suite.service.AddExpense(ctx, suite.accountID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(expense)
	suite.NotEmpty(expense.ExpenseID)
	suite.Equal(suite.accountID, expense.AccountID)
	suite.Equal(domain.ExpenseFood, expense.Category)
	suite.True(expense.Amount.Equal(decimal.RequireFromString("250")))
	suite.Equal("2026-09-01", expense.Date.Format("2006-01-02"))

	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestAddExpense_RoundsToTwoFractionDigits() {
	ctx := context.Background()
	req := dto.CreateExpenseRequest{
		Name:     "Coffee",
		Category: "Food",
		Amount:   decimal.RequireFromString("3.555"),
		Date:     "2026-09-01",
	}

	suite.mockLedgerRepo.On("SaveExpense", ctx, mock.AnythingOfType("domain.Expense")).Return(nil).Once()

	expense, err := suite.service.AddExpense(ctx, suite.accountID, req)

	suite.Require().NoError(err)
	suite.Equal("3.56", expense.Amount.StringFixed(2))
}

func (suite *LedgerServiceTestSuite) TestAddExpense_BlankName() {
	ctx := context.Background()
	req := dto.CreateExpenseRequest{
		Name:     "   ",
		Category: "Food",
		Amount:   decimal.RequireFromString("10"),
		Date:     "2026-09-01",
	}

	expense, err := suite.service.AddExpense(ctx, suite.accountID, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(expense)
	suite.mockLedgerRepo.AssertNotCalled(suite.T(), "SaveExpense")
}

func (suite *LedgerServiceTestSuite) TestAddExpense_UnknownCategory() {
	ctx := context.Background()
	req := dto.CreateExpenseRequest{
		Name:     "Something",
		Category: "Gambling",
		Amount:   decimal.RequireFromString("10"),
		Date:     "2026-09-01",
	}

	_, err := suite.service.AddExpense(ctx, suite.accountID, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *LedgerServiceTestSuite) TestAddExpense_NonPositiveAmount() {
	ctx := context.Background()
	req := dto.CreateExpenseRequest{
		Name:     "Refund",
		Category: "Other",
		Amount:   decimal.RequireFromString("-5"),
		Date:     "2026-09-01",
	}

	_, err := suite.service.AddExpense(ctx, suite.accountID, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *LedgerServiceTestSuite) TestAddExpense_BadDate() {
	ctx := context.Background()
	req := dto.CreateExpenseRequest{
		Name:     "Groceries",
		Category: "Food",
		Amount:   decimal.RequireFromString("10"),
		Date:     "01-09-2026",
	}

	_, err := suite.service.AddExpense(ctx, suite.accountID, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *LedgerServiceTestSuite) TestAddIncome_Success() {
	ctx := context.Background()
	req := dto.CreateIncomeRequest{
		Source:   "Acme Corp",
		Category: "Salary",
		Amount:   decimal.RequireFromString("30000"),
		Date:     "2026-09-01",
	}

	suite.mockLedgerRepo.On("SaveIncome", ctx, mock.AnythingOfType("domain.Income")).Return(nil).Once()

	income, err := suite.service.AddIncome(ctx, suite.accountID, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(income)
	suite.NotEmpty(income.IncomeID)
	suite.Equal(domain.IncomeSalary, income.Category)
	suite.True(income.Amount.Equal(decimal.RequireFromString("30000")))

	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestAddIncome_UnknownCategory() {
	ctx := context.Background()
	req := dto.CreateIncomeRequest{
		Source:   "Acme Corp",
		Category: "Lottery",
		Amount:   decimal.RequireFromString("100"),
		Date:     "2026-09-01",
	}

	_, err := suite.service.AddIncome(ctx, suite.accountID, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *LedgerServiceTestSuite) TestDeleteExpense_NotFound() {
	ctx := context.Background()
	expenseID := uuid.NewString()

	suite.mockLedgerRepo.On("DeleteExpense", ctx, suite.accountID, expenseID).Return(apperrors.ErrNotFound).Once()

	err := suite.service.DeleteExpense(ctx, suite.accountID, expenseID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestDeleteIncome_Success() {
	ctx := context.Background()
	incomeID := uuid.NewString()

	suite.mockLedgerRepo.On("DeleteIncome", ctx, suite.accountID, incomeID).Return(nil).Once()

	err := suite.service.DeleteIncome(ctx, suite.accountID, incomeID)

	suite.Require().NoError(err)
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func (suite *LedgerServiceTestSuite) TestListExpenses_PassesThrough() {
	ctx := context.Background()
	expenses := []domain.Expense{
		{ExpenseID: uuid.NewString(), AccountID: suite.accountID, Name: "Rent", Category: domain.ExpenseBills, Amount: decimal.RequireFromString("1200.50")},
	}

	suite.mockLedgerRepo.On("ListExpenses", ctx, suite.accountID).Return(expenses, nil).Once()

	got, err := suite.service.ListExpenses(ctx, suite.accountID)

	suite.Require().NoError(err)
	suite.Len(got, 1)
	suite.Equal("Rent", got[0].Name)
	suite.mockLedgerRepo.AssertExpectations(suite.T())
}

func TestLedgerService(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}
