package services_test

import (
	"testing"
	"time"

	"github.com/SscSPs/pocket_finance_app/internal/core/domain"
	"github.com/SscSPs/pocket_finance_app/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestEvaluateSuggestions_NegativeBalanceFiresFirst(t *testing.T) {
	input := services.SuggestionInput{
		Balance:       decimal.RequireFromString("-500"),
		MonthIncome:   decimal.RequireFromString("1000"),
		MonthExpenses: decimal.RequireFromString("2000"),
		Today:         day(2026, time.September, 1),
	}

	advisories := services.EvaluateSuggestions(input)

	require.NotEmpty(t, advisories)
	assert.Equal(t, domain.SeverityWarning, advisories[0].Severity)
	assert.Contains(t, advisories[0].Message, "negative")
	// Overspending this month fires as the second warning.
	require.GreaterOrEqual(t, len(advisories), 2)
	assert.Equal(t, domain.SeverityWarning, advisories[1].Severity)
}

func TestEvaluateSuggestions_DominantCategoryTip(t *testing.T) {
	input := services.SuggestionInput{
		Balance:       decimal.RequireFromString("5000"),
		MonthIncome:   decimal.RequireFromString("3000"),
		MonthExpenses: decimal.RequireFromString("1000"),
		CategoryTotals: []domain.CategoryAmount{
			{Category: domain.ExpenseShopping, Amount: decimal.RequireFromString("450")},
			{Category: domain.ExpenseFood, Amount: decimal.RequireFromString("550")},
		},
		Today: day(2026, time.September, 1),
	}

	advisories := services.EvaluateSuggestions(input)

	// Food holds 55% of the spend, above the 40% threshold; only the
	// largest category is flagged.
	var tips []domain.Advisory
	for _, a := range advisories {
		if a.Severity == domain.SeverityTip {
			tips = append(tips, a)
		}
	}
	require.Len(t, tips, 1)
	assert.Contains(t, tips[0].Message, "Food")
}

func TestEvaluateSuggestions_SavingsRateSuccess(t *testing.T) {
	input := services.SuggestionInput{
		Balance:       decimal.RequireFromString("10000"),
		MonthIncome:   decimal.RequireFromString("1000"),
		MonthExpenses: decimal.RequireFromString("700"),
		Today:         day(2026, time.September, 1),
	}

	advisories := services.EvaluateSuggestions(input)

	require.Len(t, advisories, 1)
	assert.Equal(t, domain.SeveritySuccess, advisories[0].Severity)
	assert.Contains(t, advisories[0].Message, "30%")
}

func TestEvaluateSuggestions_LoanReminders(t *testing.T) {
	today := day(2026, time.September, 1)
	lending := domain.Loan{
		LoanID:           "a",
		Direction:        domain.Lending,
		CounterpartyName: "Ravi",
		Amount:           decimal.RequireFromString("1000"),
		InterestRate:     decimal.Zero,
		StartDate:        today.AddDate(0, -1, 0),
		DueDate:          today.AddDate(0, 0, 2),
		Status:           domain.LoanPending,
	}
	borrowing := domain.Loan{
		LoanID:           "b",
		Direction:        domain.Borrowing,
		CounterpartyName: "First Bank",
		Amount:           decimal.RequireFromString("2000"),
		InterestRate:     decimal.Zero,
		StartDate:        today.AddDate(0, -1, 0),
		DueDate:          today.AddDate(0, 0, 1),
		Status:           domain.LoanPending,
	}
	paid := domain.Loan{
		LoanID:           "c",
		Direction:        domain.Lending,
		CounterpartyName: "Meera",
		Amount:           decimal.RequireFromString("500"),
		StartDate:        today.AddDate(0, -1, 0),
		DueDate:          today,
		Status:           domain.LoanPaid,
	}

	input := services.SuggestionInput{
		Balance:       decimal.RequireFromString("100"),
		MonthIncome:   decimal.RequireFromString("100"),
		MonthExpenses: decimal.Zero,
		Loans:         []domain.Loan{lending, borrowing, paid},
		Today:         today,
	}

	advisories := services.EvaluateSuggestions(input)

	var reminders []domain.Advisory
	for _, a := range advisories {
		if a.Severity == domain.SeverityReminder {
			reminders = append(reminders, a)
		}
	}
	require.Len(t, reminders, 2)
	// Ordered by due date: the borrowing repayment is due first.
	assert.Contains(t, reminders[0].Message, "First Bank")
	assert.Contains(t, reminders[1].Message, "Ravi")
}

func TestEvaluateSuggestions_Deterministic(t *testing.T) {
	input := services.SuggestionInput{
		Balance:       decimal.RequireFromString("-1"),
		MonthIncome:   decimal.RequireFromString("100"),
		MonthExpenses: decimal.RequireFromString("200"),
		CategoryTotals: []domain.CategoryAmount{
			{Category: domain.ExpenseBills, Amount: decimal.RequireFromString("200")},
		},
		Today: day(2026, time.September, 1),
	}

	first := services.EvaluateSuggestions(input)
	second := services.EvaluateSuggestions(input)

	require.Equal(t, first, second)
}

func TestEvaluateSuggestions_CapsAtFive(t *testing.T) {
	today := day(2026, time.September, 1)
	loans := make([]domain.Loan, 0, 4)
	for _, id := range []string{"a", "b", "c", "d"} {
		loans = append(loans, domain.Loan{
			LoanID:           id,
			Direction:        domain.Lending,
			CounterpartyName: "Counterparty " + id,
			Amount:           decimal.RequireFromString("100"),
			StartDate:        today.AddDate(0, -1, 0),
			DueDate:          today,
			Status:           domain.LoanPending,
		})
	}

	input := services.SuggestionInput{
		Balance:       decimal.RequireFromString("-1"),
		MonthIncome:   decimal.RequireFromString("100"),
		MonthExpenses: decimal.RequireFromString("200"),
		CategoryTotals: []domain.CategoryAmount{
			{Category: domain.ExpenseBills, Amount: decimal.RequireFromString("200")},
		},
		Loans: loans,
		Today: today,
	}

	advisories := services.EvaluateSuggestions(input)

	assert.Len(t, advisories, 5)
}
