package services

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/SscSPs/pocket_finance_app/internal/core/domain"
	"github.com/SscSPs/pocket_finance_app/internal/utils/dates"
	"github.com/SscSPs/pocket_finance_app/internal/utils/money"
)

// maxSuggestions caps how many advisories a single evaluation returns.
const maxSuggestions = 5

// categoryShareThreshold flags any single category above this share of the
// month's spend.
var categoryShareThreshold = decimal.NewFromInt(40)

// savingsRateThreshold marks a month with this savings rate as a win.
var savingsRateThreshold = decimal.NewFromInt(20)

// SuggestionInput is the aggregate snapshot the rules evaluate. It is
// assembled from the latest dashboard and month-series output, so rule
// evaluation itself needs no repository access.
type SuggestionInput struct {
	Balance        decimal.Decimal
	MonthIncome    decimal.Decimal
	MonthExpenses  decimal.Decimal
	CategoryTotals []domain.CategoryAmount // month spend per category, descending
	Loans          []domain.Loan
	Today          time.Time
}

// EvaluateSuggestions runs the ordered advisory rules and returns the first
// matches, order preserved. Evaluation is pure and deterministic: identical
// inputs produce byte-identical output.
func EvaluateSuggestions(input SuggestionInput) []domain.Advisory {
	advisories := make([]domain.Advisory, 0, maxSuggestions)

	// Rule 1: negative balance.
	if input.Balance.IsNegative() {
		advisories = append(advisories, domain.Advisory{
			Severity: domain.SeverityWarning,
			Message:  "Your balance is negative. Time to slow down on spending.",
		})
	}

	// Rule 2: spent more than earned this month.
	if input.MonthExpenses.GreaterThan(input.MonthIncome) {
		advisories = append(advisories, domain.Advisory{
			Severity: domain.SeverityWarning,
			Message:  fmt.Sprintf("You spent %s this month but earned only %s.", money.Format(input.MonthExpenses), money.Format(input.MonthIncome)),
		})
	}

	// Rule 3: a single category dominating the month's spend.
	if input.MonthExpenses.IsPositive() {
		for _, ca := range sortedCategories(input.CategoryTotals) {
			share := ca.Amount.Mul(decimal.NewFromInt(100)).Div(input.MonthExpenses)
			if share.GreaterThan(categoryShareThreshold) {
				advisories = append(advisories, domain.Advisory{
					Severity: domain.SeverityTip,
					Message:  fmt.Sprintf("%s makes up %s%% of this month's spending. Consider setting a budget for it.", ca.Category, share.Round(0)),
				})
				break
			}
		}
	}

	// Rule 4: loans falling due inside the reminder window.
	for _, loan := range sortedLoans(input.Loans) {
		if !loan.DueWithin(input.Today, dueSoonWindowDays) {
			continue
		}
		if loan.Direction == domain.Lending {
			advisories = append(advisories, domain.Advisory{
				Severity: domain.SeverityReminder,
				Message:  fmt.Sprintf("%s owes you %s, due %s.", loan.CounterpartyName, money.Format(loan.TotalPayable()), dates.Format(loan.DueDate)),
			})
		} else {
			advisories = append(advisories, domain.Advisory{
				Severity: domain.SeverityReminder,
				Message:  fmt.Sprintf("You owe %s %s, due %s.", loan.CounterpartyName, money.Format(loan.TotalPayable()), dates.Format(loan.DueDate)),
			})
		}
	}

	// Rule 5: healthy savings rate this month.
	if input.MonthIncome.IsPositive() && input.MonthExpenses.LessThanOrEqual(input.MonthIncome) {
		saved := input.MonthIncome.Sub(input.MonthExpenses)
		rate := saved.Mul(decimal.NewFromInt(100)).Div(input.MonthIncome)
		if rate.GreaterThanOrEqual(savingsRateThreshold) {
			advisories = append(advisories, domain.Advisory{
				Severity: domain.SeveritySuccess,
				Message:  fmt.Sprintf("Nice work! You saved %s%% of your income this month.", rate.Round(0)),
			})
		}
	}

	if len(advisories) > maxSuggestions {
		advisories = advisories[:maxSuggestions]
	}
	return advisories
}

// sortedCategories orders category totals by descending amount, ties broken
// by category name, without mutating the input.
func sortedCategories(totals []domain.CategoryAmount) []domain.CategoryAmount {
	sorted := make([]domain.CategoryAmount, len(totals))
	copy(sorted, totals)
	sort.SliceStable(sorted, func(i, j int) bool {
		if !sorted[i].Amount.Equal(sorted[j].Amount) {
			return sorted[i].Amount.GreaterThan(sorted[j].Amount)
		}
		return sorted[i].Category < sorted[j].Category
	})
	return sorted
}

// sortedLoans orders loans by due date, ties broken by id, without mutating
// the input.
func sortedLoans(loans []domain.Loan) []domain.Loan {
	sorted := make([]domain.Loan, len(loans))
	copy(sorted, loans)
	sort.SliceStable(sorted, func(i, j int) bool {
		if !sorted[i].DueDate.Equal(sorted[j].DueDate) {
			return sorted[i].DueDate.Before(sorted[j].DueDate)
		}
		return sorted[i].LoanID < sorted[j].LoanID
	})
	return sorted
}
