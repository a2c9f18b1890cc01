package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/pocket_finance_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestTotalPayable_SimpleInterest(t *testing.T) {
	loan := domain.Loan{
		Amount:       decimal.RequireFromString("10000"),
		InterestRate: decimal.RequireFromString("2"),
		StartDate:    date(2026, time.September, 1),
		DueDate:      date(2026, time.November, 30), // 90 days -> 3 months
	}

	assert.Equal(t, "10600.00", loan.TotalPayable().StringFixed(2))
}

func TestTotalPayable_SameDayCountsOneMonth(t *testing.T) {
	loan := domain.Loan{
		Amount:       decimal.RequireFromString("1000"),
		InterestRate: decimal.RequireFromString("5"),
		StartDate:    date(2026, time.September, 1),
		DueDate:      date(2026, time.September, 1),
	}

	assert.Equal(t, "1050.00", loan.TotalPayable().StringFixed(2))
}

func TestTotalPayable_PartialMonthRoundsUp(t *testing.T) {
	loan := domain.Loan{
		Amount:       decimal.RequireFromString("1000"),
		InterestRate: decimal.RequireFromString("10"),
		StartDate:    date(2026, time.September, 1),
		DueDate:      date(2026, time.October, 2), // 31 days -> 2 months
	}

	assert.Equal(t, "1200.00", loan.TotalPayable().StringFixed(2))
}

func TestTotalPayable_ZeroInterest(t *testing.T) {
	loan := domain.Loan{
		Amount:       decimal.RequireFromString("750.50"),
		InterestRate: decimal.Zero,
		StartDate:    date(2026, time.January, 1),
		DueDate:      date(2026, time.December, 31),
	}

	assert.Equal(t, "750.50", loan.TotalPayable().StringFixed(2))
}

func TestEffectiveStatus_PendingPastDueIsOverdue(t *testing.T) {
	loan := domain.Loan{
		Status:  domain.LoanPending,
		DueDate: date(2026, time.August, 20),
	}

	assert.Equal(t, domain.LoanOverdue, loan.EffectiveStatus(date(2026, time.September, 1)))
}

func TestEffectiveStatus_DueTodayStillPending(t *testing.T) {
	loan := domain.Loan{
		Status:  domain.LoanPending,
		DueDate: date(2026, time.September, 1),
	}

	assert.Equal(t, domain.LoanPending, loan.EffectiveStatus(date(2026, time.September, 1)))
}

func TestEffectiveStatus_PaidNeverOverdue(t *testing.T) {
	loan := domain.Loan{
		Status:  domain.LoanPaid,
		DueDate: date(2026, time.August, 20),
	}

	assert.Equal(t, domain.LoanPaid, loan.EffectiveStatus(date(2026, time.September, 1)))
}

func TestEffectiveStatus_ResolvesWhenDueDateMoves(t *testing.T) {
	loan := domain.Loan{
		Status:  domain.LoanPending,
		DueDate: date(2026, time.August, 20),
	}
	today := date(2026, time.September, 1)

	assert.Equal(t, domain.LoanOverdue, loan.EffectiveStatus(today))

	// The overdue flag is derived, so correcting the due date resolves it
	// without any stored-state transition.
	loan.DueDate = date(2026, time.September, 15)
	assert.Equal(t, domain.LoanPending, loan.EffectiveStatus(today))
}

func TestDueWithin(t *testing.T) {
	today := date(2026, time.September, 1)
	loan := domain.Loan{
		Status:  domain.LoanPending,
		DueDate: date(2026, time.September, 3),
	}

	assert.True(t, loan.DueWithin(today, 3))
	assert.False(t, loan.DueWithin(today, 1))

	// Already past due also counts.
	loan.DueDate = date(2026, time.August, 1)
	assert.True(t, loan.DueWithin(today, 3))

	// Paid loans never do.
	loan.Status = domain.LoanPaid
	assert.False(t, loan.DueWithin(today, 3))
}
