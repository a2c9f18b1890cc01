package domain

import "github.com/shopspring/decimal"

// ChartPeriod selects the bucketing window for chart series.
type ChartPeriod string

const (
	PeriodWeek  ChartPeriod = "week"
	PeriodMonth ChartPeriod = "month"
	PeriodYear  ChartPeriod = "year"
)

// IsValid reports whether the period is a known value.
func (p ChartPeriod) IsValid() bool {
	switch p {
	case PeriodWeek, PeriodMonth, PeriodYear:
		return true
	}
	return false
}

// DashboardSummary is the full-history account overview.
type DashboardSummary struct {
	Balance                 decimal.Decimal
	TotalIncome             decimal.Decimal
	TotalExpenses           decimal.Decimal
	UnreadNotificationCount int
	ExpensesByCategory      []CategoryAmount
}

// ChartSeries holds calendar-aligned income and expense buckets. The series
// length is fixed per period; buckets with no entries hold zero, so chart
// rendering never sees ragged arrays.
type ChartSeries struct {
	Period   ChartPeriod
	Labels   []string
	Income   []decimal.Decimal
	Expenses []decimal.Decimal
}

// CategoryAmount is one slice of the expense-by-category breakdown.
type CategoryAmount struct {
	Category ExpenseCategory
	Amount   decimal.Decimal
}

// LoanStats aggregates the loan book for the stats endpoint.
type LoanStats struct {
	TotalLent       decimal.Decimal
	TotalBorrowed   decimal.Decimal
	TotalReceivable decimal.Decimal // Total payable on pending lending loans
	TotalRepayable  decimal.Decimal // Total payable on pending borrowing loans
	PendingCount    int
	PaidCount       int
	OverdueCount    int // By effective status
}
