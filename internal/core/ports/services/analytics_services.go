package services

import (
	"context"

	"github.com/SscSPs/pocket_finance_app/internal/core/domain"
)

// AnalyticsSvcFacade derives period-bucketed series, category breakdowns and
// advisory suggestions from the ledger store. All aggregates are recomputed
// on read from the authoritative entry set, never cached incrementally.
type AnalyticsSvcFacade interface {
	// Dashboard computes the full-history overview.
	Dashboard(ctx context.Context, accountID string) (*domain.DashboardSummary, error)

	// ChartSeries buckets income and expense sums into calendar-aligned
	// buckets for the given period.
	ChartSeries(ctx context.Context, accountID string, period domain.ChartPeriod) (*domain.ChartSeries, error)

	// CategoryBreakdown groups expenses by category within the selected chart
	// period, sorted by descending amount, zero categories excluded.
	CategoryBreakdown(ctx context.Context, accountID string, period domain.ChartPeriod) ([]domain.CategoryAmount, error)

	// Suggestions evaluates the advisory rules against the latest aggregates.
	Suggestions(ctx context.Context, accountID string) ([]domain.Advisory, error)
}
