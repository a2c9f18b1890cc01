package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/SscSPs/pocket_finance_app/internal/apperrors"
	"github.com/SscSPs/pocket_finance_app/internal/core/domain"
	portsrepo "github.com/SscSPs/pocket_finance_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/pocket_finance_app/internal/core/ports/services"
	"github.com/SscSPs/pocket_finance_app/internal/middleware"
	"github.com/SscSPs/pocket_finance_app/internal/utils/dates"
)

// analyticsService recomputes every aggregate on read from the authoritative
// entry set. Nothing here is cached incrementally, so aggregates can never
// drift from the underlying entries.
type analyticsService struct {
	ledgerRepo       portsrepo.LedgerRepositoryFacade
	loanRepo         portsrepo.LoanRepositoryFacade
	notificationRepo portsrepo.NotificationRepositoryFacade
}

// NewAnalyticsService creates a new AnalyticsService.
func NewAnalyticsService(ledgerRepo portsrepo.LedgerRepositoryFacade, loanRepo portsrepo.LoanRepositoryFacade, notificationRepo portsrepo.NotificationRepositoryFacade) portssvc.AnalyticsSvcFacade {
	return &analyticsService{
		ledgerRepo:       ledgerRepo,
		loanRepo:         loanRepo,
		notificationRepo: notificationRepo,
	}
}

// Ensure analyticsService implements the portssvc.AnalyticsSvcFacade interface
var _ portssvc.AnalyticsSvcFacade = (*analyticsService)(nil)

// Dashboard computes the full-history overview.
func (s *analyticsService) Dashboard(ctx context.Context, accountID string) (*domain.DashboardSummary, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	incomes, err := s.ledgerRepo.ListIncomes(ctx, accountID)
	if err != nil {
		logger.Error("Failed to list incomes for dashboard", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to retrieve incomes: %w", err)
	}
	expenses, err := s.ledgerRepo.ListExpenses(ctx, accountID)
	if err != nil {
		logger.Error("Failed to list expenses for dashboard", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to retrieve expenses: %w", err)
	}
	unread, err := s.notificationRepo.CountUnread(ctx, accountID)
	if err != nil {
		logger.Error("Failed to count unread notifications", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to count unread notifications: %w", err)
	}

	totalIncome := decimal.Zero
	for i := range incomes {
		totalIncome = totalIncome.Add(incomes[i].Amount)
	}
	totalExpenses := decimal.Zero
	for i := range expenses {
		totalExpenses = totalExpenses.Add(expenses[i].Amount)
	}

	return &domain.DashboardSummary{
		Balance:                 totalIncome.Sub(totalExpenses),
		TotalIncome:             totalIncome,
		TotalExpenses:           totalExpenses,
		UnreadNotificationCount: unread,
		ExpensesByCategory:      groupByCategory(expenses),
	}, nil
}

// ChartSeries buckets income and expense sums into calendar-aligned buckets.
// The series length is fixed per period; empty buckets report zero.
func (s *analyticsService) ChartSeries(ctx context.Context, accountID string, period domain.ChartPeriod) (*domain.ChartSeries, error) {
	if !period.IsValid() {
		return nil, fmt.Errorf("%w: unknown chart period %q", apperrors.ErrValidation, period)
	}

	today := dates.Today()
	layout := newBucketLayout(period, today)

	incomes, err := s.ledgerRepo.ListIncomesInRange(ctx, accountID, layout.from, layout.to)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to list incomes for chart", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to retrieve incomes: %w", err)
	}
	expenses, err := s.ledgerRepo.ListExpensesInRange(ctx, accountID, layout.from, layout.to)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to list expenses for chart", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to retrieve expenses: %w", err)
	}

	series := &domain.ChartSeries{
		Period:   period,
		Labels:   layout.labels,
		Income:   zeroBuckets(len(layout.labels)),
		Expenses: zeroBuckets(len(layout.labels)),
	}
	for i := range incomes {
		if idx, ok := layout.index(incomes[i].Date); ok {
			series.Income[idx] = series.Income[idx].Add(incomes[i].Amount)
		}
	}
	for i := range expenses {
		if idx, ok := layout.index(expenses[i].Date); ok {
			series.Expenses[idx] = series.Expenses[idx].Add(expenses[i].Amount)
		}
	}
	return series, nil
}

// CategoryBreakdown groups expenses by category within the selected chart
// period, sorted by descending amount with zero categories excluded.
func (s *analyticsService) CategoryBreakdown(ctx context.Context, accountID string, period domain.ChartPeriod) ([]domain.CategoryAmount, error) {
	if !period.IsValid() {
		return nil, fmt.Errorf("%w: unknown chart period %q", apperrors.ErrValidation, period)
	}

	layout := newBucketLayout(period, dates.Today())
	expenses, err := s.ledgerRepo.ListExpensesInRange(ctx, accountID, layout.from, layout.to)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to list expenses for breakdown", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to retrieve expenses: %w", err)
	}

	return groupByCategory(expenses), nil
}

// Suggestions evaluates the advisory rules against the latest aggregates and
// records a notification for each new advisory, deduped by message.
func (s *analyticsService) Suggestions(ctx context.Context, accountID string) ([]domain.Advisory, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	dashboard, err := s.Dashboard(ctx, accountID)
	if err != nil {
		return nil, err
	}

	today := dates.Today()
	monthLayout := newBucketLayout(domain.PeriodMonth, today)

	monthIncomes, err := s.ledgerRepo.ListIncomesInRange(ctx, accountID, monthLayout.from, monthLayout.to)
	if err != nil {
		logger.Error("Failed to list month incomes for suggestions", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to retrieve incomes: %w", err)
	}
	monthExpenses, err := s.ledgerRepo.ListExpensesInRange(ctx, accountID, monthLayout.from, monthLayout.to)
	if err != nil {
		logger.Error("Failed to list month expenses for suggestions", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to retrieve expenses: %w", err)
	}
	loans, err := s.loanRepo.ListLoans(ctx, accountID, portsrepo.LoanListFilter{})
	if err != nil {
		logger.Error("Failed to list loans for suggestions", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to retrieve loans: %w", err)
	}

	monthIncomeTotal := decimal.Zero
	for i := range monthIncomes {
		monthIncomeTotal = monthIncomeTotal.Add(monthIncomes[i].Amount)
	}
	monthExpenseTotal := decimal.Zero
	for i := range monthExpenses {
		monthExpenseTotal = monthExpenseTotal.Add(monthExpenses[i].Amount)
	}

	advisories := EvaluateSuggestions(SuggestionInput{
		Balance:        dashboard.Balance,
		MonthIncome:    monthIncomeTotal,
		MonthExpenses:  monthExpenseTotal,
		CategoryTotals: groupByCategory(monthExpenses),
		Loans:          loans,
		Today:          today,
	})

	s.recordAdvisories(ctx, accountID, advisories)
	return advisories, nil
}

// recordAdvisories persists a suggestion notification per new advisory.
// Failures are logged and swallowed; advisories still reach the caller.
func (s *analyticsService) recordAdvisories(ctx context.Context, accountID string, advisories []domain.Advisory) {
	logger := middleware.GetLoggerFromCtx(ctx)

	for _, advisory := range advisories {
		// Reminders mirror loan-due notifications already raised by the loan
		// engine; recording them again would double up.
		if advisory.Severity == domain.SeverityReminder {
			continue
		}

		exists, err := s.notificationRepo.HasSuggestionNotification(ctx, accountID, advisory.Message)
		if err != nil {
			logger.Error("Failed to check for existing suggestion notification", slog.String("error", err.Error()))
			continue
		}
		if exists {
			continue
		}

		notification := domain.Notification{
			NotificationID: uuid.NewString(),
			AccountID:      accountID,
			Kind:           domain.NotificationSuggestion,
			Title:          "Pocket pick",
			Message:        advisory.Message,
			CreatedAt:      time.Now().UTC(),
		}
		if err := s.notificationRepo.SaveNotification(ctx, notification); err != nil {
			logger.Error("Failed to save suggestion notification", slog.String("error", err.Error()))
		}
	}
}

// groupByCategory sums expenses per category, sorted by descending amount
// with ties broken by name. Zero-amount categories never appear.
func groupByCategory(expenses []domain.Expense) []domain.CategoryAmount {
	totals := make(map[domain.ExpenseCategory]decimal.Decimal)
	for i := range expenses {
		totals[expenses[i].Category] = totals[expenses[i].Category].Add(expenses[i].Amount)
	}

	out := make([]domain.CategoryAmount, 0, len(totals))
	for category, amount := range totals {
		if amount.IsZero() {
			continue
		}
		out = append(out, domain.CategoryAmount{Category: category, Amount: amount})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].Amount.Equal(out[j].Amount) {
			return out[i].Amount.GreaterThan(out[j].Amount)
		}
		return out[i].Category < out[j].Category
	})
	return out
}

// bucketLayout captures the calendar-aligned window for one chart period:
// its inclusive date range, fixed labels, and the date-to-bucket mapping.
type bucketLayout struct {
	from   time.Time
	to     time.Time
	labels []string
	index  func(time.Time) (int, bool)
}

// newBucketLayout builds the layout for a period relative to today:
// 7 daily buckets for week (last 7 days ending today), one bucket per day of
// the current calendar month, and 12 monthly buckets for the current year.
func newBucketLayout(period domain.ChartPeriod, today time.Time) bucketLayout {
	today = dates.Truncate(today)

	switch period {
	case domain.PeriodWeek:
		from := today.AddDate(0, 0, -6)
		labels := make([]string, 7)
		for i := 0; i < 7; i++ {
			labels[i] = from.AddDate(0, 0, i).Format("Mon")
		}
		return bucketLayout{
			from:   from,
			to:     today,
			labels: labels,
			index: func(d time.Time) (int, bool) {
				idx := dates.DaysBetween(from, d)
				if d.Before(from) || idx > 6 {
					return 0, false
				}
				return idx, true
			},
		}

	case domain.PeriodYear:
		from := time.Date(today.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(today.Year(), time.December, 31, 0, 0, 0, 0, time.UTC)
		labels := make([]string, 12)
		for i := 0; i < 12; i++ {
			labels[i] = time.Month(i + 1).String()[:3]
		}
		return bucketLayout{
			from:   from,
			to:     to,
			labels: labels,
			index: func(d time.Time) (int, bool) {
				if d.Year() != today.Year() {
					return 0, false
				}
				return int(d.Month()) - 1, true
			},
		}

	default: // domain.PeriodMonth
		from := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
		daysInMonth := from.AddDate(0, 1, -1).Day()
		to := from.AddDate(0, 0, daysInMonth-1)
		labels := make([]string, daysInMonth)
		for i := 0; i < daysInMonth; i++ {
			labels[i] = fmt.Sprintf("%d", i+1)
		}
		return bucketLayout{
			from:   from,
			to:     to,
			labels: labels,
			index: func(d time.Time) (int, bool) {
				if d.Year() != today.Year() || d.Month() != today.Month() {
					return 0, false
				}
				return d.Day() - 1, true
			},
		}
	}
}

// zeroBuckets allocates a fixed-length series of zero amounts.
func zeroBuckets(n int) []decimal.Decimal {
	buckets := make([]decimal.Decimal, n)
	for i := range buckets {
		buckets[i] = decimal.Zero
	}
	return buckets
}
