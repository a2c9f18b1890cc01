package dto

import (
	"github.com/SscSPs/pocket_finance_app/internal/core/domain"
	"github.com/SscSPs/pocket_finance_app/internal/utils/money"
)

// DashboardResponse is the full-history account overview for the dashboard.
type DashboardResponse struct {
	Balance                 string            `json:"balance"`
	TotalIncome             string            `json:"totalIncome"`
	TotalExpenses           string            `json:"totalExpenses"`
	UnreadNotificationCount int               `json:"unreadNotificationCount"`
	ExpensesByCategory      map[string]string `json:"expensesByCategory"`
}

// ToDashboardResponse converts a domain.DashboardSummary.
func ToDashboardResponse(s *domain.DashboardSummary) DashboardResponse {
	byCategory := make(map[string]string, len(s.ExpensesByCategory))
	for _, ca := range s.ExpensesByCategory {
		byCategory[string(ca.Category)] = money.Format(ca.Amount)
	}
	return DashboardResponse{
		Balance:                 money.Format(s.Balance),
		TotalIncome:             money.Format(s.TotalIncome),
		TotalExpenses:           money.Format(s.TotalExpenses),
		UnreadNotificationCount: s.UnreadNotificationCount,
		ExpensesByCategory:      byCategory,
	}
}

// ChartSeriesResponse holds the fixed-length chart buckets the client plots.
type ChartSeriesResponse struct {
	Period   string   `json:"period"`
	Labels   []string `json:"labels"`
	Income   []string `json:"income"`
	Expenses []string `json:"expenses"`
}

// ToChartSeriesResponse converts a domain.ChartSeries.
func ToChartSeriesResponse(s *domain.ChartSeries) ChartSeriesResponse {
	income := make([]string, len(s.Income))
	expenses := make([]string, len(s.Expenses))
	for i := range s.Income {
		income[i] = money.Format(s.Income[i])
	}
	for i := range s.Expenses {
		expenses[i] = money.Format(s.Expenses[i])
	}
	return ChartSeriesResponse{
		Period:   string(s.Period),
		Labels:   s.Labels,
		Income:   income,
		Expenses: expenses,
	}
}

// CategoryAmountResponse is one slice of the category breakdown.
type CategoryAmountResponse struct {
	Category string `json:"category"`
	Amount   string `json:"amount"`
}

// ToCategoryBreakdownResponse converts breakdown slices, preserving order.
func ToCategoryBreakdownResponse(breakdown []domain.CategoryAmount) []CategoryAmountResponse {
	out := make([]CategoryAmountResponse, len(breakdown))
	for i, ca := range breakdown {
		out[i] = CategoryAmountResponse{Category: string(ca.Category), Amount: money.Format(ca.Amount)}
	}
	return out
}

// SuggestionsResponse wraps the ordered advisory list.
type SuggestionsResponse struct {
	Suggestions []domain.Advisory `json:"suggestions"`
}
