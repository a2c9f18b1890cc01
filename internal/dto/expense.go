package dto

import (
	"time"

	"github.com/SscSPs/pocket_finance_app/internal/core/domain"
	"github.com/SscSPs/pocket_finance_app/internal/utils/dates"
	"github.com/SscSPs/pocket_finance_app/internal/utils/money"
	"github.com/shopspring/decimal"
)

// CreateExpenseRequest defines the data needed to add an expense entry.
// Amount crosses the boundary as a decimal value; Date as YYYY-MM-DD.
type CreateExpenseRequest struct {
	Name     string          `json:"name" binding:"required"`
	Category string          `json:"category" binding:"required"`
	Amount   decimal.Decimal `json:"amount" binding:"required"`
	Date     string          `json:"date" binding:"required,dateonly"`
	Notes    string          `json:"notes"`
}

// ExpenseResponse defines the data returned for an expense entry.
type ExpenseResponse struct {
	ExpenseID string `json:"expenseID"`
	Name      string `json:"name"`
	Category  string `json:"category"`
	Amount    string `json:"amount"`
	Date      string `json:"date"`
	Notes     string `json:"notes,omitempty"`
	CreatedAt string `json:"createdAt"`
}

// ToExpenseResponse converts a domain.Expense to ExpenseResponse DTO
func ToExpenseResponse(e *domain.Expense) ExpenseResponse {
	return ExpenseResponse{
		ExpenseID: e.ExpenseID,
		Name:      e.Name,
		Category:  string(e.Category),
		Amount:    money.Format(e.Amount),
		Date:      dates.Format(e.Date),
		Notes:     e.Notes,
		CreatedAt: e.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// ToExpenseResponses converts a slice of domain expenses.
func ToExpenseResponses(expenses []domain.Expense) []ExpenseResponse {
	out := make([]ExpenseResponse, len(expenses))
	for i := range expenses {
		out[i] = ToExpenseResponse(&expenses[i])
	}
	return out
}
