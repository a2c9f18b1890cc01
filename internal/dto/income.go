package dto

import (
	"time"

	"github.com/SscSPs/pocket_finance_app/internal/core/domain"
	"github.com/SscSPs/pocket_finance_app/internal/utils/dates"
	"github.com/SscSPs/pocket_finance_app/internal/utils/money"
	"github.com/shopspring/decimal"
)

// CreateIncomeRequest defines the data needed to add an income entry.
type CreateIncomeRequest struct {
	Source   string          `json:"source" binding:"required"`
	Category string          `json:"category" binding:"required"`
	Amount   decimal.Decimal `json:"amount" binding:"required"`
	Date     string          `json:"date" binding:"required,dateonly"`
	Notes    string          `json:"notes"`
}

// IncomeResponse defines the data returned for an income entry.
type IncomeResponse struct {
	IncomeID  string `json:"incomeID"`
	Source    string `json:"source"`
	Category  string `json:"category"`
	Amount    string `json:"amount"`
	Date      string `json:"date"`
	Notes     string `json:"notes,omitempty"`
	CreatedAt string `json:"createdAt"`
}

// ToIncomeResponse converts a domain.Income to IncomeResponse DTO
func ToIncomeResponse(in *domain.Income) IncomeResponse {
	return IncomeResponse{
		IncomeID:  in.IncomeID,
		Source:    in.Source,
		Category:  string(in.Category),
		Amount:    money.Format(in.Amount),
		Date:      dates.Format(in.Date),
		Notes:     in.Notes,
		CreatedAt: in.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// ToIncomeResponses converts a slice of domain incomes.
func ToIncomeResponses(incomes []domain.Income) []IncomeResponse {
	out := make([]IncomeResponse, len(incomes))
	for i := range incomes {
		out[i] = ToIncomeResponse(&incomes[i])
	}
	return out
}
