package dto

import (
	"time"

	"github.com/SscSPs/pocket_finance_app/internal/core/domain"
	"github.com/SscSPs/pocket_finance_app/internal/utils/dates"
	"github.com/SscSPs/pocket_finance_app/internal/utils/money"
	"github.com/shopspring/decimal"
)

// CreateLoanRequest defines the data needed to create a loan. The direction
// decides which optional attribute group is required: lending needs the
// counterparty address and phone, borrowing needs a category tag.
type CreateLoanRequest struct {
	Direction           string          `json:"direction" binding:"required,oneof=lending borrowing"`
	CounterpartyName    string          `json:"counterpartyName"`
	CounterpartyAddress string          `json:"counterpartyAddress"`
	CounterpartyPhone   string          `json:"counterpartyPhone"`
	Category            string          `json:"category"`
	Amount              decimal.Decimal `json:"amount" binding:"required"`
	InterestRate        decimal.Decimal `json:"interestRate"`
	StartDate           string          `json:"startDate" binding:"required,dateonly"`
	DueDate             string          `json:"dueDate" binding:"required,dateonly"`
	Notes               string          `json:"notes"`
}

// UpdateLoanStatusRequest carries the requested stored status. Only pending
// and paid are accepted; overdue is derived and cannot be stored.
type UpdateLoanStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ListLoansParams holds the optional loan list filters.
type ListLoansParams struct {
	Direction *string `form:"direction"`
	Status    *string `form:"status"`
}

// LoanResponse defines the data returned for a loan. Status is the effective
// display status; TotalPayable is the derived repayment amount.
type LoanResponse struct {
	LoanID              string `json:"loanID"`
	Direction           string `json:"direction"`
	CounterpartyName    string `json:"counterpartyName"`
	CounterpartyAddress string `json:"counterpartyAddress,omitempty"`
	CounterpartyPhone   string `json:"counterpartyPhone,omitempty"`
	Category            string `json:"category,omitempty"`
	Amount              string `json:"amount"`
	InterestRate        string `json:"interestRate"`
	StartDate           string `json:"startDate"`
	DueDate             string `json:"dueDate"`
	Status              string `json:"status"`
	PaidDate            string `json:"paidDate,omitempty"`
	TotalPayable        string `json:"totalPayable"`
	Notes               string `json:"notes,omitempty"`
	CreatedAt           string `json:"createdAt"`
}

// ToLoanResponse converts a domain.Loan, deriving the effective status for
// the given calendar day.
func ToLoanResponse(l *domain.Loan, today time.Time) LoanResponse {
	resp := LoanResponse{
		LoanID:              l.LoanID,
		Direction:           string(l.Direction),
		CounterpartyName:    l.CounterpartyName,
		CounterpartyAddress: l.CounterpartyAddress,
		CounterpartyPhone:   l.CounterpartyPhone,
		Category:            string(l.Category),
		Amount:              money.Format(l.Amount),
		InterestRate:        l.InterestRate.String(),
		StartDate:           dates.Format(l.StartDate),
		DueDate:             dates.Format(l.DueDate),
		Status:              string(l.EffectiveStatus(today)),
		TotalPayable:        money.Format(l.TotalPayable()),
		Notes:               l.Notes,
		CreatedAt:           l.CreatedAt.UTC().Format(time.RFC3339),
	}
	if l.PaidDate != nil {
		resp.PaidDate = dates.Format(*l.PaidDate)
	}
	return resp
}

// ToLoanResponses converts a slice of domain loans.
func ToLoanResponses(loans []domain.Loan, today time.Time) []LoanResponse {
	out := make([]LoanResponse, len(loans))
	for i := range loans {
		out[i] = ToLoanResponse(&loans[i], today)
	}
	return out
}

// LoanStatsResponse aggregates the loan book for the stats endpoint.
type LoanStatsResponse struct {
	TotalLent       string `json:"totalLent"`
	TotalBorrowed   string `json:"totalBorrowed"`
	TotalReceivable string `json:"totalReceivable"`
	TotalRepayable  string `json:"totalRepayable"`
	PendingCount    int    `json:"pendingCount"`
	PaidCount       int    `json:"paidCount"`
	OverdueCount    int    `json:"overdueCount"`
}

// ToLoanStatsResponse converts domain.LoanStats.
func ToLoanStatsResponse(s *domain.LoanStats) LoanStatsResponse {
	return LoanStatsResponse{
		TotalLent:       money.Format(s.TotalLent),
		TotalBorrowed:   money.Format(s.TotalBorrowed),
		TotalReceivable: money.Format(s.TotalReceivable),
		TotalRepayable:  money.Format(s.TotalRepayable),
		PendingCount:    s.PendingCount,
		PaidCount:       s.PaidCount,
		OverdueCount:    s.OverdueCount,
	}
}
