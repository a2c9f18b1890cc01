package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Loan is the database representation of a loan record.
// Counterparty address/phone are populated for lending records,
// category for borrowing records; the unused columns stay NULL.
type Loan struct {
	ID                  string          `json:"id"`
	AccountID           string          `json:"accountID"`
	Direction           string          `json:"direction"`
	CounterpartyName    string          `json:"counterpartyName"`
	CounterpartyAddress *string         `json:"counterpartyAddress,omitempty"`
	CounterpartyPhone   *string         `json:"counterpartyPhone,omitempty"`
	Category            *string         `json:"category,omitempty"`
	Amount              decimal.Decimal `json:"amount"`
	InterestRate        decimal.Decimal `json:"interestRate"`
	StartDate           time.Time       `json:"startDate"`
	DueDate             time.Time       `json:"dueDate"`
	Status              string          `json:"status"`
	PaidDate            *time.Time      `json:"paidDate,omitempty"`
	TotalPayableCached  decimal.Decimal `json:"totalPayable"`
	Notes               string          `json:"notes"`
	AuditFields
}
