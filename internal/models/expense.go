package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is the database representation of an expense entry.
type Expense struct {
	ID        string          `json:"id"`
	AccountID string          `json:"accountID"`
	Name      string          `json:"name"`
	Category  string          `json:"category"`
	Amount    decimal.Decimal `json:"amount"`
	Date      time.Time       `json:"date"`
	Notes     string          `json:"notes"`
	AuditFields
}
