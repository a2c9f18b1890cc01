package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Income represents a single income entry in the ledger. Same ownership and
// lifecycle as Expense: immutable once created except for delete.
type Income struct {
	IncomeID  string          `json:"incomeID"` // Primary Key (UUID)
	AccountID string          `json:"accountID"`
	Source    string          `json:"source"` // e.g. employer or client name
	Category  IncomeCategory  `json:"category"`
	Amount    decimal.Decimal `json:"amount"`
	Date      time.Time       `json:"date"`
	Notes     string          `json:"notes"`
	AuditFields
}
