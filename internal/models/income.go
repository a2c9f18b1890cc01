package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Income is the database representation of an income entry.
type Income struct {
	ID        string          `json:"id"`
	AccountID string          `json:"accountID"`
	Source    string          `json:"source"`
	Category  string          `json:"category"`
	Amount    decimal.Decimal `json:"amount"`
	Date      time.Time       `json:"date"`
	Notes     string          `json:"notes"`
	AuditFields
}
