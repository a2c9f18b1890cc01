package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense represents a single spend entry in the ledger. Entries are
// immutable once created; the only lifecycle operation is delete.
type Expense struct {
	ExpenseID string          `json:"expenseID"` // Primary Key (UUID)
	AccountID string          `json:"accountID"` // Owning account (Not Null)
	Name      string          `json:"name"`
	Category  ExpenseCategory `json:"category"`
	Amount    decimal.Decimal `json:"amount"` // Positive, two fraction digits
	Date      time.Time       `json:"date"`   // Calendar day, UTC midnight
	Notes     string          `json:"notes"`  // Nullable
	AuditFields
}
