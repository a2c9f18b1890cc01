package domain

import (
	"time"

	"github.com/SscSPs/pocket_finance_app/internal/utils/dates"
	"github.com/shopspring/decimal"
)

// LoanDirection indicates whether a loan is money given out or taken in.
type LoanDirection string

const (
	Lending   LoanDirection = "lending"
	Borrowing LoanDirection = "borrowing"
)

// IsValid reports whether the direction is a known value.
func (d LoanDirection) IsValid() bool {
	return d == Lending || d == Borrowing
}

// LoanStatus is the stored lifecycle state of a loan. Overdue is never
// stored; it is derived at read time from the due date.
type LoanStatus string

const (
	LoanPending LoanStatus = "pending"
	LoanPaid    LoanStatus = "paid"
	LoanOverdue LoanStatus = "overdue"
)

// Loan is a tagged variant: one record with a direction discriminant and two
// small direction-specific attribute groups. Lending carries the counterparty
// address and phone; borrowing carries a category tag.
type Loan struct {
	LoanID           string        `json:"loanID"` // Primary Key (UUID)
	AccountID        string        `json:"accountID"`
	Direction        LoanDirection `json:"direction"`
	CounterpartyName string        `json:"counterpartyName"`
	// Lending-specific attributes
	CounterpartyAddress string `json:"counterpartyAddress,omitempty"`
	CounterpartyPhone   string `json:"counterpartyPhone,omitempty"`
	// Borrowing-specific attribute
	Category BorrowCategory `json:"category,omitempty"`

	Amount       decimal.Decimal `json:"amount"`       // Principal, positive
	InterestRate decimal.Decimal `json:"interestRate"` // Percent per month, >= 0
	StartDate    time.Time       `json:"startDate"`
	DueDate      time.Time       `json:"dueDate"` // Invariant: DueDate >= StartDate
	Status       LoanStatus      `json:"status"`
	PaidDate     *time.Time      `json:"paidDate,omitempty"` // Set only while status is paid
	// TotalPayable is a cached copy for display; TotalPayable() below is the
	// source of truth.
	TotalPayableCached decimal.Decimal `json:"totalPayable"`
	Notes              string          `json:"notes"`
	AuditFields
}

// TotalPayable derives the agreed repayment amount: simple interest over the
// full lending window, fixed once start and due dates are set. It is not an
// accruing running balance and is never revised after the due date passes.
func (l *Loan) TotalPayable() decimal.Decimal {
	months := dates.MonthsBetween(l.StartDate, l.DueDate)
	interest := l.Amount.Mul(l.InterestRate).Mul(decimal.NewFromInt(int64(months))).Div(decimal.NewFromInt(100))
	return l.Amount.Add(interest).Round(2)
}

// EffectiveStatus is the display-time status: equal to the stored status
// except that pending loans past their due date report overdue. It is a pure
// function of (status, dueDate, today) and is never written to storage, so
// correcting the due date or marking paid resolves the overdue flag at once.
func (l *Loan) EffectiveStatus(today time.Time) LoanStatus {
	if l.Status == LoanPending && l.DueDate.Before(dates.Truncate(today)) {
		return LoanOverdue
	}
	return l.Status
}

// DueWithin reports whether a pending loan falls due within n days of today
// (or is already past due).
func (l *Loan) DueWithin(today time.Time, n int) bool {
	if l.Status != LoanPending {
		return false
	}
	return !l.DueDate.After(dates.Truncate(today).AddDate(0, 0, n))
}
