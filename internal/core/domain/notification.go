package domain

import "time"

// NotificationKind classifies who produced a notification.
type NotificationKind string

const (
	NotificationLoanDue    NotificationKind = "loan-due"
	NotificationSuggestion NotificationKind = "suggestion"
	NotificationSystem     NotificationKind = "system"
)

// Notification is created by the loan engine (due-date crossing) or the
// suggestion engine (new advisory) and mutated only by mark-as-read.
type Notification struct {
	NotificationID string           `json:"notificationID"` // Primary Key (UUID)
	AccountID      string           `json:"accountID"`
	Kind           NotificationKind `json:"kind"`
	Title          string           `json:"title"`
	Message        string           `json:"message"`
	// LoanID links loan-due notifications to their loan. The loan may have
	// been deleted since; an orphaned reference still renders.
	LoanID    string    `json:"loanID,omitempty"`
	IsRead    bool      `json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
}
