package models

// Notification is the database representation of a notification.
type Notification struct {
	ID        string  `json:"id"`
	AccountID string  `json:"accountID"`
	Kind      string  `json:"kind"`
	Title     string  `json:"title"`
	Message   string  `json:"message"`
	LoanID    *string `json:"loanID,omitempty"`
	Read      bool    `json:"read"`
	AuditFields
}
