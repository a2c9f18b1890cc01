package dto

import (
	"time"

	"github.com/SscSPs/pocket_finance_app/internal/core/domain"
)

// NotificationResponse defines the data returned for a notification.
type NotificationResponse struct {
	NotificationID string `json:"notificationID"`
	Kind           string `json:"kind"`
	Title          string `json:"title"`
	Message        string `json:"message"`
	LoanID         string `json:"loanID,omitempty"`
	IsRead         bool   `json:"isRead"`
	CreatedAt      string `json:"createdAt"`
}

// ToNotificationResponse converts a domain.Notification.
func ToNotificationResponse(n *domain.Notification) NotificationResponse {
	return NotificationResponse{
		NotificationID: n.NotificationID,
		Kind:           string(n.Kind),
		Title:          n.Title,
		Message:        n.Message,
		LoanID:         n.LoanID,
		IsRead:         n.IsRead,
		CreatedAt:      n.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// ToNotificationResponses converts a slice of domain notifications.
func ToNotificationResponses(notifications []domain.Notification) []NotificationResponse {
	out := make([]NotificationResponse, len(notifications))
	for i := range notifications {
		out[i] = ToNotificationResponse(&notifications[i])
	}
	return out
}

// UnreadCountResponse carries the unread notification counter.
type UnreadCountResponse struct {
	UnreadCount int `json:"unreadCount"`
}
