package repositories

import (
	"context"

	"github.com/SscSPs/pocket_finance_app/internal/core/domain"
)

// NotificationReader defines read operations for notifications
type NotificationReader interface {
	// ListNotifications retrieves notifications for an account, newest first.
	ListNotifications(ctx context.Context, accountID string, unreadOnly bool) ([]domain.Notification, error)

	// CountUnread returns the number of unread notifications.
	CountUnread(ctx context.Context, accountID string) (int, error)

	// HasLoanDueNotification reports whether a loan-due notification already
	// exists for the given loan, read or not. Used to dedupe due reminders.
	HasLoanDueNotification(ctx context.Context, accountID string, loanID string) (bool, error)

	// HasSuggestionNotification reports whether a suggestion notification
	// with this exact message already exists. Used to dedupe advisories.
	HasSuggestionNotification(ctx context.Context, accountID string, message string) (bool, error)
}

// NotificationWriter defines write operations for notifications
type NotificationWriter interface {
	// SaveNotification persists a new notification.
	SaveNotification(ctx context.Context, notification domain.Notification) error

	// MarkRead flags a notification as read. Marking an already-read
	// notification succeeds with no state change; an unknown id within the
	// account returns apperrors.ErrNotFound.
	MarkRead(ctx context.Context, accountID string, notificationID string) error

	// MarkAllRead flags every unread notification for the account as read.
	MarkAllRead(ctx context.Context, accountID string) error
}

// NotificationRepositoryFacade combines the notification repository interfaces.
type NotificationRepositoryFacade interface {
	NotificationReader
	NotificationWriter
}
