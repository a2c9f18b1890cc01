package services

import (
	"context"

	"github.com/SscSPs/pocket_finance_app/internal/core/domain"
)

// NotificationSvcFacade tracks advisory and loan-due notifications.
type NotificationSvcFacade interface {
	// List retrieves notifications for the account, newest first.
	List(ctx context.Context, accountID string, unreadOnly bool) ([]domain.Notification, error)

	// MarkRead flags one notification as read; idempotent on already-read.
	MarkRead(ctx context.Context, accountID string, notificationID string) error

	// MarkAllRead flags every unread notification as read.
	MarkAllRead(ctx context.Context, accountID string) error

	// UnreadCount returns the number of unread notifications.
	UnreadCount(ctx context.Context, accountID string) (int, error)
}
