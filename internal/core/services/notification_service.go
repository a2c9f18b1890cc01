package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/pocket_finance_app/internal/apperrors"
	"github.com/SscSPs/pocket_finance_app/internal/core/domain"
	portsrepo "github.com/SscSPs/pocket_finance_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/pocket_finance_app/internal/core/ports/services"
	"github.com/SscSPs/pocket_finance_app/internal/middleware"
)

// notificationService tracks unread advisory and loan-due notifications.
type notificationService struct {
	notificationRepo portsrepo.NotificationRepositoryFacade
}

// NewNotificationService creates a new NotificationService.
func NewNotificationService(notificationRepo portsrepo.NotificationRepositoryFacade) portssvc.NotificationSvcFacade {
	return &notificationService{notificationRepo: notificationRepo}
}

// Ensure notificationService implements the portssvc.NotificationSvcFacade interface
var _ portssvc.NotificationSvcFacade = (*notificationService)(nil)

// List retrieves notifications for the account, newest first. Notifications
// whose loan has since been deleted still render; the reference is carried
// as-is and never resolved here.
func (s *notificationService) List(ctx context.Context, accountID string, unreadOnly bool) ([]domain.Notification, error) {
	notifications, err := s.notificationRepo.ListNotifications(ctx, accountID, unreadOnly)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to list notifications", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to retrieve notifications: %w", err)
	}
	return notifications, nil
}

// MarkRead flags one notification as read. Marking an already-read
// notification succeeds with no state change.
func (s *notificationService) MarkRead(ctx context.Context, accountID string, notificationID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.notificationRepo.MarkRead(ctx, accountID, notificationID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Notification not found for mark-read", slog.String("notification_id", notificationID))
			return err
		}
		logger.Error("Failed to mark notification read", slog.String("error", err.Error()), slog.String("notification_id", notificationID))
		return fmt.Errorf("failed to mark notification read: %w", err)
	}

	logger.Info("Notification marked read", slog.String("notification_id", notificationID))
	return nil
}

// MarkAllRead flags every unread notification for the account as read.
func (s *notificationService) MarkAllRead(ctx context.Context, accountID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.notificationRepo.MarkAllRead(ctx, accountID); err != nil {
		logger.Error("Failed to mark all notifications read", slog.String("error", err.Error()))
		return fmt.Errorf("failed to mark all notifications read: %w", err)
	}

	logger.Info("All notifications marked read")
	return nil
}

// UnreadCount returns the number of unread notifications.
func (s *notificationService) UnreadCount(ctx context.Context, accountID string) (int, error) {
	count, err := s.notificationRepo.CountUnread(ctx, accountID)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Error("Failed to count unread notifications", slog.String("error", err.Error()))
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}
	return count, nil
}
