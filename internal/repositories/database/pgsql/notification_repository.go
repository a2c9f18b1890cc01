package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/pocket_finance_app/internal/apperrors"
	"github.com/SscSPs/pocket_finance_app/internal/core/domain"
	portsrepo "github.com/SscSPs/pocket_finance_app/internal/core/ports/repositories"
	"github.com/SscSPs/pocket_finance_app/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxNotificationRepository struct {
	pool *pgxpool.Pool
}

// newPgxNotificationRepository creates a new repository for notifications.
func newPgxNotificationRepository(pool *pgxpool.Pool) portsrepo.NotificationRepositoryFacade {
	return &PgxNotificationRepository{pool: pool}
}

// Ensure PgxNotificationRepository implements portsrepo.NotificationRepositoryFacade
var _ portsrepo.NotificationRepositoryFacade = (*PgxNotificationRepository)(nil)

func toModelNotification(d domain.Notification) models.Notification {
	m := models.Notification{
		ID:        d.NotificationID,
		AccountID: d.AccountID,
		Kind:      string(d.Kind),
		Title:     d.Title,
		Message:   d.Message,
		Read:      d.IsRead,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			LastUpdatedAt: d.CreatedAt,
		},
	}
	if d.LoanID != "" {
		loanID := d.LoanID
		m.LoanID = &loanID
	}
	return m
}

func toDomainNotification(m models.Notification) domain.Notification {
	d := domain.Notification{
		NotificationID: m.ID,
		AccountID:      m.AccountID,
		Kind:           domain.NotificationKind(m.Kind),
		Title:          m.Title,
		Message:        m.Message,
		IsRead:         m.Read,
		CreatedAt:      m.CreatedAt,
	}
	if m.LoanID != nil {
		d.LoanID = *m.LoanID
	}
	return d
}

const notificationColumns = `notification_id, account_id, kind, title, message, loan_id, is_read, created_at`

func scanNotification(row pgx.Row) (models.Notification, error) {
	var m models.Notification
	err := row.Scan(
		&m.ID,
		&m.AccountID,
		&m.Kind,
		&m.Title,
		&m.Message,
		&m.LoanID,
		&m.Read,
		&m.CreatedAt,
	)
	return m, err
}

// SaveNotification inserts a new notification.
func (r *PgxNotificationRepository) SaveNotification(ctx context.Context, notification domain.Notification) error {
	m := toModelNotification(notification)

	query := `
		INSERT INTO notifications (` + notificationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.pool.Exec(ctx, query,
		m.ID,
		m.AccountID,
		m.Kind,
		m.Title,
		m.Message,
		m.LoanID,
		m.Read,
		m.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
			return fmt.Errorf("%w: notification with ID %s already exists", apperrors.ErrDuplicate, m.ID)
		}
		return fmt.Errorf("failed to save notification %s: %w", m.ID, err)
	}
	return nil
}

// ListNotifications retrieves notifications for an account, newest first.
func (r *PgxNotificationRepository) ListNotifications(ctx context.Context, accountID string, unreadOnly bool) ([]domain.Notification, error) {
	query := `
		SELECT ` + notificationColumns + `
		FROM notifications
		WHERE account_id = $1
	`
	if unreadOnly {
		query += " AND is_read = FALSE"
	}
	query += " ORDER BY created_at DESC;"

	rows, err := r.pool.Query(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to query notifications: %w", err)
	}
	defer rows.Close()

	notifications := make([]domain.Notification, 0)
	for rows.Next() {
		m, err := scanNotification(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan notification row: %w", err)
		}
		notifications = append(notifications, toDomainNotification(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating notification rows: %w", err)
	}
	return notifications, nil
}

// CountUnread returns the number of unread notifications for the account.
func (r *PgxNotificationRepository) CountUnread(ctx context.Context, accountID string) (int, error) {
	query := `SELECT COUNT(*) FROM notifications WHERE account_id = $1 AND is_read = FALSE;`
	var count int
	if err := r.pool.QueryRow(ctx, query, accountID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}
	return count, nil
}

// HasLoanDueNotification reports whether a loan-due notification already
// exists for the given loan, read or not.
func (r *PgxNotificationRepository) HasLoanDueNotification(ctx context.Context, accountID string, loanID string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM notifications
			WHERE account_id = $1 AND kind = $2 AND loan_id = $3
		);
	`
	var exists bool
	if err := r.pool.QueryRow(ctx, query, accountID, string(domain.NotificationLoanDue), loanID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check loan due notification: %w", err)
	}
	return exists, nil
}

// HasSuggestionNotification reports whether a suggestion notification with
// this exact message already exists.
func (r *PgxNotificationRepository) HasSuggestionNotification(ctx context.Context, accountID string, message string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM notifications
			WHERE account_id = $1 AND kind = $2 AND message = $3
		);
	`
	var exists bool
	if err := r.pool.QueryRow(ctx, query, accountID, string(domain.NotificationSuggestion), message).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check suggestion notification: %w", err)
	}
	return exists, nil
}

// MarkRead flags a notification as read. Already-read notifications count as
// matched rows, so re-marking is a no-op rather than an error.
func (r *PgxNotificationRepository) MarkRead(ctx context.Context, accountID string, notificationID string) error {
	query := `
		UPDATE notifications
		SET is_read = TRUE
		WHERE account_id = $1 AND notification_id = $2;
	`
	tag, err := r.pool.Exec(ctx, query, accountID, notificationID)
	if err != nil {
		return fmt.Errorf("failed to mark notification %s read: %w", notificationID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// MarkAllRead flags every unread notification for the account as read.
func (r *PgxNotificationRepository) MarkAllRead(ctx context.Context, accountID string) error {
	query := `
		UPDATE notifications
		SET is_read = TRUE
		WHERE account_id = $1 AND is_read = FALSE;
	`
	if _, err := r.pool.Exec(ctx, query, accountID); err != nil {
		return fmt.Errorf("failed to mark all notifications read: %w", err)
	}
	return nil
}
