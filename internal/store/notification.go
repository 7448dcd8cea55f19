package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const notificationColumns = `id, user_id, title, message, type, category, related_id, read_at, created_at`

// CreateNotificationParams represents parameters for creating an in-app notification
type CreateNotificationParams struct {
	UserID    uuid.UUID
	Title     string
	Message   string
	Type      string
	Category  string
	RelatedID *uuid.UUID
}

const sqlCreateNotification = `
INSERT INTO user_notifications (user_id, title, message, type, category, related_id)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + notificationColumns

// CreateNotification creates a notification for a user
func (s *Store) CreateNotification(ctx context.Context, params CreateNotificationParams) (Notification, error) {
	return createNotification(ctx, s.db, params)
}

func createNotification(ctx context.Context, q sqlx.QueryerContext, params CreateNotificationParams) (Notification, error) {
	var n Notification
	err := sqlx.GetContext(ctx, q, &n, sqlCreateNotification,
		params.UserID,
		params.Title,
		params.Message,
		params.Type,
		params.Category,
		params.RelatedID)
	if err != nil {
		return Notification{}, fmt.Errorf("failed to create notification: %w", err)
	}
	return n, nil
}

const sqlListNotifications = `
SELECT ` + notificationColumns + `
FROM user_notifications
WHERE user_id = $1 AND ($2 = FALSE OR read_at IS NULL)
ORDER BY created_at DESC
LIMIT $3 OFFSET $4
`

// ListNotifications lists a user's notifications, newest first
func (s *Store) ListNotifications(ctx context.Context, userID uuid.UUID, unreadOnly bool, limit, offset int) ([]Notification, error) {
	notifications := []Notification{}
	err := s.db.SelectContext(ctx, &notifications, sqlListNotifications, userID, unreadOnly, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	return notifications, nil
}

const sqlMarkNotificationRead = `
UPDATE user_notifications
SET read_at = COALESCE(read_at, CURRENT_TIMESTAMP)
WHERE id = $1 AND user_id = $2
RETURNING ` + notificationColumns

// MarkNotificationRead marks a notification as read for its owner
func (s *Store) MarkNotificationRead(ctx context.Context, notificationID, userID uuid.UUID) (Notification, error) {
	var n Notification
	err := s.db.GetContext(ctx, &n, sqlMarkNotificationRead, notificationID, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Notification{}, ErrNotFound
		}
		return Notification{}, fmt.Errorf("failed to mark notification read: %w", err)
	}
	return n, nil
}

const sqlInsertTaskReminder = `
INSERT INTO task_reminders (task_id, type)
VALUES ($1, $2)
ON CONFLICT (task_id, type) DO NOTHING
`

// ErrReminderAlreadySent is returned when the reminder was recorded by an earlier run
var ErrReminderAlreadySent = errors.New("reminder already sent")

// CreateReminderNotification records a task reminder and its notification in one transaction
func (s *Store) CreateReminderNotification(ctx context.Context, taskID uuid.UUID, reminderType string, params CreateNotificationParams) (Notification, error) {
	var n Notification
	err := s.withTx(ctx, func(tx *sqlx.Tx) error {
		res, err := tx.ExecContext(ctx, sqlInsertTaskReminder, taskID, reminderType)
		if err != nil {
			return fmt.Errorf("failed to insert task reminder: %w", err)
		}
		rows, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to get rows affected: %w", err)
		}
		if rows == 0 {
			return ErrReminderAlreadySent
		}
		n, err = createNotification(ctx, tx, params)
		return err
	})
	if err != nil {
		return Notification{}, err
	}
	return n, nil
}
