package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/finpulse/finpulse/internal/common"
	"github.com/finpulse/finpulse/internal/model"
)

// CreateNotification appends a notification and fills in its assigned ID
// and creation time.
func (s *SQLiteStorage) CreateNotification(ctx context.Context, notification *model.Notification) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateNotification(notification); err != nil {
		return err
	}

	createdAt := orNow(notification.CreatedAt)
	result, err := s.db.ExecContext(ctx, `
		INSERT INTO notifications (user_id, type, title, message, data, read, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, notification.UserID, string(notification.Type), notification.Title,
		notification.Message, notification.Data, notification.Read, createdAt)
	if err != nil {
		return fmt.Errorf("failed to create notification: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get notification ID: %w", err)
	}

	notification.ID = id
	notification.CreatedAt = createdAt
	return nil
}

// GetNotifications returns a user's notifications, newest first. A limit
// of 0 or less means no limit.
func (s *SQLiteStorage) GetNotifications(ctx context.Context, userID string, unreadOnly bool, limit int) ([]model.Notification, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(userID, "userID"); err != nil {
		return nil, err
	}

	query := `
		SELECT id, user_id, type, title, message, data, read, created_at
		FROM notifications
		WHERE user_id = ?
	`
	if unreadOnly {
		query += ` AND read = 0`
	}
	query += ` ORDER BY created_at DESC, id DESC`

	args := []any{userID}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query notifications: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var notifications []model.Notification
	for rows.Next() {
		var n model.Notification
		var nType string
		var data sql.NullString

		if err := rows.Scan(
			&n.ID,
			&n.UserID,
			&nType,
			&n.Title,
			&n.Message,
			&data,
			&n.Read,
			&n.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan notification: %w", err)
		}

		n.Type = model.NotificationType(nType)
		n.Data = data.String
		notifications = append(notifications, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate notifications: %w", err)
	}

	return notifications, nil
}

// MarkNotificationRead sets the read flag on a notification.
func (s *SQLiteStorage) MarkNotificationRead(ctx context.Context, id int64, read bool) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if id <= 0 {
		return fmt.Errorf("notification ID must be positive")
	}

	result, err := s.db.ExecContext(ctx, `
		UPDATE notifications SET read = ? WHERE id = ?
	`, read, id)
	if err != nil {
		return fmt.Errorf("failed to update notification: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("notification %d: %w", id, common.ErrNotFound)
	}

	return nil
}
