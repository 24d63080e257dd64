package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/finpulse/finpulse/internal/model"
)

// SaveGoal inserts or updates a savings goal.
func (s *SQLiteStorage) SaveGoal(ctx context.Context, goal *model.Goal) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateGoal(goal); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO goals (id, user_id, title, target_amount, current_amount, deadline, is_completed, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			target_amount = excluded.target_amount,
			current_amount = excluded.current_amount,
			deadline = excluded.deadline,
			is_completed = excluded.is_completed
	`, goal.ID, goal.UserID, goal.Title, goal.TargetAmount, goal.CurrentAmount,
		goal.Deadline, goal.IsCompleted, orNow(goal.CreatedAt))
	if err != nil {
		return fmt.Errorf("failed to save goal: %w", err)
	}

	return nil
}

// GetGoals returns a user's goals, oldest first. Completed goals are
// excluded unless includeCompleted is set.
func (s *SQLiteStorage) GetGoals(ctx context.Context, userID string, includeCompleted bool) ([]model.Goal, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(userID, "userID"); err != nil {
		return nil, err
	}

	query := `
		SELECT id, user_id, title, target_amount, current_amount, deadline, is_completed, created_at
		FROM goals
		WHERE user_id = ?
	`
	if !includeCompleted {
		query += ` AND is_completed = 0`
	}
	query += ` ORDER BY created_at ASC`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query goals: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var goals []model.Goal
	for rows.Next() {
		var goal model.Goal
		var deadline sql.NullTime

		if err := rows.Scan(
			&goal.ID,
			&goal.UserID,
			&goal.Title,
			&goal.TargetAmount,
			&goal.CurrentAmount,
			&deadline,
			&goal.IsCompleted,
			&goal.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan goal: %w", err)
		}

		if deadline.Valid {
			t := deadline.Time
			goal.Deadline = &t
		}

		goals = append(goals, goal)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate goals: %w", err)
	}

	return goals, nil
}

func orNow(t time.Time) time.Time {
	if t.IsZero() {
		return time.Now().UTC()
	}
	return t
}
