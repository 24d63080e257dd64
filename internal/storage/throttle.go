package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// LastAnalysisRun returns when an analysis kind last ran for a user, or
// nil if it has never run.
func (s *SQLiteStorage) LastAnalysisRun(ctx context.Context, userID, kind string) (*time.Time, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(userID, "userID"); err != nil {
		return nil, err
	}
	if err := validateString(kind, "kind"); err != nil {
		return nil, err
	}

	var lastRun time.Time
	err := s.db.QueryRowContext(ctx, `
		SELECT last_run_at FROM analysis_runs WHERE user_id = ? AND kind = ?
	`, userID, kind).Scan(&lastRun)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query analysis run: %w", err)
	}

	return &lastRun, nil
}

// SetLastAnalysisRun records that an analysis kind ran for a user.
func (s *SQLiteStorage) SetLastAnalysisRun(ctx context.Context, userID, kind string, at time.Time) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(userID, "userID"); err != nil {
		return err
	}
	if err := validateString(kind, "kind"); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO analysis_runs (user_id, kind, last_run_at)
		VALUES (?, ?, ?)
		ON CONFLICT(user_id, kind) DO UPDATE SET last_run_at = excluded.last_run_at
	`, userID, kind, at)
	if err != nil {
		return fmt.Errorf("failed to record analysis run: %w", err)
	}

	return nil
}
