// Package service defines the interfaces for all application services.
package service

import (
	"context"
	"time"

	"github.com/finpulse/finpulse/internal/model"
)

// Storage defines the contract for the persistence layer.
type Storage interface {
	// Transaction operations. Reads exclude soft-deleted rows; the
	// analytics engine must never see them.
	SaveTransactions(ctx context.Context, transactions []model.Transaction) error
	GetTransactionsByUser(ctx context.Context, userID string, start, end time.Time) ([]model.Transaction, error)
	SoftDeleteTransaction(ctx context.Context, id string) error

	// Goal operations.
	SaveGoal(ctx context.Context, goal *model.Goal) error
	GetGoals(ctx context.Context, userID string, includeCompleted bool) ([]model.Goal, error)

	// Notification operations. Notifications are append-only; the only
	// permitted mutation is the read flag.
	CreateNotification(ctx context.Context, notification *model.Notification) error
	GetNotifications(ctx context.Context, userID string, unreadOnly bool, limit int) ([]model.Notification, error)
	MarkNotificationRead(ctx context.Context, id int64, read bool) error

	// Analysis throttle state, one row per user per analysis kind.
	LastAnalysisRun(ctx context.Context, userID, kind string) (*time.Time, error)
	SetLastAnalysisRun(ctx context.Context, userID, kind string, at time.Time) error

	// Database management.
	Migrate(ctx context.Context) error
	Close() error
}

// RetryOptions configures retry behavior for operations.
type RetryOptions struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
}
