// Package analysis orchestrates the behavior detectors and evaluators
// over stored transaction data and turns their findings into API
// responses or notifications.
package analysis

import (
	"context"
	"fmt"
	"time"

	"github.com/finpulse/finpulse/internal/model"
)

// TransactionStore provides read access to a user's transactions.
type TransactionStore interface {
	GetTransactionsByUser(ctx context.Context, userID string, start, end time.Time) ([]model.Transaction, error)
}

// GoalStore provides read access to a user's savings goals.
type GoalStore interface {
	GetGoals(ctx context.Context, userID string, includeCompleted bool) ([]model.Goal, error)
}

// NotificationStore is the append-only sink for generated notifications.
type NotificationStore interface {
	CreateNotification(ctx context.Context, notification *model.Notification) error
}

// RunStore tracks when throttled analysis kinds last ran per user.
type RunStore interface {
	LastAnalysisRun(ctx context.Context, userID, kind string) (*time.Time, error)
	SetLastAnalysisRun(ctx context.Context, userID, kind string, at time.Time) error
}

// Deps bundles the stores the engine needs. All fields are required.
type Deps struct {
	Transactions  TransactionStore
	Goals         GoalStore
	Notifications NotificationStore
	Runs          RunStore
}

// Validate checks that all dependencies are present.
func (d Deps) Validate() error {
	if d.Transactions == nil {
		return fmt.Errorf("transaction store is required")
	}
	if d.Goals == nil {
		return fmt.Errorf("goal store is required")
	}
	if d.Notifications == nil {
		return fmt.Errorf("notification store is required")
	}
	if d.Runs == nil {
		return fmt.Errorf("run store is required")
	}
	return nil
}
