package storage

import (
	"context"
	"fmt"
	"strings"

	"github.com/finpulse/finpulse/internal/model"
)

// validateContext checks that the context is valid and not cancelled.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return fmt.Errorf("context cannot be nil")
	}
	select {
	case <-ctx.Done():
		return fmt.Errorf("context cancelled: %w", ctx.Err())
	default:
		return nil
	}
}

// validateString checks that a string field is non-empty.
func validateString(value, fieldName string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%s cannot be empty", fieldName)
	}
	return nil
}

// validateTransaction checks that a transaction has the required fields.
func validateTransaction(txn *model.Transaction) error {
	if txn == nil {
		return fmt.Errorf("transaction cannot be nil")
	}
	if err := validateString(txn.ID, "transaction ID"); err != nil {
		return err
	}
	if err := validateString(txn.UserID, "transaction user ID"); err != nil {
		return err
	}
	if txn.Type != model.TypeIncome && txn.Type != model.TypeExpense {
		return fmt.Errorf("transaction type must be income or expense, got %q", txn.Type)
	}
	if txn.Amount < 0 {
		return fmt.Errorf("transaction amount cannot be negative")
	}
	if txn.CreatedAt.IsZero() {
		return fmt.Errorf("transaction date cannot be zero")
	}
	return nil
}

// validateGoal checks that a goal has the required fields.
func validateGoal(goal *model.Goal) error {
	if goal == nil {
		return fmt.Errorf("goal cannot be nil")
	}
	if err := validateString(goal.ID, "goal ID"); err != nil {
		return err
	}
	if err := validateString(goal.UserID, "goal user ID"); err != nil {
		return err
	}
	if err := validateString(goal.Title, "goal title"); err != nil {
		return err
	}
	if goal.TargetAmount <= 0 {
		return fmt.Errorf("goal target amount must be positive")
	}
	return nil
}

// validateNotification checks that a notification has the required fields.
func validateNotification(n *model.Notification) error {
	if n == nil {
		return fmt.Errorf("notification cannot be nil")
	}
	if err := validateString(n.UserID, "notification user ID"); err != nil {
		return err
	}
	if err := validateString(n.Title, "notification title"); err != nil {
		return err
	}
	switch n.Type {
	case model.NotificationInfo, model.NotificationWarning, model.NotificationSuccess, model.NotificationError:
	default:
		return fmt.Errorf("invalid notification type %q", n.Type)
	}
	return nil
}
