package analysis

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/finpulse/finpulse/internal/detect"
	"github.com/finpulse/finpulse/internal/model"
)

const (
	// insightWindowDays is the trailing window every analysis path reads.
	insightWindowDays = 90
	// minInsightTransactions is the floor below which the on-demand path
	// reports "not enough data" instead of running detectors.
	minInsightTransactions = 10
	// checkThrottle is the minimum gap between scheduled notification
	// runs for one user.
	checkThrottle = 24 * time.Hour
	// weeklyWindowDays is the window the weekly summary aggregates.
	weeklyWindowDays = 7

	// kindChecks keys the throttle state for the scheduled run path.
	kindChecks = "notification_checks"
)

// Config carries the deployment-level tuning for the engine.
type Config struct {
	// Now returns the current time; tests inject a fixed clock.
	Now func() time.Time
	// Budgets maps category to monthly spending cap.
	Budgets map[string]float64
	// ExcludedCategories are skipped by the concentration share check.
	ExcludedCategories []string
}

// Engine runs detectors and evaluators over a user's data.
type Engine struct {
	deps     Deps
	now      func() time.Time
	budgets  map[string]float64
	excluded map[string]struct{}
}

// NewEngine creates an engine. All Deps fields must be set.
func NewEngine(deps Deps, cfg Config) (*Engine, error) {
	if err := deps.Validate(); err != nil {
		return nil, fmt.Errorf("invalid engine dependencies: %w", err)
	}

	now := cfg.Now
	if now == nil {
		now = func() time.Time { return time.Now().UTC() }
	}

	excluded := make(map[string]struct{}, len(cfg.ExcludedCategories))
	for _, category := range cfg.ExcludedCategories {
		excluded[category] = struct{}{}
	}

	return &Engine{
		deps:     deps,
		now:      now,
		budgets:  cfg.Budgets,
		excluded: excluded,
	}, nil
}

// InsightsResult is the response of the on-demand analysis path.
type InsightsResult struct {
	Message  string          `json:"message,omitempty"`
	Patterns []model.Finding `json:"patterns"`
}

// AnalyzePatterns runs the four behavior detectors over the trailing 90
// days. With fewer than 10 transactions it returns an empty result with
// a "not enough data" message; that is a valid response, not an error.
// This path writes nothing and is not throttled.
func (e *Engine) AnalyzePatterns(ctx context.Context, userID string) (InsightsResult, error) {
	now := e.now()
	txns, err := e.deps.Transactions.GetTransactionsByUser(ctx, userID, now.AddDate(0, 0, -insightWindowDays), now)
	if err != nil {
		return InsightsResult{}, fmt.Errorf("failed to load transactions: %w", err)
	}

	if len(txns) < minInsightTransactions {
		return InsightsResult{
			Message:  "not enough data",
			Patterns: []model.Finding{},
		}, nil
	}

	patterns := make([]model.Finding, 0, 4)
	patterns = append(patterns, detect.RecurringPayments(txns)...)
	patterns = append(patterns, detect.WeekendSpike(txns)...)
	patterns = append(patterns, detect.PaydaySplurge(txns)...)
	patterns = append(patterns, detect.CategoryConcentration(txns, e.excluded)...)

	return InsightsResult{Patterns: patterns}, nil
}

// CheckResult reports the outcome of a scheduled notification run.
type CheckResult struct {
	// Skipped is set when the 24h throttle suppressed the run.
	Skipped bool `json:"skipped"`
	// FailedEvaluators names evaluators that errored; their siblings
	// still ran.
	FailedEvaluators []string             `json:"failed_evaluators,omitempty"`
	Notifications    []model.Notification `json:"notifications"`
}

type evaluatorOutput struct {
	name     string
	findings []model.Finding
	err      error
}

// RunChecks is the scheduled notification path. It runs the budget,
// goal, bill and outlier evaluators concurrently and writes one
// notification per finding.
//
// The path is throttled to once per rolling 24h per user. The throttle
// check and update are deliberately not atomic: two concurrent triggers
// near the boundary may both run, which is an accepted race. The
// throttle timestamp is only advanced after all notifications are
// written, so a failed run stays retryable.
func (e *Engine) RunChecks(ctx context.Context, userID string) (CheckResult, error) {
	now := e.now()

	lastRun, err := e.deps.Runs.LastAnalysisRun(ctx, userID, kindChecks)
	if err != nil {
		return CheckResult{}, fmt.Errorf("failed to read throttle state: %w", err)
	}
	if lastRun != nil && now.Sub(*lastRun) < checkThrottle {
		slog.Debug("Skipping notification checks, throttled",
			"user_id", userID,
			"last_run", *lastRun)
		return CheckResult{Skipped: true}, nil
	}

	txns, err := e.deps.Transactions.GetTransactionsByUser(ctx, userID, now.AddDate(0, 0, -insightWindowDays), now)
	if err != nil {
		return CheckResult{}, fmt.Errorf("failed to load transactions: %w", err)
	}

	evaluators := []struct {
		name string
		run  func() ([]model.Finding, error)
	}{
		{"budget", func() ([]model.Finding, error) {
			return detect.BudgetStatus(txns, e.budgets, now), nil
		}},
		{"goal", func() ([]model.Finding, error) {
			goals, goalErr := e.deps.Goals.GetGoals(ctx, userID, false)
			if goalErr != nil {
				return nil, goalErr
			}
			return detect.GoalProgress(goals, now), nil
		}},
		{"bill", func() ([]model.Finding, error) {
			return detect.UpcomingBills(txns, now), nil
		}},
		{"outlier", func() ([]model.Finding, error) {
			return detect.UnusualSpending(txns, now), nil
		}},
	}

	// Evaluators have no data dependency on each other; run them all and
	// join before touching shared state. One failing evaluator must not
	// take its siblings down.
	outputs := make([]evaluatorOutput, len(evaluators))
	var wg sync.WaitGroup
	for i, evaluator := range evaluators {
		i, evaluator := i, evaluator
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					outputs[i] = evaluatorOutput{name: evaluator.name, err: fmt.Errorf("evaluator panicked: %v", r)}
				}
			}()
			findings, runErr := evaluator.run()
			outputs[i] = evaluatorOutput{name: evaluator.name, findings: findings, err: runErr}
		}()
	}
	wg.Wait()

	result := CheckResult{Notifications: []model.Notification{}}
	for _, output := range outputs {
		if output.err != nil {
			slog.Error("Evaluator failed",
				"evaluator", output.name,
				"user_id", userID,
				"error", output.err)
			result.FailedEvaluators = append(result.FailedEvaluators, output.name)
			continue
		}

		for _, finding := range output.findings {
			notification, convErr := notificationFromFinding(userID, finding, now)
			if convErr != nil {
				return CheckResult{}, fmt.Errorf("failed to build notification: %w", convErr)
			}
			if writeErr := e.deps.Notifications.CreateNotification(ctx, &notification); writeErr != nil {
				return CheckResult{}, fmt.Errorf("failed to write notification: %w", writeErr)
			}
			result.Notifications = append(result.Notifications, notification)
		}
	}

	if err := e.deps.Runs.SetLastAnalysisRun(ctx, userID, kindChecks, now); err != nil {
		return CheckResult{}, fmt.Errorf("failed to update throttle state: %w", err)
	}

	slog.Info("Notification checks complete",
		"user_id", userID,
		"notifications", len(result.Notifications),
		"failed_evaluators", len(result.FailedEvaluators))

	return result, nil
}

// WeeklySummary aggregates the trailing 7 days and writes exactly one
// informational notification, even when there were no transactions.
// It is not throttled and may be re-triggered freely.
func (e *Engine) WeeklySummary(ctx context.Context, userID string) (*model.Notification, error) {
	now := e.now()
	txns, err := e.deps.Transactions.GetTransactionsByUser(ctx, userID, now.AddDate(0, 0, -weeklyWindowDays), now)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	summary := detect.WeeklyTotals(txns)
	notification, err := weeklyNotification(userID, summary, now)
	if err != nil {
		return nil, err
	}

	if err := e.deps.Notifications.CreateNotification(ctx, &notification); err != nil {
		return nil, fmt.Errorf("failed to write notification: %w", err)
	}

	return &notification, nil
}
