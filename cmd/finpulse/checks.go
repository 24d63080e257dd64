package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/finpulse/finpulse/internal/analysis"
	"github.com/finpulse/finpulse/internal/common"
	"github.com/finpulse/finpulse/internal/service"
)

func checksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "checks <user-id>",
		Short: "Run the scheduled notification checks for a user",
		Long: `Run the budget, goal, bill and outlier evaluators and write one
notification per finding. Throttled to once per 24 hours per user; a
throttled run is reported as skipped, not as an error.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			userID := args[0]

			store, err := initStorage(ctx)
			if err != nil {
				return fmt.Errorf("failed to initialize storage: %w", err)
			}
			defer func() { _ = store.Close() }()

			engine, err := initEngine(store)
			if err != nil {
				return err
			}

			var result analysis.CheckResult
			err = common.WithRetry(ctx, func() error {
				var runErr error
				result, runErr = engine.RunChecks(ctx, userID)
				return runErr
			}, service.RetryOptions{
				MaxAttempts:  3,
				InitialDelay: time.Second,
			})
			if err != nil {
				return err
			}

			if result.Skipped {
				slog.Info("Checks skipped, already ran within the last 24h", "user_id", userID)
				return nil
			}

			slog.Info("Checks complete",
				"user_id", userID,
				"notifications", len(result.Notifications),
				"failed_evaluators", result.FailedEvaluators)
			return nil
		},
	}
}
