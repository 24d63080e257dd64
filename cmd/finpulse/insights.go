package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func insightsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "insights <user-id>",
		Short: "Analyze spending patterns for a user",
		Long: `Run the behavior detectors over the trailing 90 days of a user's
transactions and print the findings as JSON. With fewer than 10
transactions the result carries a "not enough data" message instead.

This command writes nothing and can be run as often as you like.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return fmt.Errorf("failed to initialize storage: %w", err)
			}
			defer func() { _ = store.Close() }()

			engine, err := initEngine(store)
			if err != nil {
				return err
			}

			result, err := engine.AnalyzePatterns(ctx, args[0])
			if err != nil {
				return err
			}

			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			return encoder.Encode(result)
		},
	}
}
