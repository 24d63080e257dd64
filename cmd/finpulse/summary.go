package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func summaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary <user-id>",
		Short: "Write the weekly summary notification for a user",
		Long: `Aggregate the trailing 7 days into income, expense and net totals
and write one informational notification. Not throttled; every
invocation writes a notification, even with no transaction data.`,
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

			notification, err := engine.WeeklySummary(ctx, args[0])
			if err != nil {
				return err
			}

			fmt.Println(notification.Message)
			return nil
		},
	}
}
