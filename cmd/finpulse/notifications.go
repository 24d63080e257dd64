package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func notificationsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notifications",
		Short: "List and manage notifications",
	}

	cmd.AddCommand(notificationsListCmd())
	cmd.AddCommand(notificationsReadCmd())

	return cmd
}

func notificationsListCmd() *cobra.Command {
	listCmd := &cobra.Command{
		Use:   "list <user-id>",
		Short: "List a user's notifications, newest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			unreadOnly, _ := cmd.Flags().GetBool("unread")
			limit, _ := cmd.Flags().GetInt("limit")

			store, err := initStorage(ctx)
			if err != nil {
				return fmt.Errorf("failed to initialize storage: %w", err)
			}
			defer func() { _ = store.Close() }()

			notifications, err := store.GetNotifications(ctx, args[0], unreadOnly, limit)
			if err != nil {
				return err
			}

			if len(notifications) == 0 {
				fmt.Println("No notifications.")
				return nil
			}

			for _, n := range notifications {
				marker := " "
				if !n.Read {
					marker = "*"
				}
				fmt.Printf("%s %6d  %-8s  %-18s  %s\n",
					marker, n.ID, n.Type, n.Title, n.Message)
			}
			return nil
		},
	}

	listCmd.Flags().Bool("unread", false, "only show unread notifications")
	listCmd.Flags().Int("limit", 20, "maximum notifications to show (0 for all)")

	return listCmd
}

func notificationsReadCmd() *cobra.Command {
	readCmd := &cobra.Command{
		Use:   "read <notification-id>",
		Short: "Mark a notification as read",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			unread, _ := cmd.Flags().GetBool("unread")

			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil || id <= 0 {
				return fmt.Errorf("invalid notification id %q", args[0])
			}

			store, err := initStorage(ctx)
			if err != nil {
				return fmt.Errorf("failed to initialize storage: %w", err)
			}
			defer func() { _ = store.Close() }()

			return store.MarkNotificationRead(ctx, id, !unread)
		},
	}

	readCmd.Flags().Bool("unread", false, "mark the notification as unread instead")

	return readCmd
}
