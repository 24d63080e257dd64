package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/finpulse/finpulse/internal/model"
	"github.com/finpulse/finpulse/internal/ofx"
)

func init() {
	importOFXCmd := &cobra.Command{
		Use:   "import-ofx --user <user-id> [files...]",
		Short: "Import transactions from OFX/QFX files",
		Long: `Import financial transactions from OFX or QFX (Quicken) files
exported from your bank. Transactions already imported (matched by
hash) are skipped, so re-importing overlapping statements is safe.

Examples:
  # Import single file
  finpulse import-ofx --user alice ~/Downloads/chase_jan_2024.qfx

  # Import all QFX files in a directory
  finpulse import-ofx --user alice ~/Downloads/*.qfx`,
		Args: cobra.MinimumNArgs(1),
		RunE: runImportOFX,
	}

	importOFXCmd.Flags().StringP("user", "u", "", "user to import transactions for (required)")
	importOFXCmd.Flags().BoolP("dry-run", "d", false, "Preview import without saving")
	_ = importOFXCmd.MarkFlagRequired("user")

	rootCmd.AddCommand(importOFXCmd)
}

func runImportOFX(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	userID, _ := cmd.Flags().GetString("user")
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	// Expand globs and collect all files
	var allFiles []string
	for _, pattern := range args {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return fmt.Errorf("invalid pattern %s: %w", pattern, err)
		}
		if len(matches) == 0 {
			// If no glob matches, check if it's a direct file
			if _, err := os.Stat(pattern); err == nil {
				allFiles = append(allFiles, pattern)
			} else {
				slog.Warn("No files found matching pattern", "pattern", pattern)
			}
		} else {
			allFiles = append(allFiles, matches...)
		}
	}

	if len(allFiles) == 0 {
		return fmt.Errorf("no files found to import")
	}

	slog.Info("Importing OFX files",
		"user_id", userID,
		"file_count", len(allFiles),
		"dry_run", dryRun)

	parser := ofx.NewParser()
	var allTransactions []model.Transaction
	seen := make(map[string]bool) // Cross-file deduplication by hash

	for _, filePath := range allFiles {
		f, err := os.Open(filePath)
		if err != nil {
			slog.Error("Failed to open file", "file", filePath, "error", err)
			continue
		}

		txns, err := parser.ParseFile(f, userID)
		_ = f.Close()
		if err != nil {
			slog.Error("Failed to parse file", "file", filepath.Base(filePath), "error", err)
			continue
		}

		kept := 0
		for _, txn := range txns {
			if seen[txn.Hash] {
				continue
			}
			seen[txn.Hash] = true
			allTransactions = append(allTransactions, txn)
			kept++
		}

		slog.Info("Parsed file",
			"file", filepath.Base(filePath),
			"transactions", len(txns),
			"new", kept)
	}

	if len(allTransactions) == 0 {
		return fmt.Errorf("no transactions found in any file")
	}

	if dryRun {
		fmt.Printf("Dry run: would import %d transactions for %s\n", len(allTransactions), userID)
		return nil
	}

	store, err := initStorage(ctx)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	defer func() { _ = store.Close() }()

	if err := store.SaveTransactions(ctx, allTransactions); err != nil {
		return fmt.Errorf("failed to save transactions: %w", err)
	}

	fmt.Printf("Imported %d transactions for %s\n", len(allTransactions), userID)
	return nil
}
