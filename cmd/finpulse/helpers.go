package main

import (
	"context"
	"fmt"

	"github.com/spf13/viper"

	"github.com/finpulse/finpulse/internal/analysis"
	"github.com/finpulse/finpulse/internal/config"
	"github.com/finpulse/finpulse/internal/service"
	"github.com/finpulse/finpulse/internal/storage"
)

// initStorage initializes the storage service with proper path expansion.
func initStorage(ctx context.Context) (service.Storage, error) {
	// Get database path from config
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = "$HOME/.local/share/finpulse/finpulse.db"
	}

	// Expand tilde and environment variables
	dbPath = config.ExpandPath(dbPath)

	// Initialize storage
	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, err
	}

	// Run migrations
	if err := store.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// initEngine builds the analytics engine over the given storage using
// the configured budgets and exclusions.
func initEngine(store service.Storage) (*analysis.Engine, error) {
	cfg, err := config.LoadAnalysis()
	if err != nil {
		return nil, err
	}

	return analysis.NewEngine(analysis.Deps{
		Transactions:  store,
		Goals:         store,
		Notifications: store,
		Runs:          store,
	}, analysis.Config{
		Budgets:            cfg.Budgets,
		ExcludedCategories: cfg.ExcludedCategories,
	})
}
