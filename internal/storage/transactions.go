package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/finpulse/finpulse/internal/common"
	"github.com/finpulse/finpulse/internal/model"
)

// SaveTransactions saves multiple transactions to the database. Rows
// whose hash already exists are silently skipped, so re-importing the
// same statement is safe.
func (s *SQLiteStorage) SaveTransactions(ctx context.Context, transactions []model.Transaction) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	for i := range transactions {
		if err := validateTransaction(&transactions[i]); err != nil {
			return fmt.Errorf("transaction %d: %w", i, err)
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT OR IGNORE INTO transactions (
			id, user_id, account_id, hash, type, category,
			description, amount, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, txn := range transactions {
		if txn.Hash == "" {
			txn.Hash = txn.GenerateHash()
		}

		if _, err := stmt.ExecContext(ctx,
			txn.ID,
			txn.UserID,
			txn.AccountID,
			txn.Hash,
			string(txn.Type),
			txn.Category,
			txn.Description,
			txn.Amount,
			txn.CreatedAt,
		); err != nil {
			return fmt.Errorf("failed to save transaction %s: %w", txn.ID, err)
		}
	}

	return tx.Commit()
}

// GetTransactionsByUser returns a user's transactions in the half-open
// window [start, end), oldest first. Soft-deleted rows are excluded.
func (s *SQLiteStorage) GetTransactionsByUser(ctx context.Context, userID string, start, end time.Time) ([]model.Transaction, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(userID, "userID"); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, account_id, hash, type, category,
		       description, amount, created_at, deleted_at
		FROM transactions
		WHERE user_id = ? AND created_at >= ? AND created_at < ?
		  AND deleted_at IS NULL
		ORDER BY created_at ASC
	`, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer func() { _ = rows.Close() }()

	return scanTransactions(rows)
}

// SoftDeleteTransaction marks a transaction as deleted without removing
// the row. Already-deleted rows are left untouched.
func (s *SQLiteStorage) SoftDeleteTransaction(ctx context.Context, id string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(id, "id"); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `
		UPDATE transactions
		SET deleted_at = CURRENT_TIMESTAMP
		WHERE id = ? AND deleted_at IS NULL
	`, id)
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("transaction %s: %w", id, common.ErrNotFound)
	}

	return nil
}

func scanTransactions(rows *sql.Rows) ([]model.Transaction, error) {
	var transactions []model.Transaction
	for rows.Next() {
		var txn model.Transaction
		var txnType string
		var category, accountID sql.NullString
		var deletedAt sql.NullTime

		if err := rows.Scan(
			&txn.ID,
			&txn.UserID,
			&accountID,
			&txn.Hash,
			&txnType,
			&category,
			&txn.Description,
			&txn.Amount,
			&txn.CreatedAt,
			&deletedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}

		txn.Type = model.TransactionType(txnType)
		txn.AccountID = accountID.String
		txn.Category = category.String
		if deletedAt.Valid {
			t := deletedAt.Time
			txn.DeletedAt = &t
		}

		transactions = append(transactions, txn)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate transactions: %w", err)
	}
	return transactions, nil
}
