// Package model defines the core data structures for the finpulse engine.
package model

import (
	"crypto/sha256"
	"fmt"
	"time"
)

// TransactionType classifies a transaction as money in or money out.
type TransactionType string

const (
	// TypeIncome represents money flowing into the user's accounts.
	TypeIncome TransactionType = "income"
	// TypeExpense represents money flowing out of the user's accounts.
	TypeExpense TransactionType = "expense"
)

// Transaction represents a single financial transaction. The analytics
// engine treats transactions as an immutable snapshot; it never mutates
// them, and soft-deleted rows (DeletedAt set) must never reach it.
type Transaction struct {
	CreatedAt   time.Time
	DeletedAt   *time.Time
	ID          string
	UserID      string
	AccountID   string
	Hash        string
	Type        TransactionType
	Category    string
	Description string // Merchant or free-form description
	Amount      float64
}

// GenerateHash creates a unique hash for duplicate detection on import.
func (t *Transaction) GenerateHash() string {
	data := fmt.Sprintf("%s:%.2f:%s:%s",
		t.CreatedAt.Format("2006-01-02"),
		t.Amount,
		t.Description,
		t.AccountID)
	hash := sha256.Sum256([]byte(data))
	return fmt.Sprintf("%x", hash)
}

// IsExpense reports whether the transaction is an expense.
func (t *Transaction) IsExpense() bool {
	return t.Type == TypeExpense
}

// IsIncome reports whether the transaction is income.
func (t *Transaction) IsIncome() bool {
	return t.Type == TypeIncome
}
