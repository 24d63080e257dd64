package detect

import (
	"fmt"
	"time"

	"github.com/finpulse/finpulse/internal/model"
)

// Test fixtures shared across the detector tests.

var testNow = time.Date(2024, 6, 19, 12, 0, 0, 0, time.UTC) // a Wednesday

var txnSeq int

func testTxn(txnType model.TransactionType, description, category string, amount float64, at time.Time) model.Transaction {
	txnSeq++
	return model.Transaction{
		ID:          fmt.Sprintf("txn-%d", txnSeq),
		UserID:      "user-1",
		AccountID:   "acc-1",
		Type:        txnType,
		Description: description,
		Category:    category,
		Amount:      amount,
		CreatedAt:   at,
	}
}

func expenseAt(description, category string, amount float64, at time.Time) model.Transaction {
	return testTxn(model.TypeExpense, description, category, amount, at)
}

func incomeAt(description string, amount float64, at time.Time) model.Transaction {
	return testTxn(model.TypeIncome, description, "salary", amount, at)
}

func daysAgo(days int) time.Time {
	return testNow.AddDate(0, 0, -days)
}
