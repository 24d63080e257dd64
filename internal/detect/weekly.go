package detect

import "github.com/finpulse/finpulse/internal/model"

// WeeklySummary aggregates a week of transactions for the summary
// notification.
type WeeklySummary struct {
	TopCategory       string  `json:"top_category,omitempty"`
	Income            float64 `json:"income"`
	Expenses          float64 `json:"expenses"`
	Net               float64 `json:"net"`
	TopCategoryAmount float64 `json:"top_category_amount,omitempty"`
	Count             int     `json:"count"`
}

// WeeklyTotals computes income/expense/net totals and the top spending
// category over the supplied window. A zero-transaction window is a
// valid result, not an error; the orchestrator still notifies on it.
func WeeklyTotals(txns []model.Transaction) WeeklySummary {
	summary := WeeklySummary{Count: len(txns)}

	byCategory := make(map[string]float64)
	for _, txn := range txns {
		switch txn.Type {
		case model.TypeIncome:
			summary.Income += txn.Amount
		case model.TypeExpense:
			summary.Expenses += txn.Amount
			byCategory[txn.Category] += txn.Amount
		}
	}
	summary.Net = summary.Income - summary.Expenses

	for _, category := range sortedKeys(byCategory) {
		if byCategory[category] > summary.TopCategoryAmount {
			summary.TopCategory = category
			summary.TopCategoryAmount = byCategory[category]
		}
	}

	return summary
}
