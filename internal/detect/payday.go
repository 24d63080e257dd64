package detect

import (
	"fmt"

	"github.com/finpulse/finpulse/internal/model"
)

// PaydaySplurge looks for a burst of spending in the 48 hours after a
// large income event. Only the first qualifying payday in the window is
// reported.
func PaydaySplurge(txns []model.Transaction) []model.Finding {
	sorted := make([]model.Transaction, len(txns))
	copy(sorted, txns)
	byDateAsc(sorted)

	for _, income := range sorted {
		if !income.IsIncome() || income.Amount <= paydayIncomeFloor {
			continue
		}

		windowEnd := income.CreatedAt.Add(paydayWindow)
		var spent float64
		for _, txn := range sorted {
			if !txn.IsExpense() {
				continue
			}
			// Strictly inside (income, income+48h).
			if txn.CreatedAt.After(income.CreatedAt) && txn.CreatedAt.Before(windowEnd) {
				spent += txn.Amount
			}
		}

		if spent <= income.Amount*paydaySpendShare {
			continue
		}

		pct := spent / income.Amount * 100
		return []model.Finding{{
			Type: model.FindingOverspending,
			Insight: fmt.Sprintf("You spent %.2f (%.0f%% of a %.2f payday) within 48 hours of getting paid.",
				spent, pct, income.Amount),
			Recommendation: "Moving a fixed amount to savings on payday makes splurges harder.",
			Severity:       model.SeverityMedium,
			Confidence:     0.75,
			Data: model.PaydaySplurgeData{
				IncomeDate:      income.CreatedAt,
				IncomeAmount:    income.Amount,
				SpentWithin48h:  spent,
				PercentOfIncome: pct,
			},
		}}
	}

	return nil
}
