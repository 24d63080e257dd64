package detect

import (
	"fmt"
	"time"

	"github.com/finpulse/finpulse/internal/model"
)

// BudgetStatus compares month-to-date spend per category against the
// configured budget table. Spend strictly over budget is an exceeded
// finding; spend within 20% of the cap is a warning. Both comparisons
// are strict, so landing exactly on the cap produces nothing.
// Categories absent from the table are skipped entirely; there is no
// default cap.
func BudgetStatus(txns []model.Transaction, budgets map[string]float64, now time.Time) []model.Finding {
	start := monthStart(now)

	spent := make(map[string]float64)
	for _, txn := range txns {
		if !txn.IsExpense() || txn.CreatedAt.Before(start) || txn.CreatedAt.After(now) {
			continue
		}
		spent[txn.Category] += txn.Amount
	}

	var findings []model.Finding
	for _, category := range sortedKeys(spent) {
		budget, ok := budgets[category]
		if !ok || budget <= 0 {
			continue
		}

		percentOver := (spent[category] - budget) / budget * 100
		data := model.BudgetData{
			Category:    category,
			Spent:       spent[category],
			Budget:      budget,
			PercentOver: percentOver,
		}

		switch {
		case percentOver > 0:
			findings = append(findings, model.Finding{
				Type: model.FindingBudgetExceeded,
				Insight: fmt.Sprintf("You've spent %.2f of your %.2f %s budget this month — %.0f%% over.",
					spent[category], budget, category, percentOver),
				Recommendation: fmt.Sprintf("Consider pausing %s spending for the rest of the month.", category),
				Severity:       model.SeverityHigh,
				Confidence:     1,
				Data:           data,
			})
		case percentOver > -20 && percentOver < 0:
			findings = append(findings, model.Finding{
				Type: model.FindingBudgetWarning,
				Insight: fmt.Sprintf("You've used %.0f%% of your %s budget (%.2f of %.2f) with the month still running.",
					100+percentOver, category, spent[category], budget),
				Severity:   model.SeverityMedium,
				Confidence: 1,
				Data:       data,
			})
		}
	}

	return findings
}
