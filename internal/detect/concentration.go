package detect

import (
	"fmt"

	"github.com/finpulse/finpulse/internal/model"
)

// CategoryConcentration flags categories that dominate total expense
// volume (strictly over 20% of spend, unless excluded; rent and bills
// legitimately dominate) or transaction count (over 60 in the window,
// roughly one every day and a half across 90 days). The count branch
// ignores the exclusion list: unusually frequent purchases are worth
// surfacing even in an excluded category.
func CategoryConcentration(txns []model.Transaction, excluded map[string]struct{}) []model.Finding {
	sums := make(map[string]float64)
	counts := make(map[string]int)
	var total float64
	for _, txn := range txns {
		if !txn.IsExpense() {
			continue
		}
		sums[txn.Category] += txn.Amount
		counts[txn.Category]++
		total += txn.Amount
	}
	if total == 0 {
		return nil
	}

	var findings []model.Finding
	for _, category := range sortedKeys(sums) {
		share := sums[category] / total
		_, skip := excluded[category]

		overShare := share > concentrationShare && !skip
		overCount := counts[category] > concentrationMaxCount
		if !overShare && !overCount {
			continue
		}

		severity := model.SeverityMedium
		if share > concentrationHighShare {
			severity = model.SeverityHigh
		}

		insight := fmt.Sprintf("%s accounts for %.0f%% of your spending (%d transactions totaling %.2f).",
			category, share*100, counts[category], sums[category])
		if overCount && !overShare {
			insight = fmt.Sprintf("You made %d %s purchases this period — more than one every other day.",
				counts[category], category)
		}

		findings = append(findings, model.Finding{
			Type:           model.FindingOverspending,
			Insight:        insight,
			Recommendation: fmt.Sprintf("Take a look at your %s spending and decide if it matches your priorities.", category),
			Severity:       severity,
			Confidence:     0.8,
			Data: model.CategoryConcentrationData{
				Category:     category,
				Share:        share,
				Count:        counts[category],
				TotalSpent:   sums[category],
				TotalExpense: total,
			},
		})
	}

	return findings
}
