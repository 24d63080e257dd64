package detect

import (
	"fmt"

	"github.com/finpulse/finpulse/internal/model"
)

// RecurringPayments finds merchants charged on a roughly monthly cycle.
// A merchant qualifies only when every consecutive interval between its
// charges falls inside the [25, 35] day tolerance band; a single
// interval outside the band disqualifies the whole group. Two
// occurrences with one qualifying interval are enough to report.
func RecurringPayments(txns []model.Transaction) []model.Finding {
	groups := groupByDescription(txns)

	var findings []model.Finding
	for _, merchant := range sortedKeys(groups) {
		group := groups[merchant]
		if len(group) < recurringMinOccurrences {
			continue
		}
		byDateAsc(group)

		regular := true
		var totalInterval, totalAmount float64
		for i := 1; i < len(group); i++ {
			gap := daysApart(group[i-1].CreatedAt, group[i].CreatedAt)
			if gap < recurringMinIntervalDays || gap > recurringMaxIntervalDays {
				regular = false
				break
			}
			totalInterval += gap
		}
		if !regular {
			continue
		}
		for _, txn := range group {
			totalAmount += txn.Amount
		}

		avgAmount := totalAmount / float64(len(group))
		avgInterval := totalInterval / float64(len(group)-1)
		annualized := avgAmount * 12

		findings = append(findings, model.Finding{
			Type: model.FindingRecurringPayment,
			Insight: fmt.Sprintf("%s looks like a subscription: %d charges averaging %.2f about every %.0f days.",
				merchant, len(group), avgAmount, avgInterval),
			Recommendation: fmt.Sprintf("If you no longer use %s, canceling would free up about %.2f per year.",
				merchant, annualized),
			Severity:   model.SeverityLow,
			Confidence: recurringConfidence,
			Data: model.RecurringPaymentData{
				Merchant:            merchant,
				AverageAmount:       avgAmount,
				AverageIntervalDays: avgInterval,
				AnnualizedCost:      annualized,
				Occurrences:         len(group),
			},
		})
	}

	return findings
}
