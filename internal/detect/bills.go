package detect

import (
	"fmt"
	"time"

	"github.com/finpulse/finpulse/internal/model"
)

// UpcomingBills extrapolates the next charge date for merchants seen at
// least 3 times in the trailing 90 days and warns when it lands within
// the next 3 days. Unlike RecurringPayments this applies no regularity
// band; it is a looser heuristic tuned for short-horizon warnings, so
// the two detectors can legitimately disagree about the same merchant.
func UpcomingBills(txns []model.Transaction, now time.Time) []model.Finding {
	windowStart := now.AddDate(0, 0, -billWindowDays)

	var window []model.Transaction
	for _, txn := range txns {
		if txn.CreatedAt.Before(windowStart) || txn.CreatedAt.After(now) {
			continue
		}
		window = append(window, txn)
	}

	groups := groupByDescription(window)

	var findings []model.Finding
	for _, merchant := range sortedKeys(groups) {
		group := groups[merchant]
		if len(group) < billMinOccurrences {
			continue
		}
		byDateDesc(group)

		var totalInterval, totalAmount float64
		for i := 0; i < len(group)-1; i++ {
			totalInterval += daysApart(group[i+1].CreatedAt, group[i].CreatedAt)
		}
		for _, txn := range group {
			totalAmount += txn.Amount
		}

		avgInterval := totalInterval / float64(len(group)-1)
		avgAmount := totalAmount / float64(len(group))
		nextDate := group[0].CreatedAt.Add(time.Duration(avgInterval * 24 * float64(time.Hour)))

		daysUntil := daysApart(now, nextDate)
		if daysUntil <= 0 || daysUntil > billHorizonDays {
			continue
		}

		findings = append(findings, model.Finding{
			Type: model.FindingUpcomingBill,
			Insight: fmt.Sprintf("%s usually charges about %.2f every %.0f days; the next one is due around %s.",
				merchant, avgAmount, avgInterval, nextDate.Format("Jan 2")),
			Recommendation: "Make sure the account it draws from is funded.",
			Severity:       model.SeverityLow,
			Confidence:     0.6,
			Data: model.UpcomingBillData{
				ExpectedDate:        nextDate,
				Merchant:            merchant,
				AverageAmount:       avgAmount,
				AverageIntervalDays: avgInterval,
				Occurrences:         len(group),
			},
		})
	}

	return findings
}
