package detect

import (
	"fmt"
	"time"

	"github.com/finpulse/finpulse/internal/model"
)

// UnusualSpending flags recent transactions that sit far outside the
// user's 30-day spending distribution. It needs at least 5 expenses in
// the trailing 30 days to have a usable baseline; only transactions
// from the trailing 3 days are candidates, and each must clear both
// mean + 2 sigma and an absolute floor (near-zero-variance datasets
// would otherwise flag everything). Every outlier yields its own
// finding; there is no cap.
func UnusualSpending(txns []model.Transaction, now time.Time) []model.Finding {
	windowStart := now.AddDate(0, 0, -outlierWindowDays)
	recentStart := now.AddDate(0, 0, -outlierRecentDays)

	var window []model.Transaction
	var amounts []float64
	for _, txn := range txns {
		if !txn.IsExpense() || txn.CreatedAt.Before(windowStart) || txn.CreatedAt.After(now) {
			continue
		}
		window = append(window, txn)
		amounts = append(amounts, txn.Amount)
	}
	if len(window) < outlierMinSamples {
		return nil
	}

	m := mean(amounts)
	sd := stdDev(amounts)
	threshold := m + outlierSigma*sd

	byDateAsc(window)

	var findings []model.Finding
	for _, txn := range window {
		if txn.CreatedAt.Before(recentStart) {
			continue
		}
		if txn.Amount <= threshold || txn.Amount <= outlierFloor {
			continue
		}
		findings = append(findings, model.Finding{
			Type: model.FindingUnusualActivity,
			Insight: fmt.Sprintf("A %.2f charge at %s is well above your 30-day average of %.2f.",
				txn.Amount, txn.Description, m),
			Recommendation: "If you don't recognize this transaction, check it with your bank.",
			Severity:       model.SeverityHigh,
			Confidence:     0.75,
			Data: model.UnusualSpendData{
				Date:          txn.CreatedAt,
				TransactionID: txn.ID,
				Description:   txn.Description,
				Amount:        txn.Amount,
				Mean:          m,
				StdDev:        sd,
			},
		})
	}

	return findings
}
