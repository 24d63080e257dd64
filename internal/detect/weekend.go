package detect

import (
	"fmt"

	"github.com/finpulse/finpulse/internal/model"
)

// WeekendSpike compares average weekend expense size against weekdays.
// It fires when the weekend average exceeds 1.5x the weekday average
// and clears an absolute floor. When there is no weekday spending at
// all the ratio is undefined and the finding is suppressed.
func WeekendSpike(txns []model.Transaction) []model.Finding {
	var weekend, weekday []float64
	for _, txn := range txns {
		if !txn.IsExpense() {
			continue
		}
		if isWeekend(txn.CreatedAt) {
			weekend = append(weekend, txn.Amount)
		} else {
			weekday = append(weekday, txn.Amount)
		}
	}

	weekendAvg := mean(weekend)
	weekdayAvg := mean(weekday)
	if weekdayAvg == 0 {
		return nil
	}
	if weekendAvg <= weekdayAvg*weekendSpikeRatio || weekendAvg <= weekendSpikeFloor {
		return nil
	}

	pctIncrease := (weekendAvg - weekdayAvg) / weekdayAvg * 100

	return []model.Finding{{
		Type: model.FindingWeekendPattern,
		Insight: fmt.Sprintf("Your average weekend purchase (%.2f) runs %.0f%% above your weekday average (%.2f).",
			weekendAvg, pctIncrease, weekdayAvg),
		Recommendation: "Setting a weekend spending cap could smooth this out.",
		Severity:       model.SeverityMedium,
		Confidence:     0.8,
		Data: model.WeekendSpikeData{
			WeekendAverage:  weekendAvg,
			WeekdayAverage:  weekdayAvg,
			PercentIncrease: pctIncrease,
		},
	}}
}
