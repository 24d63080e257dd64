package detect

import (
	"math"
	"sort"
	"time"

	"github.com/finpulse/finpulse/internal/model"
)

// mean returns the arithmetic mean of values, or 0 for an empty slice.
func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// stdDev returns the population standard deviation of values.
func stdDev(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	m := mean(values)
	var sumSquares float64
	for _, v := range values {
		d := v - m
		sumSquares += d * d
	}
	return math.Sqrt(sumSquares / float64(len(values)))
}

// daysApart returns the fractional number of days from earlier to later.
func daysApart(earlier, later time.Time) float64 {
	return later.Sub(earlier).Hours() / 24
}

// monthStart returns midnight on the first day of now's calendar month.
func monthStart(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
}

// isWeekend reports whether t falls on a Saturday or Sunday.
func isWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// groupByDescription buckets expense transactions by their description,
// the closest thing to a merchant identity the snapshot carries.
func groupByDescription(txns []model.Transaction) map[string][]model.Transaction {
	groups := make(map[string][]model.Transaction)
	for _, txn := range txns {
		if !txn.IsExpense() || txn.Description == "" {
			continue
		}
		groups[txn.Description] = append(groups[txn.Description], txn)
	}
	return groups
}

// sortedKeys returns map keys in lexical order so detector output is
// deterministic across runs.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// byDateAsc sorts transactions oldest first, in place.
func byDateAsc(txns []model.Transaction) {
	sort.Slice(txns, func(i, j int) bool {
		return txns[i].CreatedAt.Before(txns[j].CreatedAt)
	})
}

// byDateDesc sorts transactions newest first, in place.
func byDateDesc(txns []model.Transaction) {
	sort.Slice(txns, func(i, j int) bool {
		return txns[i].CreatedAt.After(txns[j].CreatedAt)
	})
}
