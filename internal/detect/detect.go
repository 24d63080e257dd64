// Package detect implements the behavioral detectors of the analytics
// engine. Every detector is a pure function over an immutable
// transaction snapshot: no shared state, no storage access, safe to run
// concurrently. Ordering of the input is never assumed; detectors sort
// internally where it matters.
package detect

import "time"

// Detection thresholds. These mirror the tuned production values; the
// absolute floors exist so that statistically "spiky" but trivially
// small spending never fires.
const (
	recurringMinOccurrences  = 2
	recurringMinIntervalDays = 25.0
	recurringMaxIntervalDays = 35.0
	recurringConfidence      = 0.9

	weekendSpikeRatio = 1.5
	weekendSpikeFloor = 1000.0

	paydayIncomeFloor = 5000.0
	paydayWindow      = 48 * time.Hour
	paydaySpendShare  = 0.30

	concentrationShare     = 0.20
	concentrationHighShare = 0.30
	concentrationMaxCount  = 60

	outlierMinSamples = 5
	outlierSigma      = 2.0
	outlierFloor      = 1000.0
	outlierWindowDays = 30
	outlierRecentDays = 3

	billMinOccurrences = 3
	billHorizonDays    = 3.0
	billWindowDays     = 90
)
