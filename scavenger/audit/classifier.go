package audit

import (
	"time"

	"dns-scavenger/scavenger/records"
)

// Thresholds hold the per-source staleness windows, in days.
type Thresholds struct {
	CloudDays  int
	OnPremDays int
}

// IsCandidate reports whether a record is a scavenging candidate at the
// given instant. Records the grid has never seen a query for are always
// candidates; otherwise a record becomes one only once its last query is
// strictly older than the window for its source.
func IsCandidate(rec records.Record, thresholds Thresholds, now time.Time) bool {
	days := thresholds.OnPremDays
	if rec.IsCloud() {
		days = thresholds.CloudDays
	}

	lastQueried, ok := rec.LastQueriedTime()
	if !ok {
		return true
	}

	cutoff := now.Add(-time.Duration(days) * 24 * time.Hour)

	return lastQueried.Before(cutoff)
}
