package audit

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

import (
	"math"

	"code.cloudfoundry.org/clock"

	boshlog "github.com/cloudfoundry/bosh-utils/logger"

	"dns-scavenger/scavenger/records"
)

const logTag = "Auditor"

//counterfeiter:generate . RecordSource

// RecordSource yields every record of one type, in page-arrival order.
type RecordSource interface {
	Fetch(recordType string) ([]records.Record, error)
}

// Result aggregates a single audit run. Candidates keep fetch order.
type Result struct {
	TotalRecords     int
	Candidates       []records.Record
	CloudCandidates  int
	OnPremCandidates int
	HealthPercentage float64
}

func (r Result) SafeRecords() int {
	return r.TotalRecords - len(r.Candidates)
}

type Auditor struct {
	source RecordSource
	clock  clock.Clock
	logger boshlog.Logger
}

func NewAuditor(source RecordSource, clock clock.Clock, logger boshlog.Logger) *Auditor {
	return &Auditor{
		source: source,
		clock:  clock,
		logger: logger,
	}
}

// Run fetches all records of recordType and classifies each one against
// thresholds. Fetch failures abort the run and surface unchanged.
func (a *Auditor) Run(recordType string, thresholds Thresholds) (Result, error) {
	recs, err := a.source.Fetch(recordType)
	if err != nil {
		return Result{}, err
	}

	now := a.clock.Now()
	result := Result{
		TotalRecords: len(recs),
		Candidates:   []records.Record{},
	}

	for _, rec := range recs {
		if !IsCandidate(rec, thresholds, now) {
			continue
		}

		result.Candidates = append(result.Candidates, rec)

		if rec.IsCloud() {
			result.CloudCandidates++
		} else {
			result.OnPremCandidates++
		}
	}

	result.HealthPercentage = healthPercentage(result.TotalRecords, len(result.Candidates))

	a.logger.Info(logTag, "Classified %d records: %d cloud candidates, %d on-prem candidates, %d safe",
		result.TotalRecords, result.CloudCandidates, result.OnPremCandidates, result.SafeRecords())

	return result, nil
}

// healthPercentage is the share of safe records, rounded to one decimal.
// An empty record set counts as fully healthy.
func healthPercentage(total, candidates int) float64 {
	if total == 0 {
		return 100
	}

	return math.Round(float64(total-candidates)/float64(total)*1000) / 10
}
