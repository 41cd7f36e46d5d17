package report

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"code.cloudfoundry.org/clock"

	bosherr "github.com/cloudfoundry/bosh-utils/errors"
	boshlog "github.com/cloudfoundry/bosh-utils/logger"
	boshsys "github.com/cloudfoundry/bosh-utils/system"
	uuid "github.com/nu7hatch/gouuid"

	"dns-scavenger/scavenger/audit"
	"dns-scavenger/scavenger/records"
)

const logTag = "ReportEmitter"

// Paths lists the files one Emit call produced.
type Paths struct {
	Manifest  string
	ReviewCSV string
	Summary   string
}

type summary struct {
	RunID            string  `json:"run_id"`
	TotalRecords     int     `json:"total_records"`
	TotalCandidates  int     `json:"total_candidates"`
	CloudCandidates  int     `json:"cloud_candidates"`
	OnPremCandidates int     `json:"onprem_candidates"`
	HealthPercentage float64 `json:"health_percentage"`
	LastRun          string  `json:"last_run"`
}

// Emitter renders one audit result as a technical JSON manifest, a review
// CSV for humans, and a live summary JSON.
type Emitter struct {
	fs        boshsys.FileSystem
	clock     clock.Clock
	outputDir string
	logger    boshlog.Logger
}

func NewEmitter(fs boshsys.FileSystem, clock clock.Clock, outputDir string, logger boshlog.Logger) *Emitter {
	return &Emitter{
		fs:        fs,
		clock:     clock,
		outputDir: outputDir,
		logger:    logger,
	}
}

// Emit writes all three report files. It runs only after the audit has
// fully aggregated, so an interrupted run leaves no partial files behind.
func (e *Emitter) Emit(result audit.Result) (Paths, error) {
	now := e.clock.Now()
	stamp := now.Format("20060102_1504")

	if e.outputDir != "" {
		if err := e.fs.MkdirAll(e.outputDir, 0750); err != nil {
			return Paths{}, bosherr.WrapErrorf(err, "Creating report directory '%s'", e.outputDir)
		}
	}

	paths := Paths{
		Manifest:  filepath.Join(e.outputDir, fmt.Sprintf("scavenging_manifest_%s.json", stamp)),
		ReviewCSV: filepath.Join(e.outputDir, fmt.Sprintf("affected_records_review_%s.csv", stamp)),
		Summary:   filepath.Join(e.outputDir, "live_scavenging_summary.json"),
	}

	if err := e.writeManifest(paths.Manifest, result.Candidates); err != nil {
		return Paths{}, err
	}

	if err := e.writeReviewCSV(paths.ReviewCSV, result.Candidates, now); err != nil {
		return Paths{}, err
	}

	if err := e.writeSummary(paths.Summary, result, now); err != nil {
		return Paths{}, err
	}

	e.logger.Info(logTag, "Wrote reports: %s, %s, %s", paths.Manifest, paths.ReviewCSV, paths.Summary)

	return paths, nil
}

func (e *Emitter) writeManifest(path string, candidates []records.Record) error {
	contents, err := json.MarshalIndent(candidates, "", "    ")
	if err != nil {
		return bosherr.WrapError(err, "Marshaling candidate manifest")
	}

	if err := e.fs.WriteFile(path, contents); err != nil {
		return bosherr.WrapErrorf(err, "Writing candidate manifest '%s'", path)
	}

	return nil
}

func (e *Emitter) writeReviewCSV(path string, candidates []records.Record, now time.Time) error {
	attributeKeys := extendedAttributeKeys(candidates)

	header := []string{"FQDN", "IP Address", "Source", "Last Queried", "Days Since Last Query"}
	for _, key := range attributeKeys {
		header = append(header, "EA:"+key)
	}

	buf := &bytes.Buffer{}
	writer := csv.NewWriter(buf)

	if err := writer.Write(header); err != nil {
		return bosherr.WrapError(err, "Writing review CSV header")
	}

	for _, rec := range candidates {
		row := []string{
			rec.Name,
			rec.Address(),
			rec.Source(),
			lastQueriedCell(rec),
			daysSinceCell(rec, now),
		}
		for _, key := range attributeKeys {
			row = append(row, rec.ExtendedAttributes[key].Value)
		}

		if err := writer.Write(row); err != nil {
			return bosherr.WrapError(err, "Writing review CSV row")
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return bosherr.WrapError(err, "Flushing review CSV")
	}

	if err := e.fs.WriteFile(path, buf.Bytes()); err != nil {
		return bosherr.WrapErrorf(err, "Writing review CSV '%s'", path)
	}

	return nil
}

func (e *Emitter) writeSummary(path string, result audit.Result, now time.Time) error {
	runID, err := uuid.NewV4()
	if err != nil {
		return bosherr.WrapError(err, "Generating run ID")
	}

	contents, err := json.MarshalIndent(summary{
		RunID:            runID.String(),
		TotalRecords:     result.TotalRecords,
		TotalCandidates:  len(result.Candidates),
		CloudCandidates:  result.CloudCandidates,
		OnPremCandidates: result.OnPremCandidates,
		HealthPercentage: result.HealthPercentage,
		LastRun:          now.Format("2006-01-02 15:04:05"),
	}, "", "    ")
	if err != nil {
		return bosherr.WrapError(err, "Marshaling summary")
	}

	if err := e.fs.WriteFile(path, contents); err != nil {
		return bosherr.WrapErrorf(err, "Writing summary '%s'", path)
	}

	return nil
}

// The full set of attribute columns is only known once every candidate has
// been seen, so collect the keys first and emit rows against that fixed,
// sorted set.
func extendedAttributeKeys(candidates []records.Record) []string {
	seen := map[string]struct{}{}
	for _, rec := range candidates {
		for key := range rec.ExtendedAttributes {
			seen[key] = struct{}{}
		}
	}

	keys := make([]string, 0, len(seen))
	for key := range seen {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	return keys
}

func lastQueriedCell(rec records.Record) string {
	lastQueried, ok := rec.LastQueriedTime()
	if !ok {
		return "Never"
	}
	return lastQueried.UTC().Format("2006-01-02")
}

func daysSinceCell(rec records.Record, now time.Time) string {
	lastQueried, ok := rec.LastQueriedTime()
	if !ok {
		return "N/A"
	}
	return strconv.Itoa(int(now.Sub(lastQueried).Hours() / 24))
}
