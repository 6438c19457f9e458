package report

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/akarpel/filetriage/pkg/filetriage"
)

// Report is the stable output document for one batch run.
type Report struct {
	RunID      uuid.UUID `json:"run_id"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`

	Summary filetriage.Summary  `json:"summary"`
	Records []filetriage.Record `json:"records"`
}

// Engine is the concrete filetriage.Reporter.
type Engine struct{}

// New creates a reporter engine.
func New() *Engine {
	return &Engine{}
}

var _ filetriage.Reporter = (*Engine)(nil)

// Report returns the records sorted stably by ascending priority and
// the batch summary. The input slice is not mutated.
func (e *Engine) Report(records []filetriage.Record) ([]filetriage.Record, filetriage.Summary) {
	return SortByPriority(records), Summarize(records)
}

// Build assembles the run report for a classified batch: a fresh run
// identity, timestamps normalized to UTC, records sorted by priority,
// and the summary recomputed from the records.
func Build(records []filetriage.Record, startedAt time.Time) *Report {
	sorted, summary := New().Report(records)
	return &Report{
		RunID:      uuid.New(),
		StartedAt:  startedAt.UTC(),
		FinishedAt: time.Now().UTC(),
		Summary:    summary,
		Records:    sorted,
	}
}

// EncodeJSON renders the report as indented JSON. Records keep their
// sorted order; map-valued summary buckets marshal with sorted keys,
// keeping the output deterministic for a given batch and identity.
func (r *Report) EncodeJSON() ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}
