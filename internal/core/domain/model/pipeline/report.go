package pipeline

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Stage is the position an order reached in its pipeline pass.
//
// Stage progression per order:
//
//	Fetched ──> CODComputed ──> LabelIssued ──> DocumentFetched ──> Archived
//
// A failure at any transition records the stage that was being entered;
// the order's pass stops there and the run continues with the next order.
type Stage int

const (
	// StageFetched means the order was received from the feed snapshot.
	StageFetched Stage = iota

	// StageCODComputed means the cash-on-delivery amount was derived.
	StageCODComputed

	// StageLabelIssued means the carrier accepted the waybill request.
	StageLabelIssued

	// StageDocumentFetched means the rendered label PDF was downloaded.
	StageDocumentFetched

	// StageArchived means the label reached the remote archive. Final stage.
	StageArchived
)

// String returns the stage name used in log lines and failure records.
func (s Stage) String() string {
	switch s {
	case StageFetched:
		return "Fetched"
	case StageCODComputed:
		return "CODComputed"
	case StageLabelIssued:
		return "LabelIssued"
	case StageDocumentFetched:
		return "DocumentFetched"
	case StageArchived:
		return "Archived"
	default:
		return "Unknown"
	}
}

// MarshalText makes stages render as their names in JSON reports.
func (s Stage) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText parses a stage from its name.
func (s *Stage) UnmarshalText(text []byte) error {
	for candidate := StageFetched; candidate <= StageArchived; candidate++ {
		if candidate.String() == string(text) {
			*s = candidate
			return nil
		}
	}
	return fmt.Errorf("unknown pipeline stage %q", string(text))
}

// Failure records one order that did not complete its pass: which order,
// the stage it failed entering, and the converted error message.
type Failure struct {
	OrderID string `json:"orderId"`
	Stage   Stage  `json:"stage"`
	Message string `json:"message"`
}

// Report is the outcome of one pipeline run over a feed snapshot. It is the
// only state shared across orders within a run, and it is owned exclusively
// by the orchestrator while the run is in progress.
type Report struct {
	RunID     uuid.UUID `json:"runId"`
	StartedAt time.Time `json:"startedAt"`
	Processed int       `json:"processed"`
	Succeeded int       `json:"succeeded"`
	Failed    int       `json:"failed"`
	Failures  []Failure `json:"failures,omitempty"`
}

// NewReport creates an empty report for a run starting now.
func NewReport() Report {
	return Report{
		RunID:     uuid.New(),
		StartedAt: time.Now(),
	}
}

// RecordSuccess counts one order that reached the Archived stage.
func (r *Report) RecordSuccess() {
	r.Processed++
	r.Succeeded++
}

// RecordFailure counts one order whose pass stopped at the given stage.
func (r *Report) RecordFailure(orderID string, stage Stage, err error) {
	r.Processed++
	r.Failed++
	r.Failures = append(r.Failures, Failure{
		OrderID: orderID,
		Stage:   stage,
		Message: err.Error(),
	})
}

// HasFailures reports whether any order in the run failed. Used to derive
// the process exit status in run-once mode.
func (r *Report) HasFailures() bool {
	return r.Failed > 0
}
